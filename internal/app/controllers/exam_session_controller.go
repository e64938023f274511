package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/app/models/dto"
	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/app/services"
	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/middleware"
)

// ExamSessionController exposes the scheduled exam sessions
type ExamSessionController struct {
	examSessionService services.ExamSessionService
}

// NewExamSessionController creates a new ExamSessionController
func NewExamSessionController(examSessionService services.ExamSessionService) *ExamSessionController {
	return &ExamSessionController{examSessionService: examSessionService}
}

// GetAllExamSessions lists every scheduled exam session
func (c *ExamSessionController) GetAllExamSessions(ctx *gin.Context) {
	sessions, err := c.examSessionService.GetAllExamSessions(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Success(sessions))
}
