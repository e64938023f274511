package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/app/models/dto"
	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/app/services"
	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/middleware"
)

// MaintenanceController handles administrative housekeeping endpoints
type MaintenanceController struct {
	maintenanceService services.MaintenanceService
}

// NewMaintenanceController creates a new MaintenanceController
func NewMaintenanceController(maintenanceService services.MaintenanceService) *MaintenanceController {
	return &MaintenanceController{maintenanceService: maintenanceService}
}

// EndOfYearCleanup wipes the exam session schedule. Admin only.
func (c *MaintenanceController) EndOfYearCleanup(ctx *gin.Context) {
	removed, err := c.maintenanceService.EndOfYearCleanup(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Success(gin.H{"exam_sessions_removed": removed}))
}
