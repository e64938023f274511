package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/app/models/dto"
	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/app/services"
	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/middleware"
)

// CombinedCourseController handles combined course operations
type CombinedCourseController struct {
	combinedCourseService services.CombinedCourseService
}

// NewCombinedCourseController creates a new CombinedCourseController
func NewCombinedCourseController(combinedCourseService services.CombinedCourseService) *CombinedCourseController {
	return &CombinedCourseController{combinedCourseService: combinedCourseService}
}

// ListCombinedCourses lists combined courses with their merged offerings.
// Supports search, program_id and level_id query filters.
func (c *CombinedCourseController) ListCombinedCourses(ctx *gin.Context) {
	filter, err := services.ParseFilter(
		ctx.Query("search"),
		ctx.Query("program_id"),
		ctx.Query("level_id"),
	)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	courses, err := c.combinedCourseService.List(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Success(courses))
}

// GetCombinedCourseByID retrieves a single combined course with offerings
func (c *CombinedCourseController) GetCombinedCourseByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.Error("Combined course ID must be a positive number"))
		return
	}

	course, err := c.combinedCourseService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Success(course))
}

// CreateCombinedCourse creates a combined course with its offerings
func (c *CombinedCourseController) CreateCombinedCourse(ctx *gin.Context) {
	var req dto.CombinedCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error("Invalid combined course data"))
		return
	}

	course, err := c.combinedCourseService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.Success(course))
}

// UpdateCombinedCourse updates a combined course and replaces its offerings
func (c *CombinedCourseController) UpdateCombinedCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.Error("Combined course ID must be a positive number"))
		return
	}

	var req dto.CombinedCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error("Invalid combined course data"))
		return
	}

	course, err := c.combinedCourseService.Update(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Success(course))
}

// DeleteCombinedCourse removes a combined course and its offerings
func (c *CombinedCourseController) DeleteCombinedCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.Error("Combined course ID must be a positive number"))
		return
	}

	if err := c.combinedCourseService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessMessage("Combined course deleted"))
}
