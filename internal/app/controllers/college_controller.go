package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/app/models"
	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/app/models/dto"
	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/app/services"
	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/middleware"
)

// CollegeController handles college-related operations
type CollegeController struct {
	collegeService services.CollegeService
}

// NewCollegeController creates a new CollegeController
func NewCollegeController(collegeService services.CollegeService) *CollegeController {
	return &CollegeController{collegeService: collegeService}
}

// GetAllColleges lists every college
func (c *CollegeController) GetAllColleges(ctx *gin.Context) {
	colleges, err := c.collegeService.GetAllColleges(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Success(colleges))
}

// GetCollegeByID retrieves a single college
func (c *CollegeController) GetCollegeByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.Error("College ID must be a positive number"))
		return
	}

	college, err := c.collegeService.GetCollegeByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Success(college))
}

// CreateCollege handles college creation
func (c *CollegeController) CreateCollege(ctx *gin.Context) {
	var college models.College
	if err := ctx.ShouldBindJSON(&college); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error("Invalid college data"))
		return
	}

	if err := c.collegeService.CreateCollege(ctx, &college); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.Success(college))
}

// UpdateCollege handles college updates
func (c *CollegeController) UpdateCollege(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.Error("College ID must be a positive number"))
		return
	}

	var college models.College
	if err := ctx.ShouldBindJSON(&college); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error("Invalid college data"))
		return
	}
	college.ID = id

	if err := c.collegeService.UpdateCollege(ctx, &college); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Success(college))
}

// DeleteCollege handles college deletion
func (c *CollegeController) DeleteCollege(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.Error("College ID must be a positive number"))
		return
	}

	if err := c.collegeService.DeleteCollege(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessMessage("College deleted"))
}
