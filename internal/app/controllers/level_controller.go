package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/app/models"
	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/app/models/dto"
	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/app/services"
	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/middleware"
)

// LevelController handles level-related operations
type LevelController struct {
	levelService services.LevelService
}

// NewLevelController creates a new LevelController
func NewLevelController(levelService services.LevelService) *LevelController {
	return &LevelController{levelService: levelService}
}

// GetAllLevels lists levels, optionally filtered by program
func (c *LevelController) GetAllLevels(ctx *gin.Context) {
	programID, ok := parseOptionalIDQuery(ctx, "program_id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.Error("program_id must be a positive number"))
		return
	}

	levels, err := c.levelService.GetAllLevels(ctx, programID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Success(levels))
}

// CreateLevel handles level creation
func (c *LevelController) CreateLevel(ctx *gin.Context) {
	var level models.Level
	if err := ctx.ShouldBindJSON(&level); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error("Invalid level data"))
		return
	}

	if err := c.levelService.CreateLevel(ctx, &level); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.Success(level))
}

// UpdateLevel handles level updates
func (c *LevelController) UpdateLevel(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.Error("Level ID must be a positive number"))
		return
	}

	var level models.Level
	if err := ctx.ShouldBindJSON(&level); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error("Invalid level data"))
		return
	}
	level.ID = id

	if err := c.levelService.UpdateLevel(ctx, &level); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Success(level))
}

// DeleteLevel handles level deletion
func (c *LevelController) DeleteLevel(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.Error("Level ID must be a positive number"))
		return
	}

	if err := c.levelService.DeleteLevel(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessMessage("Level deleted"))
}
