package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/app/models"
	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/app/models/dto"
	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/app/services"
	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/middleware"
)

// ProgramController handles program-related operations
type ProgramController struct {
	programService services.ProgramService
}

// NewProgramController creates a new ProgramController
func NewProgramController(programService services.ProgramService) *ProgramController {
	return &ProgramController{programService: programService}
}

// GetAllPrograms lists every program
func (c *ProgramController) GetAllPrograms(ctx *gin.Context) {
	programs, err := c.programService.GetAllPrograms(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Success(programs))
}

// CreateProgram handles program creation
func (c *ProgramController) CreateProgram(ctx *gin.Context) {
	var program models.Program
	if err := ctx.ShouldBindJSON(&program); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error("Invalid program data"))
		return
	}

	if err := c.programService.CreateProgram(ctx, &program); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.Success(program))
}

// UpdateProgram handles program updates
func (c *ProgramController) UpdateProgram(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.Error("Program ID must be a positive number"))
		return
	}

	var program models.Program
	if err := ctx.ShouldBindJSON(&program); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error("Invalid program data"))
		return
	}
	program.ID = id

	if err := c.programService.UpdateProgram(ctx, &program); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Success(program))
}

// DeleteProgram handles program deletion
func (c *ProgramController) DeleteProgram(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.Error("Program ID must be a positive number"))
		return
	}

	if err := c.programService.DeleteProgram(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessMessage("Program deleted"))
}
