package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/app/models"
	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/app/models/dto"
	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/app/services"
	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/middleware"
)

// DepartmentController handles department-related operations
type DepartmentController struct {
	departmentService services.DepartmentService
}

// NewDepartmentController creates a new DepartmentController
func NewDepartmentController(departmentService services.DepartmentService) *DepartmentController {
	return &DepartmentController{departmentService: departmentService}
}

// GetAllDepartments lists departments, optionally filtered by college
func (c *DepartmentController) GetAllDepartments(ctx *gin.Context) {
	collegeID, ok := parseOptionalIDQuery(ctx, "college_id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.Error("college_id must be a positive number"))
		return
	}

	departments, err := c.departmentService.GetAllDepartments(ctx, collegeID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Success(departments))
}

// GetDepartmentByID retrieves a single department
func (c *DepartmentController) GetDepartmentByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.Error("Department ID must be a positive number"))
		return
	}

	department, err := c.departmentService.GetDepartmentByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Success(department))
}

// CreateDepartment handles department creation
func (c *DepartmentController) CreateDepartment(ctx *gin.Context) {
	var department models.Department
	if err := ctx.ShouldBindJSON(&department); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error("Invalid department data"))
		return
	}

	if err := c.departmentService.CreateDepartment(ctx, &department); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.Success(department))
}

// UpdateDepartment handles department updates
func (c *DepartmentController) UpdateDepartment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.Error("Department ID must be a positive number"))
		return
	}

	var department models.Department
	if err := ctx.ShouldBindJSON(&department); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error("Invalid department data"))
		return
	}
	department.ID = id

	if err := c.departmentService.UpdateDepartment(ctx, &department); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Success(department))
}

// DeleteDepartment handles department deletion
func (c *DepartmentController) DeleteDepartment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.Error("Department ID must be a positive number"))
		return
	}

	if err := c.departmentService.DeleteDepartment(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessMessage("Department deleted"))
}
