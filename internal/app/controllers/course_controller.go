package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/app/models"
	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/app/models/dto"
	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/app/services"
	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/middleware"
)

// CourseController handles course-related operations
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{courseService: courseService}
}

// GetAllCourses lists courses. When level_id is present only the courses
// attached to that level are returned.
func (c *CourseController) GetAllCourses(ctx *gin.Context) {
	levelID, ok := parseOptionalIDQuery(ctx, "level_id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.Error("level_id must be a positive number"))
		return
	}

	var (
		courses []*models.Course
		err     error
	)
	if levelID != nil {
		courses, err = c.courseService.GetCoursesByLevel(ctx, *levelID)
	} else {
		courses, err = c.courseService.GetAllCourses(ctx)
	}
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Success(courses))
}

// CreateCourse handles course creation
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var course models.Course
	if err := ctx.ShouldBindJSON(&course); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error("Invalid course data"))
		return
	}

	if err := c.courseService.CreateCourse(ctx, &course); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.Success(course))
}

// UpdateCourse handles course updates
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.Error("Course ID must be a positive number"))
		return
	}

	var course models.Course
	if err := ctx.ShouldBindJSON(&course); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error("Invalid course data"))
		return
	}
	course.ID = id

	if err := c.courseService.UpdateCourse(ctx, &course); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Success(course))
}

// DeleteCourse handles course deletion
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.Error("Course ID must be a positive number"))
		return
	}

	if err := c.courseService.DeleteCourse(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessMessage("Course deleted"))
}
