package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/app/models"
	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/app/repositories"
	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/pkg/apperrors"
	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/pkg/helpers"
)

// CourseService defines the interface for course-related operations
type CourseService interface {
	GetAllCourses(ctx context.Context) ([]*models.Course, error)
	GetCoursesByLevel(ctx context.Context, levelID int64) ([]*models.Course, error)
	CreateCourse(ctx context.Context, course *models.Course) error
	UpdateCourse(ctx context.Context, course *models.Course) error
	DeleteCourse(ctx context.Context, id int64) error
}

type courseRepository interface {
	GetAll(ctx context.Context) ([]*models.Course, error)
	GetByLevelID(ctx context.Context, levelID int64) ([]*models.Course, error)
	Create(ctx context.Context, course *models.Course) error
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id int64) error
}

type levelLookup interface {
	GetByID(ctx context.Context, id int64) (*models.Level, error)
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	courseRepo courseRepository
	levelRepo  levelLookup
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo courseRepository, levelRepo levelLookup) CourseService {
	return &courseServiceImpl{
		courseRepo: courseRepo,
		levelRepo:  levelRepo,
	}
}

// normalizeCourse canonicalizes the course code and name in place.
func normalizeCourse(course *models.Course) error {
	if course == nil {
		return apperrors.NewValidationError("course is nil")
	}
	course.CourseCode = helpers.NormalizeCourseCode(course.CourseCode)
	course.CourseName = helpers.NormalizeCourseName(course.CourseName)

	if course.CourseCode == "" {
		return apperrors.NewValidationError("course code is required")
	}
	if course.CourseName == "" {
		return apperrors.NewValidationError("course name is required")
	}
	if course.LevelID <= 0 {
		return apperrors.NewValidationError("level ID must be positive")
	}
	if course.CreditUnit <= 0 {
		return apperrors.NewValidationError("credit unit must be positive")
	}
	return nil
}

func (s *courseServiceImpl) checkLevel(ctx context.Context, levelID int64) error {
	_, err := s.levelRepo.GetByID(ctx, levelID)
	if err != nil {
		if errors.Is(err, repositories.ErrLevelNotFound) {
			return apperrors.ErrLevelNotFound
		}
		return fmt.Errorf("error checking level: %w", err)
	}
	return nil
}

// GetAllCourses retrieves all courses with their level and program context
func (s *courseServiceImpl) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	courses, err := s.courseRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}
	return courses, nil
}

// GetCoursesByLevel retrieves the courses attached to a single level
func (s *courseServiceImpl) GetCoursesByLevel(ctx context.Context, levelID int64) ([]*models.Course, error) {
	if levelID <= 0 {
		return nil, apperrors.NewValidationError("invalid level ID")
	}
	courses, err := s.courseRepo.GetByLevelID(ctx, levelID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses for level: %w", err)
	}
	return courses, nil
}

// CreateCourse creates a new course under an existing level
func (s *courseServiceImpl) CreateCourse(ctx context.Context, course *models.Course) error {
	if err := normalizeCourse(course); err != nil {
		return err
	}
	if err := s.checkLevel(ctx, course.LevelID); err != nil {
		return err
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		if errors.Is(err, repositories.ErrCourseAlreadyExists) {
			return apperrors.ErrCourseAlreadyExists
		}
		return fmt.Errorf("error creating course: %w", err)
	}
	return nil
}

// UpdateCourse updates an existing course
func (s *courseServiceImpl) UpdateCourse(ctx context.Context, course *models.Course) error {
	if err := normalizeCourse(course); err != nil {
		return err
	}
	if course.ID <= 0 {
		return apperrors.NewValidationError("invalid course ID")
	}
	if err := s.checkLevel(ctx, course.LevelID); err != nil {
		return err
	}

	if err := s.courseRepo.Update(ctx, course); err != nil {
		switch {
		case errors.Is(err, repositories.ErrCourseNotFound):
			return apperrors.ErrCourseNotFound
		case errors.Is(err, repositories.ErrCourseAlreadyExists):
			return apperrors.ErrCourseAlreadyExists
		}
		return fmt.Errorf("error updating course: %w", err)
	}
	return nil
}

// DeleteCourse deletes a course by ID
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("invalid course ID")
	}

	if err := s.courseRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrCourseNotFound) {
			return apperrors.ErrCourseNotFound
		}
		return fmt.Errorf("error deleting course: %w", err)
	}
	return nil
}
