package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/app/models/dto"
	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/pkg/apperrors"
	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/pkg/logger"
)

// statusForError maps application sentinels to HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest

	case errors.Is(err, apperrors.ErrInvalidCredentials),
		errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrTokenInvalid):
		return http.StatusUnauthorized

	case errors.Is(err, apperrors.ErrPermissionDenied):
		return http.StatusForbidden

	case errors.Is(err, apperrors.ErrResourceNotFound),
		errors.Is(err, apperrors.ErrCollegeNotFound),
		errors.Is(err, apperrors.ErrDepartmentNotFound),
		errors.Is(err, apperrors.ErrProgramNotFound),
		errors.Is(err, apperrors.ErrLevelNotFound),
		errors.Is(err, apperrors.ErrCourseNotFound),
		errors.Is(err, apperrors.ErrCombinedCourseNotFound),
		errors.Is(err, apperrors.ErrBaseCourseMissing),
		errors.Is(err, apperrors.ErrVenueNotFound),
		errors.Is(err, apperrors.ErrStaffNotFound):
		return http.StatusNotFound

	case errors.Is(err, apperrors.ErrConflict),
		errors.Is(err, apperrors.ErrEmailAlreadyExists),
		errors.Is(err, apperrors.ErrCollegeAlreadyExists),
		errors.Is(err, apperrors.ErrDepartmentAlreadyExists),
		errors.Is(err, apperrors.ErrProgramAlreadyExists),
		errors.Is(err, apperrors.ErrLevelAlreadyExists),
		errors.Is(err, apperrors.ErrCourseAlreadyExists),
		errors.Is(err, apperrors.ErrCombinedCourseExists),
		errors.Is(err, apperrors.ErrVenueAlreadyExists),
		errors.Is(err, apperrors.ErrStaffAlreadyExists):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// HandleAPIError writes the error response for a failed request. Known
// sentinels carry their own message; anything else is logged server-side
// and answered with a generic message so storage details never leak.
func HandleAPIError(c *gin.Context, err error) {
	status := statusForError(err)

	if status == http.StatusInternalServerError {
		logger.Error().
			Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Request failed")
		c.JSON(status, dto.Error("An internal error occurred"))
		return
	}

	var custom *apperrors.CustomError
	if errors.As(err, &custom) && custom.Message != "" {
		c.JSON(status, dto.Error(custom.Message))
		return
	}

	c.JSON(status, dto.Error(err.Error()))
}
