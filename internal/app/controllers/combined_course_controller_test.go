package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/app/models"
	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/app/models/dto"
	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/app/repositories"
	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/pkg/apperrors"
)

type fakeCombinedCourseService struct {
	courses     map[int64]*models.CombinedCourse
	baseMissing bool
}

func (f *fakeCombinedCourseService) GetByID(_ context.Context, id int64) (*models.CombinedCourse, error) {
	cc, ok := f.courses[id]
	if !ok {
		return nil, apperrors.ErrCombinedCourseNotFound
	}
	return cc, nil
}

func (f *fakeCombinedCourseService) List(_ context.Context, _ repositories.CombinedCourseFilter) ([]*models.CombinedCourse, error) {
	var out []*models.CombinedCourse
	for _, cc := range f.courses {
		out = append(out, cc)
	}
	return out, nil
}

func (f *fakeCombinedCourseService) Create(_ context.Context, req *dto.CombinedCourseRequest) (*models.CombinedCourse, error) {
	if f.baseMissing {
		return nil, apperrors.ErrBaseCourseMissing
	}
	for _, cc := range f.courses {
		if cc.CourseCode == req.CourseCode {
			return nil, apperrors.ErrCombinedCourseExists
		}
	}
	cc := &models.CombinedCourse{ID: int64(len(f.courses) + 1), CourseCode: req.CourseCode, CourseName: req.CourseName}
	f.courses[cc.ID] = cc
	return cc, nil
}

func (f *fakeCombinedCourseService) Update(_ context.Context, id int64, req *dto.CombinedCourseRequest) (*models.CombinedCourse, error) {
	if _, ok := f.courses[id]; !ok {
		return nil, apperrors.ErrCombinedCourseNotFound
	}
	cc := &models.CombinedCourse{ID: id, CourseCode: req.CourseCode, CourseName: req.CourseName}
	f.courses[id] = cc
	return cc, nil
}

func (f *fakeCombinedCourseService) Delete(_ context.Context, id int64) error {
	if _, ok := f.courses[id]; !ok {
		return apperrors.ErrCombinedCourseNotFound
	}
	delete(f.courses, id)
	return nil
}

func setupCombinedCourseRouter(svc *fakeCombinedCourseService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	controller := NewCombinedCourseController(svc)
	router.GET("/combined-courses", controller.ListCombinedCourses)
	router.GET("/combined-courses/:id", controller.GetCombinedCourseByID)
	router.POST("/combined-courses", controller.CreateCombinedCourse)
	router.PUT("/combined-courses/:id", controller.UpdateCombinedCourse)
	router.DELETE("/combined-courses/:id", controller.DeleteCombinedCourse)
	return router
}

func TestGetCombinedCourseByID(t *testing.T) {
	svc := &fakeCombinedCourseService{courses: map[int64]*models.CombinedCourse{
		1: {ID: 1, CourseCode: "GST103", CourseName: "Use Of English"},
	}}
	router := setupCombinedCourseRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/combined-courses/1", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status string                `json:"status"`
		Data   models.CombinedCourse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "GST103", resp.Data.CourseCode)
}

func TestGetCombinedCourseByIDNotFound(t *testing.T) {
	router := setupCombinedCourseRouter(&fakeCombinedCourseService{courses: map[int64]*models.CombinedCourse{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/combined-courses/99", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetCombinedCourseByIDBadParam(t *testing.T) {
	router := setupCombinedCourseRouter(&fakeCombinedCourseService{courses: map[int64]*models.CombinedCourse{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/combined-courses/abc", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateCombinedCourse(t *testing.T) {
	svc := &fakeCombinedCourseService{courses: map[int64]*models.CombinedCourse{}}
	router := setupCombinedCourseRouter(svc)

	body, _ := json.Marshal(dto.CombinedCourseRequest{
		CourseCode: "GST103",
		CourseName: "Use Of English",
		Offerings:  []dto.OfferingInput{{ProgramID: 1, LevelID: 1}},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/combined-courses", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Len(t, svc.courses, 1)
}

func TestCreateCombinedCourseMissingOfferings(t *testing.T) {
	router := setupCombinedCourseRouter(&fakeCombinedCourseService{courses: map[int64]*models.CombinedCourse{}})

	// Offerings are required by request binding
	body := []byte(`{"course_code":"GST103","course_name":"Use Of English","offerings":[]}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/combined-courses", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateCombinedCourseUnknownCourseCode(t *testing.T) {
	// A combined course referencing a course that is not registered is a
	// lookup miss, answered like the other parent checks.
	svc := &fakeCombinedCourseService{courses: map[int64]*models.CombinedCourse{}, baseMissing: true}
	router := setupCombinedCourseRouter(svc)

	body, _ := json.Marshal(dto.CombinedCourseRequest{
		CourseCode: "XYZ999",
		CourseName: "Unknown Course",
		Offerings:  []dto.OfferingInput{{ProgramID: 1, LevelID: 1}},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/combined-courses", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateCombinedCourseConflict(t *testing.T) {
	svc := &fakeCombinedCourseService{courses: map[int64]*models.CombinedCourse{
		1: {ID: 1, CourseCode: "GST103", CourseName: "Use Of English"},
	}}
	router := setupCombinedCourseRouter(svc)

	body, _ := json.Marshal(dto.CombinedCourseRequest{
		CourseCode: "GST103",
		CourseName: "Use Of English",
		Offerings:  []dto.OfferingInput{{ProgramID: 1, LevelID: 1}},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/combined-courses", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestDeleteCombinedCourse(t *testing.T) {
	svc := &fakeCombinedCourseService{courses: map[int64]*models.CombinedCourse{
		1: {ID: 1, CourseCode: "GST103", CourseName: "Use Of English"},
	}}
	router := setupCombinedCourseRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/combined-courses/1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, svc.courses)
}
