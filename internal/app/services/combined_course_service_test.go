package services

import (
	"context"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/app/models"
	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/app/models/dto"
	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/app/repositories"
	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/pkg/apperrors"
)

// fakeCombinedCourseRepo is an in-memory stand-in for the pgx repository.
type fakeCombinedCourseRepo struct {
	courses  map[int64]*models.CombinedCourse
	base     map[int64]*models.Offering
	explicit map[int64][]models.Offering

	nextID      int64
	courseCodes map[string]bool // codes present in the courses table
	lastPairs   []models.Offering
}

func newFakeCombinedCourseRepo() *fakeCombinedCourseRepo {
	return &fakeCombinedCourseRepo{
		courses:     make(map[int64]*models.CombinedCourse),
		base:        make(map[int64]*models.Offering),
		explicit:    make(map[int64][]models.Offering),
		nextID:      1,
		courseCodes: make(map[string]bool),
	}
}

func (f *fakeCombinedCourseRepo) GetByID(_ context.Context, id int64) (*models.CombinedCourse, error) {
	cc, ok := f.courses[id]
	if !ok {
		return nil, repositories.ErrCombinedCourseNotFound
	}
	cp := *cc
	return &cp, nil
}

func (f *fakeCombinedCourseRepo) List(_ context.Context, filter repositories.CombinedCourseFilter) ([]*models.CombinedCourse, error) {
	var out []*models.CombinedCourse
	for id, cc := range f.courses {
		if filter.Search != "" &&
			!strings.Contains(strings.ToLower(cc.CourseCode), strings.ToLower(filter.Search)) &&
			!strings.Contains(strings.ToLower(cc.CourseName), strings.ToLower(filter.Search)) {
			continue
		}
		if !f.offeringMatches(id, filter.ProgramID, filter.LevelID) {
			continue
		}
		cp := *cc
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// offeringMatches mirrors the repository filter: a course matches when any
// of its offerings, implicit or explicit, carries the requested program and
// level.
func (f *fakeCombinedCourseRepo) offeringMatches(id int64, programID, levelID *int64) bool {
	if programID == nil && levelID == nil {
		return true
	}
	all := append([]models.Offering(nil), f.explicit[id]...)
	if b, ok := f.base[id]; ok {
		all = append(all, *b)
	}
	programOK := programID == nil
	levelOK := levelID == nil
	for _, o := range all {
		if programID != nil && o.ProgramID == *programID {
			programOK = true
		}
		if levelID != nil && o.LevelID == *levelID {
			levelOK = true
		}
	}
	return programOK && levelOK
}

func (f *fakeCombinedCourseRepo) BaseOffering(_ context.Context, id int64) (*models.Offering, error) {
	if b, ok := f.base[id]; ok {
		cp := *b
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeCombinedCourseRepo) ExplicitOfferings(_ context.Context, id int64) ([]models.Offering, error) {
	return append([]models.Offering(nil), f.explicit[id]...), nil
}

func (f *fakeCombinedCourseRepo) Create(_ context.Context, cc *models.CombinedCourse, pairs []models.Offering) error {
	if !f.courseCodes[cc.CourseCode] {
		return repositories.ErrBaseCourseMissing
	}
	for _, existing := range f.courses {
		if existing.CourseCode == cc.CourseCode {
			return repositories.ErrCombinedCourseExists
		}
	}
	cc.ID = f.nextID
	f.nextID++
	f.courses[cc.ID] = &models.CombinedCourse{ID: cc.ID, CourseCode: cc.CourseCode, CourseName: cc.CourseName}
	f.explicit[cc.ID] = append([]models.Offering(nil), pairs...)
	f.lastPairs = pairs
	return nil
}

func (f *fakeCombinedCourseRepo) Update(_ context.Context, cc *models.CombinedCourse, pairs []models.Offering) error {
	if _, ok := f.courses[cc.ID]; !ok {
		return repositories.ErrCombinedCourseNotFound
	}
	f.courses[cc.ID] = &models.CombinedCourse{ID: cc.ID, CourseCode: cc.CourseCode, CourseName: cc.CourseName}
	f.explicit[cc.ID] = append([]models.Offering(nil), pairs...)
	f.lastPairs = pairs
	return nil
}

func (f *fakeCombinedCourseRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.courses[id]; !ok {
		return repositories.ErrCombinedCourseNotFound
	}
	delete(f.courses, id)
	delete(f.base, id)
	delete(f.explicit, id)
	return nil
}

func TestCombinedCourseGetByIDMergesOfferings(t *testing.T) {
	repo := newFakeCombinedCourseRepo()
	repo.courses[1] = &models.CombinedCourse{ID: 1, CourseCode: "GST103", CourseName: "Use Of English"}
	repo.base[1] = &models.Offering{ProgramID: 10, ProgramName: "Computer Science", LevelID: 100, LevelNumber: 1}
	repo.explicit[1] = []models.Offering{
		{ProgramID: 20, ProgramName: "Biology", LevelID: 200, LevelNumber: 1},
		// Duplicate of the base pairing, stored explicitly
		{ProgramID: 10, ProgramName: "Computer Science", LevelID: 100, LevelNumber: 1},
	}

	svc := NewCombinedCourseService(repo)
	cc, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, cc.Offerings, 2)
	assert.Equal(t, int64(10), cc.Offerings[0].ProgramID, "base pairing must come first")
	assert.Equal(t, int64(20), cc.Offerings[1].ProgramID)
}

func TestCombinedCourseGetByIDNoBase(t *testing.T) {
	repo := newFakeCombinedCourseRepo()
	repo.courses[1] = &models.CombinedCourse{ID: 1, CourseCode: "GST103", CourseName: "Use Of English"}
	repo.explicit[1] = []models.Offering{
		{ProgramID: 20, LevelID: 200},
	}

	svc := NewCombinedCourseService(repo)
	cc, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, cc.Offerings, 1)
	assert.Equal(t, int64(20), cc.Offerings[0].ProgramID)
}

func TestCombinedCourseGetByIDNotFound(t *testing.T) {
	svc := NewCombinedCourseService(newFakeCombinedCourseRepo())

	_, err := svc.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrCombinedCourseNotFound)
}

func TestCombinedCourseCreateNormalizesInput(t *testing.T) {
	repo := newFakeCombinedCourseRepo()
	repo.courseCodes["GST103"] = true

	svc := NewCombinedCourseService(repo)
	cc, err := svc.Create(context.Background(), &dto.CombinedCourseRequest{
		CourseCode: "  gst103 ",
		CourseName: "use OF english",
		Offerings:  []dto.OfferingInput{{ProgramID: 20, LevelID: 200}},
	})
	require.NoError(t, err)

	assert.Equal(t, "GST103", cc.CourseCode)
	assert.Equal(t, "Use Of English", cc.CourseName)
}

func TestCombinedCourseCreateRequiresBaseCourse(t *testing.T) {
	svc := NewCombinedCourseService(newFakeCombinedCourseRepo())

	_, err := svc.Create(context.Background(), &dto.CombinedCourseRequest{
		CourseCode: "GST999",
		CourseName: "Ghost Course",
		Offerings:  []dto.OfferingInput{{ProgramID: 1, LevelID: 1}},
	})
	assert.ErrorIs(t, err, apperrors.ErrBaseCourseMissing)
}

func TestCombinedCourseCreateRejectsDuplicateCode(t *testing.T) {
	repo := newFakeCombinedCourseRepo()
	repo.courseCodes["GST103"] = true

	svc := NewCombinedCourseService(repo)
	req := &dto.CombinedCourseRequest{
		CourseCode: "GST103",
		CourseName: "Use Of English",
		Offerings:  []dto.OfferingInput{{ProgramID: 1, LevelID: 1}},
	}

	_, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrCombinedCourseExists)
}

func TestCombinedCourseCreateValidation(t *testing.T) {
	svc := NewCombinedCourseService(newFakeCombinedCourseRepo())

	tests := []struct {
		name string
		req  dto.CombinedCourseRequest
	}{
		{"empty code", dto.CombinedCourseRequest{CourseName: "X", Offerings: []dto.OfferingInput{{ProgramID: 1, LevelID: 1}}}},
		{"empty name", dto.CombinedCourseRequest{CourseCode: "GST103", Offerings: []dto.OfferingInput{{ProgramID: 1, LevelID: 1}}}},
		{"no offerings", dto.CombinedCourseRequest{CourseCode: "GST103", CourseName: "X"}},
		{"bad offering", dto.CombinedCourseRequest{CourseCode: "GST103", CourseName: "X", Offerings: []dto.OfferingInput{{ProgramID: 0, LevelID: 1}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), &tt.req)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		})
	}
}

func TestCombinedCourseUpdateReplacesOfferings(t *testing.T) {
	repo := newFakeCombinedCourseRepo()
	repo.courseCodes["GST103"] = true

	svc := NewCombinedCourseService(repo)
	created, err := svc.Create(context.Background(), &dto.CombinedCourseRequest{
		CourseCode: "GST103",
		CourseName: "Use Of English",
		Offerings:  []dto.OfferingInput{{ProgramID: 1, LevelID: 1}, {ProgramID: 2, LevelID: 2}},
	})
	require.NoError(t, err)

	updateReq := &dto.CombinedCourseRequest{
		CourseCode: "GST103",
		CourseName: "Use Of English",
		Offerings:  []dto.OfferingInput{{ProgramID: 3, LevelID: 3}},
	}
	_, err = svc.Update(context.Background(), created.ID, updateReq)
	require.NoError(t, err)

	// The stored set is fully replaced, not merged
	require.Len(t, repo.lastPairs, 1)
	assert.Equal(t, int64(3), repo.lastPairs[0].ProgramID)

	// Repeating the same payload leaves the same final state
	_, err = svc.Update(context.Background(), created.ID, updateReq)
	require.NoError(t, err)
	require.Len(t, repo.lastPairs, 1)
	assert.Equal(t, int64(3), repo.lastPairs[0].ProgramID)
}

func TestCombinedCourseDelete(t *testing.T) {
	repo := newFakeCombinedCourseRepo()
	repo.courses[1] = &models.CombinedCourse{ID: 1, CourseCode: "GST103", CourseName: "Use Of English"}

	svc := NewCombinedCourseService(repo)
	require.NoError(t, svc.Delete(context.Background(), 1))
	assert.ErrorIs(t, svc.Delete(context.Background(), 1), apperrors.ErrCombinedCourseNotFound)
}

func TestCombinedCourseListFiltersByOfferings(t *testing.T) {
	repo := newFakeCombinedCourseRepo()
	// GST103 reaches program 10 only through its implicit base offering.
	repo.courses[1] = &models.CombinedCourse{ID: 1, CourseCode: "GST103", CourseName: "Use Of English"}
	repo.base[1] = &models.Offering{ProgramID: 10, ProgramName: "Computer Science", LevelID: 100, LevelNumber: 1}
	// MTH201 reaches program 10 only through an explicit offering.
	repo.courses[2] = &models.CombinedCourse{ID: 2, CourseCode: "MTH201", CourseName: "Linear Algebra"}
	repo.base[2] = &models.Offering{ProgramID: 30, ProgramName: "Mathematics", LevelID: 300, LevelNumber: 2}
	repo.explicit[2] = []models.Offering{
		{ProgramID: 10, ProgramName: "Computer Science", LevelID: 100, LevelNumber: 1},
	}
	// BIO101 never touches program 10.
	repo.courses[3] = &models.CombinedCourse{ID: 3, CourseCode: "BIO101", CourseName: "General Biology"}
	repo.base[3] = &models.Offering{ProgramID: 20, ProgramName: "Biology", LevelID: 200, LevelNumber: 1}

	svc := NewCombinedCourseService(repo)

	programID := int64(10)
	out, err := svc.List(context.Background(), repositories.CombinedCourseFilter{ProgramID: &programID})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "GST103", out[0].CourseCode, "implicit offering match")
	assert.Equal(t, "MTH201", out[1].CourseCode, "explicit offering match")

	levelID := int64(300)
	out, err = svc.List(context.Background(), repositories.CombinedCourseFilter{LevelID: &levelID})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "MTH201", out[0].CourseCode)

	missing := int64(99)
	out, err = svc.List(context.Background(), repositories.CombinedCourseFilter{ProgramID: &missing})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestParseFilter(t *testing.T) {
	filter, err := ParseFilter(" gst ", "10", "")
	require.NoError(t, err)
	assert.Equal(t, "gst", filter.Search)
	require.NotNil(t, filter.ProgramID)
	assert.Equal(t, int64(10), *filter.ProgramID)
	assert.Nil(t, filter.LevelID)

	_, err = ParseFilter("", "abc", "")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = ParseFilter("", "", "-3")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
