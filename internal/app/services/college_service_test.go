package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/app/models"
	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/app/repositories"
	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/pkg/apperrors"
)

type fakeCollegeRepo struct {
	colleges map[int64]*models.College
	nextID   int64
}

func newFakeCollegeRepo() *fakeCollegeRepo {
	return &fakeCollegeRepo{colleges: make(map[int64]*models.College), nextID: 1}
}

func (f *fakeCollegeRepo) GetAll(_ context.Context) ([]*models.College, error) {
	var out []*models.College
	for _, c := range f.colleges {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeCollegeRepo) GetByID(_ context.Context, id int64) (*models.College, error) {
	c, ok := f.colleges[id]
	if !ok {
		return nil, repositories.ErrCollegeNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCollegeRepo) Create(_ context.Context, college *models.College) error {
	for _, c := range f.colleges {
		if c.Name == college.Name || c.Code == college.Code {
			return repositories.ErrCollegeAlreadyExists
		}
	}
	college.ID = f.nextID
	f.nextID++
	cp := *college
	f.colleges[college.ID] = &cp
	return nil
}

func (f *fakeCollegeRepo) Update(_ context.Context, college *models.College) error {
	if _, ok := f.colleges[college.ID]; !ok {
		return repositories.ErrCollegeNotFound
	}
	for id, c := range f.colleges {
		if id != college.ID && (c.Name == college.Name || c.Code == college.Code) {
			return repositories.ErrCollegeAlreadyExists
		}
	}
	cp := *college
	f.colleges[college.ID] = &cp
	return nil
}

func (f *fakeCollegeRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.colleges[id]; !ok {
		return repositories.ErrCollegeNotFound
	}
	delete(f.colleges, id)
	return nil
}

func TestCollegeCreateAndGet(t *testing.T) {
	svc := NewCollegeService(newFakeCollegeRepo())

	college := &models.College{Name: "College Of Natural And Applied Sciences", Code: "CNAS"}
	require.NoError(t, svc.CreateCollege(context.Background(), college))
	require.NotZero(t, college.ID)

	got, err := svc.GetCollegeByID(context.Background(), college.ID)
	require.NoError(t, err)
	assert.Equal(t, "CNAS", got.Code)
}

func TestCollegeCreateDuplicate(t *testing.T) {
	svc := NewCollegeService(newFakeCollegeRepo())

	require.NoError(t, svc.CreateCollege(context.Background(), &models.College{Name: "CNAS Full", Code: "CNAS"}))

	err := svc.CreateCollege(context.Background(), &models.College{Name: "Other Name", Code: "CNAS"})
	assert.ErrorIs(t, err, apperrors.ErrCollegeAlreadyExists)
}

func TestCollegeValidation(t *testing.T) {
	svc := NewCollegeService(newFakeCollegeRepo())

	err := svc.CreateCollege(context.Background(), &models.College{Name: "  ", Code: "CNAS"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	err = svc.CreateCollege(context.Background(), &models.College{Name: "CNAS Full", Code: ""})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCollegeUpdateNotFound(t *testing.T) {
	svc := NewCollegeService(newFakeCollegeRepo())

	err := svc.UpdateCollege(context.Background(), &models.College{ID: 99, Name: "X", Code: "Y"})
	assert.ErrorIs(t, err, apperrors.ErrCollegeNotFound)
}

func TestCollegeDelete(t *testing.T) {
	repo := newFakeCollegeRepo()
	svc := NewCollegeService(repo)

	college := &models.College{Name: "CNAS Full", Code: "CNAS"}
	require.NoError(t, svc.CreateCollege(context.Background(), college))

	require.NoError(t, svc.DeleteCollege(context.Background(), college.ID))
	assert.ErrorIs(t, svc.DeleteCollege(context.Background(), college.ID), apperrors.ErrCollegeNotFound)
}
