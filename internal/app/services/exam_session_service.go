package services

import (
	"context"
	"fmt"

	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/app/models"
)

// ExamSessionService defines the interface for exam session reads
type ExamSessionService interface {
	GetAllExamSessions(ctx context.Context) ([]*models.ExamSession, error)
}

type examSessionRepository interface {
	GetAll(ctx context.Context) ([]*models.ExamSession, error)
}

type examSessionServiceImpl struct {
	examSessionRepo examSessionRepository
}

// NewExamSessionService creates a new exam session service instance
func NewExamSessionService(examSessionRepo examSessionRepository) ExamSessionService {
	return &examSessionServiceImpl{examSessionRepo: examSessionRepo}
}

// GetAllExamSessions retrieves every scheduled exam session
func (s *examSessionServiceImpl) GetAllExamSessions(ctx context.Context) ([]*models.ExamSession, error) {
	sessions, err := s.examSessionRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving exam sessions: %w", err)
	}
	return sessions, nil
}
