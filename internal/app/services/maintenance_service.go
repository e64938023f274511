package services

import (
	"context"
	"fmt"

	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/pkg/logger"
)

// MaintenanceService defines administrative housekeeping operations
type MaintenanceService interface {
	// EndOfYearCleanup removes all scheduled exam sessions in a single
	// transaction and reports how many were deleted.
	EndOfYearCleanup(ctx context.Context) (int64, error)
}

type examSessionCleaner interface {
	DeleteAll(ctx context.Context) (int64, error)
}

type maintenanceServiceImpl struct {
	examSessionRepo examSessionCleaner
}

// NewMaintenanceService creates a new maintenance service instance
func NewMaintenanceService(examSessionRepo examSessionCleaner) MaintenanceService {
	return &maintenanceServiceImpl{examSessionRepo: examSessionRepo}
}

func (s *maintenanceServiceImpl) EndOfYearCleanup(ctx context.Context) (int64, error) {
	removed, err := s.examSessionRepo.DeleteAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("error running end-of-year cleanup: %w", err)
	}

	logger.Info().Int64("examSessionsRemoved", removed).Msg("End-of-year cleanup completed")
	return removed, nil
}
