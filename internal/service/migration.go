package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aidar/event-planner/internal/metrics"
	"github.com/aidar/event-planner/internal/repository"
	"github.com/aidar/event-planner/internal/seed"
)

// SeedSource loads the dataset to migrate
type SeedSource func() (*seed.Data, error)

// MigrationService copies the seed dataset into the store
type MigrationService struct {
	seedRepo repository.SeedRepository
	source   SeedSource
	logger   *slog.Logger
}

// NewMigrationService creates a new MigrationService
func NewMigrationService(seedRepo repository.SeedRepository, source SeedSource, logger *slog.Logger) *MigrationService {
	return &MigrationService{
		seedRepo: seedRepo,
		source:   source,
		logger:   logger,
	}
}

// Migrate loads the dataset and imports it in one go.
// Re-running against an already seeded store fails; the import is atomic.
func (s *MigrationService) Migrate(ctx context.Context) (err error) {
	defer func() {
		metrics.RecordMigration(err)
	}()

	start := time.Now()

	data, err := s.source()
	if err != nil {
		return fmt.Errorf("failed to load seed data: %w", err)
	}

	if err := s.seedRepo.Import(ctx, data); err != nil {
		return fmt.Errorf("failed to import seed data: %w", err)
	}

	attrs := []any{"duration_ms", time.Since(start).Milliseconds()}
	for table, count := range data.Counts() {
		attrs = append(attrs, table, count)
	}
	s.logger.Info("Seed migration completed", attrs...)

	return nil
}
