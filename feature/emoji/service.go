package emoji

import (
	"context"

	"unipick/feature/emoji/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles emoji catalog operations.
type Service struct {
	logger *zap.Logger
	db     *gorm.DB
}

// NewService creates a new emoji service.
func NewService(logger *zap.Logger, db *gorm.DB) *Service {
	return &Service{logger: logger, db: db}
}

// List returns the emoji browse listing, optionally filtered.
func (s *Service) List(ctx context.Context, group, subgroup string) ([]models.Listing, error) {
	return List(s.db.WithContext(ctx), group, subgroup)
}
