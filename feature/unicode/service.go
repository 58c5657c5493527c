package unicode

import (
	"context"

	"unipick/feature/unicode/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles character registry operations.
type Service struct {
	logger *zap.Logger
	db     *gorm.DB
}

// NewService creates a new unicode service.
func NewService(logger *zap.Logger, db *gorm.DB) *Service {
	return &Service{logger: logger, db: db}
}

// List returns the full (code point, name) listing.
func (s *Service) List(ctx context.Context) ([]models.Listing, error) {
	return List(s.db.WithContext(ctx))
}

// Lookup fetches a single character by code point; nil when absent.
func (s *Service) Lookup(ctx context.Context, codePoint string) (*models.CharacterRow, error) {
	return Lookup(s.db.WithContext(ctx), codePoint)
}
