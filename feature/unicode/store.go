package unicode

import (
	"errors"
	"fmt"

	"unipick/feature/unicode/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// insertBatchSize keeps multi-row inserts inside sqlite's bind variable limit.
const insertBatchSize = 100

// Migrate creates the unicode_data table if it is absent.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.CharacterRow{}); err != nil {
		return fmt.Errorf("failed to migrate unicode_data table: %w", err)
	}
	return nil
}

// Upsert writes one row per registry record, keyed by code point.
// Existing rows for the same code point are updated in place.
func Upsert(db *gorm.DB, reg models.Registry) error {
	rows := reg.Rows()
	if len(rows) == 0 {
		return nil
	}

	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "code_point"}},
		UpdateAll: true,
	}).CreateInBatches(rows, insertBatchSize).Error
	if err != nil {
		return fmt.Errorf("failed to upsert unicode rows: %w", err)
	}
	return nil
}

// List returns (code point, name) for every registry row, ordered by code
// point.
func List(db *gorm.DB) ([]models.Listing, error) {
	var listings []models.Listing
	err := db.Model(&models.CharacterRow{}).
		Select("code_point", "name").
		Order("code_point").
		Find(&listings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query unicode data: %w", err)
	}
	return listings, nil
}

// Lookup fetches a single character row by code point.
// It returns nil when the code point is not in the store.
func Lookup(db *gorm.DB, codePoint string) (*models.CharacterRow, error) {
	var row models.CharacterRow
	err := db.Where("code_point = ?", codePoint).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up code point %s: %w", codePoint, err)
	}
	return &row, nil
}
