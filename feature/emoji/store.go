package emoji

import (
	"fmt"

	"unipick/feature/emoji/models"

	"gorm.io/gorm"
)

// insertBatchSize keeps multi-row inserts inside sqlite's bind variable limit.
const insertBatchSize = 100

// Migrate creates the emojis table if it is absent.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.EmojiRow{}); err != nil {
		return fmt.Errorf("failed to migrate emojis table: %w", err)
	}
	return nil
}

// Replace clears the emojis table and inserts one row per catalog entry.
//
// The table has no primary key, so a plain insert would silently duplicate
// rows on every re-run; clearing first keeps ingestion idempotent. Callers
// run this inside the ingest transaction so a mid-batch failure rolls the
// clear back too.
func Replace(db *gorm.DB, c *models.Catalog) error {
	if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.EmojiRow{}).Error; err != nil {
		return fmt.Errorf("failed to clear emojis table: %w", err)
	}

	rows := c.Rows()
	if len(rows) == 0 {
		return nil
	}
	if err := db.CreateInBatches(rows, insertBatchSize).Error; err != nil {
		return fmt.Errorf("failed to insert emoji rows: %w", err)
	}
	return nil
}

// List returns the browse listing, optionally filtered by group and subgroup.
// Rows come back in insertion order, which follows the section order of the
// source file.
func List(db *gorm.DB, group, subgroup string) ([]models.Listing, error) {
	q := db.Model(&models.EmojiRow{}).
		Select("group_name", "subgroup_name", "emoji", "name")
	if group != "" {
		q = q.Where("group_name = ?", group)
	}
	if subgroup != "" {
		q = q.Where("subgroup_name = ?", subgroup)
	}

	var listings []models.Listing
	if err := q.Find(&listings).Error; err != nil {
		return nil, fmt.Errorf("failed to query emojis: %w", err)
	}
	return listings, nil
}
