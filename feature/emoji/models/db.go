package models

import "strings"

// EmojiRow represents the 'emojis' table.
//
// The column set and order are an on-disk contract other tools may depend on:
// no surrogate primary key is added. Rows are replaced wholesale on every
// ingest, so the table never accumulates duplicates across runs.
type EmojiRow struct {
	GroupName    string `gorm:"column:group_name"`
	SubgroupName string `gorm:"column:subgroup_name"`
	Codepoints   string `gorm:"column:codepoints"`
	Status       string `gorm:"column:status"`
	Emoji        string `gorm:"column:emoji"`
	Name         string `gorm:"column:name"`
}

// TableName overrides the table name.
func (EmojiRow) TableName() string {
	return "emojis"
}

// Rows flattens the catalog into table rows in section order.
// Code points are joined by a single space.
func (c *Catalog) Rows() []EmojiRow {
	rows := make([]EmojiRow, 0, c.EntryCount())
	for _, g := range c.Groups {
		for _, sg := range g.Subgroups {
			for _, e := range sg.Entries {
				rows = append(rows, EmojiRow{
					GroupName:    g.Name,
					SubgroupName: sg.Name,
					Codepoints:   strings.Join(e.Codepoints, " "),
					Status:       e.Status,
					Emoji:        e.Emoji,
					Name:         e.Name,
				})
			}
		}
	}
	return rows
}
