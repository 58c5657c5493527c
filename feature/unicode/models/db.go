package models

import "sort"

// CharacterRow represents the 'unicode_data' table.
//
// The table persists the registry subset the picker and browse surface need;
// the column names and order are an on-disk contract.
type CharacterRow struct {
	CodePoint        string `gorm:"column:code_point;primaryKey" json:"code_point"`
	Name             string `gorm:"column:name" json:"name"`
	GeneralCategory  string `gorm:"column:general_category" json:"general_category"`
	Decomposition    string `gorm:"column:decomposition" json:"decomposition"`
	NumericValue     string `gorm:"column:numeric_value" json:"numeric_value"`
	UppercaseMapping string `gorm:"column:uppercase_mapping" json:"uppercase_mapping"`
	LowercaseMapping string `gorm:"column:lowercase_mapping" json:"lowercase_mapping"`
	TitlecaseMapping string `gorm:"column:titlecase_mapping" json:"titlecase_mapping"`
}

// TableName overrides the table name.
func (CharacterRow) TableName() string {
	return "unicode_data"
}

// Rows converts the registry into table rows, ordered by code point for
// deterministic batches.
func (r Registry) Rows() []CharacterRow {
	keys := make([]string, 0, len(r))
	for cp := range r {
		keys = append(keys, cp)
	}
	sort.Strings(keys)

	rows := make([]CharacterRow, 0, len(r))
	for _, cp := range keys {
		c := r[cp]
		rows = append(rows, CharacterRow{
			CodePoint:        c.CodePoint,
			Name:             c.Name,
			GeneralCategory:  c.GeneralCategory,
			Decomposition:    c.Decomposition,
			NumericValue:     c.NumericValue,
			UppercaseMapping: c.UppercaseMapping,
			LowercaseMapping: c.LowercaseMapping,
			TitlecaseMapping: c.TitlecaseMapping,
		})
	}
	return rows
}
