package postgres

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// updateAllColumns persists every mapped column of values for the row with
// the given id, zero values included. A plain struct Updates would skip
// zero-valued fields, silently dropping e.g. a price reset to 0 or a cleared
// description. The id and created_at columns stay untouched.
func updateAllColumns(db *gorm.DB, blank any, id uuid.UUID, values any) *gorm.DB {
	return db.Model(blank).
		Where("id = ?", id).
		Select("*").
		Omit("id", "created_at").
		Updates(values)
}
