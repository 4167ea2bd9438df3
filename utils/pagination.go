package utils

import "gorm.io/gorm"

// Paginate applies an offset/limit window to a query.
func Paginate(skip, limit int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(skip).Limit(limit)
	}
}
