package models

import "time"

// Model is the common primary key and timestamps. Rows are hard-deleted, so there is no DeletedAt.
type Model struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
