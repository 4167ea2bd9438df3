package models

import "time"

// CourseProgress is one row per (user, course). TotalUnits is snapshotted when the row is created.
type CourseProgress struct {
	Model
	UserID             uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_course_progress_user_course"`
	CourseID           uint      `json:"course_id" gorm:"not null;uniqueIndex:idx_course_progress_user_course"`
	TotalUnits         int       `json:"total_units" gorm:"default:0"`
	CompletedUnits     int       `json:"completed_units" gorm:"default:0"`
	ProgressPercentage float64   `json:"progress_percentage" gorm:"default:0"`
	LastAccessed       time.Time `json:"last_accessed"`
	User               *User     `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Course             *Course   `json:"-" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}

// VideoProgress is one row per (user, video). Progress is stored exactly as the client reports it.
type VideoProgress struct {
	Model
	UserID       uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_video_progress_user_video"`
	VideoID      uint      `json:"video_id" gorm:"not null;uniqueIndex:idx_video_progress_user_video"`
	Progress     float64   `json:"progress" gorm:"default:0"`
	LastPosition float64   `json:"last_position" gorm:"default:0"`
	Completed    bool      `json:"completed" gorm:"default:false"`
	LastAccessed time.Time `json:"last_accessed"`
	User         *User     `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Video        *Video    `json:"-" gorm:"foreignKey:VideoID;constraint:OnDelete:CASCADE"`
}
