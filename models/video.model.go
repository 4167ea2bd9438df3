package models

import "gorm.io/datatypes"

// Video titles are unique within their unit.
type Video struct {
	Model
	Title           string            `json:"title" gorm:"not null;uniqueIndex:idx_videos_unit_title"`
	Description     string            `json:"description"`
	URL             string            `json:"url" gorm:"not null"`
	UnitID          uint              `json:"unit_id" gorm:"not null;index;uniqueIndex:idx_videos_unit_title"`
	Order           int               `json:"order" gorm:"default:0"`
	DurationSeconds *int              `json:"duration_seconds"`
	ThumbnailURL    *string           `json:"thumbnail_url"`
	VideoMetadata   datatypes.JSONMap `json:"video_metadata"`
	Unit            *Unit             `json:"-" gorm:"foreignKey:UnitID;constraint:OnDelete:CASCADE"`
}
