package videoValidator

import (
	"strings"

	"learnhub/validators"

	"github.com/gofiber/fiber/v2"
)

type CreateVideoRequest struct {
	Title           string                 `json:"title" validate:"required,max=255"`
	Description     string                 `json:"description"`
	UnitID          uint                   `json:"unit_id" validate:"required,gt=0"`
	URL             string                 `json:"url" validate:"required"`
	Order           *int                   `json:"order"`
	VideoMetadata   map[string]interface{} `json:"video_metadata"`
	DurationSeconds *int                   `json:"duration_seconds" validate:"omitempty,gte=0"`
	ThumbnailURL    *string                `json:"thumbnail_url"`
}

func (r *CreateVideoRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	r.URL = strings.TrimSpace(r.URL)
}

// UpdateVideoRequest is a partial update. VideoMetadata is merged into the stored map.
type UpdateVideoRequest struct {
	Title           *string                `json:"title" validate:"omitempty,min=1,max=255"`
	Description     *string                `json:"description"`
	UnitID          *uint                  `json:"unit_id" validate:"omitempty,gt=0"`
	URL             *string                `json:"url" validate:"omitempty,min=1"`
	Order           *int                   `json:"order" validate:"omitempty,gte=0"`
	VideoMetadata   map[string]interface{} `json:"video_metadata"`
	DurationSeconds *int                   `json:"duration_seconds" validate:"omitempty,gte=0"`
	ThumbnailURL    *string                `json:"thumbnail_url"`
}

func (r *UpdateVideoRequest) Normalize() {
	if r.Title != nil {
		*r.Title = strings.TrimSpace(*r.Title)
	}
	if r.URL != nil {
		*r.URL = strings.TrimSpace(*r.URL)
	}
}

func CreateVideo() fiber.Handler {
	return validators.Body[CreateVideoRequest]("validatedVideo")
}

func UpdateVideo() fiber.Handler {
	return validators.Body[UpdateVideoRequest]("validatedVideoUpdate")
}

// ReorderVideos validates [{"video_id": 1, "order": 3}, ...]
func ReorderVideos() fiber.Handler {
	return validators.Reorder("video_id")
}
