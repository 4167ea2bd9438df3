package unitValidator

import (
	"strings"

	"learnhub/validators"

	"github.com/gofiber/fiber/v2"
)

type CreateUnitRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description"`
	CourseID    uint   `json:"course_id" validate:"required,gt=0"`
	Order       *int   `json:"order"`
}

func (r *CreateUnitRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
}

type UpdateUnitRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description"`
	CourseID    *uint   `json:"course_id" validate:"omitempty,gt=0"`
	Order       *int    `json:"order" validate:"omitempty,gte=0"`
}

func (r *UpdateUnitRequest) Normalize() {
	if r.Title != nil {
		*r.Title = strings.TrimSpace(*r.Title)
	}
}

func CreateUnit() fiber.Handler {
	return validators.Body[CreateUnitRequest]("validatedUnit")
}

func UpdateUnit() fiber.Handler {
	return validators.Body[UpdateUnitRequest]("validatedUnitUpdate")
}

// ReorderUnits validates [{"unit_id": 1, "order": 3}, ...]
func ReorderUnits() fiber.Handler {
	return validators.Reorder("unit_id")
}
