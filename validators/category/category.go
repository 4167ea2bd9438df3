package categoryValidator

import (
	"strings"

	"learnhub/validators"

	"github.com/gofiber/fiber/v2"
)

type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description"`
}

func (r *CreateCategoryRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = strings.TrimSpace(r.Description)
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description"`
}

func (r *UpdateCategoryRequest) Normalize() {
	trim(r.Name)
	trim(r.Description)
}

func trim(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}

// CreateCategory validates a category creation request
func CreateCategory() fiber.Handler {
	return validators.Body[CreateCategoryRequest]("validatedCategory")
}

// UpdateCategory validates a partial category update
func UpdateCategory() fiber.Handler {
	return validators.Body[UpdateCategoryRequest]("validatedCategoryUpdate")
}
