package courseValidator

import (
	"strings"

	"learnhub/validators"

	"github.com/gofiber/fiber/v2"
)

// CreateCourseRequest is the body of POST /courses. A client-supplied order is ignored; new
// courses are appended after their siblings.
type CreateCourseRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description"`
	CategoryID  uint   `json:"category_id" validate:"required,gt=0"`
	Order       *int   `json:"order"`
}

func (r *CreateCourseRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
}

type UpdateCourseRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description"`
	CategoryID  *uint   `json:"category_id" validate:"omitempty,gt=0"`
	Order       *int    `json:"order" validate:"omitempty,gte=0"`
}

func (r *UpdateCourseRequest) Normalize() {
	if r.Title != nil {
		*r.Title = strings.TrimSpace(*r.Title)
	}
	if r.Description != nil {
		*r.Description = strings.TrimSpace(*r.Description)
	}
}

// CreateCourse validates a course creation request
func CreateCourse() fiber.Handler {
	return validators.Body[CreateCourseRequest]("validatedCourse")
}

// UpdateCourse validates a partial course update
func UpdateCourse() fiber.Handler {
	return validators.Body[UpdateCourseRequest]("validatedCourseUpdate")
}
