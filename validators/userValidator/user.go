package userValidator

import (
	"strings"

	"learnhub/validators"

	"github.com/gofiber/fiber/v2"
)

// UpdateMeRequest is what a user may change on their own account.
type UpdateMeRequest struct {
	Email    *string `json:"email" validate:"omitempty,email"`
	FullName *string `json:"full_name" validate:"omitempty,max=255"`
	Password *string `json:"password" validate:"omitempty,min=6,max=72"`
}

func (r *UpdateMeRequest) Normalize() {
	if r.Email != nil {
		*r.Email = strings.ToLower(strings.TrimSpace(*r.Email))
	}
	if r.FullName != nil {
		*r.FullName = strings.TrimSpace(*r.FullName)
	}
}

// AdminUpdateUserRequest additionally lets an admin toggle the account flags.
type AdminUpdateUserRequest struct {
	UpdateMeRequest
	IsActive *bool `json:"is_active"`
	IsAdmin  *bool `json:"is_admin"`
}

type AdminCreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	FullName string `json:"full_name" validate:"max=255"`
	IsActive *bool  `json:"is_active"`
	IsAdmin  bool   `json:"is_admin"`
}

func (r *AdminCreateUserRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.FullName = strings.TrimSpace(r.FullName)
}

func UpdateMe() fiber.Handler {
	return validators.Body[UpdateMeRequest]("validatedUserUpdate")
}

func AdminUpdateUser() fiber.Handler {
	return validators.Body[AdminUpdateUserRequest]("validatedAdminUserUpdate")
}

func AdminCreateUser() fiber.Handler {
	return validators.Body[AdminCreateUserRequest]("validatedAdminUserCreate")
}
