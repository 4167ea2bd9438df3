package categoryRoutes

import (
	categoryController "learnhub/controllers/category"
	"learnhub/middleware"
	"learnhub/validators"
	categoryValidator "learnhub/validators/category"

	"github.com/gofiber/fiber/v2"
)

func SetupCategoryRoutes(app *fiber.App, ctl *categoryController.Controller, auth *middleware.Auth, page fiber.Handler) {
	categoryGroup := app.Group("/categories")

	categoryGroup.Get("/", page, ctl.List)
	// Registered before /:id so "progress" is not taken for an id.
	categoryGroup.Get("/progress", auth.Required, ctl.Progress)
	categoryGroup.Get("/:id", validators.ID("id"), ctl.Get)
	categoryGroup.Get("/:id/courses", validators.ID("id"), ctl.Courses)

	categoryGroup.Post("/", auth.Required, middleware.Admin, categoryValidator.CreateCategory(), ctl.Create)
	categoryGroup.Put("/:id", auth.Required, middleware.Admin, validators.ID("id"), categoryValidator.UpdateCategory(), ctl.Update)
	categoryGroup.Delete("/:id", auth.Required, middleware.Admin, validators.ID("id"), ctl.Delete)
}
