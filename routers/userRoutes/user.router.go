package userRoutes

import (
	userController "learnhub/controllers/userControllers"
	"learnhub/middleware"
	"learnhub/validators"
	userValidator "learnhub/validators/userValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App, ctl *userController.Controller, auth *middleware.Auth, page fiber.Handler) {
	userGroup := app.Group("/users", auth.Required)

	userGroup.Get("/me", ctl.Me)
	userGroup.Put("/me", userValidator.UpdateMe(), ctl.UpdateMe)

	userGroup.Get("/", middleware.Admin, page, ctl.List)
	userGroup.Post("/", middleware.Admin, userValidator.AdminCreateUser(), ctl.Create)
	userGroup.Get("/:id", middleware.Admin, validators.ID("id"), ctl.Get)
	userGroup.Put("/:id", middleware.Admin, validators.ID("id"), userValidator.AdminUpdateUser(), ctl.Update)
	userGroup.Delete("/:id", middleware.Admin, validators.ID("id"), ctl.Delete)
}
