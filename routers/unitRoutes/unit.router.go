package unitRoutes

import (
	unitController "learnhub/controllers/unit"
	"learnhub/middleware"
	"learnhub/validators"
	unitValidator "learnhub/validators/unit"

	"github.com/gofiber/fiber/v2"
)

func SetupUnitRoutes(app *fiber.App, ctl *unitController.Controller, auth *middleware.Auth, page fiber.Handler) {
	unitGroup := app.Group("/units")

	unitGroup.Get("/", page, ctl.List)
	unitGroup.Get("/:id", validators.ID("id"), ctl.Get)
	unitGroup.Get("/:id/videos", validators.ID("id"), ctl.Videos)

	unitGroup.Post("/reorder", auth.Required, middleware.Admin, unitValidator.ReorderUnits(), ctl.Reorder)
	unitGroup.Post("/", auth.Required, middleware.Admin, unitValidator.CreateUnit(), ctl.Create)
	unitGroup.Put("/:id", auth.Required, middleware.Admin, validators.ID("id"), unitValidator.UpdateUnit(), ctl.Update)
	unitGroup.Delete("/:id", auth.Required, middleware.Admin, validators.ID("id"), ctl.Delete)
}
