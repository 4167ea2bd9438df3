package courseRoutes

import (
	courseController "learnhub/controllers/course"
	progressController "learnhub/controllers/progress"
	"learnhub/middleware"
	"learnhub/validators"
	courseValidator "learnhub/validators/course"
	progressValidator "learnhub/validators/progress"

	"github.com/gofiber/fiber/v2"
)

func SetupCourseRoutes(app *fiber.App, ctl *courseController.Controller, progress *progressController.Controller, auth *middleware.Auth, page fiber.Handler) {
	courseGroup := app.Group("/courses")

	courseGroup.Get("/", page, ctl.List)
	courseGroup.Get("/:id", validators.ID("id"), ctl.Get)
	courseGroup.Get("/:id/units", validators.ID("id"), ctl.Units)

	courseGroup.Post("/", auth.Required, middleware.Admin, courseValidator.CreateCourse(), ctl.Create)
	courseGroup.Put("/:id", auth.Required, middleware.Admin, validators.ID("id"), courseValidator.UpdateCourse(), ctl.Update)
	courseGroup.Delete("/:id", auth.Required, middleware.Admin, validators.ID("id"), ctl.Delete)

	// Progress
	courseGroup.Get("/:id/progress", auth.Required, validators.ID("id"), progress.GetCourse)
	courseGroup.Put("/:id/progress", auth.Required, validators.ID("id"), progressValidator.UpdateCourseProgress(), progress.UpdateCourse)
}
