package videoRoutes

import (
	progressController "learnhub/controllers/progress"
	quizController "learnhub/controllers/quiz"
	videoController "learnhub/controllers/video"
	"learnhub/middleware"
	"learnhub/validators"
	progressValidator "learnhub/validators/progress"
	quizValidator "learnhub/validators/quiz"
	videoValidator "learnhub/validators/video"

	"github.com/gofiber/fiber/v2"
)

func SetupVideoRoutes(app *fiber.App, ctl *videoController.Controller, quiz *quizController.Controller, progress *progressController.Controller, auth *middleware.Auth, page fiber.Handler) {
	videoGroup := app.Group("/videos")

	videoGroup.Get("/", page, ctl.List)
	videoGroup.Get("/:id", validators.ID("id"), ctl.Get)
	videoGroup.Get("/:id/metadata", validators.ID("id"), ctl.Metadata)

	videoGroup.Post("/reorder", auth.Required, middleware.Admin, videoValidator.ReorderVideos(), ctl.Reorder)
	videoGroup.Post("/", auth.Required, middleware.Admin, videoValidator.CreateVideo(), ctl.Create)
	videoGroup.Put("/:id", auth.Required, middleware.Admin, validators.ID("id"), videoValidator.UpdateVideo(), ctl.Update)
	videoGroup.Delete("/:id", auth.Required, middleware.Admin, validators.ID("id"), ctl.Delete)

	// Quiz
	videoGroup.Get("/:id/quiz", auth.Required, validators.ID("id"), quiz.Get)
	videoGroup.Post("/:id/quiz/attempt", auth.Required, validators.ID("id"), quizValidator.Attempt(), quiz.Attempt)
	videoGroup.Get("/:id/quiz/attempts", auth.Required, validators.ID("id"), quiz.Attempts)
	videoGroup.Post("/:id/quiz", auth.Required, middleware.Admin, validators.ID("id"), quizValidator.Definition(), quiz.Create)
	videoGroup.Put("/:id/quiz", auth.Required, middleware.Admin, validators.ID("id"), quizValidator.Definition(), quiz.Update)
	videoGroup.Delete("/:id/quiz", auth.Required, middleware.Admin, validators.ID("id"), quiz.Delete)

	// Progress
	videoGroup.Get("/:id/progress", auth.Required, validators.ID("id"), progress.GetVideo)
	videoGroup.Put("/:id/progress", auth.Required, validators.ID("id"), progressValidator.UpdateVideoProgress(), progress.UpdateVideo)
}
