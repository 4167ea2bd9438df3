package authRoutes

import (
	authControllers "learnhub/controllers/auth"
	authValidators "learnhub/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App, ctl *authControllers.Controller) {
	authGroup := app.Group("/auth")

	authGroup.Post("/token", authValidators.Login(), ctl.Token)
	authGroup.Post("/register", authValidators.Register(), ctl.Register)
}
