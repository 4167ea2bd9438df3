package routers

import (
	"strings"

	"learnhub/auth"
	"learnhub/config"
	authControllers "learnhub/controllers/auth"
	categoryController "learnhub/controllers/category"
	courseController "learnhub/controllers/course"
	progressController "learnhub/controllers/progress"
	quizController "learnhub/controllers/quiz"
	unitController "learnhub/controllers/unit"
	userController "learnhub/controllers/userControllers"
	videoController "learnhub/controllers/video"
	"learnhub/logger"
	"learnhub/middleware"
	"learnhub/routers/authRoutes"
	"learnhub/routers/categoryRoutes"
	"learnhub/routers/courseRoutes"
	"learnhub/routers/unitRoutes"
	"learnhub/routers/userRoutes"
	"learnhub/routers/videoRoutes"
	"learnhub/validators"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberLogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NewApp builds the Fiber application with the common middleware stack and every route.
func NewApp(db *gorm.DB, cfg *config.Config, log *logger.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "learnhub",
		ErrorHandler: middleware.ErrorHandler(log),
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator:  uuid.NewString,
		ContextKey: "requestid",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))
	if cfg.AppEnv != "test" {
		app.Use(fiberLogger.New(fiberLogger.Config{
			Format: "[${time}] ${ip} ${locals:requestid} ${method} ${path} ${status} ${latency}\n",
		}))
	}

	Setup(app, db, cfg, log)
	return app
}

// Setup registers every route group on app.
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config, log *logger.Logger) {
	issuer := auth.NewIssuer(cfg.JWTKey, cfg.AccessTokenTTL)
	authMiddleware := middleware.NewAuth(db, issuer)
	page := validators.Pagination(cfg.DefaultPageLimit, cfg.MaxPageLimit)
	progress := progressController.New(db, log)

	app.Get("/", func(c *fiber.Ctx) error {
		return middleware.MessageResponse(c, fiber.StatusOK, "Welcome to the learning platform API")
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.UserContext())
		}
		if err != nil {
			log.Warn("Health check failed", "error", err)
			return middleware.JsonResponse(c, fiber.StatusServiceUnavailable, fiber.Map{"status": "unavailable"})
		}
		return middleware.JsonResponse(c, fiber.StatusOK, fiber.Map{"status": "ok"})
	})

	authRoutes.SetupAuthRoutes(app, authControllers.New(db, issuer, cfg, log))
	categoryRoutes.SetupCategoryRoutes(app, categoryController.New(db, log), authMiddleware, page)
	courseRoutes.SetupCourseRoutes(app, courseController.New(db, log), progress, authMiddleware, page)
	unitRoutes.SetupUnitRoutes(app, unitController.New(db, log), authMiddleware, page)
	videoRoutes.SetupVideoRoutes(app, videoController.New(db, log), quizController.New(db, log), progress, authMiddleware, page)
	userRoutes.SetupUserRoutes(app, userController.New(db, cfg, log), authMiddleware, page)

	log.Info("Routes registered", "routes", len(app.GetRoutes(true)), "cors", strings.TrimSpace(cfg.CORSOrigins))
}
