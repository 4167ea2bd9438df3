package progressValidator

import (
	"strconv"

	"learnhub/apierr"
	"learnhub/validators"

	"github.com/gofiber/fiber/v2"
)

type CourseProgressUpdate struct {
	CompletedUnits *int `json:"completed_units" validate:"required,gte=0"`
}

// VideoProgressUpdate carries the player state. Progress is a percentage of the video watched.
type VideoProgressUpdate struct {
	Progress     *float64 `json:"progress" validate:"required,gte=0,lte=100"`
	LastPosition *float64 `json:"last_position" validate:"required,gte=0"`
	Completed    *bool    `json:"completed"`
}

// UpdateCourseProgress accepts completed_units from the JSON body or, for older clients, from
// the query string.
func UpdateCourseProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CourseProgressUpdate)
		if raw := c.Query("completed_units"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil {
				return apierr.Validation("Validation failed!", map[string]string{"completed_units": "completed_units must be an integer!"})
			}
			reqData.CompletedUnits = &n
		} else if len(c.Body()) > 0 {
			if err := c.BodyParser(reqData); err != nil {
				return apierr.Validation("Invalid request body!", nil)
			}
		}
		if err := validators.Struct(reqData); err != nil {
			return err
		}
		c.Locals("validatedCourseProgress", reqData)
		return c.Next()
	}
}

func UpdateVideoProgress() fiber.Handler {
	return validators.Body[VideoProgressUpdate]("validatedVideoProgress")
}
