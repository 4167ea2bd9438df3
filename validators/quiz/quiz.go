package quizValidator

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"learnhub/apierr"
	"learnhub/models"
	"learnhub/validators"

	"github.com/gofiber/fiber/v2"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed quiz_schema.json
var quizSchemaJSON []byte

var quizSchema = mustSchema(quizSchemaJSON)

func mustSchema(raw []byte) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		panic(fmt.Sprintf("quiz schema: %v", err))
	}
	return schema
}

// QuizDefinition is the body of quiz create and replace requests.
type QuizDefinition struct {
	Title     string                `json:"title"`
	Questions []models.QuizQuestion `json:"questions"`
}

// AttemptRequest is a quiz submission. Responses map question ids to answers: a choice id for
// multiple_choice questions, free text for short_answer ones.
type AttemptRequest struct {
	QuizID    *uint                  `json:"quiz_id" validate:"omitempty,gt=0"`
	Responses map[string]interface{} `json:"responses" validate:"required"`
}

// Definition validates a quiz definition against the JSON schema and checks that question ids,
// and choice ids within a question, are unique.
func Definition() fiber.Handler {
	return func(c *fiber.Ctx) error {
		body := c.Body()
		if !json.Valid(body) {
			return apierr.Validation("Invalid request body!", nil)
		}

		result, err := quizSchema.Validate(gojsonschema.NewBytesLoader(body))
		if err != nil {
			return apierr.Validation("Invalid request body!", nil)
		}
		if !result.Valid() {
			errs := make(map[string]string)
			for _, re := range result.Errors() {
				errs[re.Field()] = re.Description()
			}
			return apierr.Validation("Validation failed!", errs)
		}

		reqData := new(QuizDefinition)
		if err := json.Unmarshal(body, reqData); err != nil {
			return apierr.Validation("Invalid request body!", nil)
		}
		reqData.Title = strings.TrimSpace(reqData.Title)
		if errs := checkIDs(reqData.Questions); len(errs) > 0 {
			return apierr.Validation("Validation failed!", errs)
		}

		c.Locals("validatedQuiz", reqData)
		return c.Next()
	}
}

func checkIDs(questions []models.QuizQuestion) map[string]string {
	errs := make(map[string]string)
	seen := make(map[int]bool, len(questions))
	for i, q := range questions {
		if seen[q.ID] {
			errs[fmt.Sprintf("questions.%d.id", i)] = fmt.Sprintf("Duplicate question id %d!", q.ID)
		}
		seen[q.ID] = true

		choiceSeen := make(map[int]bool, len(q.Choices))
		for j, ch := range q.Choices {
			if choiceSeen[ch.ID] {
				errs[fmt.Sprintf("questions.%d.choices.%d.id", i, j)] = fmt.Sprintf("Duplicate choice id %d!", ch.ID)
			}
			choiceSeen[ch.ID] = true
		}
	}
	return errs
}

func Attempt() fiber.Handler {
	return validators.Body[AttemptRequest]("validatedAttempt")
}
