package quizController

import (
	"errors"
	"time"

	"learnhub/apierr"
	"learnhub/logger"
	"learnhub/middleware"
	"learnhub/models"
	"learnhub/utils"
	"learnhub/validators"
	quizValidator "learnhub/validators/quiz"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Controller struct {
	db  *gorm.DB
	log *logger.Logger
	now func() time.Time
}

func New(db *gorm.DB, log *logger.Logger) *Controller {
	return &Controller{db: db, log: log.With("component", "quiz"), now: time.Now}
}

// ChoiceView hides is_correct from learners.
type ChoiceView struct {
	ID        int    `json:"id"`
	Text      string `json:"text"`
	IsCorrect *bool  `json:"is_correct,omitempty"`
}

type QuestionView struct {
	ID           int          `json:"id"`
	QuestionText string       `json:"question_text"`
	QuestionType string       `json:"question_type"`
	Choices      []ChoiceView `json:"choices,omitempty"`
}

type QuizView struct {
	ID        uint           `json:"id"`
	Title     string         `json:"title"`
	VideoID   uint           `json:"video_id"`
	Questions []QuestionView `json:"questions"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func viewOf(quiz *models.Quiz, withAnswers bool) QuizView {
	view := QuizView{
		ID:        quiz.ID,
		Title:     quiz.Title,
		VideoID:   quiz.VideoID,
		Questions: make([]QuestionView, 0, len(quiz.Questions)),
		CreatedAt: quiz.CreatedAt,
		UpdatedAt: quiz.UpdatedAt,
	}
	for _, q := range quiz.Questions {
		qv := QuestionView{ID: q.ID, QuestionText: q.QuestionText, QuestionType: q.QuestionType}
		for _, ch := range q.Choices {
			cv := ChoiceView{ID: ch.ID, Text: ch.Text}
			if withAnswers {
				correct := ch.IsCorrect
				cv.IsCorrect = &correct
			}
			qv.Choices = append(qv.Choices, cv)
		}
		view.Questions = append(view.Questions, qv)
	}
	return view
}

func findQuiz(tx *gorm.DB, videoID uint) (*models.Quiz, error) {
	var quiz models.Quiz
	if err := tx.Where("video_id = ?", videoID).First(&quiz).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound("Quiz not found")
		}
		return nil, apierr.Internal(err)
	}
	return &quiz, nil
}

func (ctl *Controller) Get(c *fiber.Ctx) error {
	quiz, err := findQuiz(ctl.db.WithContext(c.UserContext()), validators.IDParam(c, "id"))
	if err != nil {
		return err
	}
	user := middleware.CurrentUser(c)
	return middleware.JsonResponse(c, fiber.StatusOK, viewOf(quiz, user != nil && user.IsAdmin))
}

// Attempt scores a submission against the video's quiz and stores it.
func (ctl *Controller) Attempt(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	reqData := validators.Get[quizValidator.AttemptRequest](c, "validatedAttempt")
	db := ctl.db.WithContext(c.UserContext())

	quiz, err := findQuiz(db, validators.IDParam(c, "id"))
	if err != nil {
		return err
	}
	if reqData.QuizID != nil && *reqData.QuizID != quiz.ID {
		return apierr.Validation("Validation failed!", map[string]string{
			"quiz_id": "quiz_id does not belong to this video!",
		})
	}

	attempt := models.QuizAttempt{
		UserID:      user.ID,
		QuizID:      quiz.ID,
		Responses:   datatypes.JSONMap(reqData.Responses),
		Score:       utils.ScoreQuiz(quiz.Questions, reqData.Responses),
		CompletedAt: ctl.now(),
	}
	if err := db.Create(&attempt).Error; err != nil {
		return apierr.FromDB(err, "", "Quiz not found")
	}

	ctl.log.Info("Quiz attempt recorded", "user_id", user.ID, "quiz_id", quiz.ID, "score", attempt.Score)
	return middleware.JsonResponse(c, fiber.StatusOK, attempt)
}

// Attempts lists the caller's own attempts at the video's quiz, newest first.
func (ctl *Controller) Attempts(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	db := ctl.db.WithContext(c.UserContext())

	quiz, err := findQuiz(db, validators.IDParam(c, "id"))
	if err != nil {
		return err
	}

	attempts := []models.QuizAttempt{}
	err = db.Where("quiz_id = ? AND user_id = ?", quiz.ID, user.ID).
		Order("completed_at DESC").Order("id DESC").
		Find(&attempts).Error
	if err != nil {
		return apierr.Internal(err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, attempts)
}

func (ctl *Controller) Create(c *fiber.Ctx) error {
	reqData := validators.Get[quizValidator.QuizDefinition](c, "validatedQuiz")
	videoID := validators.IDParam(c, "id")

	var quiz models.Quiz
	err := ctl.db.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Video{}).Where("id = ?", videoID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return apierr.NotFound("Video not found")
		}
		if err := tx.Model(&models.Quiz{}).Where("video_id = ?", videoID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return apierr.Conflict("Video already has a quiz")
		}

		quiz = models.Quiz{Title: reqData.Title, VideoID: videoID, Questions: reqData.Questions}
		return tx.Create(&quiz).Error
	})
	if err != nil {
		return apierr.FromDB(err, "Video already has a quiz", "Video not found")
	}

	ctl.log.Info("Quiz created", "quiz_id", quiz.ID, "video_id", videoID)
	return middleware.JsonResponse(c, fiber.StatusCreated, viewOf(&quiz, true))
}

// Update replaces the title and questions. Earlier attempts keep the score they were given.
func (ctl *Controller) Update(c *fiber.Ctx) error {
	reqData := validators.Get[quizValidator.QuizDefinition](c, "validatedQuiz")
	db := ctl.db.WithContext(c.UserContext())

	quiz, err := findQuiz(db, validators.IDParam(c, "id"))
	if err != nil {
		return err
	}
	quiz.Title = reqData.Title
	quiz.Questions = reqData.Questions
	if err := db.Save(quiz).Error; err != nil {
		return apierr.FromDB(err, "", "Quiz not found")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, viewOf(quiz, true))
}

func (ctl *Controller) Delete(c *fiber.Ctx) error {
	db := ctl.db.WithContext(c.UserContext())

	quiz, err := findQuiz(db, validators.IDParam(c, "id"))
	if err != nil {
		return err
	}
	if err := db.Delete(&models.Quiz{}, quiz.ID).Error; err != nil {
		return apierr.FromDB(err, "", "Quiz not found")
	}

	ctl.log.Info("Quiz deleted", "quiz_id", quiz.ID)
	return middleware.JsonResponse(c, fiber.StatusOK, viewOf(quiz, true))
}
