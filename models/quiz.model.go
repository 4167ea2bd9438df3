package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	QuestionMultipleChoice = "multiple_choice"
	QuestionShortAnswer    = "short_answer"
)

// QuizChoice is one selectable answer of a multiple_choice question.
type QuizChoice struct {
	ID        int    `json:"id"`
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

type QuizQuestion struct {
	ID           int          `json:"id"`
	QuestionText string       `json:"question_text"`
	QuestionType string       `json:"question_type"`
	Choices      []QuizChoice `json:"choices,omitempty"`
}

// Quiz belongs to exactly one video; its questions are stored as a JSON document.
type Quiz struct {
	Model
	Title     string                            `json:"title"`
	VideoID   uint                              `json:"video_id" gorm:"not null;uniqueIndex"`
	Questions datatypes.JSONSlice[QuizQuestion] `json:"questions"`
	Video     *Video                            `json:"-" gorm:"foreignKey:VideoID;constraint:OnDelete:CASCADE"`
}

// QuizAttempt is one scored submission. Attempts are never updated.
type QuizAttempt struct {
	Model
	UserID      uint              `json:"user_id" gorm:"not null;index"`
	QuizID      uint              `json:"quiz_id" gorm:"not null;index"`
	Responses   datatypes.JSONMap `json:"responses"`
	Score       float64           `json:"score"`
	CompletedAt time.Time         `json:"completed_at"`
	User        *User             `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Quiz        *Quiz             `json:"-" gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE"`
}
