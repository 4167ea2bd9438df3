package utils

import (
	"encoding/json"
	"testing"

	"learnhub/models"

	"github.com/stretchr/testify/assert"
)

func mcQuestion(id, correctID int) models.QuizQuestion {
	return models.QuizQuestion{
		ID:           id,
		QuestionText: "pick one",
		QuestionType: models.QuestionMultipleChoice,
		Choices: []models.QuizChoice{
			{ID: 1, Text: "a", IsCorrect: correctID == 1},
			{ID: 2, Text: "b", IsCorrect: correctID == 2},
			{ID: 3, Text: "c", IsCorrect: correctID == 3},
		},
	}
}

func shortQuestion(id int) models.QuizQuestion {
	return models.QuizQuestion{ID: id, QuestionText: "explain", QuestionType: models.QuestionShortAnswer}
}

func TestScoreQuiz(t *testing.T) {
	tests := []struct {
		name      string
		questions []models.QuizQuestion
		responses map[string]interface{}
		want      float64
	}{
		{
			name:      "no questions",
			questions: nil,
			responses: map[string]interface{}{"1": float64(1)},
			want:      0,
		},
		{
			name:      "single correct choice",
			questions: []models.QuizQuestion{mcQuestion(1, 2)},
			responses: map[string]interface{}{"1": float64(2)},
			want:      100,
		},
		{
			name:      "wrong choice",
			questions: []models.QuizQuestion{mcQuestion(1, 2)},
			responses: map[string]interface{}{"1": float64(3)},
			want:      0,
		},
		{
			name:      "unanswered questions still count",
			questions: []models.QuizQuestion{mcQuestion(1, 1), mcQuestion(2, 1), mcQuestion(3, 1), mcQuestion(4, 1)},
			responses: map[string]interface{}{"1": float64(1)},
			want:      25,
		},
		{
			name: "no choice flagged correct",
			questions: []models.QuizQuestion{{
				ID: 1, QuestionType: models.QuestionMultipleChoice,
				Choices: []models.QuizChoice{{ID: 1}, {ID: 2}},
			}},
			responses: map[string]interface{}{"1": float64(1)},
			want:      0,
		},
		{
			name:      "string choice id does not match",
			questions: []models.QuizQuestion{mcQuestion(1, 2)},
			responses: map[string]interface{}{"1": "2"},
			want:      0,
		},
		{
			name:      "json number choice id",
			questions: []models.QuizQuestion{mcQuestion(1, 2)},
			responses: map[string]interface{}{"1": json.Number("2")},
			want:      100,
		},
		{
			name:      "short answer presence only",
			questions: []models.QuizQuestion{shortQuestion(1), shortQuestion(2), shortQuestion(3)},
			responses: map[string]interface{}{"1": "anything", "2": "   ", "3": float64(7)},
			want:      100.0 / 3,
		},
		{
			name:      "mixed",
			questions: []models.QuizQuestion{mcQuestion(1, 3), shortQuestion(2)},
			responses: map[string]interface{}{"1": float64(3), "2": "because"},
			want:      100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ScoreQuiz(tt.questions, tt.responses), 1e-9)
		})
	}
}

func TestCoursePercentage(t *testing.T) {
	assert.Equal(t, 0.0, CoursePercentage(0, 0))
	assert.Equal(t, 0.0, CoursePercentage(3, 0))
	assert.Equal(t, 50.0, CoursePercentage(2, 4))
	assert.Equal(t, 100.0, CoursePercentage(4, 4))
}
