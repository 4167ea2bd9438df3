package utils

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"learnhub/models"
)

// ScoreQuiz grades responses (question id → answer) against questions and returns a percentage.
//
// Every question counts toward the total, answered or not. A multiple_choice question is correct
// when the answer equals the id of its first choice flagged correct; a short_answer question is
// correct when the answer is a non-blank string. A quiz without questions scores 0.
func ScoreQuiz(questions []models.QuizQuestion, responses map[string]interface{}) float64 {
	total := len(questions)
	if total == 0 {
		return 0
	}

	correct := 0
	for _, q := range questions {
		answer, ok := responses[strconv.Itoa(q.ID)]
		if !ok {
			continue
		}
		switch q.QuestionType {
		case models.QuestionMultipleChoice:
			if choiceID, ok := correctChoice(q.Choices); ok && sameChoice(answer, choiceID) {
				correct++
			}
		default:
			if s, ok := answer.(string); ok && strings.TrimSpace(s) != "" {
				correct++
			}
		}
	}

	return float64(correct) / float64(total) * 100
}

func correctChoice(choices []models.QuizChoice) (int, bool) {
	for _, c := range choices {
		if c.IsCorrect {
			return c.ID, true
		}
	}
	return 0, false
}

// sameChoice compares a decoded JSON answer with a choice id. Only numeric answers can match.
func sameChoice(answer interface{}, choiceID int) bool {
	var f float64
	switch v := answer.(type) {
	case float64:
		f = v
	case int:
		f = float64(v)
	case int64:
		f = float64(v)
	case json.Number:
		n, err := v.Float64()
		if err != nil {
			return false
		}
		f = n
	default:
		return false
	}
	return !math.IsNaN(f) && f == float64(choiceID)
}
