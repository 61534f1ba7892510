// Package quiz grades answer selections against a lesson's question list.
// Grading is a pure function of its inputs: the same selections always
// produce the same result, whether graded for display or for persistence.
package quiz

import (
	"errors"
	"math"

	"github.com/AmoolyaSuneja/EduStream/models"
)

// PassingScore is the display-only pass threshold; it plays no part in
// grading itself.
const PassingScore = 70

// ErrNoQuestions is returned when grading is invoked on an empty question
// list. Callers must treat "no questions" as "no quiz" and not reach here.
var ErrNoQuestions = errors.New("quiz: no questions to grade")

// unanswered marks questions with no entry in the selection map.
const unanswered = -1

// Result is the graded outcome of one quiz attempt.
type Result struct {
	Score          int                 `json:"score"` // 0-100, rounded
	CorrectAnswers int                 `json:"correctAnswers"`
	TotalQuestions int                 `json:"totalQuestions"`
	Answers        []models.QuizAnswer `json:"answers"`
}

// Passed reports whether the score meets the pass threshold.
func (r Result) Passed() bool { return r.Score >= PassingScore }

// Grade scores the selections against the questions. Selections map a
// question id to the chosen option index; questions without an entry are
// unanswered and always graded incorrect, with the recorded selection
// normalized to 0 for display.
func Grade(questions []models.Question, selections map[string]int) (Result, error) {
	if len(questions) == 0 {
		return Result{}, ErrNoQuestions
	}

	correct := 0
	answers := make([]models.QuizAnswer, 0, len(questions))
	for _, question := range questions {
		selected, ok := selections[question.ID]
		if !ok {
			selected = unanswered
		}
		isCorrect := selected == question.CorrectAnswer
		if isCorrect {
			correct++
		}
		displayed := selected
		if displayed < 0 {
			displayed = 0
		}
		answers = append(answers, models.QuizAnswer{
			QuestionID:     question.ID,
			SelectedAnswer: displayed,
			Correct:        isCorrect,
		})
	}

	score := int(math.Round(float64(correct) / float64(len(questions)) * 100))
	return Result{
		Score:          score,
		CorrectAnswers: correct,
		TotalQuestions: len(questions),
		Answers:        answers,
	}, nil
}
