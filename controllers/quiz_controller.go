package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/AmoolyaSuneja/EduStream/catalog"
	"github.com/AmoolyaSuneja/EduStream/middleware"
	"github.com/AmoolyaSuneja/EduStream/models"
	"github.com/AmoolyaSuneja/EduStream/progress"
	"github.com/AmoolyaSuneja/EduStream/quiz"
	"github.com/AmoolyaSuneja/EduStream/utils"
)

type QuizController struct {
	Catalog  *catalog.Catalog
	Progress *progress.Service
}

func NewQuizController(cat *catalog.Catalog, svc *progress.Service) *QuizController {
	return &QuizController{Catalog: cat, Progress: svc}
}

// GetLessonQuiz returns the quiz questions with the correct answers and
// explanations stripped; those are only revealed by a submission.
func (qc *QuizController) GetLessonQuiz(c *fiber.Ctx) error {
	lesson, ok := qc.Catalog.FindLesson(c.Params("id"), c.Params("lessonId"))
	if !ok {
		return utils.NotFound(c, "Lesson not found")
	}
	if lesson.Quiz == nil || len(lesson.Quiz.Questions) == 0 {
		return utils.NotFound(c, "No quiz available for this lesson")
	}

	questions := lesson.Quiz.Questions
	public := make([]fiber.Map, 0, len(questions))
	for _, question := range questions {
		public = append(public, fiber.Map{
			"id":       question.ID,
			"question": question.Question,
			"options":  question.Options,
		})
	}
	return c.JSON(fiber.Map{
		"questions":      public,
		"totalQuestions": len(questions),
		"passingScore":   quiz.PassingScore,
	})
}

type quizSubmission struct {
	// Answers maps question id to the selected option index. Questions
	// without an entry count as unanswered.
	Answers map[string]int `json:"answers"`
}

// SubmitQuiz grades the submission, persists the result and responds with
// the per-question breakdown including the correct answers. A lesson
// without questions has no quiz; grading is never invoked for it.
func (qc *QuizController) SubmitQuiz(c *fiber.Ctx) error {
	lesson, ok := qc.Catalog.FindLesson(c.Params("id"), c.Params("lessonId"))
	if !ok {
		return utils.NotFound(c, "Lesson not found")
	}
	if lesson.Quiz == nil || len(lesson.Quiz.Questions) == 0 {
		return utils.NotFound(c, "No quiz available for this lesson")
	}

	var submission quizSubmission
	if err := c.BodyParser(&submission); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	questions := lesson.Quiz.Questions
	result, err := quiz.Grade(questions, submission.Answers)
	if err != nil {
		// Unreachable behind the guard above; kept as a hard stop.
		return utils.BadRequest(c, "Quiz has no questions")
	}

	userID := middleware.UserID(c)
	stored := models.QuizResult{
		LessonID:       lesson.ID,
		Score:          result.Score,
		TotalQuestions: result.TotalQuestions,
		Answers:        result.Answers,
		CompletedAt:    time.Now().UTC(),
	}
	if err := qc.Progress.SaveQuizResult(c.Context(), userID, stored); err != nil {
		return utils.InternalServerError(c, "Could not save quiz result")
	}

	breakdown := make([]fiber.Map, 0, len(questions))
	for i, question := range questions {
		breakdown = append(breakdown, fiber.Map{
			"questionId":     question.ID,
			"selectedAnswer": result.Answers[i].SelectedAnswer,
			"correct":        result.Answers[i].Correct,
			"correctAnswer":  question.CorrectAnswer,
			"explanation":    question.Explanation,
		})
	}
	return c.JSON(fiber.Map{
		"score":          result.Score,
		"correctAnswers": result.CorrectAnswers,
		"totalQuestions": result.TotalQuestions,
		"passed":         result.Passed(),
		"answers":        breakdown,
	})
}
