package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/AmoolyaSuneja/EduStream/catalog"
	"github.com/AmoolyaSuneja/EduStream/middleware"
	"github.com/AmoolyaSuneja/EduStream/progress"
	"github.com/AmoolyaSuneja/EduStream/utils"
)

type ProgressController struct {
	Catalog  *catalog.Catalog
	Progress *progress.Service
}

func NewProgressController(cat *catalog.Catalog, svc *progress.Service) *ProgressController {
	return &ProgressController{Catalog: cat, Progress: svc}
}

func (pc *ProgressController) GetProgress(c *fiber.Ctx) error {
	records := pc.Progress.Progress(c.Context(), middleware.UserID(c))
	return c.JSON(fiber.Map{"progress": records})
}

func (pc *ProgressController) GetQuizResults(c *fiber.Ctx) error {
	results := pc.Progress.QuizResults(c.Context(), middleware.UserID(c))
	return c.JSON(fiber.Map{"quizResults": results})
}

func (pc *ProgressController) GetOverallStats(c *fiber.Ctx) error {
	stats := pc.Progress.OverallStats(c.Context(), middleware.UserID(c))
	return c.JSON(stats)
}

func (pc *ProgressController) GetCourseAnalytics(c *fiber.Ctx) error {
	analytics := pc.Progress.CourseAnalytics(c.Context(), middleware.UserID(c))
	return c.JSON(fiber.Map{"courses": analytics})
}

func (pc *ProgressController) MarkLessonComplete(c *fiber.Ctx) error {
	courseID := c.Params("id")
	lessonID := c.Params("lessonId")
	if _, ok := pc.Catalog.FindLesson(courseID, lessonID); !ok {
		return utils.NotFound(c, "Lesson not found")
	}

	userID := middleware.UserID(c)
	if err := pc.Progress.MarkLessonComplete(c.Context(), userID, courseID, lessonID); err != nil {
		return utils.InternalServerError(c, "Could not save progress")
	}
	return c.JSON(fiber.Map{
		"message":        "Lesson marked complete",
		"courseProgress": pc.Progress.CourseProgress(c.Context(), userID, courseID),
	})
}

type videoProgressInput struct {
	LastWatched int64 `json:"lastWatched"`
}

func (pc *ProgressController) UpdateVideoProgress(c *fiber.Ctx) error {
	courseID := c.Params("id")
	lessonID := c.Params("lessonId")
	if _, ok := pc.Catalog.FindLesson(courseID, lessonID); !ok {
		return utils.NotFound(c, "Lesson not found")
	}

	var input videoProgressInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	userID := middleware.UserID(c)
	if err := pc.Progress.UpdateVideoProgress(c.Context(), userID, courseID, lessonID, input.LastWatched); err != nil {
		return utils.InternalServerError(c, "Could not save progress")
	}
	return c.JSON(fiber.Map{"message": "Progress updated"})
}
