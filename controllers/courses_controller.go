package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/AmoolyaSuneja/EduStream/catalog"
	"github.com/AmoolyaSuneja/EduStream/middleware"
	"github.com/AmoolyaSuneja/EduStream/progress"
	"github.com/AmoolyaSuneja/EduStream/utils"
)

type CoursesController struct {
	Catalog  *catalog.Catalog
	Progress *progress.Service
}

func NewCoursesController(cat *catalog.Catalog, svc *progress.Service) *CoursesController {
	return &CoursesController{Catalog: cat, Progress: svc}
}

// GetCourses lists the catalog with the caller's completion percentage per
// course.
func (cc *CoursesController) GetCourses(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	result := make([]fiber.Map, 0, len(cc.Catalog.Courses()))
	for _, course := range cc.Catalog.Courses() {
		result = append(result, fiber.Map{
			"id":          course.ID,
			"title":       course.Title,
			"description": course.Description,
			"instructor":  course.Instructor,
			"duration":    course.Duration,
			"level":       course.Level,
			"thumbnail":   course.Thumbnail,
			"enrolled":    course.Enrolled,
			"lessons":     len(course.Lessons),
			"progress":    cc.Progress.CourseProgress(c.Context(), userID, course.ID),
		})
	}
	return c.JSON(result)
}

func (cc *CoursesController) GetCourseDetails(c *fiber.Ctx) error {
	course, ok := cc.Catalog.FindCourse(c.Params("id"))
	if !ok {
		return utils.NotFound(c, "Course not found")
	}

	return c.JSON(fiber.Map{
		"course":   course,
		"progress": cc.Progress.CourseProgress(c.Context(), middleware.UserID(c), course.ID),
	})
}

func (cc *CoursesController) GetLessonDetails(c *fiber.Ctx) error {
	lesson, ok := cc.Catalog.FindLesson(c.Params("id"), c.Params("lessonId"))
	if !ok {
		return utils.NotFound(c, "Lesson not found")
	}

	hasQuiz := lesson.Quiz != nil && len(lesson.Quiz.Questions) > 0
	// The quiz (with answers) is served by the quiz endpoints only.
	lesson.Quiz = nil

	return c.JSON(fiber.Map{
		"lesson":  lesson,
		"hasQuiz": hasQuiz,
	})
}
