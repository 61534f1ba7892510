package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/AmoolyaSuneja/EduStream/catalog"
	"github.com/AmoolyaSuneja/EduStream/config"
	"github.com/AmoolyaSuneja/EduStream/controllers"
	"github.com/AmoolyaSuneja/EduStream/feedback"
	"github.com/AmoolyaSuneja/EduStream/middleware"
	"github.com/AmoolyaSuneja/EduStream/progress"
	"github.com/AmoolyaSuneja/EduStream/storage"
	"github.com/AmoolyaSuneja/EduStream/users"
)

func SetupRoutes(app *fiber.App, store storage.Store, cat *catalog.Catalog, cfg *config.Config) {
	progressService := progress.NewService(store, cat)
	userService := users.NewService(store)
	feedbackService := feedback.NewService(store)

	// Auth routes
	authController := controllers.NewAuthController(userService, cfg)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)

	// Middleware
	identity := middleware.IdentityMiddleware(cfg)
	authRequired := middleware.AuthMiddleware(cfg)

	// User routes
	app.Get("/api/user/profile", authRequired, authController.GetProfile)
	app.Put("/api/user/profile", authRequired, authController.UpdateProfile)

	// Courses routes; anonymous callers get the sentinel namespace
	coursesController := controllers.NewCoursesController(cat, progressService)
	quizController := controllers.NewQuizController(cat, progressService)
	progressController := controllers.NewProgressController(cat, progressService)

	courses := app.Group("/api/courses", identity)
	courses.Get("/", coursesController.GetCourses)
	courses.Get("/:id", coursesController.GetCourseDetails)
	courses.Get("/:id/lessons/:lessonId", coursesController.GetLessonDetails)
	courses.Get("/:id/lessons/:lessonId/quiz", quizController.GetLessonQuiz)
	courses.Post("/:id/lessons/:lessonId/quiz", quizController.SubmitQuiz)
	courses.Post("/:id/lessons/:lessonId/complete", progressController.MarkLessonComplete)
	courses.Put("/:id/lessons/:lessonId/video", progressController.UpdateVideoProgress)

	// Progress routes
	prog := app.Group("/api/progress", identity)
	prog.Get("/", progressController.GetProgress)
	prog.Get("/stats", progressController.GetOverallStats)
	prog.Get("/analytics", progressController.GetCourseAnalytics)
	prog.Get("/quiz-results", progressController.GetQuizResults)

	// Feedback routes
	feedbackController := controllers.NewFeedbackController(feedbackService)
	app.Post("/api/feedback", identity, feedbackController.SubmitFeedback)
}
