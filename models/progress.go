package models

import "time"

// ProgressRecord tracks completion and watch state for one (course, lesson)
// pair within a user's namespace. At most one record exists per pair; writes
// upsert by that key.
type ProgressRecord struct {
	CourseID      string `json:"courseId"`
	LessonID      string `json:"lessonId"`
	Completed     bool   `json:"completed"`
	LastWatched   int64  `json:"lastWatched"` // unix milliseconds or playback second marker
	QuizScore     *int   `json:"quizScore,omitempty"`
	QuizCompleted *bool  `json:"quizCompleted,omitempty"`
}

// QuizResult is keyed by lesson id alone, not (course, lesson). Lesson ids
// are globally unique in the catalog, so results from different courses
// cannot collide in practice; the keying is kept as-is regardless.
type QuizResult struct {
	LessonID       string       `json:"lessonId"`
	Score          int          `json:"score"` // 0-100, rounded
	TotalQuestions int          `json:"totalQuestions"`
	Answers        []QuizAnswer `json:"answers"`
	CompletedAt    time.Time    `json:"completedAt"`
}

type QuizAnswer struct {
	QuestionID     string `json:"questionId"`
	SelectedAnswer int    `json:"selectedAnswer"`
	Correct        bool   `json:"correct"`
}

type OverallStats struct {
	TotalLessons     int `json:"totalLessons"`
	CompletedLessons int `json:"completedLessons"`
	TotalQuizzes     int `json:"totalQuizzes"`
	AvgQuizScore     int `json:"avgQuizScore"`
	CompletionRate   int `json:"completionRate"`
}

// CourseAnalytics is the per-course breakdown behind the analytics view.
type CourseAnalytics struct {
	CourseID         string `json:"courseId"`
	Title            string `json:"title"`
	Progress         int    `json:"progress"`
	CompletedLessons int    `json:"completedLessons"`
	TotalLessons     int    `json:"totalLessons"`
	QuizzesTaken     int    `json:"quizzesTaken"`
	AvgQuizScore     int    `json:"avgQuizScore"`
}
