// Package catalog holds the static course content: the read-only set of
// courses, lessons and quizzes the rest of the system reports progress
// against. Nothing here is ever mutated at runtime.
package catalog

import "github.com/AmoolyaSuneja/EduStream/models"

type Catalog struct {
	courses []models.Course
}

// New builds a catalog from an explicit course list. Used by tests; the
// served dataset comes from Default.
func New(courses []models.Course) *Catalog {
	return &Catalog{courses: courses}
}

// Default returns the catalog backed by the built-in course data.
func Default() *Catalog {
	return New(builtinCourses)
}

// Courses returns the full course list in catalog order.
func (c *Catalog) Courses() []models.Course {
	return c.courses
}

func (c *Catalog) FindCourse(id string) (models.Course, bool) {
	for _, course := range c.courses {
		if course.ID == id {
			return course, true
		}
	}
	return models.Course{}, false
}

func (c *Catalog) FindLesson(courseID, lessonID string) (models.Lesson, bool) {
	course, ok := c.FindCourse(courseID)
	if !ok {
		return models.Lesson{}, false
	}
	for _, lesson := range course.Lessons {
		if lesson.ID == lessonID {
			return lesson, true
		}
	}
	return models.Lesson{}, false
}

// TotalLessons counts lessons across every course.
func (c *Catalog) TotalLessons() int {
	total := 0
	for _, course := range c.courses {
		total += len(course.Lessons)
	}
	return total
}
