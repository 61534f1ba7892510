// Package progress implements per-user progress and quiz-result
// bookkeeping over the key-value store, plus the derived statistics the
// analytics views are built from.
//
// Each user's data lives under two keys, "progress_<userId>" and
// "quiz-results_<userId>", each holding a JSON array. Every mutation reads
// the full collection, merges in memory and writes the whole collection
// back; that read-modify-write is not atomic, so mutations are serialized
// behind a mutex.
package progress

import (
	"context"
	"encoding/json"
	"math"
	"sync"
	"time"

	"github.com/AmoolyaSuneja/EduStream/catalog"
	"github.com/AmoolyaSuneja/EduStream/models"
	"github.com/AmoolyaSuneja/EduStream/storage"
)

const (
	progressKeyPrefix    = "progress_"
	quizResultsKeyPrefix = "quiz-results_"
)

type Service struct {
	store   storage.Store
	catalog *catalog.Catalog
	now     func() time.Time

	mu sync.Mutex
}

func NewService(store storage.Store, cat *catalog.Catalog) *Service {
	return &Service{store: store, catalog: cat, now: time.Now}
}

// NewServiceWithClock is for tests that need deterministic timestamps.
func NewServiceWithClock(store storage.Store, cat *catalog.Catalog, now func() time.Time) *Service {
	return &Service{store: store, catalog: cat, now: now}
}

// Progress returns the user's full progress collection in stored order.
// A missing key, a storage failure or malformed stored JSON all degrade to
// an empty collection; reads never surface errors.
func (s *Service) Progress(ctx context.Context, userID string) []models.ProgressRecord {
	records, err := s.loadProgress(ctx, userID)
	if err != nil {
		return []models.ProgressRecord{}
	}
	return records
}

// SaveProgress upserts by (courseID, lessonID): an existing record is fully
// replaced, otherwise the record is appended. The whole collection is
// written back; write failures are returned to the caller.
func (s *Service) SaveProgress(ctx context.Context, userID string, record models.ProgressRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveProgressLocked(ctx, userID, record)
}

// MarkLessonComplete records completion with the current time. It builds a
// fresh record, so quiz fields from a prior record for the same lesson are
// dropped; UpdateVideoProgress is the merge-preserving path.
func (s *Service) MarkLessonComplete(ctx context.Context, userID, courseID, lessonID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveProgressLocked(ctx, userID, models.ProgressRecord{
		CourseID:    courseID,
		LessonID:    lessonID,
		Completed:   true,
		LastWatched: s.now().UnixMilli(),
	})
}

// UpdateVideoProgress sets the watch marker for a lesson while preserving
// the completed and quiz fields of any prior record for that lesson.
func (s *Service) UpdateVideoProgress(ctx context.Context, userID, courseID, lessonID string, lastWatched int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := models.ProgressRecord{
		CourseID:    courseID,
		LessonID:    lessonID,
		LastWatched: lastWatched,
	}
	for _, prior := range s.progressLocked(ctx, userID) {
		if prior.CourseID == courseID && prior.LessonID == lessonID {
			record.Completed = prior.Completed
			record.QuizScore = prior.QuizScore
			record.QuizCompleted = prior.QuizCompleted
			break
		}
	}
	return s.saveProgressLocked(ctx, userID, record)
}

// QuizResults returns the user's quiz results with the same fail-soft
// contract as Progress.
func (s *Service) QuizResults(ctx context.Context, userID string) []models.QuizResult {
	results, err := s.loadQuizResults(ctx, userID)
	if err != nil {
		return []models.QuizResult{}
	}
	return results
}

// SaveQuizResult upserts the result by lesson id alone. If a progress
// record for that lesson already exists -- in any course, since results
// are not course-scoped -- its quiz fields are updated in place; no
// progress record is ever created here.
func (s *Service) SaveQuizResult(ctx context.Context, userID string, result models.QuizResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	results, err := s.loadQuizResults(ctx, userID)
	if err != nil {
		results = []models.QuizResult{}
	}

	replaced := false
	for i, existing := range results {
		if existing.LessonID == result.LessonID {
			results[i] = result
			replaced = true
			break
		}
	}
	if !replaced {
		results = append(results, result)
	}
	if err := s.writeJSON(ctx, quizResultsKeyPrefix+userID, results); err != nil {
		return err
	}

	for _, record := range s.progressLocked(ctx, userID) {
		if record.LessonID != result.LessonID {
			continue
		}
		score := result.Score
		completed := true
		record.QuizScore = &score
		record.QuizCompleted = &completed
		return s.saveProgressLocked(ctx, userID, record)
	}
	return nil
}

// CourseProgress reports the rounded percentage of the course's lessons the
// user has completed. Unknown courses and courses without lessons yield 0.
func (s *Service) CourseProgress(ctx context.Context, userID, courseID string) int {
	course, ok := s.catalog.FindCourse(courseID)
	if !ok || len(course.Lessons) == 0 {
		return 0
	}

	records := s.Progress(ctx, userID)
	completed := 0
	for _, lesson := range course.Lessons {
		if hasCompletedRecord(records, courseID, lesson.ID) {
			completed++
		}
	}
	return roundPercent(completed, len(course.Lessons))
}

// OverallStats aggregates across the whole catalog and the user's progress
// and quiz collections. With an empty catalog the completion rate is 0.
func (s *Service) OverallStats(ctx context.Context, userID string) models.OverallStats {
	records := s.Progress(ctx, userID)
	results := s.QuizResults(ctx, userID)

	completed := 0
	for _, record := range records {
		if record.Completed {
			completed++
		}
	}

	avgScore := 0
	if len(results) > 0 {
		sum := 0
		for _, result := range results {
			sum += result.Score
		}
		avgScore = int(math.Round(float64(sum) / float64(len(results))))
	}

	totalLessons := s.catalog.TotalLessons()
	return models.OverallStats{
		TotalLessons:     totalLessons,
		CompletedLessons: completed,
		TotalQuizzes:     len(results),
		AvgQuizScore:     avgScore,
		CompletionRate:   roundPercent(completed, totalLessons),
	}
}

// CourseAnalytics breaks the user's progress down per course: completion,
// and quiz performance over that course's lessons.
func (s *Service) CourseAnalytics(ctx context.Context, userID string) []models.CourseAnalytics {
	records := s.Progress(ctx, userID)
	results := s.QuizResults(ctx, userID)

	analytics := make([]models.CourseAnalytics, 0, len(s.catalog.Courses()))
	for _, course := range s.catalog.Courses() {
		completed := 0
		for _, record := range records {
			if record.CourseID == course.ID && record.Completed {
				completed++
			}
		}

		taken := 0
		scoreSum := 0
		for _, result := range results {
			if courseHasLesson(course, result.LessonID) {
				taken++
				scoreSum += result.Score
			}
		}
		avgScore := 0
		if taken > 0 {
			avgScore = int(math.Round(float64(scoreSum) / float64(taken)))
		}

		analytics = append(analytics, models.CourseAnalytics{
			CourseID:         course.ID,
			Title:            course.Title,
			Progress:         s.CourseProgress(ctx, userID, course.ID),
			CompletedLessons: completed,
			TotalLessons:     len(course.Lessons),
			QuizzesTaken:     taken,
			AvgQuizScore:     avgScore,
		})
	}
	return analytics
}

// progressLocked is the fail-soft read used inside mutations; callers must
// hold s.mu.
func (s *Service) progressLocked(ctx context.Context, userID string) []models.ProgressRecord {
	records, err := s.loadProgress(ctx, userID)
	if err != nil {
		return []models.ProgressRecord{}
	}
	return records
}

func (s *Service) saveProgressLocked(ctx context.Context, userID string, record models.ProgressRecord) error {
	records := s.progressLocked(ctx, userID)

	replaced := false
	for i, existing := range records {
		if existing.CourseID == record.CourseID && existing.LessonID == record.LessonID {
			records[i] = record
			replaced = true
			break
		}
	}
	if !replaced {
		records = append(records, record)
	}
	return s.writeJSON(ctx, progressKeyPrefix+userID, records)
}

// loadProgress surfaces storage and decode errors so call sites take the
// default-to-empty decision explicitly.
func (s *Service) loadProgress(ctx context.Context, userID string) ([]models.ProgressRecord, error) {
	var records []models.ProgressRecord
	if err := s.readJSON(ctx, progressKeyPrefix+userID, &records); err != nil {
		return nil, err
	}
	if records == nil {
		records = []models.ProgressRecord{}
	}
	return records, nil
}

func (s *Service) loadQuizResults(ctx context.Context, userID string) ([]models.QuizResult, error) {
	var results []models.QuizResult
	if err := s.readJSON(ctx, quizResultsKeyPrefix+userID, &results); err != nil {
		return nil, err
	}
	if results == nil {
		results = []models.QuizResult{}
	}
	return results, nil
}

func (s *Service) readJSON(ctx context.Context, key string, out any) error {
	raw, err := s.store.Get(ctx, key)
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(raw), out)
}

func (s *Service) writeJSON(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, key, string(raw))
}

func hasCompletedRecord(records []models.ProgressRecord, courseID, lessonID string) bool {
	for _, record := range records {
		if record.CourseID == courseID && record.LessonID == lessonID && record.Completed {
			return true
		}
	}
	return false
}

func courseHasLesson(course models.Course, lessonID string) bool {
	for _, lesson := range course.Lessons {
		if lesson.ID == lessonID {
			return true
		}
	}
	return false
}

func roundPercent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
