package progress

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AmoolyaSuneja/EduStream/catalog"
	"github.com/AmoolyaSuneja/EduStream/models"
	"github.com/AmoolyaSuneja/EduStream/storage"
)

const testUser = "user-1"

func testCatalog() *catalog.Catalog {
	return catalog.New([]models.Course{
		{
			ID:    "c1",
			Title: "Course One",
			Lessons: []models.Lesson{
				{ID: "l1", Title: "Lesson 1"},
				{ID: "l2", Title: "Lesson 2"},
				{ID: "l3", Title: "Lesson 3"},
				{ID: "l4", Title: "Lesson 4"},
			},
		},
		{
			ID:    "c2",
			Title: "Course Two",
			Lessons: []models.Lesson{
				{ID: "l5", Title: "Lesson 5"},
				{ID: "l6", Title: "Lesson 6"},
			},
		},
	})
}

func newTestService() (*Service, *storage.MemoryStore) {
	store := storage.NewMemoryStore()
	now := func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }
	return NewServiceWithClock(store, testCatalog(), now), store
}

func TestProgressEmptyByDefault(t *testing.T) {
	svc, _ := newTestService()
	assert.Empty(t, svc.Progress(context.Background(), testUser))
	assert.Empty(t, svc.QuizResults(context.Background(), testUser))
}

func TestSaveProgressRoundTrip(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	score := 80
	completed := true
	record := models.ProgressRecord{
		CourseID:      "c1",
		LessonID:      "l1",
		Completed:     true,
		LastWatched:   1234,
		QuizScore:     &score,
		QuizCompleted: &completed,
	}
	require.NoError(t, svc.SaveProgress(ctx, testUser, record))

	records := svc.Progress(ctx, testUser)
	require.Len(t, records, 1)
	assert.Equal(t, record, records[0])
}

func TestSaveProgressUpsertIsIdempotent(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.SaveProgress(ctx, testUser, models.ProgressRecord{
		CourseID: "c1", LessonID: "l1", LastWatched: 10,
	}))
	require.NoError(t, svc.SaveProgress(ctx, testUser, models.ProgressRecord{
		CourseID: "c1", LessonID: "l1", Completed: true, LastWatched: 99,
	}))

	records := svc.Progress(ctx, testUser)
	require.Len(t, records, 1)
	assert.True(t, records[0].Completed)
	assert.EqualValues(t, 99, records[0].LastWatched)
}

func TestMarkLessonCompleteVisibleImmediately(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.MarkLessonComplete(ctx, testUser, "c1", "l1"))

	records := svc.Progress(ctx, testUser)
	require.Len(t, records, 1)
	assert.Equal(t, "c1", records[0].CourseID)
	assert.Equal(t, "l1", records[0].LessonID)
	assert.True(t, records[0].Completed)
	assert.NotZero(t, records[0].LastWatched)
}

func TestMarkLessonCompleteDropsQuizFields(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	score := 90
	completed := true
	require.NoError(t, svc.SaveProgress(ctx, testUser, models.ProgressRecord{
		CourseID: "c1", LessonID: "l1", QuizScore: &score, QuizCompleted: &completed,
	}))

	// Mark-complete builds a fresh record; the quiz fields do not survive.
	require.NoError(t, svc.MarkLessonComplete(ctx, testUser, "c1", "l1"))

	records := svc.Progress(ctx, testUser)
	require.Len(t, records, 1)
	assert.True(t, records[0].Completed)
	assert.Nil(t, records[0].QuizScore)
	assert.Nil(t, records[0].QuizCompleted)
}

func TestUpdateVideoProgressPreservesFields(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	score := 75
	completed := true
	require.NoError(t, svc.SaveProgress(ctx, testUser, models.ProgressRecord{
		CourseID: "c1", LessonID: "l1", Completed: true, LastWatched: 5,
		QuizScore: &score, QuizCompleted: &completed,
	}))

	require.NoError(t, svc.UpdateVideoProgress(ctx, testUser, "c1", "l1", 42))

	records := svc.Progress(ctx, testUser)
	require.Len(t, records, 1)
	assert.EqualValues(t, 42, records[0].LastWatched)
	assert.True(t, records[0].Completed)
	require.NotNil(t, records[0].QuizScore)
	assert.Equal(t, 75, *records[0].QuizScore)
	require.NotNil(t, records[0].QuizCompleted)
	assert.True(t, *records[0].QuizCompleted)
}

func TestUpdateVideoProgressNewRecord(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.UpdateVideoProgress(ctx, testUser, "c1", "l2", 17))

	records := svc.Progress(ctx, testUser)
	require.Len(t, records, 1)
	assert.False(t, records[0].Completed)
	assert.EqualValues(t, 17, records[0].LastWatched)
	assert.Nil(t, records[0].QuizScore)
}

func quizResult(lessonID string, score int) models.QuizResult {
	return models.QuizResult{
		LessonID:       lessonID,
		Score:          score,
		TotalQuestions: 2,
		Answers: []models.QuizAnswer{
			{QuestionID: "q1", SelectedAnswer: 0, Correct: score > 0},
			{QuestionID: "q2", SelectedAnswer: 1, Correct: false},
		},
		CompletedAt: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestSaveQuizResultUpsertsByLessonID(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.SaveQuizResult(ctx, testUser, quizResult("l1", 50)))
	require.NoError(t, svc.SaveQuizResult(ctx, testUser, quizResult("l1", 100)))

	results := svc.QuizResults(ctx, testUser)
	require.Len(t, results, 1)
	assert.Equal(t, 100, results[0].Score)
}

func TestSaveQuizResultDoesNotCreateProgress(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.SaveQuizResult(ctx, testUser, quizResult("l1", 50)))

	assert.Empty(t, svc.Progress(ctx, testUser))
	assert.Len(t, svc.QuizResults(ctx, testUser), 1)
}

func TestSaveQuizResultPatchesExistingProgress(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.SaveProgress(ctx, testUser, models.ProgressRecord{
		CourseID: "c1", LessonID: "l1", Completed: true, LastWatched: 7,
	}))
	require.NoError(t, svc.SaveQuizResult(ctx, testUser, quizResult("l1", 85)))

	records := svc.Progress(ctx, testUser)
	require.Len(t, records, 1)
	assert.True(t, records[0].Completed, "completed flag must be left unchanged")
	assert.EqualValues(t, 7, records[0].LastWatched)
	require.NotNil(t, records[0].QuizScore)
	assert.Equal(t, 85, *records[0].QuizScore)
	require.NotNil(t, records[0].QuizCompleted)
	assert.True(t, *records[0].QuizCompleted)
}

// Quiz results are keyed by lesson id alone, so a result patches a progress
// record with the same lesson id regardless of which course it belongs to.
// Pins the current lookup behavior.
func TestSaveQuizResultMatchesLessonAcrossCourses(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.SaveProgress(ctx, testUser, models.ProgressRecord{
		CourseID: "c2", LessonID: "shared", LastWatched: 3,
	}))
	require.NoError(t, svc.SaveQuizResult(ctx, testUser, quizResult("shared", 60)))

	records := svc.Progress(ctx, testUser)
	require.Len(t, records, 1)
	assert.Equal(t, "c2", records[0].CourseID)
	require.NotNil(t, records[0].QuizScore)
	assert.Equal(t, 60, *records[0].QuizScore)
}

func TestCourseProgressQuarterComplete(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.MarkLessonComplete(ctx, testUser, "c1", "l1"))

	assert.Equal(t, 25, svc.CourseProgress(ctx, testUser, "c1"))
	assert.Equal(t, 0, svc.CourseProgress(ctx, testUser, "c2"))
}

func TestCourseProgressUnknownCourse(t *testing.T) {
	svc, _ := newTestService()
	assert.Equal(t, 0, svc.CourseProgress(context.Background(), testUser, "nope"))
}

func TestCourseProgressIgnoresOtherCourses(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	// Completion in c2 must not count toward c1 even if a lesson id matched.
	require.NoError(t, svc.MarkLessonComplete(ctx, testUser, "c2", "l5"))
	assert.Equal(t, 0, svc.CourseProgress(ctx, testUser, "c1"))
	assert.Equal(t, 50, svc.CourseProgress(ctx, testUser, "c2"))
}

func TestOverallStats(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.MarkLessonComplete(ctx, testUser, "c1", "l1"))
	require.NoError(t, svc.MarkLessonComplete(ctx, testUser, "c1", "l2"))
	require.NoError(t, svc.MarkLessonComplete(ctx, testUser, "c2", "l5"))
	require.NoError(t, svc.SaveQuizResult(ctx, testUser, quizResult("l1", 80)))
	require.NoError(t, svc.SaveQuizResult(ctx, testUser, quizResult("l2", 61)))

	stats := svc.OverallStats(ctx, testUser)
	assert.Equal(t, 6, stats.TotalLessons)
	assert.Equal(t, 3, stats.CompletedLessons)
	assert.Equal(t, 2, stats.TotalQuizzes)
	assert.Equal(t, 71, stats.AvgQuizScore) // round(141/2)
	assert.Equal(t, 50, stats.CompletionRate)
}

func TestOverallStatsNoQuizzes(t *testing.T) {
	svc, _ := newTestService()
	stats := svc.OverallStats(context.Background(), testUser)
	assert.Equal(t, 0, stats.AvgQuizScore)
	assert.Equal(t, 0, stats.CompletionRate)
}

func TestOverallStatsEmptyCatalog(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := NewService(store, catalog.New(nil))

	stats := svc.OverallStats(context.Background(), testUser)
	assert.Equal(t, 0, stats.TotalLessons)
	assert.Equal(t, 0, stats.CompletionRate)
}

func TestCourseAnalytics(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.MarkLessonComplete(ctx, testUser, "c1", "l1"))
	require.NoError(t, svc.SaveQuizResult(ctx, testUser, quizResult("l1", 80)))
	require.NoError(t, svc.SaveQuizResult(ctx, testUser, quizResult("l5", 40)))

	analytics := svc.CourseAnalytics(ctx, testUser)
	require.Len(t, analytics, 2)

	first := analytics[0]
	assert.Equal(t, "c1", first.CourseID)
	assert.Equal(t, 25, first.Progress)
	assert.Equal(t, 1, first.CompletedLessons)
	assert.Equal(t, 4, first.TotalLessons)
	assert.Equal(t, 1, first.QuizzesTaken)
	assert.Equal(t, 80, first.AvgQuizScore)

	second := analytics[1]
	assert.Equal(t, "c2", second.CourseID)
	assert.Equal(t, 1, second.QuizzesTaken)
	assert.Equal(t, 40, second.AvgQuizScore)
}

func TestMalformedStoredDataDegradesToEmpty(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "progress_"+testUser, "{not json"))
	require.NoError(t, store.Set(ctx, "quiz-results_"+testUser, "also not json"))

	assert.Empty(t, svc.Progress(ctx, testUser))
	assert.Empty(t, svc.QuizResults(ctx, testUser))

	// A save after corruption starts from an empty collection.
	require.NoError(t, svc.SaveProgress(ctx, testUser, models.ProgressRecord{CourseID: "c1", LessonID: "l1"}))
	assert.Len(t, svc.Progress(ctx, testUser), 1)
}

func TestUsersAreNamespaced(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.MarkLessonComplete(ctx, "alice", "c1", "l1"))

	assert.Len(t, svc.Progress(ctx, "alice"), 1)
	assert.Empty(t, svc.Progress(ctx, "bob"))
	assert.Empty(t, svc.Progress(ctx, models.AnonymousUserID))
}

func TestConcurrentUpsertsKeepOneRecord(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(marker int64) {
			defer wg.Done()
			assert.NoError(t, svc.UpdateVideoProgress(ctx, testUser, "c1", "l1", marker))
		}(int64(i))
	}
	wg.Wait()

	records := svc.Progress(ctx, testUser)
	assert.Len(t, records, 1, fmt.Sprintf("expected one record, got %d", len(records)))
}
