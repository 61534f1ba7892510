package models

// Course difficulty levels as they appear in the catalog.
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
)

type Course struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Instructor  string   `json:"instructor"`
	Duration    string   `json:"duration"`
	Level       string   `json:"level"`
	Thumbnail   string   `json:"thumbnail"`
	Enrolled    bool     `json:"enrolled"`
	Lessons     []Lesson `json:"lessons"`
}

type Lesson struct {
	ID       string        `json:"id"`
	Title    string        `json:"title"`
	Duration int           `json:"duration"` // minutes
	VideoURL string        `json:"videoUrl"`
	Content  LessonContent `json:"content"`
	Quiz     *Quiz         `json:"quiz,omitempty"`
}

type LessonContent struct {
	Description string   `json:"description"`
	KeyPoints   []string `json:"keyPoints"`
	Transcript  string   `json:"transcript,omitempty"`
}

type Quiz struct {
	Questions []Question `json:"questions"`
}

type Question struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"` // 0-based option index
	Explanation   string   `json:"explanation"`
}
