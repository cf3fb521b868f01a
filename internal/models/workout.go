package models

// Workout represents a logged or planned workout session
type Workout struct {
	ID          string  `json:"id" csv:"id"`
	UserID      string  `json:"user_id" csv:"user_id"`
	Title       string  `json:"title" csv:"title"`
	Description string  `json:"description" csv:"description"`
	Duration    float64 `json:"duration" csv:"duration"` // minutes
	Calories    float64 `json:"calories" csv:"calories"`
	Type        string  `json:"type" csv:"type"`
	Difficulty  string  `json:"difficulty" csv:"difficulty"`
	CompletedAt string  `json:"completed_at" csv:"completed_at"`
	CreatedAt   string  `json:"created_at" csv:"created_at"`
}

func (w Workout) GetID() string { return w.ID }
