package models

const (
	GoalStatusActive    = "Active"
	GoalStatusCompleted = "Completed"
)

// Goal represents a measurable target a user works toward
type Goal struct {
	ID           string  `json:"id" csv:"id"`
	UserID       string  `json:"user_id" csv:"user_id"`
	Title        string  `json:"title" csv:"title"`
	Description  string  `json:"description" csv:"description"`
	Type         string  `json:"type" csv:"type"`
	TargetValue  float64 `json:"target_value" csv:"target_value"`
	CurrentValue float64 `json:"current_value" csv:"current_value"`
	Unit         string  `json:"unit" csv:"unit"`
	Deadline     string  `json:"deadline" csv:"deadline"`
	Status       string  `json:"status" csv:"status"`
	CreatedAt    string  `json:"created_at" csv:"created_at"`
	UpdatedAt    string  `json:"updated_at" csv:"updated_at"`
}

func (g Goal) GetID() string { return g.ID }
