package models

// Habit tracks a recurring behaviour and its current streak
type Habit struct {
	ID            string `json:"id" csv:"id"`
	UserID        string `json:"user_id" csv:"user_id"`
	HabitName     string `json:"habit_name" csv:"habit_name"`
	Frequency     string `json:"frequency" csv:"frequency"`
	TargetDays    int    `json:"target_days" csv:"target_days"`
	CompletedDays int    `json:"completed_days" csv:"completed_days"`
	Streak        int    `json:"streak" csv:"streak"`
	CreatedAt     string `json:"created_at" csv:"created_at"`
	UpdatedAt     string `json:"updated_at" csv:"updated_at"`
}

func (h Habit) GetID() string { return h.ID }
