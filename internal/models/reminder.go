package models

// Reminder is a scheduled notification the client displays
type Reminder struct {
	ID            string `json:"id" csv:"id"`
	UserID        string `json:"user_id" csv:"user_id"`
	Title         string `json:"title" csv:"title"`
	Description   string `json:"description" csv:"description"`
	ReminderType  string `json:"reminder_type" csv:"reminder_type"`
	ScheduledTime string `json:"scheduled_time" csv:"scheduled_time"`
	Repeat        string `json:"repeat" csv:"repeat"`
	IsActive      bool   `json:"is_active" csv:"is_active"`
	CreatedAt     string `json:"created_at" csv:"created_at"`
}

func (r Reminder) GetID() string { return r.ID }
