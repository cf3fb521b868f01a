package models

// ChatMessage stores one user message together with the coach's reply
type ChatMessage struct {
	ID        string `json:"id" csv:"id"`
	UserID    string `json:"user_id" csv:"user_id"`
	Message   string `json:"message" csv:"message"`
	Sender    string `json:"sender" csv:"sender"`
	Response  string `json:"response" csv:"response"`
	CreatedAt string `json:"created_at" csv:"created_at"`
}

func (c ChatMessage) GetID() string { return c.ID }
