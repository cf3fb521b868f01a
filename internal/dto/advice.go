package dto

import "FITZEN_BACK-END/internal/models"

// PlanRequest carries the free-form profile used to build a workout or meal plan
type PlanRequest struct {
	UserProfile map[string]any `json:"user_profile"`
}

type PlanResponse struct {
	Success bool   `json:"success"`
	Plan    string `json:"plan"`
}

// RecipeSuggestRequest carries free-form recipe preferences
type RecipeSuggestRequest struct {
	Preferences map[string]any `json:"preferences"`
}

type RecipeSuggestResponse struct {
	Success     bool   `json:"success"`
	Suggestions string `json:"suggestions"`
}

// ChatMessageRequest represents a message sent to the AI coach
type ChatMessageRequest struct {
	UserID      string         `json:"user_id"`
	Message     string         `json:"message"`
	UserContext map[string]any `json:"user_context"`
}

type ChatMessageResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Response  string `json:"response"`
	ChatID    string `json:"chat_id"`
	CreatedAt string `json:"created_at"`
}

type ChatHistoryResponse struct {
	Success bool                 `json:"success"`
	History []models.ChatMessage `json:"history"`
}
