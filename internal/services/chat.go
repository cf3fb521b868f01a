package services

import (
	"context"

	"FITZEN_BACK-END/internal/models"
	"FITZEN_BACK-END/internal/repository"
	"FITZEN_BACK-END/internal/storage"
)

const senderUser = "user"

// ChatService relays user messages to the coach and keeps the history.
type ChatService struct {
	history *repository.Store[models.ChatMessage]
	advice  *AdviceService
	clock   Clock
}

func NewChatService(stores *repository.Stores, advice *AdviceService, clock Clock) *ChatService {
	if clock == nil {
		clock = SystemClock
	}
	return &ChatService{history: stores.ChatHistory, advice: advice, clock: clock}
}

// Send asks the coach and stores the exchange as one row.
func (s *ChatService) Send(ctx context.Context, userID, message string, userContext map[string]any) (models.ChatMessage, error) {
	if userContext == nil {
		userContext = map[string]any{}
	}
	reply := s.advice.FitnessAdvice(ctx, userContext, message)

	msg := models.ChatMessage{
		ID:        NewID(),
		UserID:    userID,
		Message:   message,
		Sender:    senderUser,
		Response:  reply,
		CreatedAt: s.clock.Timestamp(),
	}
	if err := s.history.Create(msg); err != nil {
		return models.ChatMessage{}, err
	}
	return msg, nil
}

// History returns the user's latest messages, newest first.
func (s *ChatService) History(userID string) []models.ChatMessage {
	msgs := s.history.ByUser(userID)
	SortDescending(msgs, func(m models.ChatMessage) string { return m.CreatedAt })
	if len(msgs) > ChatHistoryLimit {
		msgs = msgs[:ChatHistoryLimit]
	}
	return msgs
}

// Clear deletes every message of the user.
func (s *ChatService) Clear(userID string) (int, error) {
	return s.history.DeleteWhere(storage.Record{"user_id": userID})
}
