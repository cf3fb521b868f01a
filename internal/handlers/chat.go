package handlers

import (
	"net/http"

	"FITZEN_BACK-END/internal/dto"
	"FITZEN_BACK-END/internal/services"
	"FITZEN_BACK-END/internal/utils"
)

// ChatHandler manages AI coach chat endpoints
type ChatHandler struct {
	chat *services.ChatService
}

// NewChatHandler creates a new ChatHandler
func NewChatHandler(chat *services.ChatService) *ChatHandler {
	return &ChatHandler{chat: chat}
}

// SendMessage handles POST /api/chat/message
// @Summary Ask the AI coach
// @Description The exchange is stored in the chat history. Provider failures produce a fixed apology.
// @Tags chat
// @Accept json
// @Produce json
// @Param payload body dto.ChatMessageRequest true "Message"
// @Success 200 {object} dto.ChatMessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/chat/message [post]
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req dto.ChatMessageRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	if req.UserID == "" || req.Message == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "User ID and message are required", "")
		return
	}

	msg, err := h.chat.Send(r.Context(), req.UserID, req.Message, req.UserContext)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.ChatMessageResponse{
		Success:   true,
		Message:   msg.Message,
		Response:  msg.Response,
		ChatID:    msg.ID,
		CreatedAt: msg.CreatedAt,
	})
}

// History handles GET /api/chat/history/{user_id}
// @Summary Latest 50 chat messages, newest first
// @Tags chat
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} dto.ChatHistoryResponse
// @Router /api/chat/history/{user_id} [get]
func (h *ChatHandler) History(w http.ResponseWriter, r *http.Request) {
	history := h.chat.History(r.PathValue("user_id"))
	utils.WriteJSONResponse(w, http.StatusOK, dto.ChatHistoryResponse{Success: true, History: history})
}

// Clear handles DELETE /api/chat/clear/{user_id}
// @Summary Delete a user's chat history
// @Tags chat
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} dto.MessageResponse
// @Router /api/chat/clear/{user_id} [delete]
func (h *ChatHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if _, err := h.chat.Clear(r.PathValue("user_id")); err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Success: true, Message: "Chat history cleared"})
}
