package handlers

import (
	"net/http"
	"strings"

	"FITZEN_BACK-END/internal/dto"
	"FITZEN_BACK-END/internal/models"
	"FITZEN_BACK-END/internal/repository"
	"FITZEN_BACK-END/internal/services"
	"FITZEN_BACK-END/internal/utils"
)

// RemindersHandler manages reminder endpoints
type RemindersHandler struct {
	stores  *repository.Stores
	tracker *services.Tracker
}

// NewRemindersHandler creates a new RemindersHandler
func NewRemindersHandler(stores *repository.Stores, tracker *services.Tracker) *RemindersHandler {
	return &RemindersHandler{stores: stores, tracker: tracker}
}

// ListReminders handles GET /api/reminders/{user_id}
// @Summary List a user's reminders by scheduled time
// @Tags reminders
// @Produce json
// @Param user_id path string true "User ID"
// @Param is_active query string false "true or false"
// @Success 200 {object} dto.ReminderListResponse
// @Router /api/reminders/{user_id} [get]
func (h *RemindersHandler) ListReminders(w http.ResponseWriter, r *http.Request) {
	reminders := h.stores.Reminders.ByUser(r.PathValue("user_id"))
	if isActive := r.URL.Query().Get("is_active"); isActive != "" {
		want := strings.EqualFold(isActive, "true")
		filtered := reminders[:0]
		for _, rm := range reminders {
			if rm.IsActive == want {
				filtered = append(filtered, rm)
			}
		}
		reminders = filtered
	}
	services.SortAscending(reminders, func(rm models.Reminder) string { return rm.ScheduledTime })
	utils.WriteJSONResponse(w, http.StatusOK, dto.ReminderListResponse{Success: true, Reminders: reminders})
}

// CreateReminder handles POST /api/reminders
// @Summary Create a reminder
// @Tags reminders
// @Accept json
// @Produce json
// @Param payload body models.Reminder true "Reminder; user_id is required"
// @Success 200 {object} dto.ReminderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/reminders [post]
func (h *RemindersHandler) CreateReminder(w http.ResponseWriter, r *http.Request) {
	req := models.NewReminder()
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	if !requireUserID(w, req.UserID) {
		return
	}
	reminder, err := h.tracker.CreateReminder(req)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.ReminderResponse{Success: true, Reminder: reminder})
}

// UpdateReminder handles PUT /api/reminders/{id}
// @Summary Update a reminder
// @Tags reminders
// @Accept json
// @Produce json
// @Param id path string true "Reminder ID"
// @Param payload body models.Reminder true "Fields to update"
// @Success 200 {object} dto.ReminderResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/reminders/{id} [put]
func (h *RemindersHandler) UpdateReminder(w http.ResponseWriter, r *http.Request) {
	fields, ok := decodePartial(w, r, models.Reminder{})
	if !ok {
		return
	}
	reminder, err := h.stores.Reminders.Update(r.PathValue("id"), fields)
	if err != nil {
		writeStoreError(w, err, "Reminder not found")
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.ReminderResponse{Success: true, Reminder: reminder})
}

// DeleteReminder handles DELETE /api/reminders/{id}
// @Summary Delete a reminder
// @Tags reminders
// @Produce json
// @Param id path string true "Reminder ID"
// @Success 200 {object} dto.MessageResponse
// @Router /api/reminders/{id} [delete]
func (h *RemindersHandler) DeleteReminder(w http.ResponseWriter, r *http.Request) {
	if err := h.stores.Reminders.Delete(r.PathValue("id")); err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Success: true, Message: "Reminder deleted"})
}

// ToggleReminder handles POST /api/reminders/{id}/toggle
// @Summary Flip a reminder between active and inactive
// @Tags reminders
// @Produce json
// @Param id path string true "Reminder ID"
// @Success 200 {object} dto.ReminderResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/reminders/{id}/toggle [post]
func (h *RemindersHandler) ToggleReminder(w http.ResponseWriter, r *http.Request) {
	reminder, err := h.tracker.ToggleReminder(r.PathValue("id"))
	if err != nil {
		writeStoreError(w, err, "Reminder not found")
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.ReminderResponse{Success: true, Reminder: reminder})
}

// Upcoming handles GET /api/reminders/upcoming/{user_id}
// @Summary Next ten active reminders
// @Tags reminders
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} dto.ReminderListResponse
// @Router /api/reminders/upcoming/{user_id} [get]
func (h *RemindersHandler) Upcoming(w http.ResponseWriter, r *http.Request) {
	reminders := h.tracker.UpcomingReminders(r.PathValue("user_id"))
	utils.WriteJSONResponse(w, http.StatusOK, dto.ReminderListResponse{Success: true, Reminders: reminders})
}
