package handlers

import (
	"net/http"

	"FITZEN_BACK-END/internal/dto"
	"FITZEN_BACK-END/internal/models"
	"FITZEN_BACK-END/internal/repository"
	"FITZEN_BACK-END/internal/services"
	"FITZEN_BACK-END/internal/utils"
)

// HabitsHandler manages habit endpoints
type HabitsHandler struct {
	stores  *repository.Stores
	tracker *services.Tracker
	advice  *services.AdviceService
}

// NewHabitsHandler creates a new HabitsHandler
func NewHabitsHandler(stores *repository.Stores, tracker *services.Tracker, advice *services.AdviceService) *HabitsHandler {
	return &HabitsHandler{stores: stores, tracker: tracker, advice: advice}
}

// ListHabits handles GET /api/habits/{user_id}
// @Summary List a user's habits, newest first
// @Tags habits
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} dto.HabitListResponse
// @Router /api/habits/{user_id} [get]
func (h *HabitsHandler) ListHabits(w http.ResponseWriter, r *http.Request) {
	habits := h.stores.Habits.ByUser(r.PathValue("user_id"))
	services.SortDescending(habits, func(hb models.Habit) string { return hb.CreatedAt })
	utils.WriteJSONResponse(w, http.StatusOK, dto.HabitListResponse{Success: true, Habits: habits})
}

// CreateHabit handles POST /api/habits
// @Summary Create a habit
// @Tags habits
// @Accept json
// @Produce json
// @Param payload body models.Habit true "Habit; user_id is required"
// @Success 200 {object} dto.HabitResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/habits [post]
func (h *HabitsHandler) CreateHabit(w http.ResponseWriter, r *http.Request) {
	req := models.NewHabit()
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	if !requireUserID(w, req.UserID) {
		return
	}
	habit, err := h.tracker.CreateHabit(req)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.HabitResponse{Success: true, Habit: habit})
}

// UpdateHabit handles PUT /api/habits/{id}
// @Summary Update a habit
// @Tags habits
// @Accept json
// @Produce json
// @Param id path string true "Habit ID"
// @Param payload body models.Habit true "Fields to update"
// @Success 200 {object} dto.HabitResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/habits/{id} [put]
func (h *HabitsHandler) UpdateHabit(w http.ResponseWriter, r *http.Request) {
	fields, ok := decodePartial(w, r, models.Habit{})
	if !ok {
		return
	}
	fields["updated_at"] = h.tracker.Clock().Timestamp()
	habit, err := h.stores.Habits.Update(r.PathValue("id"), fields)
	if err != nil {
		writeStoreError(w, err, "Habit not found")
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.HabitResponse{Success: true, Habit: habit})
}

// DeleteHabit handles DELETE /api/habits/{id}
// @Summary Delete a habit
// @Tags habits
// @Produce json
// @Param id path string true "Habit ID"
// @Success 200 {object} dto.MessageResponse
// @Router /api/habits/{id} [delete]
func (h *HabitsHandler) DeleteHabit(w http.ResponseWriter, r *http.Request) {
	if err := h.stores.Habits.Delete(r.PathValue("id")); err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Success: true, Message: "Habit deleted"})
}

// CompleteHabit handles POST /api/habits/{id}/complete
// @Summary Mark a habit done for today
// @Tags habits
// @Produce json
// @Param id path string true "Habit ID"
// @Success 200 {object} dto.HabitResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/habits/{id}/complete [post]
func (h *HabitsHandler) CompleteHabit(w http.ResponseWriter, r *http.Request) {
	habit, err := h.tracker.CompleteHabit(r.PathValue("id"))
	if err != nil {
		writeStoreError(w, err, "Habit not found")
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.HabitResponse{Success: true, Habit: habit})
}

// SkipHabit handles POST /api/habits/{id}/skip
// @Summary Skip a habit for today, resetting its streak
// @Tags habits
// @Produce json
// @Param id path string true "Habit ID"
// @Success 200 {object} dto.HabitResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/habits/{id}/skip [post]
func (h *HabitsHandler) SkipHabit(w http.ResponseWriter, r *http.Request) {
	habit, err := h.tracker.SkipHabit(r.PathValue("id"))
	if err != nil {
		writeStoreError(w, err, "Habit not found")
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.HabitResponse{Success: true, Habit: habit})
}

// AnalyzeHabits handles GET /api/habits/analyze/{user_id}
// @Summary AI analysis of a user's habits
// @Tags habits
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} dto.HabitAnalysisResponse
// @Router /api/habits/analyze/{user_id} [get]
func (h *HabitsHandler) AnalyzeHabits(w http.ResponseWriter, r *http.Request) {
	habits := h.stores.Habits.ByUser(r.PathValue("user_id"))
	analysis := h.advice.AnalyzeHabits(r.Context(), habits)
	utils.WriteJSONResponse(w, http.StatusOK, dto.HabitAnalysisResponse{Success: true, Habits: habits, Analysis: analysis})
}
