package handlers

import (
	"net/http"

	"FITZEN_BACK-END/internal/dto"
	"FITZEN_BACK-END/internal/models"
	"FITZEN_BACK-END/internal/repository"
	"FITZEN_BACK-END/internal/services"
	"FITZEN_BACK-END/internal/utils"
)

// GoalsHandler manages goal endpoints
type GoalsHandler struct {
	stores  *repository.Stores
	tracker *services.Tracker
}

// NewGoalsHandler creates a new GoalsHandler
func NewGoalsHandler(stores *repository.Stores, tracker *services.Tracker) *GoalsHandler {
	return &GoalsHandler{stores: stores, tracker: tracker}
}

// ListGoals handles GET /api/goals/{user_id}
// @Summary List a user's goals, newest first
// @Tags goals
// @Produce json
// @Param user_id path string true "User ID"
// @Param status query string false "Exact status filter"
// @Success 200 {object} dto.GoalListResponse
// @Router /api/goals/{user_id} [get]
func (h *GoalsHandler) ListGoals(w http.ResponseWriter, r *http.Request) {
	goals := h.stores.Goals.ByUser(r.PathValue("user_id"))
	if status := r.URL.Query().Get("status"); status != "" {
		filtered := goals[:0]
		for _, g := range goals {
			if g.Status == status {
				filtered = append(filtered, g)
			}
		}
		goals = filtered
	}
	services.SortDescending(goals, func(g models.Goal) string { return g.CreatedAt })
	utils.WriteJSONResponse(w, http.StatusOK, dto.GoalListResponse{Success: true, Goals: goals})
}

// CreateGoal handles POST /api/goals
// @Summary Create a goal
// @Tags goals
// @Accept json
// @Produce json
// @Param payload body models.Goal true "Goal; user_id is required"
// @Success 200 {object} dto.GoalResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/goals [post]
func (h *GoalsHandler) CreateGoal(w http.ResponseWriter, r *http.Request) {
	req := models.NewGoal()
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	if !requireUserID(w, req.UserID) {
		return
	}
	goal, err := h.tracker.CreateGoal(req)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.GoalResponse{Success: true, Goal: goal})
}

// UpdateGoal handles PUT /api/goals/{id}
// @Summary Update a goal
// @Tags goals
// @Accept json
// @Produce json
// @Param id path string true "Goal ID"
// @Param payload body models.Goal true "Fields to update"
// @Success 200 {object} dto.GoalResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/goals/{id} [put]
func (h *GoalsHandler) UpdateGoal(w http.ResponseWriter, r *http.Request) {
	fields, ok := decodePartial(w, r, models.Goal{})
	if !ok {
		return
	}
	fields["updated_at"] = h.tracker.Clock().Timestamp()
	goal, err := h.stores.Goals.Update(r.PathValue("id"), fields)
	if err != nil {
		writeStoreError(w, err, "Goal not found")
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.GoalResponse{Success: true, Goal: goal})
}

// DeleteGoal handles DELETE /api/goals/{id}
// @Summary Delete a goal
// @Tags goals
// @Produce json
// @Param id path string true "Goal ID"
// @Success 200 {object} dto.MessageResponse
// @Router /api/goals/{id} [delete]
func (h *GoalsHandler) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	if err := h.stores.Goals.Delete(r.PathValue("id")); err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Success: true, Message: "Goal deleted"})
}

// UpdateProgress handles POST /api/goals/{id}/progress
// @Summary Record progress toward a goal
// @Description The goal becomes Completed once current_value reaches target_value
// @Tags goals
// @Accept json
// @Produce json
// @Param id path string true "Goal ID"
// @Param payload body dto.GoalProgressRequest true "New current value"
// @Success 200 {object} dto.GoalResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/goals/{id}/progress [post]
func (h *GoalsHandler) UpdateProgress(w http.ResponseWriter, r *http.Request) {
	var req dto.GoalProgressRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	if req.CurrentValue == nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Current value is required", "")
		return
	}
	goal, err := h.tracker.RecordGoalProgress(r.PathValue("id"), *req.CurrentValue)
	if err != nil {
		writeStoreError(w, err, "Goal not found")
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.GoalResponse{Success: true, Goal: goal})
}
