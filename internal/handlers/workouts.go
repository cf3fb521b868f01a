package handlers

import (
	"net/http"

	"FITZEN_BACK-END/internal/dto"
	"FITZEN_BACK-END/internal/models"
	"FITZEN_BACK-END/internal/repository"
	"FITZEN_BACK-END/internal/services"
	"FITZEN_BACK-END/internal/utils"
)

// WorkoutsHandler manages workout endpoints
type WorkoutsHandler struct {
	stores  *repository.Stores
	tracker *services.Tracker
	advice  *services.AdviceService
}

// NewWorkoutsHandler creates a new WorkoutsHandler
func NewWorkoutsHandler(stores *repository.Stores, tracker *services.Tracker, advice *services.AdviceService) *WorkoutsHandler {
	return &WorkoutsHandler{stores: stores, tracker: tracker, advice: advice}
}

// ListWorkouts handles GET /api/workouts/{user_id}
// @Summary List a user's workouts, newest first
// @Tags workouts
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} dto.WorkoutListResponse
// @Router /api/workouts/{user_id} [get]
func (h *WorkoutsHandler) ListWorkouts(w http.ResponseWriter, r *http.Request) {
	workouts := h.stores.Workouts.ByUser(r.PathValue("user_id"))
	services.SortDescending(workouts, func(wo models.Workout) string { return wo.CreatedAt })
	utils.WriteJSONResponse(w, http.StatusOK, dto.WorkoutListResponse{Success: true, Workouts: workouts})
}

// CreateWorkout handles POST /api/workouts
// @Summary Log a workout
// @Tags workouts
// @Accept json
// @Produce json
// @Param payload body models.Workout true "Workout; user_id is required"
// @Success 200 {object} dto.WorkoutResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/workouts [post]
func (h *WorkoutsHandler) CreateWorkout(w http.ResponseWriter, r *http.Request) {
	req := models.NewWorkout()
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	if !requireUserID(w, req.UserID) {
		return
	}
	workout, err := h.tracker.CreateWorkout(req)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.WorkoutResponse{Success: true, Workout: workout})
}

// UpdateWorkout handles PUT /api/workouts/{id}
// @Summary Update a workout
// @Tags workouts
// @Accept json
// @Produce json
// @Param id path string true "Workout ID"
// @Param payload body models.Workout true "Fields to update"
// @Success 200 {object} dto.WorkoutResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/workouts/{id} [put]
func (h *WorkoutsHandler) UpdateWorkout(w http.ResponseWriter, r *http.Request) {
	fields, ok := decodePartial(w, r, models.Workout{})
	if !ok {
		return
	}
	workout, err := h.stores.Workouts.Update(r.PathValue("id"), fields)
	if err != nil {
		writeStoreError(w, err, "Workout not found")
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.WorkoutResponse{Success: true, Workout: workout})
}

// DeleteWorkout handles DELETE /api/workouts/{id}
// @Summary Delete a workout
// @Tags workouts
// @Produce json
// @Param id path string true "Workout ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/workouts/{id} [delete]
func (h *WorkoutsHandler) DeleteWorkout(w http.ResponseWriter, r *http.Request) {
	if err := h.stores.Workouts.Delete(r.PathValue("id")); err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Success: true, Message: "Workout deleted"})
}

// GeneratePlan handles POST /api/workouts/generate-plan
// @Summary Generate a weekly workout plan
// @Tags workouts
// @Accept json
// @Produce json
// @Param payload body dto.PlanRequest true "User profile"
// @Success 200 {object} dto.PlanResponse
// @Router /api/workouts/generate-plan [post]
func (h *WorkoutsHandler) GeneratePlan(w http.ResponseWriter, r *http.Request) {
	var req dto.PlanRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	plan := h.advice.WorkoutPlan(r.Context(), req.UserProfile)
	utils.WriteJSONResponse(w, http.StatusOK, dto.PlanResponse{Success: true, Plan: plan})
}

// Stats handles GET /api/workouts/stats/{user_id}
// @Summary Workout totals for a user
// @Tags workouts
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} dto.WorkoutStatsResponse
// @Router /api/workouts/stats/{user_id} [get]
func (h *WorkoutsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats := h.tracker.WorkoutStats(r.PathValue("user_id"))
	utils.WriteJSONResponse(w, http.StatusOK, dto.WorkoutStatsResponse{Success: true, Stats: stats})
}
