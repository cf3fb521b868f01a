package handlers

import (
	"net/http"

	"FITZEN_BACK-END/internal/dto"
	"FITZEN_BACK-END/internal/models"
	"FITZEN_BACK-END/internal/repository"
	"FITZEN_BACK-END/internal/storage"
	"FITZEN_BACK-END/internal/utils"
)

// UsersHandler manages user profile endpoints
type UsersHandler struct {
	stores *repository.Stores
}

// NewUsersHandler creates a new UsersHandler
func NewUsersHandler(stores *repository.Stores) *UsersHandler {
	return &UsersHandler{stores: stores}
}

// GetUser handles GET /api/users/{id}
// @Summary Get a user profile
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.UserResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/users/{id} [get]
func (h *UsersHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, ok := h.stores.Users.Get(r.PathValue("id"))
	if !ok {
		utils.WriteErrorResponse(w, http.StatusNotFound, "User not found", "")
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.UserResponse{Success: true, User: user})
}

// UpdateUser handles PUT /api/users/{id}
// @Summary Update a user profile
// @Description Only supplied fields change. Unknown fields and id are ignored.
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param payload body models.User true "Fields to update"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/users/{id} [put]
func (h *UsersHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	fields, ok := decodePartial(w, r, models.User{})
	if !ok {
		return
	}
	user, err := h.stores.Users.Update(r.PathValue("id"), fields)
	if err != nil {
		writeStoreError(w, err, "User not found")
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.UserResponse{Success: true, User: user})
}

// CompleteOnboarding handles POST /api/users/{id}/onboarding
// @Summary Save onboarding choices
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param payload body dto.OnboardingRequest true "Coach preferences"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/users/{id}/onboarding [post]
func (h *UsersHandler) CompleteOnboarding(w http.ResponseWriter, r *http.Request) {
	var req dto.OnboardingRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	_, err := h.stores.Users.Update(r.PathValue("id"), storage.Record{
		"onboarding_completed": "true",
		"coach_gender":         req.CoachGender,
		"coach_style":          req.CoachStyle,
	})
	if err != nil {
		writeStoreError(w, err, "User not found")
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Success: true, Message: "Onboarding completed"})
}

// UpgradePremium handles POST /api/users/{id}/premium
// @Summary Upgrade a user to premium
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/users/{id}/premium [post]
func (h *UsersHandler) UpgradePremium(w http.ResponseWriter, r *http.Request) {
	if _, err := h.stores.Users.Update(r.PathValue("id"), storage.Record{"is_premium": "true"}); err != nil {
		writeStoreError(w, err, "User not found")
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Success: true, Message: "Premium upgrade successful"})
}
