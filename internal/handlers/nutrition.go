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

// NutritionHandler manages meal logs, daily summaries and recipes
type NutritionHandler struct {
	stores  *repository.Stores
	tracker *services.Tracker
	advice  *services.AdviceService
}

// NewNutritionHandler creates a new NutritionHandler
func NewNutritionHandler(stores *repository.Stores, tracker *services.Tracker, advice *services.AdviceService) *NutritionHandler {
	return &NutritionHandler{stores: stores, tracker: tracker, advice: advice}
}

// ListLogs handles GET /api/nutrition/log/{user_id}
// @Summary List a user's meal logs, most recently logged first
// @Tags nutrition
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} dto.NutritionLogListResponse
// @Router /api/nutrition/log/{user_id} [get]
func (h *NutritionHandler) ListLogs(w http.ResponseWriter, r *http.Request) {
	logs := h.stores.Nutrition.ByUser(r.PathValue("user_id"))
	services.SortDescending(logs, func(l models.NutritionLog) string { return l.LoggedAt })
	utils.WriteJSONResponse(w, http.StatusOK, dto.NutritionLogListResponse{Success: true, Logs: logs})
}

// LogMeal handles POST /api/nutrition/log
// @Summary Log a meal
// @Tags nutrition
// @Accept json
// @Produce json
// @Param payload body models.NutritionLog true "Meal; user_id is required"
// @Success 200 {object} dto.NutritionLogResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/nutrition/log [post]
func (h *NutritionHandler) LogMeal(w http.ResponseWriter, r *http.Request) {
	req := models.NewNutritionLog()
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	if !requireUserID(w, req.UserID) {
		return
	}
	log, err := h.tracker.LogMeal(req)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.NutritionLogResponse{Success: true, Log: log})
}

// DeleteLog handles DELETE /api/nutrition/log/{id}
// @Summary Delete a meal log
// @Tags nutrition
// @Produce json
// @Param id path string true "Log ID"
// @Success 200 {object} dto.MessageResponse
// @Router /api/nutrition/log/{id} [delete]
func (h *NutritionHandler) DeleteLog(w http.ResponseWriter, r *http.Request) {
	if err := h.stores.Nutrition.Delete(r.PathValue("id")); err != nil {
		utils.WriteAppError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Success: true, Message: "Log deleted"})
}

// DailySummary handles GET /api/nutrition/daily-summary/{user_id}
// @Summary Nutrition totals for one day
// @Description Logs match when logged_at starts with the date string
// @Tags nutrition
// @Produce json
// @Param user_id path string true "User ID"
// @Param date query string false "YYYY-MM-DD, defaults to today"
// @Success 200 {object} dto.DailySummaryResponse
// @Router /api/nutrition/daily-summary/{user_id} [get]
func (h *NutritionHandler) DailySummary(w http.ResponseWriter, r *http.Request) {
	date, summary := h.tracker.DailySummary(r.PathValue("user_id"), r.URL.Query().Get("date"))
	utils.WriteJSONResponse(w, http.StatusOK, dto.DailySummaryResponse{Success: true, Date: date, Summary: summary})
}

// GenerateMealPlan handles POST /api/nutrition/generate-meal-plan
// @Summary Generate a daily meal plan
// @Tags nutrition
// @Accept json
// @Produce json
// @Param payload body dto.PlanRequest true "User profile"
// @Success 200 {object} dto.PlanResponse
// @Router /api/nutrition/generate-meal-plan [post]
func (h *NutritionHandler) GenerateMealPlan(w http.ResponseWriter, r *http.Request) {
	var req dto.PlanRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	plan := h.advice.MealPlan(r.Context(), req.UserProfile)
	utils.WriteJSONResponse(w, http.StatusOK, dto.PlanResponse{Success: true, Plan: plan})
}

// ListRecipes handles GET /api/nutrition/recipes
// @Summary List recipes
// @Tags nutrition
// @Produce json
// @Param cuisine query string false "Case-insensitive cuisine filter"
// @Success 200 {object} dto.RecipeListResponse
// @Router /api/nutrition/recipes [get]
func (h *NutritionHandler) ListRecipes(w http.ResponseWriter, r *http.Request) {
	recipes := h.stores.Recipes.All()
	if cuisine := r.URL.Query().Get("cuisine"); cuisine != "" {
		filtered := recipes[:0]
		for _, rc := range recipes {
			if strings.EqualFold(rc.Cuisine, cuisine) {
				filtered = append(filtered, rc)
			}
		}
		recipes = filtered
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.RecipeListResponse{Success: true, Recipes: recipes})
}

// GetRecipe handles GET /api/nutrition/recipes/{id}
// @Summary Get a recipe
// @Tags nutrition
// @Produce json
// @Param id path string true "Recipe ID"
// @Success 200 {object} dto.RecipeResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/nutrition/recipes/{id} [get]
func (h *NutritionHandler) GetRecipe(w http.ResponseWriter, r *http.Request) {
	recipe, ok := h.stores.Recipes.Get(r.PathValue("id"))
	if !ok {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Recipe not found", "")
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.RecipeResponse{Success: true, Recipe: recipe})
}

// SuggestRecipes handles POST /api/nutrition/recipes/suggest
// @Summary Suggest recipes for the given preferences
// @Tags nutrition
// @Accept json
// @Produce json
// @Param payload body dto.RecipeSuggestRequest true "Preferences"
// @Success 200 {object} dto.RecipeSuggestResponse
// @Router /api/nutrition/recipes/suggest [post]
func (h *NutritionHandler) SuggestRecipes(w http.ResponseWriter, r *http.Request) {
	var req dto.RecipeSuggestRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	suggestions := h.advice.SuggestRecipes(r.Context(), req.Preferences)
	utils.WriteJSONResponse(w, http.StatusOK, dto.RecipeSuggestResponse{Success: true, Suggestions: suggestions})
}
