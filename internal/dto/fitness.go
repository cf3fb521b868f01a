package dto

import (
	"FITZEN_BACK-END/internal/models"
	"FITZEN_BACK-END/internal/services"
)

// UserResponse wraps a single user
type UserResponse struct {
	Success bool        `json:"success"`
	User    models.User `json:"user"`
}

// OnboardingRequest carries the coach preferences chosen during onboarding
type OnboardingRequest struct {
	CoachGender string `json:"coach_gender"`
	CoachStyle  string `json:"coach_style"`
}

type WorkoutResponse struct {
	Success bool           `json:"success"`
	Workout models.Workout `json:"workout"`
}

type WorkoutListResponse struct {
	Success  bool             `json:"success"`
	Workouts []models.Workout `json:"workouts"`
}

type WorkoutStatsResponse struct {
	Success bool                  `json:"success"`
	Stats   services.WorkoutStats `json:"stats"`
}

type NutritionLogResponse struct {
	Success bool                `json:"success"`
	Log     models.NutritionLog `json:"log"`
}

type NutritionLogListResponse struct {
	Success bool                  `json:"success"`
	Logs    []models.NutritionLog `json:"logs"`
}

type DailySummaryResponse struct {
	Success bool                  `json:"success"`
	Date    string                `json:"date"`
	Summary services.DailySummary `json:"summary"`
}

type RecipeResponse struct {
	Success bool          `json:"success"`
	Recipe  models.Recipe `json:"recipe"`
}

type RecipeListResponse struct {
	Success bool            `json:"success"`
	Recipes []models.Recipe `json:"recipes"`
}

type GoalResponse struct {
	Success bool        `json:"success"`
	Goal    models.Goal `json:"goal"`
}

type GoalListResponse struct {
	Success bool          `json:"success"`
	Goals   []models.Goal `json:"goals"`
}

// GoalProgressRequest carries the new current value; it is required
type GoalProgressRequest struct {
	CurrentValue *float64 `json:"current_value"`
}

type HabitResponse struct {
	Success bool         `json:"success"`
	Habit   models.Habit `json:"habit"`
}

type HabitListResponse struct {
	Success bool           `json:"success"`
	Habits  []models.Habit `json:"habits"`
}

// HabitAnalysisResponse omits habits when the user tracks none
type HabitAnalysisResponse struct {
	Success  bool           `json:"success"`
	Habits   []models.Habit `json:"habits,omitempty"`
	Analysis string         `json:"analysis"`
}

type MeasurementResponse struct {
	Success     bool               `json:"success"`
	Measurement models.Measurement `json:"measurement"`
}

type MeasurementListResponse struct {
	Success      bool                 `json:"success"`
	Measurements []models.Measurement `json:"measurements"`
}

type MeasurementProgressResponse struct {
	Success  bool                         `json:"success"`
	Progress services.MeasurementProgress `json:"progress"`
}

type ReminderResponse struct {
	Success  bool            `json:"success"`
	Reminder models.Reminder `json:"reminder"`
}

type ReminderListResponse struct {
	Success   bool              `json:"success"`
	Reminders []models.Reminder `json:"reminders"`
}
