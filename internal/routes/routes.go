package routes

import (
	"net/http"
	"strings"

	httpSwagger "github.com/swaggo/http-swagger"

	"FITZEN_BACK-END/internal/config"
	"FITZEN_BACK-END/internal/handlers"
	"FITZEN_BACK-END/internal/middleware"
)

// Handlers groups every HTTP handler the router mounts
type Handlers struct {
	Health       *handlers.HealthHandler
	Auth         *handlers.AuthHandler
	Users        *handlers.UsersHandler
	Workouts     *handlers.WorkoutsHandler
	Nutrition    *handlers.NutritionHandler
	Goals        *handlers.GoalsHandler
	Habits       *handlers.HabitsHandler
	Measurements *handlers.MeasurementsHandler
	Reminders    *handlers.RemindersHandler
	Chat         *handlers.ChatHandler
}

// SetupRoutes configures all application routes on mux
func SetupRoutes(mux *http.ServeMux, cfg *config.Config, h Handlers) {
	prefix := cfg.Server.APIPrefix
	if prefix == "/" {
		prefix = ""
	}

	// Health check routes
	mux.HandleFunc("GET /health", h.Health.HealthCheck)
	mux.HandleFunc("GET /livez", h.Health.LivenessCheck)
	mux.HandleFunc("GET /readyz", h.Health.ReadinessCheck)

	// API documentation
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// Authentication routes stay public
	public := func(pattern string, fn http.HandlerFunc) {
		method, path := splitPattern(pattern)
		mux.Handle(method+" "+prefix+path, fn)
	}
	public("POST /auth/send-otp", h.Auth.SendOTP)
	public("POST /auth/verify-otp", h.Auth.VerifyOTP)
	public("POST /auth/google-signin", h.Auth.GoogleSignIn)
	public("POST /auth/apple-signin", h.Auth.AppleSignIn)

	// Everything else carries the caller's token when one is sent
	api := func(pattern string, fn http.HandlerFunc) {
		method, path := splitPattern(pattern)
		mux.Handle(method+" "+prefix+path, middleware.AuthMiddleware(fn, &cfg.JWT, cfg.Auth.Required))
	}

	// Users
	api("GET /users/{id}", h.Users.GetUser)
	api("PUT /users/{id}", h.Users.UpdateUser)
	api("POST /users/{id}/onboarding", h.Users.CompleteOnboarding)
	api("POST /users/{id}/premium", h.Users.UpgradePremium)

	// Workouts
	api("GET /workouts/{user_id}", h.Workouts.ListWorkouts)
	api("POST /workouts", h.Workouts.CreateWorkout)
	api("PUT /workouts/{id}", h.Workouts.UpdateWorkout)
	api("DELETE /workouts/{id}", h.Workouts.DeleteWorkout)
	api("POST /workouts/generate-plan", h.Workouts.GeneratePlan)
	api("GET /workouts/stats/{user_id}", h.Workouts.Stats)

	// Nutrition
	api("GET /nutrition/log/{user_id}", h.Nutrition.ListLogs)
	api("POST /nutrition/log", h.Nutrition.LogMeal)
	api("DELETE /nutrition/log/{id}", h.Nutrition.DeleteLog)
	api("GET /nutrition/daily-summary/{user_id}", h.Nutrition.DailySummary)
	api("POST /nutrition/generate-meal-plan", h.Nutrition.GenerateMealPlan)
	api("GET /nutrition/recipes", h.Nutrition.ListRecipes)
	api("GET /nutrition/recipes/{id}", h.Nutrition.GetRecipe)
	api("POST /nutrition/recipes/suggest", h.Nutrition.SuggestRecipes)

	// Goals
	api("GET /goals/{user_id}", h.Goals.ListGoals)
	api("POST /goals", h.Goals.CreateGoal)
	api("PUT /goals/{id}", h.Goals.UpdateGoal)
	api("DELETE /goals/{id}", h.Goals.DeleteGoal)
	api("POST /goals/{id}/progress", h.Goals.UpdateProgress)

	// Habits
	api("GET /habits/{user_id}", h.Habits.ListHabits)
	api("POST /habits", h.Habits.CreateHabit)
	api("PUT /habits/{id}", h.Habits.UpdateHabit)
	api("DELETE /habits/{id}", h.Habits.DeleteHabit)
	api("POST /habits/{id}/complete", h.Habits.CompleteHabit)
	api("POST /habits/{id}/skip", h.Habits.SkipHabit)
	api("GET /habits/analyze/{user_id}", h.Habits.AnalyzeHabits)

	// Measurements
	api("GET /measurements/{user_id}", h.Measurements.ListMeasurements)
	api("POST /measurements", h.Measurements.CreateMeasurement)
	api("PUT /measurements/{id}", h.Measurements.UpdateMeasurement)
	api("DELETE /measurements/{id}", h.Measurements.DeleteMeasurement)
	api("GET /measurements/latest/{user_id}", h.Measurements.Latest)
	api("GET /measurements/progress/{user_id}", h.Measurements.Progress)

	// Reminders
	api("GET /reminders/{user_id}", h.Reminders.ListReminders)
	api("POST /reminders", h.Reminders.CreateReminder)
	api("PUT /reminders/{id}", h.Reminders.UpdateReminder)
	api("DELETE /reminders/{id}", h.Reminders.DeleteReminder)
	api("POST /reminders/{id}/toggle", h.Reminders.ToggleReminder)
	api("GET /reminders/upcoming/{user_id}", h.Reminders.Upcoming)

	// Chat
	api("POST /chat/message", h.Chat.SendMessage)
	api("GET /chat/history/{user_id}", h.Chat.History)
	api("DELETE /chat/clear/{user_id}", h.Chat.Clear)

	// Root route
	mux.HandleFunc("GET /{$}", rootHandler)
}

func splitPattern(pattern string) (method, path string) {
	method, path, _ = strings.Cut(pattern, " ")
	return method, path
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("Fitzen backend is running."))
}
