package models

// Table file names, one per entity type.
const (
	UsersTable        = "users.csv"
	WorkoutsTable     = "workouts.csv"
	NutritionTable    = "nutrition.csv"
	RecipesTable      = "recipes.csv"
	GoalsTable        = "goals.csv"
	MeasurementsTable = "measurements.csv"
	HabitsTable       = "habits.csv"
	RemindersTable    = "reminders.csv"
	ChatHistoryTable  = "chat_history.csv"
)

// Entity is implemented by every persisted model.
type Entity interface {
	GetID() string
}
