package repository

import (
	"FITZEN_BACK-END/internal/models"
	"FITZEN_BACK-END/internal/storage"
)

// Stores holds one store per entity type.
type Stores struct {
	Users        *Store[models.User]
	Workouts     *Store[models.Workout]
	Nutrition    *Store[models.NutritionLog]
	Recipes      *Store[models.Recipe]
	Goals        *Store[models.Goal]
	Measurements *Store[models.Measurement]
	Habits       *Store[models.Habit]
	Reminders    *Store[models.Reminder]
	ChatHistory  *Store[models.ChatMessage]
}

// New builds the stores under dataDir without touching the filesystem.
func New(dataDir string) *Stores {
	return &Stores{
		Users:        NewStore[models.User](dataDir, models.UsersTable),
		Workouts:     NewStore[models.Workout](dataDir, models.WorkoutsTable),
		Nutrition:    NewStore[models.NutritionLog](dataDir, models.NutritionTable),
		Recipes:      NewStore[models.Recipe](dataDir, models.RecipesTable),
		Goals:        NewStore[models.Goal](dataDir, models.GoalsTable),
		Measurements: NewStore[models.Measurement](dataDir, models.MeasurementsTable),
		Habits:       NewStore[models.Habit](dataDir, models.HabitsTable),
		Reminders:    NewStore[models.Reminder](dataDir, models.RemindersTable),
		ChatHistory:  NewStore[models.ChatMessage](dataDir, models.ChatHistoryTable),
	}
}

// NewStores builds the stores and creates any missing table files.
func NewStores(dataDir string) (*Stores, error) {
	s := New(dataDir)
	if err := s.Init(); err != nil {
		return nil, err
	}
	return s, nil
}

// Init creates every missing table file with its header row.
func (s *Stores) Init() error {
	for _, t := range s.Tables() {
		if err := t.EnsureInitialized(); err != nil {
			return err
		}
	}
	return nil
}

// Tables lists the underlying tables in a fixed order.
func (s *Stores) Tables() []*storage.Table {
	return []*storage.Table{
		s.Users.Table(),
		s.Workouts.Table(),
		s.Nutrition.Table(),
		s.Recipes.Table(),
		s.Goals.Table(),
		s.Measurements.Table(),
		s.Habits.Table(),
		s.Reminders.Table(),
		s.ChatHistory.Table(),
	}
}

// Table looks up a table by file name, with or without the .csv suffix.
func (s *Stores) Table(name string) (*storage.Table, bool) {
	for _, t := range s.Tables() {
		if t.Name() == name || t.Name() == name+".csv" {
			return t, true
		}
	}
	return nil, false
}
