package services

import (
	"errors"

	"FITZEN_BACK-END/internal/apperrors"
	"FITZEN_BACK-END/internal/models"
	"FITZEN_BACK-END/internal/repository"
	"FITZEN_BACK-END/internal/storage"

	"github.com/google/uuid"
)

// Tracker applies the domain rules for workouts, nutrition, goals, habits,
// measurements and reminders on top of the stores.
type Tracker struct {
	stores *repository.Stores
	clock  Clock
}

func NewTracker(stores *repository.Stores, clock Clock) *Tracker {
	if clock == nil {
		clock = SystemClock
	}
	return &Tracker{stores: stores, clock: clock}
}

func (t *Tracker) Clock() Clock { return t.clock }

// NewID returns a fresh random entity id.
func NewID() string { return uuid.NewString() }

func (t *Tracker) CreateWorkout(w models.Workout) (models.Workout, error) {
	w.ID = NewID()
	w.CreatedAt = t.clock.Timestamp()
	if err := t.stores.Workouts.Create(w); err != nil {
		return models.Workout{}, err
	}
	return w, nil
}

// LogMeal stores a nutrition log; logged_at defaults to now.
func (t *Tracker) LogMeal(l models.NutritionLog) (models.NutritionLog, error) {
	now := t.clock.Timestamp()
	l.ID = NewID()
	if l.LoggedAt == "" {
		l.LoggedAt = now
	}
	l.CreatedAt = now
	if err := t.stores.Nutrition.Create(l); err != nil {
		return models.NutritionLog{}, err
	}
	return l, nil
}

func (t *Tracker) CreateGoal(g models.Goal) (models.Goal, error) {
	now := t.clock.Timestamp()
	g.ID = NewID()
	g.CreatedAt = now
	g.UpdatedAt = now
	if err := t.stores.Goals.Create(g); err != nil {
		return models.Goal{}, err
	}
	return g, nil
}

func (t *Tracker) CreateHabit(h models.Habit) (models.Habit, error) {
	now := t.clock.Timestamp()
	h.ID = NewID()
	h.CreatedAt = now
	h.UpdatedAt = now
	if err := t.stores.Habits.Create(h); err != nil {
		return models.Habit{}, err
	}
	return h, nil
}

func (t *Tracker) CreateReminder(r models.Reminder) (models.Reminder, error) {
	r.ID = NewID()
	r.CreatedAt = t.clock.Timestamp()
	if err := t.stores.Reminders.Create(r); err != nil {
		return models.Reminder{}, err
	}
	return r, nil
}

// CreateMeasurement stores a measurement with its BMI derived from weight and height.
func (t *Tracker) CreateMeasurement(m models.Measurement) (models.Measurement, error) {
	now := t.clock.Timestamp()
	m.ID = NewID()
	m.BMI = CalculateBMI(m.Weight, m.Height)
	if m.MeasuredAt == "" {
		m.MeasuredAt = now
	}
	m.CreatedAt = now
	if err := t.stores.Measurements.Create(m); err != nil {
		return models.Measurement{}, err
	}
	return m, nil
}

// UpdateMeasurement applies fields and recomputes BMI when weight or height is
// among them. A missing operand falls back to the stored value; when either
// operand is not positive the stored BMI is left alone.
func (t *Tracker) UpdateMeasurement(id string, fields storage.Record) (models.Measurement, error) {
	_, hasWeight := fields["weight"]
	_, hasHeight := fields["height"]
	m, err := t.stores.Measurements.Modify(id, func(current models.Measurement) storage.Record {
		if !hasWeight && !hasHeight {
			return fields
		}
		weight, height := current.Weight, current.Height
		if hasWeight {
			weight = storage.ParseFloat(fields["weight"])
		}
		if hasHeight {
			height = storage.ParseFloat(fields["height"])
		}
		if weight <= 0 || height <= 0 {
			return fields
		}
		out := fields.Clone()
		out["bmi"] = storage.FormatValue(CalculateBMI(weight, height))
		return out
	})
	return m, notFound(err, "Measurement not found")
}

// LatestMeasurement returns the user's measurement with the greatest measured_at.
func (t *Tracker) LatestMeasurement(userID string) (models.Measurement, error) {
	ms := t.stores.Measurements.ByUser(userID)
	if len(ms) == 0 {
		return models.Measurement{}, apperrors.NewNotFoundError("No measurements found")
	}
	SortDescending(ms, func(m models.Measurement) string { return m.MeasuredAt })
	return ms[0], nil
}

func (t *Tracker) MeasurementProgress(userID string) MeasurementProgress {
	return BuildMeasurementProgress(t.stores.Measurements.ByUser(userID))
}

// RecordGoalProgress stores a new current value and marks the goal Completed
// once it reaches the target.
func (t *Tracker) RecordGoalProgress(id string, current float64) (models.Goal, error) {
	g, err := t.stores.Goals.Modify(id, func(g models.Goal) storage.Record {
		return storage.Record{
			"current_value": storage.FormatValue(current),
			"status":        GoalStatusAfterProgress(g, current),
			"updated_at":    t.clock.Timestamp(),
		}
	})
	return g, notFound(err, "Goal not found")
}

// CompleteHabit counts today as done: completed_days and streak both grow by one.
func (t *Tracker) CompleteHabit(id string) (models.Habit, error) {
	h, err := t.stores.Habits.Modify(id, func(h models.Habit) storage.Record {
		return storage.Record{
			"completed_days": storage.FormatValue(h.CompletedDays + 1),
			"streak":         storage.FormatValue(h.Streak + 1),
			"updated_at":     t.clock.Timestamp(),
		}
	})
	return h, notFound(err, "Habit not found")
}

// SkipHabit resets the streak. completed_days is kept.
func (t *Tracker) SkipHabit(id string) (models.Habit, error) {
	h, err := t.stores.Habits.Update(id, storage.Record{
		"streak":     "0",
		"updated_at": t.clock.Timestamp(),
	})
	return h, notFound(err, "Habit not found")
}

func (t *Tracker) ToggleReminder(id string) (models.Reminder, error) {
	r, err := t.stores.Reminders.Modify(id, func(r models.Reminder) storage.Record {
		return storage.Record{"is_active": storage.FormatValue(!r.IsActive)}
	})
	return r, notFound(err, "Reminder not found")
}

// notFound swaps the table's missing-row error for a message naming the entity.
func notFound(err error, msg string) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		return apperrors.NewNotFoundError(msg)
	}
	return err
}

// UpcomingReminders lists the user's next active reminders.
func (t *Tracker) UpcomingReminders(userID string) []models.Reminder {
	return FilterUpcoming(t.stores.Reminders.ByUser(userID), t.clock.Timestamp(), UpcomingReminderLimit)
}

// DailySummary summarises one day of a user's nutrition. An empty date means today.
func (t *Tracker) DailySummary(userID, date string) (string, DailySummary) {
	if date == "" {
		date = t.clock.Today()
	}
	return date, SummarizeDay(t.stores.Nutrition.ByUser(userID), date)
}

func (t *Tracker) WorkoutStats(userID string) WorkoutStats {
	return ComputeWorkoutStats(t.stores.Workouts.ByUser(userID))
}
