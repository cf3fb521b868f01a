package services

import (
	"errors"
	"sync"
	"testing"
	"time"

	"FITZEN_BACK-END/internal/apperrors"
	"FITZEN_BACK-END/internal/models"
	"FITZEN_BACK-END/internal/repository"
	"FITZEN_BACK-END/internal/storage"
)

var testNow = time.Date(2024, 1, 15, 9, 30, 0, 123456000, time.Local)

func newTestTracker(t *testing.T) (*Tracker, *repository.Stores) {
	t.Helper()
	stores, err := repository.NewStores(t.TempDir())
	if err != nil {
		t.Fatalf("NewStores: %v", err)
	}
	return NewTracker(stores, FixedClock(testNow)), stores
}

func TestClockFormats(t *testing.T) {
	t.Parallel()

	c := FixedClock(testNow)
	if got := c.Timestamp(); got != "2024-01-15T09:30:00.123456" {
		t.Fatalf("unexpected timestamp %q", got)
	}
	if got := c.Today(); got != "2024-01-15" {
		t.Fatalf("unexpected date %q", got)
	}
}

func TestCreateAssignsIDAndTimestamps(t *testing.T) {
	t.Parallel()

	tr, stores := newTestTracker(t)
	w := models.NewWorkout()
	w.UserID = "u1"
	created, err := tr.CreateWorkout(w)
	if err != nil {
		t.Fatalf("CreateWorkout: %v", err)
	}
	if created.ID == "" || created.CreatedAt != "2024-01-15T09:30:00.123456" {
		t.Fatalf("missing id or timestamp: %+v", created)
	}
	if created.Title != "Workout" || created.Type != "General" || created.Difficulty != "Intermediate" {
		t.Fatalf("defaults not kept: %+v", created)
	}
	got, ok := stores.Workouts.Get(created.ID)
	if !ok || got != created {
		t.Fatalf("stored workout differs: %+v vs %+v", got, created)
	}
}

func TestLogMealDefaultsLoggedAt(t *testing.T) {
	t.Parallel()

	tr, _ := newTestTracker(t)
	l, err := tr.LogMeal(models.NewNutritionLog())
	if err != nil {
		t.Fatalf("LogMeal: %v", err)
	}
	if l.LoggedAt != l.CreatedAt || l.MealType != "Snack" {
		t.Fatalf("unexpected log: %+v", l)
	}

	l, err = tr.LogMeal(models.NutritionLog{LoggedAt: "2023-12-31T20:00:00"})
	if err != nil {
		t.Fatalf("LogMeal: %v", err)
	}
	if l.LoggedAt != "2023-12-31T20:00:00" {
		t.Fatalf("supplied logged_at overwritten: %q", l.LoggedAt)
	}
}

func TestMeasurementBMI(t *testing.T) {
	t.Parallel()

	tr, _ := newTestTracker(t)
	m, err := tr.CreateMeasurement(models.Measurement{UserID: "u1", Weight: 75, Height: 175})
	if err != nil {
		t.Fatalf("CreateMeasurement: %v", err)
	}
	if m.BMI != 24.5 {
		t.Fatalf("expected bmi 24.5, got %v", m.BMI)
	}

	noHeight, err := tr.CreateMeasurement(models.Measurement{UserID: "u1", Weight: 75})
	if err != nil {
		t.Fatalf("CreateMeasurement: %v", err)
	}
	if noHeight.BMI != 0 {
		t.Fatalf("expected bmi 0 without height, got %v", noHeight.BMI)
	}

	// Weight only: height falls back to the stored value.
	updated, err := tr.UpdateMeasurement(m.ID, storage.Record{"weight": "70"})
	if err != nil {
		t.Fatalf("UpdateMeasurement: %v", err)
	}
	if updated.BMI != 22.9 || updated.Height != 175 {
		t.Fatalf("unexpected update: %+v", updated)
	}

	// Zero height leaves bmi untouched.
	updated, err = tr.UpdateMeasurement(m.ID, storage.Record{"height": "0"})
	if err != nil {
		t.Fatalf("UpdateMeasurement: %v", err)
	}
	if updated.BMI != 22.9 || updated.Height != 0 {
		t.Fatalf("bmi should be untouched: %+v", updated)
	}

	// Unrelated fields do not touch bmi.
	updated, err = tr.UpdateMeasurement(m.ID, storage.Record{"waist": "80", "bmi": "99"})
	if err != nil {
		t.Fatalf("UpdateMeasurement: %v", err)
	}
	if updated.BMI != 99 || updated.Waist != 80 {
		t.Fatalf("unexpected update: %+v", updated)
	}

	if _, err := tr.UpdateMeasurement("missing", storage.Record{"weight": "1"}); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestLatestMeasurement(t *testing.T) {
	t.Parallel()

	tr, _ := newTestTracker(t)
	if _, err := tr.LatestMeasurement("u1"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found with no data, got %v", err)
	}
	for _, at := range []string{"2024-01-01", "2024-03-01", "2024-02-01"} {
		if _, err := tr.CreateMeasurement(models.Measurement{UserID: "u1", MeasuredAt: at}); err != nil {
			t.Fatalf("CreateMeasurement: %v", err)
		}
	}
	latest, err := tr.LatestMeasurement("u1")
	if err != nil {
		t.Fatalf("LatestMeasurement: %v", err)
	}
	if latest.MeasuredAt != "2024-03-01" {
		t.Fatalf("unexpected latest: %+v", latest)
	}
}

func TestRecordGoalProgress(t *testing.T) {
	t.Parallel()

	tr, _ := newTestTracker(t)
	g := models.NewGoal()
	g.TargetValue = 10
	goal, err := tr.CreateGoal(g)
	if err != nil {
		t.Fatalf("CreateGoal: %v", err)
	}

	got, err := tr.RecordGoalProgress(goal.ID, 9)
	if err != nil {
		t.Fatalf("RecordGoalProgress: %v", err)
	}
	if got.Status != models.GoalStatusActive || got.CurrentValue != 9 {
		t.Fatalf("unexpected goal below target: %+v", got)
	}

	got, err = tr.RecordGoalProgress(goal.ID, 10)
	if err != nil {
		t.Fatalf("RecordGoalProgress: %v", err)
	}
	if got.Status != models.GoalStatusCompleted {
		t.Fatalf("expected Completed, got %q", got.Status)
	}

	got, err = tr.RecordGoalProgress(goal.ID, 2)
	if err != nil {
		t.Fatalf("RecordGoalProgress: %v", err)
	}
	if got.Status != models.GoalStatusCompleted {
		t.Fatalf("status must not revert, got %q", got.Status)
	}

	if _, err := tr.RecordGoalProgress("missing", 1); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestHabitStreaks(t *testing.T) {
	t.Parallel()

	tr, _ := newTestTracker(t)
	h, err := tr.CreateHabit(models.NewHabit())
	if err != nil {
		t.Fatalf("CreateHabit: %v", err)
	}

	const n = 4
	for i := 0; i < n; i++ {
		if h, err = tr.CompleteHabit(h.ID); err != nil {
			t.Fatalf("CompleteHabit: %v", err)
		}
	}
	if h.Streak != n || h.CompletedDays != n {
		t.Fatalf("after %d completes: %+v", n, h)
	}

	if h, err = tr.SkipHabit(h.ID); err != nil {
		t.Fatalf("SkipHabit: %v", err)
	}
	if h.Streak != 0 || h.CompletedDays != n {
		t.Fatalf("after skip: %+v", h)
	}

	if h, err = tr.CompleteHabit(h.ID); err != nil {
		t.Fatalf("CompleteHabit: %v", err)
	}
	if h.Streak != 1 || h.CompletedDays != n+1 {
		t.Fatalf("after skip then complete: %+v", h)
	}

	if _, err := tr.SkipHabit("missing"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestConcurrentHabitCompletesAllCount(t *testing.T) {
	t.Parallel()

	tr, stores := newTestTracker(t)
	h, err := tr.CreateHabit(models.NewHabit())
	if err != nil {
		t.Fatalf("CreateHabit: %v", err)
	}

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := tr.CompleteHabit(h.ID); err != nil {
				t.Errorf("CompleteHabit: %v", err)
			}
		}()
	}
	wg.Wait()

	got, _ := stores.Habits.Get(h.ID)
	if got.Streak != n || got.CompletedDays != n {
		t.Fatalf("lost completions: %+v", got)
	}
}

func TestConcurrentRemindersTogglesPair(t *testing.T) {
	t.Parallel()

	tr, stores := newTestTracker(t)
	r, err := tr.CreateReminder(models.NewReminder())
	if err != nil {
		t.Fatalf("CreateReminder: %v", err)
	}

	// An even number of toggles lands back on the starting state.
	const n = 10
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := tr.ToggleReminder(r.ID); err != nil {
				t.Errorf("ToggleReminder: %v", err)
			}
		}()
	}
	wg.Wait()

	got, _ := stores.Reminders.Get(r.ID)
	if got.IsActive != r.IsActive {
		t.Fatalf("toggles lost: started %v, ended %v", r.IsActive, got.IsActive)
	}
}

func TestToggleAndUpcomingReminders(t *testing.T) {
	t.Parallel()

	tr, _ := newTestTracker(t)
	r := models.NewReminder()
	r.UserID = "u1"
	r.ScheduledTime = "2024-01-15T10:00:00"
	r, err := tr.CreateReminder(r)
	if err != nil {
		t.Fatalf("CreateReminder: %v", err)
	}
	past := models.NewReminder()
	past.UserID = "u1"
	past.ScheduledTime = "2024-01-15T09:00:00"
	if _, err := tr.CreateReminder(past); err != nil {
		t.Fatalf("CreateReminder: %v", err)
	}

	if got := tr.UpcomingReminders("u1"); len(got) != 1 || got[0].ID != r.ID {
		t.Fatalf("unexpected upcoming: %+v", got)
	}

	toggled, err := tr.ToggleReminder(r.ID)
	if err != nil {
		t.Fatalf("ToggleReminder: %v", err)
	}
	if toggled.IsActive {
		t.Fatalf("expected inactive after toggle")
	}
	if got := tr.UpcomingReminders("u1"); len(got) != 0 {
		t.Fatalf("inactive reminder listed: %+v", got)
	}
}

func TestDailySummaryDefaultsToToday(t *testing.T) {
	t.Parallel()

	tr, _ := newTestTracker(t)
	l := models.NewNutritionLog()
	l.UserID = "u1"
	l.Calories = 250
	if _, err := tr.LogMeal(l); err != nil {
		t.Fatalf("LogMeal: %v", err)
	}

	date, summary := tr.DailySummary("u1", "")
	if date != "2024-01-15" {
		t.Fatalf("unexpected date %q", date)
	}
	if summary.TotalCalories != 250 || summary.MealCount != 1 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}
