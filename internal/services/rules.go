package services

import (
	"cmp"
	"math"
	"slices"
	"strings"

	"FITZEN_BACK-END/internal/models"
)

const (
	// UpcomingReminderLimit caps the upcoming reminders list.
	UpcomingReminderLimit = 10
	// ChatHistoryLimit caps the chat history list.
	ChatHistoryLimit = 50

	defaultMealType    = "Snack"
	defaultWorkoutType = "General"
)

// CalculateBMI returns weight / (height in metres)^2 rounded to one decimal.
// Zero or negative operands give 0.
func CalculateBMI(weightKG, heightCM float64) float64 {
	if weightKG <= 0 || heightCM <= 0 {
		return 0
	}
	heightM := heightCM / 100
	return math.Round(weightKG/(heightM*heightM)*10) / 10
}

// GoalStatusAfterProgress returns the status a goal holds once current is recorded.
// A goal only ever moves to Completed here; it is never reverted.
func GoalStatusAfterProgress(g models.Goal, current float64) string {
	if current >= g.TargetValue {
		return models.GoalStatusCompleted
	}
	if g.Status == "" {
		return models.GoalStatusActive
	}
	return g.Status
}

// DailySummary aggregates one day of nutrition logs.
type DailySummary struct {
	TotalCalories int64                            `json:"total_calories"`
	TotalProtein  int64                            `json:"total_protein"`
	TotalCarbs    int64                            `json:"total_carbs"`
	TotalFats     int64                            `json:"total_fats"`
	ByMealType    map[string][]models.NutritionLog `json:"by_meal_type"`
	MealCount     int                              `json:"meal_count"`
}

// SummarizeDay totals the logs whose logged_at starts with date. The match is
// a literal prefix on the stored string. Each value is truncated to an integer
// before summing.
func SummarizeDay(logs []models.NutritionLog, date string) DailySummary {
	summary := DailySummary{ByMealType: map[string][]models.NutritionLog{}}
	for _, l := range logs {
		if !strings.HasPrefix(l.LoggedAt, date) {
			continue
		}
		summary.TotalCalories += int64(l.Calories)
		summary.TotalProtein += int64(l.Protein)
		summary.TotalCarbs += int64(l.Carbs)
		summary.TotalFats += int64(l.Fats)

		mealType := l.MealType
		if mealType == "" {
			mealType = defaultMealType
		}
		summary.ByMealType[mealType] = append(summary.ByMealType[mealType], l)
		summary.MealCount++
	}
	return summary
}

// FilterUpcoming keeps active reminders scheduled at or after now, compared as
// strings, sorted ascending and capped at limit.
func FilterUpcoming(reminders []models.Reminder, now string, limit int) []models.Reminder {
	upcoming := make([]models.Reminder, 0, len(reminders))
	for _, r := range reminders {
		if r.IsActive && r.ScheduledTime >= now {
			upcoming = append(upcoming, r)
		}
	}
	SortAscending(upcoming, func(r models.Reminder) string { return r.ScheduledTime })
	if limit > 0 && len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}
	return upcoming
}

// WorkoutStats summarises a user's workouts.
type WorkoutStats struct {
	TotalWorkouts int            `json:"total_workouts"`
	TotalCalories int64          `json:"total_calories"`
	TotalDuration int64          `json:"total_duration"`
	WorkoutTypes  map[string]int `json:"workout_types"`
}

func ComputeWorkoutStats(workouts []models.Workout) WorkoutStats {
	stats := WorkoutStats{TotalWorkouts: len(workouts), WorkoutTypes: map[string]int{}}
	for _, w := range workouts {
		stats.TotalCalories += int64(w.Calories)
		stats.TotalDuration += int64(w.Duration)
		t := w.Type
		if t == "" {
			t = defaultWorkoutType
		}
		stats.WorkoutTypes[t]++
	}
	return stats
}

// TrendPoint is one dated value in a measurement series.
type TrendPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// MeasurementProgress holds the series used for progress charts.
type MeasurementProgress struct {
	Weight       []TrendPoint         `json:"weight"`
	BMI          []TrendPoint         `json:"bmi"`
	BodyFat      []TrendPoint         `json:"body_fat"`
	Measurements []models.Measurement `json:"measurements"`
}

// BuildMeasurementProgress orders measurements oldest first and extracts
// weight, BMI and body-fat series. Body fat only includes positive readings.
func BuildMeasurementProgress(measurements []models.Measurement) MeasurementProgress {
	sorted := slices.Clone(measurements)
	SortAscending(sorted, func(m models.Measurement) string { return m.MeasuredAt })

	p := MeasurementProgress{
		Weight:       make([]TrendPoint, 0, len(sorted)),
		BMI:          make([]TrendPoint, 0, len(sorted)),
		BodyFat:      []TrendPoint{},
		Measurements: sorted,
	}
	if p.Measurements == nil {
		p.Measurements = []models.Measurement{}
	}
	for _, m := range sorted {
		p.Weight = append(p.Weight, TrendPoint{Date: m.MeasuredAt, Value: m.Weight})
		p.BMI = append(p.BMI, TrendPoint{Date: m.MeasuredAt, Value: m.BMI})
		if m.BodyFat > 0 {
			p.BodyFat = append(p.BodyFat, TrendPoint{Date: m.MeasuredAt, Value: m.BodyFat})
		}
	}
	return p
}

// SortAscending stably sorts items by key.
func SortAscending[T any](items []T, key func(T) string) {
	slices.SortStableFunc(items, func(a, b T) int { return cmp.Compare(key(a), key(b)) })
}

// SortDescending stably sorts items by key, largest first.
func SortDescending[T any](items []T, key func(T) string) {
	slices.SortStableFunc(items, func(a, b T) int { return cmp.Compare(key(b), key(a)) })
}
