package models

// Default field values applied when a create request omits them.
const (
	DefaultPhoneUserName  = "Fitness Enthusiast"
	DefaultSocialUserName = "User"
)

func NewWorkout() Workout {
	return Workout{Title: "Workout", Type: "General", Difficulty: "Intermediate"}
}

func NewNutritionLog() NutritionLog {
	return NutritionLog{MealType: "Snack"}
}

func NewGoal() Goal {
	return Goal{Type: "General", Status: GoalStatusActive}
}

func NewHabit() Habit {
	return Habit{Frequency: "Daily", TargetDays: 7}
}

func NewReminder() Reminder {
	return Reminder{ReminderType: "Custom", Repeat: "Once", IsActive: true}
}
