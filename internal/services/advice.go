package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"FITZEN_BACK-END/internal/apperrors"
	"FITZEN_BACK-END/internal/logger"
	"FITZEN_BACK-END/internal/models"
	"FITZEN_BACK-END/internal/storage"
)

// FallbackResponse is returned in place of any provider failure.
const FallbackResponse = "I apologize, but I'm having trouble connecting right now. Please try again later."

// NoHabitsAnalysis is returned by habit analysis when the user tracks nothing yet.
const NoHabitsAnalysis = "No habits tracked yet. Start creating habits to get personalized insights!"

// Generator produces text from a prompt and optional system instructions.
type Generator interface {
	Generate(ctx context.Context, prompt, system string, maxOutputTokens int) (string, error)
}

// ErrGeneratorUnavailable is returned when no provider is configured.
var ErrGeneratorUnavailable = errors.New("text generation provider is not configured")

// UnavailableGenerator fails every call.
type UnavailableGenerator struct{}

func (UnavailableGenerator) Generate(context.Context, string, string, int) (string, error) {
	return "", ErrGeneratorUnavailable
}

const (
	coachSystemPrompt = `You are Fitzen AI Coach - an expert fitness and nutrition coach.
You provide personalized, evidence-based advice on workouts, nutrition, and healthy lifestyle habits.
Be supportive, motivating, and specific in your recommendations.
Always consider the user's fitness level, goals, and any health conditions mentioned.`

	trainerSystemPrompt = `You are an expert fitness trainer creating personalized workout plans.
Provide structured, achievable workout plans tailored to the user's fitness level and goals.`

	nutritionistSystemPrompt = `You are an expert nutritionist creating personalized meal plans.
Provide balanced, realistic meal plans considering dietary preferences and goals.`

	wellnessSystemPrompt = `You are a wellness coach analyzing user habits.
Provide constructive insights and actionable recommendations.`

	chefSystemPrompt = `You are a creative chef providing healthy recipe suggestions.
Focus on nutritious, delicious, and easy-to-prepare meals.`
)

// AdviceService renders coaching prompts and forwards them to a Generator.
// Every method returns text; failures become FallbackResponse.
type AdviceService struct {
	gen           Generator
	maxTokens     int
	planMaxTokens int
}

func NewAdviceService(gen Generator, maxTokens, planMaxTokens int) *AdviceService {
	if gen == nil {
		gen = UnavailableGenerator{}
	}
	return &AdviceService{gen: gen, maxTokens: maxTokens, planMaxTokens: planMaxTokens}
}

// FitnessAdvice answers a free-text question in light of the user's context.
func (s *AdviceService) FitnessAdvice(ctx context.Context, userContext map[string]any, question string) string {
	prompt := fmt.Sprintf(`User Context:
%s

User Question: %s

Please provide a helpful, personalized response considering the user's context.`, toJSON(userContext), question)

	return s.generate(ctx, "fitness_advice", prompt, coachSystemPrompt, s.maxTokens)
}

func (s *AdviceService) WorkoutPlan(ctx context.Context, profile map[string]any) string {
	prompt := fmt.Sprintf(`Create a weekly workout plan for:
- Fitness Level: %s
- Goal: %s
- Available Days: %s days per week
- Equipment: %s
- Duration: %s per session

Please provide:
1. Weekly schedule with specific exercises
2. Sets, reps, and rest periods
3. Progression plan
4. Tips for success`,
		valueOr(profile, "fitness_level", "Beginner"),
		valueOr(profile, "goal", "General fitness"),
		valueOr(profile, "days_per_week", "3"),
		valueOr(profile, "equipment", "Basic home equipment"),
		valueOr(profile, "session_duration", "30-45 minutes"),
	)

	return s.generate(ctx, "workout_plan", prompt, trainerSystemPrompt, s.planMaxTokens)
}

func (s *AdviceService) MealPlan(ctx context.Context, profile map[string]any) string {
	prompt := fmt.Sprintf(`Create a daily meal plan for:
- Goal: %s
- Diet Type: %s
- Calories Target: %s kcal/day
- Protein Target: %sg
- Meals per Day: %s
- Food Allergies: %s

Please provide:
1. Detailed meal breakdown with timing
2. Macros for each meal
3. Simple, practical recipes
4. Shopping list suggestions`,
		valueOr(profile, "goal", "General health"),
		valueOr(profile, "diet_type", "No restrictions"),
		valueOr(profile, "calories", "2000"),
		valueOr(profile, "protein", "150"),
		valueOr(profile, "meals_per_day", "3"),
		valueOr(profile, "allergies", "None"),
	)

	return s.generate(ctx, "meal_plan", prompt, nutritionistSystemPrompt, s.planMaxTokens)
}

// AnalyzeHabits reviews the tracked habits. With no habits the provider is not called.
func (s *AdviceService) AnalyzeHabits(ctx context.Context, habits []models.Habit) string {
	if len(habits) == 0 {
		return NoHabitsAnalysis
	}
	prompt := fmt.Sprintf(`Analyze these user habits:
%s

Please provide:
1. Key patterns and trends
2. Areas of strength
3. Areas for improvement
4. Specific, actionable recommendations
5. Motivational insights`, toJSON(habits))

	return s.generate(ctx, "habit_analysis", prompt, wellnessSystemPrompt, s.maxTokens)
}

func (s *AdviceService) SuggestRecipes(ctx context.Context, prefs map[string]any) string {
	prompt := fmt.Sprintf(`Suggest 3 healthy recipes for:
- Cuisine: %s
- Meal Type: %s
- Diet: %s
- Prep Time: %s
- Calories per serving: Around %s

For each recipe, provide:
1. Recipe name
2. Ingredients list
3. Step-by-step instructions
4. Nutritional information (calories, protein, carbs, fats)
5. Prep and cook time`,
		valueOr(prefs, "cuisine", "Any"),
		valueOr(prefs, "meal_type", "Dinner"),
		valueOr(prefs, "diet_type", "No restrictions"),
		valueOr(prefs, "prep_time", "Under 30 minutes"),
		valueOr(prefs, "calories", "400-600"),
	)

	return s.generate(ctx, "recipe_suggestions", prompt, chefSystemPrompt, s.planMaxTokens)
}

func (s *AdviceService) generate(ctx context.Context, op, prompt, system string, maxTokens int) string {
	text, err := s.gen.Generate(ctx, prompt, system, maxTokens)
	if err != nil {
		appErr := apperrors.NewExternalAPIError(err, "Gemini").WithContext("operation", op)
		logger.Error("Advice generation failed", appErr.LogFields()...)
		return FallbackResponse
	}
	return text
}

func toJSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(b)
}

func valueOr(m map[string]any, key, def string) string {
	v, ok := m[key]
	if !ok || v == nil {
		return def
	}
	return storage.FormatValue(v)
}
