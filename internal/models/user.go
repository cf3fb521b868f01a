package models

// User represents a user of the app
type User struct {
	ID                  string `json:"id" csv:"id"`
	Name                string `json:"name" csv:"name"`
	Email               string `json:"email" csv:"email"`
	Phone               string `json:"phone" csv:"phone"`
	Avatar              string `json:"avatar" csv:"avatar"`
	IsPremium           bool   `json:"is_premium" csv:"is_premium"`
	CreatedAt           string `json:"created_at" csv:"created_at"`
	OnboardingCompleted bool   `json:"onboarding_completed" csv:"onboarding_completed"`
	CoachGender         string `json:"coach_gender" csv:"coach_gender"`
	CoachStyle          string `json:"coach_style" csv:"coach_style"`
}

func (u User) GetID() string { return u.ID }
