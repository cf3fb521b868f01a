package models

// Measurement is a body measurement snapshot. Weight is in kg, lengths in cm.
type Measurement struct {
	ID         string  `json:"id" csv:"id"`
	UserID     string  `json:"user_id" csv:"user_id"`
	Weight     float64 `json:"weight" csv:"weight"`
	Height     float64 `json:"height" csv:"height"`
	Chest      float64 `json:"chest" csv:"chest"`
	Waist      float64 `json:"waist" csv:"waist"`
	Hips       float64 `json:"hips" csv:"hips"`
	Arms       float64 `json:"arms" csv:"arms"`
	Thighs     float64 `json:"thighs" csv:"thighs"`
	BodyFat    float64 `json:"body_fat" csv:"body_fat"`
	BMI        float64 `json:"bmi" csv:"bmi"`
	MeasuredAt string  `json:"measured_at" csv:"measured_at"`
	CreatedAt  string  `json:"created_at" csv:"created_at"`
}

func (m Measurement) GetID() string { return m.ID }
