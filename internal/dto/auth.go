package dto

import "FITZEN_BACK-END/internal/models"

// SendOTPRequest represents the request payload for requesting a login code
type SendOTPRequest struct {
	Phone string `json:"phone"`
}

// SendOTPResponse represents the response after a login code is issued
type SendOTPResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	OTP     string `json:"otp,omitempty"` // only when the mock code is enabled
}

// VerifyOTPRequest represents the request payload for phone login
type VerifyOTPRequest struct {
	Phone string `json:"phone"`
	OTP   string `json:"otp"`
}

// SocialSignInRequest represents a Google or Apple sign-in payload
type SocialSignInRequest struct {
	Token  string `json:"token"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// AuthResponse represents the response after successful authentication
type AuthResponse struct {
	Success bool        `json:"success"`
	User    models.User `json:"user"`
	Token   string      `json:"token"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// MessageResponse is the envelope for operations that only report success
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
