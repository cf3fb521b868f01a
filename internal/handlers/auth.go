package handlers

import (
	"net/http"
	"strings"

	"FITZEN_BACK-END/internal/config"
	"FITZEN_BACK-END/internal/dto"
	"FITZEN_BACK-END/internal/logger"
	"FITZEN_BACK-END/internal/middleware"
	"FITZEN_BACK-END/internal/models"
	"FITZEN_BACK-END/internal/services"
	"FITZEN_BACK-END/internal/utils"
)

const (
	mockOTP       = "123456"
	otpLength     = 6
	fallbackEmail = "user@example.com"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	accounts *services.Accounts
	config   *config.Config
	google   GoogleVerifier
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(accounts *services.Accounts, cfg *config.Config, google GoogleVerifier) *AuthHandler {
	return &AuthHandler{accounts: accounts, config: cfg, google: google}
}

// SendOTP handles login code requests
// @Summary Request a phone login code
// @Description No SMS is sent; with OTP_MOCK the code is returned in the response
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.SendOTPRequest true "Phone number"
// @Success 200 {object} dto.SendOTPResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/auth/send-otp [post]
func (h *AuthHandler) SendOTP(w http.ResponseWriter, r *http.Request) {
	var req dto.SendOTPRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	if strings.TrimSpace(req.Phone) == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Phone number is required", "")
		return
	}

	resp := dto.SendOTPResponse{Success: true, Message: "OTP sent successfully"}
	if h.config.Auth.OTPMock {
		resp.OTP = mockOTP
	}
	utils.WriteJSONResponse(w, http.StatusOK, resp)
}

// VerifyOTP handles phone login
// @Summary Verify a phone login code
// @Description Any six-character code is accepted. Creates the user on first login.
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.VerifyOTPRequest true "Phone and code"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/auth/verify-otp [post]
func (h *AuthHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req dto.VerifyOTPRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	if req.Phone == "" || req.OTP == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Phone and OTP are required", "")
		return
	}
	if len(req.OTP) != otpLength {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid OTP", "")
		return
	}

	user, err := h.accounts.SignInWithPhone(req.Phone)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	h.writeAuth(w, user, "", req.Phone)
}

// GoogleSignIn handles Google sign-in
// @Summary Sign in with Google
// @Description With GOOGLE_VERIFY_TOKENS the token is checked against Google; otherwise the posted profile is trusted
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.SocialSignInRequest true "Google token and profile"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/auth/google-signin [post]
func (h *AuthHandler) GoogleSignIn(w http.ResponseWriter, r *http.Request) {
	var req dto.SocialSignInRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	if req.Token == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Google token is required", "")
		return
	}

	profile := services.SocialProfile{Email: req.Email, Name: req.Name, Avatar: req.Avatar}
	if h.config.GoogleOAuth.VerifyTokens && h.google != nil {
		info, err := h.google.Verify(r.Context(), req.Token)
		if err != nil {
			logger.Warn("Google token verification failed", "error", err)
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "Invalid Google token", "")
			return
		}
		profile = services.SocialProfile{Email: info.Email, Name: info.Name, Avatar: info.Picture}
	}
	if profile.Email == "" {
		profile.Email = fallbackEmail
	}

	user, err := h.accounts.SignInWithEmail(profile)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	h.writeAuth(w, user, profile.Email, "")
}

// AppleSignIn handles Apple sign-in
// @Summary Sign in with Apple
// @Description The token is not verified. Without an email a new user is always created.
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.SocialSignInRequest true "Apple token and profile"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/auth/apple-signin [post]
func (h *AuthHandler) AppleSignIn(w http.ResponseWriter, r *http.Request) {
	var req dto.SocialSignInRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	if req.Token == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Apple token is required", "")
		return
	}

	user, err := h.accounts.SignInWithEmail(services.SocialProfile{Email: req.Email, Name: req.Name})
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	h.writeAuth(w, user, req.Email, "")
}

func (h *AuthHandler) writeAuth(w http.ResponseWriter, user models.User, email, phone string) {
	token, err := middleware.GenerateToken(user.ID, email, phone, &h.config.JWT)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to generate token", err.Error())
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.AuthResponse{Success: true, User: user, Token: token})
}
