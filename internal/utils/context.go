package utils

import "context"

type contextKey string

const (
	userIDKey contextKey = "user_id"
	emailKey  contextKey = "email"
	phoneKey  contextKey = "phone"
)

// WithIdentity stores the authenticated caller in ctx
func WithIdentity(ctx context.Context, userID, email, phone string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	ctx = context.WithValue(ctx, emailKey, email)
	return context.WithValue(ctx, phoneKey, phone)
}

// GetUserIDFromContext returns the authenticated user id, if any
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}

func GetEmailFromContext(ctx context.Context) string {
	email, _ := ctx.Value(emailKey).(string)
	return email
}

func GetPhoneFromContext(ctx context.Context) string {
	phone, _ := ctx.Value(phoneKey).(string)
	return phone
}
