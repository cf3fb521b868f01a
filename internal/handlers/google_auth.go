package handlers

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/oauth2"
	googleOAuth2 "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"

	"FITZEN_BACK-END/internal/dto"
)

// GoogleVerifier resolves a Google access token to the account behind it.
type GoogleVerifier interface {
	Verify(ctx context.Context, accessToken string) (*dto.GoogleUserInfo, error)
}

// GoogleTokenVerifier checks tokens against Google's tokeninfo and userinfo APIs.
type GoogleTokenVerifier struct {
	clientID string
	opts     []option.ClientOption
}

// NewGoogleTokenVerifier creates a verifier. When clientID is set the token's
// audience must match it.
func NewGoogleTokenVerifier(clientID string, opts ...option.ClientOption) *GoogleTokenVerifier {
	return &GoogleTokenVerifier{clientID: clientID, opts: opts}
}

// Verify fetches user information from Google
func (v *GoogleTokenVerifier) Verify(ctx context.Context, accessToken string) (*dto.GoogleUserInfo, error) {
	opts := append([]option.ClientOption{
		option.WithTokenSource(oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})),
	}, v.opts...)
	service, err := googleOAuth2.NewService(ctx, opts...)
	if err != nil {
		return nil, err
	}

	if v.clientID != "" {
		info, err := service.Tokeninfo().AccessToken(accessToken).Context(ctx).Do()
		if err != nil {
			return nil, fmt.Errorf("tokeninfo: %w", err)
		}
		if info.Audience != v.clientID && info.IssuedTo != v.clientID {
			return nil, errors.New("token was issued for a different client")
		}
	}

	userInfo, err := service.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("userinfo: %w", err)
	}

	verified := false
	if userInfo.VerifiedEmail != nil {
		verified = *userInfo.VerifiedEmail
	}

	return &dto.GoogleUserInfo{
		ID:       userInfo.Id,
		Email:    userInfo.Email,
		Name:     userInfo.Name,
		Picture:  userInfo.Picture,
		Verified: verified,
	}, nil
}
