package services

import (
	"FITZEN_BACK-END/internal/models"
	"FITZEN_BACK-END/internal/repository"
	"FITZEN_BACK-END/internal/storage"
)

// Accounts finds or registers users for the sign-in flows.
type Accounts struct {
	users *repository.Store[models.User]
	clock Clock
}

func NewAccounts(stores *repository.Stores, clock Clock) *Accounts {
	if clock == nil {
		clock = SystemClock
	}
	return &Accounts{users: stores.Users, clock: clock}
}

// SocialProfile is the identity asserted by a social sign-in provider.
type SocialProfile struct {
	Email  string
	Name   string
	Avatar string
}

// SignInWithPhone returns the first user with phone, creating one if none exists.
func (a *Accounts) SignInWithPhone(phone string) (models.User, error) {
	if existing := a.users.Filter(storage.Record{"phone": phone}); len(existing) > 0 {
		return existing[0], nil
	}
	return a.register(models.User{Name: models.DefaultPhoneUserName, Phone: phone})
}

// SignInWithEmail returns the first user with the profile's email, creating one
// if none exists. A blank email always registers a new user.
func (a *Accounts) SignInWithEmail(p SocialProfile) (models.User, error) {
	if p.Email != "" {
		if existing := a.users.Filter(storage.Record{"email": p.Email}); len(existing) > 0 {
			return existing[0], nil
		}
	}
	name := p.Name
	if name == "" {
		name = models.DefaultSocialUserName
	}
	return a.register(models.User{Name: name, Email: p.Email, Avatar: p.Avatar})
}

func (a *Accounts) register(u models.User) (models.User, error) {
	u.ID = NewID()
	u.CreatedAt = a.clock.Timestamp()
	if err := a.users.Create(u); err != nil {
		return models.User{}, err
	}
	return u, nil
}
