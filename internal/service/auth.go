package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/Harish050696/cardvault/internal/logger"
	"github.com/Harish050696/cardvault/internal/model"
)

// dummyHash is compared against when the username is unknown, so the unknown
// and known paths do the same amount of work. Generated fresh per process;
// nothing ever matches it.
var dummyHash = mustDummyHash()

func mustDummyHash() []byte {
	hash, err := bcrypt.GenerateFromPassword([]byte("cardvault-dummy-credential"), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return hash
}

// Auth verifies credentials and provisions bootstrap users.
type Auth struct {
	userStore model.UserStore
	logger    *logger.Logger
}

func NewAuth(userStore model.UserStore, logger *logger.Logger) *Auth {
	return &Auth{
		userStore: userStore,
		logger:    logger,
	}
}

// Login verifies the supplied credentials and returns the user's display
// name. Unknown usernames and wrong passwords are indistinguishable to the
// caller; both yield model.ErrInvalidCredentials.
func (a *Auth) Login(ctx context.Context, username, password string) (string, error) {
	user, err := a.userStore.GetByUsername(ctx, username)
	if errors.Is(err, model.ErrNotFound) {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		a.logger.Info("Auth service: login rejected", "username", username)
		return "", model.ErrInvalidCredentials
	}
	if err != nil {
		return "", fmt.Errorf("failed to get user by username: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		a.logger.Info("Auth service: login rejected", "username", username)
		return "", model.ErrInvalidCredentials
	}

	a.logger.Info("Auth service: login accepted", "username", username)
	return user.Name, nil
}

// Seed provisions bootstrap users. Usernames that already exist are left
// untouched, passwords included, so calling Seed repeatedly produces exactly
// the same set of users.
func (a *Auth) Seed(ctx context.Context, users []model.SeedUser) error {
	for _, seed := range users {
		_, err := a.userStore.GetByUsername(ctx, seed.Username)
		if err == nil {
			continue
		}
		if !errors.Is(err, model.ErrNotFound) {
			return fmt.Errorf("failed to check user %q: %w", seed.Username, err)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(seed.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password for %q: %w", seed.Username, err)
		}

		if _, err := a.userStore.Create(ctx, model.User{
			Name:         seed.Name,
			Username:     seed.Username,
			PasswordHash: string(hash),
		}); err != nil {
			return fmt.Errorf("failed to create user %q: %w", seed.Username, err)
		}

		a.logger.Info("Auth service: seeded user", "username", seed.Username)
	}

	return nil
}
