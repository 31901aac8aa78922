package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"lotus/internal/modules/auth/domain"
	authout "lotus/internal/modules/auth/port/out"
	"lotus/internal/platform/clock"
	apperrors "lotus/internal/platform/errors"
	"lotus/internal/platform/id"
	"lotus/internal/platform/logging"
)

// AuthService keeps a locally signed-in user. No credentials are checked
// against a server; signing in records the user in its slot.
type AuthService struct {
	clock  clock.Clock
	idGen  id.Generator
	store  authout.UserStore
	logger *zap.Logger
}

func NewAuthService(clock clock.Clock, idGen id.Generator, store authout.UserStore, logger *zap.Logger) *AuthService {
	return &AuthService{clock: clock, idGen: idGen, store: store, logger: logging.OrNop(logger).Named("auth")}
}

func (s *AuthService) SignIn(ctx context.Context, email, name string) (domain.User, error) {
	email = strings.TrimSpace(email)
	name = strings.TrimSpace(name)
	if name == "" {
		name = domain.DefaultName(email)
	}
	user := domain.User{
		ID:        s.idGen.New(),
		Email:     email,
		Name:      name,
		CreatedAt: s.clock.Now().UTC(),
	}
	blob, err := domain.EncodeUser(user)
	if err != nil {
		return domain.User{}, err
	}
	if err := s.store.SetItem(ctx, domain.SlotName, blob); err != nil {
		return domain.User{}, fmt.Errorf("store user: %w", err)
	}
	s.logger.Info("signed in", zap.String("user_id", user.ID))
	return user, nil
}

func (s *AuthService) SignOut(ctx context.Context) error {
	if err := s.store.RemoveItem(ctx, domain.SlotName); err != nil {
		return fmt.Errorf("remove user: %w", err)
	}
	return nil
}

// Current returns the signed-in user. Missing, unreadable or corrupt data
// means nobody is signed in.
func (s *AuthService) Current(ctx context.Context) (domain.User, error) {
	blob, ok, err := s.store.GetItem(ctx, domain.SlotName)
	if err != nil {
		s.logger.Warn("read user", zap.Error(err))
		return domain.User{}, apperrors.ErrNotSignedIn
	}
	if !ok {
		return domain.User{}, apperrors.ErrNotSignedIn
	}
	user, err := domain.DecodeUser(blob)
	if err != nil {
		s.logger.Warn("discarding corrupt user", zap.Error(err))
		return domain.User{}, apperrors.ErrNotSignedIn
	}
	return user, nil
}
