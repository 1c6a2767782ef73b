package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"cachetteWeb/internal/modules/session/application/port"
	"cachetteWeb/internal/modules/session/domain"
)

var ErrMissingCredentials = errors.New("missing email or password")

type LoginInput struct {
	SessionID string
	Email     string
	Password  string
}

type LoginOutput struct {
	User domain.UserRecord
}

// LoginUseCase authenticates against the backend and persists the
// resulting identity into the session store. Token and user land in their
// own slots; a crash between the two writes leaves them desynchronized,
// which readers are expected to tolerate.
type LoginUseCase struct {
	Gateway port.AuthGateway
	Store   port.SessionStore
}

func NewLoginUseCase(gateway port.AuthGateway, store port.SessionStore) *LoginUseCase {
	return &LoginUseCase{Gateway: gateway, Store: store}
}

func (uc *LoginUseCase) Execute(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	if strings.TrimSpace(input.Email) == "" || input.Password == "" {
		return nil, ErrMissingCredentials
	}

	result, err := uc.Gateway.Login(ctx, port.Credentials{Email: strings.TrimSpace(input.Email), Password: input.Password})
	if err != nil {
		slog.Warn("login failed", slog.String("email", input.Email), slog.Any("error", err))
		return nil, err
	}

	if err := uc.Store.SaveToken(ctx, input.SessionID, result.Token); err != nil {
		return nil, err
	}
	if err := uc.Store.SaveUser(ctx, input.SessionID, result.User); err != nil {
		return nil, err
	}

	slog.Info("login succeeded", slog.String("userId", result.User.ID), slog.String("role", result.User.RoleOrDefault()))
	return &LoginOutput{User: result.User}, nil
}
