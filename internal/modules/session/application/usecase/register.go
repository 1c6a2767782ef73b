package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"cachetteWeb/internal/modules/session/application/port"
	"cachetteWeb/internal/modules/session/domain"
)

var ErrIncompleteRegistration = errors.New("incomplete registration form")

type RegisterInput struct {
	SessionID string
	FirstName string
	LastName  string
	Email     string
	Password  string
	Phone     string
}

type RegisterOutput struct {
	User domain.UserRecord
}

// RegisterUseCase creates an account and immediately opens a session with
// the returned credentials, matching the site's signup flow.
type RegisterUseCase struct {
	Gateway port.AuthGateway
	Store   port.SessionStore
}

func NewRegisterUseCase(gateway port.AuthGateway, store port.SessionStore) *RegisterUseCase {
	return &RegisterUseCase{Gateway: gateway, Store: store}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, input RegisterInput) (*RegisterOutput, error) {
	if strings.TrimSpace(input.Email) == "" || input.Password == "" || strings.TrimSpace(input.FirstName) == "" || strings.TrimSpace(input.LastName) == "" {
		return nil, ErrIncompleteRegistration
	}

	result, err := uc.Gateway.Register(ctx, port.Registration{
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		Email:     strings.TrimSpace(input.Email),
		Password:  input.Password,
		Phone:     strings.TrimSpace(input.Phone),
	})
	if err != nil {
		slog.Warn("registration failed", slog.String("email", input.Email), slog.Any("error", err))
		return nil, err
	}

	if err := uc.Store.SaveToken(ctx, input.SessionID, result.Token); err != nil {
		return nil, err
	}
	if err := uc.Store.SaveUser(ctx, input.SessionID, result.User); err != nil {
		return nil, err
	}

	slog.Info("registration succeeded", slog.String("userId", result.User.ID))
	return &RegisterOutput{User: result.User}, nil
}
