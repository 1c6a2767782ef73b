package usecase

import (
	"context"
	"log/slog"

	"cachetteWeb/internal/modules/session/application/port"
)

// LogoutUseCase drops both session slots. Logging out an already-empty
// session succeeds silently.
type LogoutUseCase struct {
	Store port.SessionStore
}

func NewLogoutUseCase(store port.SessionStore) *LogoutUseCase {
	return &LogoutUseCase{Store: store}
}

func (uc *LogoutUseCase) Execute(ctx context.Context, sessionID string) error {
	if err := uc.Store.Clear(ctx, sessionID); err != nil {
		slog.Error("logout failed to clear session", slog.Any("error", err))
		return err
	}
	slog.Info("session cleared")
	return nil
}
