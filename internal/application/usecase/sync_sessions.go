package usecase

import (
	"context"
	"fmt"

	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/application/port"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/domain/repository"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/logging"
)

// SyncSessionsUseCase hands the session history to a sync provider.
type SyncSessionsUseCase struct {
	history  repository.SessionHistoryRepository
	provider port.SyncProvider
}

// NewSyncSessionsUseCase creates a new SyncSessionsUseCase.
func NewSyncSessionsUseCase(history repository.SessionHistoryRepository, provider port.SyncProvider) *SyncSessionsUseCase {
	return &SyncSessionsUseCase{history: history, provider: provider}
}

// Execute pushes every session in the ledger.
func (uc *SyncSessionsUseCase) Execute(ctx context.Context) error {
	sessions, err := uc.history.List(ctx, 0)
	if err != nil {
		return fmt.Errorf("list sessions: %w", err)
	}

	if err := uc.provider.Push(ctx, sessions); err != nil {
		return fmt.Errorf("sync via %s: %w", uc.provider.Name(), err)
	}

	logging.FromContext(ctx).Info().Str("provider", uc.provider.Name()).Int("count", len(sessions)).Msg("sessions synced")
	return nil
}
