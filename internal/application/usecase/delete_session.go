package usecase

import (
	"context"
	"fmt"

	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/domain/entity"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/domain/repository"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/logging"
)

// DeleteSessionUseCase removes a session from the history ledger.
type DeleteSessionUseCase struct {
	history repository.SessionHistoryRepository
}

// NewDeleteSessionUseCase creates a new DeleteSessionUseCase.
func NewDeleteSessionUseCase(history repository.SessionHistoryRepository) *DeleteSessionUseCase {
	return &DeleteSessionUseCase{history: history}
}

// Execute deletes a session. Unknown ids return entity.ErrNotFound.
func (uc *DeleteSessionUseCase) Execute(ctx context.Context, id entity.SessionID) error {
	if id == "" {
		return fmt.Errorf("%w: session id required", entity.ErrNotFound)
	}

	if err := uc.history.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete session %s: %w", id, err)
	}

	logging.FromContext(ctx).Info().Str("session_id", string(id)).Msg("session deleted")
	return nil
}
