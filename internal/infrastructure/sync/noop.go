// Package sync holds SyncProvider implementations.
package sync

import (
	"context"

	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/application/port"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/domain/entity"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/logging"
)

// NoopProvider is the default provider: every push reports entity.ErrSyncUnavailable.
type NoopProvider struct{}

var _ port.SyncProvider = NoopProvider{}

// Name implements port.SyncProvider.
func (NoopProvider) Name() string { return "none" }

// Push implements port.SyncProvider.
func (NoopProvider) Push(ctx context.Context, sessions []*entity.Session) error {
	logging.FromContext(ctx).Debug().Int("count", len(sessions)).Msg("sync requested without a provider")
	return entity.ErrSyncUnavailable
}
