package port

import (
	"context"

	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/domain/entity"
)

// SyncProvider pushes session history to another device.
// No transport is implemented; the default provider reports entity.ErrSyncUnavailable.
type SyncProvider interface {
	Name() string
	Push(ctx context.Context, sessions []*entity.Session) error
}
