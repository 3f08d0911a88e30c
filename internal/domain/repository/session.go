package repository

import (
	"context"

	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/domain/entity"
)

// SessionHistoryRepository persists the bounded session history ledger.
// Every mutation rewrites the whole ledger as one record.
type SessionHistoryRepository interface {
	// Append inserts a session as the newest entry, evicting the oldest beyond capacity.
	// Returns the evicted sessions.
	Append(ctx context.Context, session *entity.Session) ([]*entity.Session, error)

	// List returns up to limit sessions, newest first. A non-positive limit returns all.
	List(ctx context.Context, limit int) ([]*entity.Session, error)

	// Get returns a session by id or entity.ErrNotFound.
	Get(ctx context.Context, id entity.SessionID) (*entity.Session, error)

	// Delete removes a session. Unknown ids return entity.ErrNotFound without writing.
	Delete(ctx context.Context, id entity.SessionID) error
}
