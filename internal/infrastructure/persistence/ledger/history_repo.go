// Package ledger implements the session history and template repositories on
// top of a BlobStore. Each collection is one blob that is read, changed and
// rewritten whole under the repository mutex.
package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/application/port"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/domain/entity"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/domain/repository"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/logging"
)

// SessionHistoryRepository stores the ledger as a JSON array, newest first.
type SessionHistoryRepository struct {
	mu         sync.Mutex
	store      port.BlobStore
	maxEntries int
}

var _ repository.SessionHistoryRepository = (*SessionHistoryRepository)(nil)

// NewSessionHistoryRepository creates a repository holding at most maxEntries sessions.
func NewSessionHistoryRepository(store port.BlobStore, maxEntries int) *SessionHistoryRepository {
	if maxEntries <= 0 {
		maxEntries = entity.DefaultMaxHistoryEntries
	}
	return &SessionHistoryRepository{store: store, maxEntries: maxEntries}
}

// Append implements repository.SessionHistoryRepository.
func (r *SessionHistoryRepository) Append(ctx context.Context, session *entity.Session) ([]*entity.Session, error) {
	if err := session.Validate(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	ledger, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	evicted := ledger.Append(session.Clone())
	if err := r.save(ctx, ledger); err != nil {
		return nil, err
	}
	return evicted, nil
}

// List implements repository.SessionHistoryRepository.
func (r *SessionHistoryRepository) List(ctx context.Context, limit int) ([]*entity.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ledger, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	return ledger.Recent(limit), nil
}

// Get implements repository.SessionHistoryRepository.
func (r *SessionHistoryRepository) Get(ctx context.Context, id entity.SessionID) (*entity.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ledger, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	s, ok := ledger.Find(id)
	if !ok {
		return nil, fmt.Errorf("session %s: %w", id, entity.ErrNotFound)
	}
	return s, nil
}

// Delete implements repository.SessionHistoryRepository.
func (r *SessionHistoryRepository) Delete(ctx context.Context, id entity.SessionID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ledger, err := r.load(ctx)
	if err != nil {
		return err
	}
	if !ledger.Remove(id) {
		return fmt.Errorf("session %s: %w", id, entity.ErrNotFound)
	}
	return r.save(ctx, ledger)
}

func (r *SessionHistoryRepository) load(ctx context.Context) (*entity.HistoryLedger, error) {
	raw, err := r.store.Get(ctx, port.BlobKeySessionHistory)
	if errors.Is(err, entity.ErrNotFound) {
		return entity.NewHistoryLedger(nil, r.maxEntries), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read session history: %w", entity.ErrStorage, err)
	}
	if len(raw) == 0 {
		return entity.NewHistoryLedger(nil, r.maxEntries), nil
	}

	var sessions []*entity.Session
	if err := json.Unmarshal(raw, &sessions); err != nil {
		return nil, fmt.Errorf("%w: decode session history: %w", entity.ErrStorage, err)
	}

	kept := sessions[:0]
	for _, s := range sessions {
		if s == nil {
			continue
		}
		s.Normalize()
		if err := s.Validate(); err != nil {
			logging.FromContext(ctx).Warn().Err(err).Str("session_id", string(s.ID)).Msg("dropping invalid session from history")
			continue
		}
		kept = append(kept, s)
	}
	return entity.NewHistoryLedger(kept, r.maxEntries), nil
}

func (r *SessionHistoryRepository) save(ctx context.Context, ledger *entity.HistoryLedger) error {
	raw, err := json.Marshal(ledger.Entries())
	if err != nil {
		return fmt.Errorf("%w: encode session history: %w", entity.ErrStorage, err)
	}
	if err := r.store.Set(ctx, port.BlobKeySessionHistory, raw); err != nil {
		return fmt.Errorf("%w: write session history: %w", entity.ErrStorage, err)
	}
	return nil
}
