package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/domain/entity"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/domain/repository"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/logging"
)

// ListSessionsUseCase reads the session history.
type ListSessionsUseCase struct {
	history      repository.SessionHistoryRepository
	defaultLimit int
}

// NewListSessionsUseCase creates a new ListSessionsUseCase.
// defaultLimit applies when a caller passes a non-positive limit; zero means no limit.
func NewListSessionsUseCase(history repository.SessionHistoryRepository, defaultLimit int) *ListSessionsUseCase {
	return &ListSessionsUseCase{history: history, defaultLimit: defaultLimit}
}

// ListSessionsOutput contains the session summaries, newest first.
type ListSessionsOutput struct {
	Sessions []entity.SessionSummary
}

// Execute returns session summaries, newest first.
func (uc *ListSessionsUseCase) Execute(ctx context.Context, limit int) (*ListSessionsOutput, error) {
	if limit <= 0 {
		limit = uc.defaultLimit
	}

	sessions, err := uc.history.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	out := make([]entity.SessionSummary, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, s.Summary())
	}

	logging.FromContext(ctx).Debug().Int("count", len(out)).Msg("listed sessions")
	return &ListSessionsOutput{Sessions: out}, nil
}

// Get returns one full session.
func (uc *ListSessionsUseCase) Get(ctx context.Context, id entity.SessionID) (*entity.Session, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: session id required", entity.ErrNotFound)
	}
	return uc.history.Get(ctx, id)
}

const (
	hoursPerDay = 24
	daysPerWeek = 7
)

// GetRelativeTime returns a human-readable relative time string.
func GetRelativeTime(t time.Time) string {
	return relativeTime(time.Since(t))
}

func relativeTime(diff time.Duration) string {
	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return formatAgo(int(diff.Minutes()), "m")
	case diff < hoursPerDay*time.Hour:
		return formatAgo(int(diff.Hours()), "h")
	case diff < daysPerWeek*hoursPerDay*time.Hour:
		return formatAgo(int(diff.Hours()/hoursPerDay), "d")
	default:
		return formatAgo(int(diff.Hours()/hoursPerDay/daysPerWeek), "w")
	}
}

func formatAgo(n int, unit string) string {
	return strconv.Itoa(n) + unit + " ago"
}
