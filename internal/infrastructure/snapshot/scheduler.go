package snapshot

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/application/port"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/application/usecase"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/domain/entity"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/logging"
)

const (
	DefaultDailyInterval  = 24 * time.Hour
	DefaultWeeklyInterval = 7 * 24 * time.Hour

	DailyTriggerName  = "daily auto-save"
	WeeklyTriggerName = "weekly auto-save"
)

// ErrAlreadyRunning is returned by Start when the scheduler is running.
var ErrAlreadyRunning = errors.New("scheduler already running")

// Capturer is the capture entry point the scheduler drives.
type Capturer interface {
	Execute(ctx context.Context, input usecase.CaptureInput) (*entity.Session, error)
}

// Trigger is one periodic auto-save. Name becomes the captured session's name.
type Trigger struct {
	Name     string
	Interval time.Duration
}

// Config selects which triggers run. Non-positive intervals use the defaults.
type Config struct {
	Daily          bool
	Weekly         bool
	DailyInterval  time.Duration
	WeeklyInterval time.Duration
}

// Scheduler fires scheduled captures. Tick failures are logged and never stop a loop.
type Scheduler struct {
	capture  Capturer
	tickers  port.TickerFactory
	triggers []Trigger

	mu     sync.Mutex
	cancel context.CancelFunc
	group  *errgroup.Group
}

// NewScheduler creates a scheduler for the enabled triggers.
func NewScheduler(capture Capturer, tickers port.TickerFactory, cfg Config) *Scheduler {
	if tickers == nil {
		tickers = SystemTickers{}
	}
	s := &Scheduler{capture: capture, tickers: tickers}
	if cfg.Daily {
		s.triggers = append(s.triggers, Trigger{Name: DailyTriggerName, Interval: orDefault(cfg.DailyInterval, DefaultDailyInterval)})
	}
	if cfg.Weekly {
		s.triggers = append(s.triggers, Trigger{Name: WeeklyTriggerName, Interval: orDefault(cfg.WeeklyInterval, DefaultWeeklyInterval)})
	}
	return s
}

func orDefault(d, def time.Duration) time.Duration {
	if d <= 0 {
		return def
	}
	return d
}

// Triggers returns the enabled triggers.
func (s *Scheduler) Triggers() []Trigger {
	return append([]Trigger(nil), s.triggers...)
}

// Start launches one loop per trigger. The loops stop when ctx is done or Stop is called.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		return ErrAlreadyRunning
	}

	ctx = logging.WithComponent(ctx, "scheduler")
	runCtx, cancel := context.WithCancel(ctx)
	group, runCtx := errgroup.WithContext(runCtx)

	for _, trigger := range s.triggers {
		ticker := s.tickers.NewTicker(trigger.Interval)
		group.Go(func() error {
			defer ticker.Stop()
			s.loop(runCtx, trigger, ticker)
			return nil
		})
	}

	s.cancel = cancel
	s.group = group

	log := logging.FromContext(ctx)
	for _, trigger := range s.triggers {
		log.Info().Str("trigger", trigger.Name).Dur("interval", trigger.Interval).Msg("scheduled capture enabled")
	}
	if len(s.triggers) == 0 {
		log.Debug().Msg("no scheduled captures enabled")
	}
	return nil
}

// Stop cancels the loops and waits for an in-flight capture to return.
func (s *Scheduler) Stop() error {
	s.mu.Lock()
	cancel, group := s.cancel, s.group
	s.cancel, s.group = nil, nil
	s.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()
	return group.Wait()
}

func (s *Scheduler) loop(ctx context.Context, trigger Trigger, ticker port.Ticker) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C():
			s.Fire(ctx, trigger)
		}
	}
}

// Fire runs one scheduled capture for trigger.
func (s *Scheduler) Fire(ctx context.Context, trigger Trigger) {
	log := logging.FromContext(ctx)

	session, err := s.capture.Execute(ctx, usecase.CaptureInput{Name: trigger.Name, Kind: entity.SessionKindScheduled})
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		log.Error().Err(err).Str("trigger", trigger.Name).Msg("scheduled capture failed")
		return
	}

	log.Info().
		Str("trigger", trigger.Name).
		Str("session_id", string(session.ID)).
		Int("tab_count", session.Stats.TabCount).
		Msg("scheduled capture saved")
}

// SystemTickers creates tickers backed by time.Ticker.
type SystemTickers struct{}

// NewTicker implements port.TickerFactory.
func (SystemTickers) NewTicker(interval time.Duration) port.Ticker {
	return systemTicker{time.NewTicker(interval)}
}

type systemTicker struct{ t *time.Ticker }

func (t systemTicker) C() <-chan time.Time { return t.t.C }
func (t systemTicker) Stop()               { t.t.Stop() }
