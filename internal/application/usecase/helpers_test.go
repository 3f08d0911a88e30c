package usecase_test

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/application/usecase"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/domain/entity"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/infrastructure/host/memory"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/infrastructure/persistence/ledger"
	blobmem "github.com/shamimkhan539/tab-suspend-pro-sub001/internal/infrastructure/persistence/memory"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

var fixedNow = time.Date(2026, 4, 14, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func sequentialIDs(prefix string) entity.IDGenerator {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("%s%03d", prefix, n)
	}
}

// engine wires the real use cases against an in-memory host and blob store.
type engine struct {
	host      *memory.Host
	store     *blobmem.BlobStore
	history   *ledger.SessionHistoryRepository
	templates *ledger.TemplateRepository
	gate      *usecase.HostGate
	capture   *usecase.CaptureSessionUseCase
	restore   *usecase.RestoreSessionUseCase
	manage    *usecase.ManageTemplatesUseCase
}

func newEngine() *engine {
	e := &engine{
		host:  memory.NewHost(),
		store: blobmem.NewBlobStore(),
		gate:  usecase.NewHostGate(),
	}
	e.history = ledger.NewSessionHistoryRepository(e.store, entity.DefaultMaxHistoryEntries)
	e.templates = ledger.NewTemplateRepository(e.store)
	e.capture = usecase.NewCaptureSessionUseCase(e.host, e.history, e.gate, sequentialIDs("sess_"), nil).WithClock(fixedClock)
	e.restore = usecase.NewRestoreSessionUseCase(e.history, e.host, e.gate, entity.DefaultSizeLimits(), time.Second, nil)
	e.manage = usecase.NewManageTemplatesUseCase(e.templates, e.capture, e.restore, sequentialIDs("tmpl_"), nil).WithClock(fixedClock)
	return e
}

// seedWork builds the "Work" window: A pinned, B, then C and D in a blue "Dev" group.
func (e *engine) seedWork() entity.HostWindowID {
	wid := e.host.AddWindow(memory.WindowSpec{
		Focused: true,
		Bounds:  entity.Bounds{Left: 40, Top: 30, Width: 1440, Height: 900},
		Tabs: []memory.TabSpec{
			{URL: "https://a.example", Pinned: true},
			{URL: "https://b.example", Active: true},
			{URL: "https://c.example"},
			{URL: "https://d.example"},
		},
	})
	e.host.AddGroup(wid, "Dev", entity.GroupColorBlue, true, 2, 3)
	return wid
}

func liveURLs(tabs []entity.HostTab) []string {
	out := make([]string, 0, len(tabs))
	for _, t := range tabs {
		out = append(out, t.URL)
	}
	return out
}
