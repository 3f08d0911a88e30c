package port

import (
	"time"

	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/domain/entity"
)

// EngineMetrics receives engine counters and timings.
type EngineMetrics interface {
	CaptureCompleted(kind entity.SessionKind, tabs int, d time.Duration)
	CaptureFailed(kind entity.SessionKind, reason string)
	RestoreCompleted(result entity.RestoreResult, d time.Duration)
	RestoreRejected(reason string)
	SessionsEvicted(n int)
	TemplateCount(n int)
}

// NopMetrics discards everything.
type NopMetrics struct{}

func (NopMetrics) CaptureCompleted(entity.SessionKind, int, time.Duration) {}
func (NopMetrics) CaptureFailed(entity.SessionKind, string)                {}
func (NopMetrics) RestoreCompleted(entity.RestoreResult, time.Duration)    {}
func (NopMetrics) RestoreRejected(string)                                  {}
func (NopMetrics) SessionsEvicted(int)                                     {}
func (NopMetrics) TemplateCount(int)                                       {}
