package usecase

import (
	"context"

	"golang.org/x/sync/semaphore"
)

// HostGate serialises every operation that drives the host browser.
// Restores reject when the gate is held; captures wait for it.
type HostGate struct {
	sem *semaphore.Weighted
}

// NewHostGate creates an open gate.
func NewHostGate() *HostGate {
	return &HostGate{sem: semaphore.NewWeighted(1)}
}

// Acquire blocks until the gate is free or ctx is done.
func (g *HostGate) Acquire(ctx context.Context) error {
	return g.sem.Acquire(ctx, 1)
}

// TryAcquire takes the gate without waiting and reports whether it succeeded.
func (g *HostGate) TryAcquire() bool {
	return g.sem.TryAcquire(1)
}

// Release frees the gate.
func (g *HostGate) Release() {
	g.sem.Release(1)
}
