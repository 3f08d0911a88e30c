package port

import "time"

// Ticker delivers periodic ticks until stopped.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFactory creates tickers. Tests substitute a manual implementation.
type TickerFactory interface {
	NewTicker(interval time.Duration) Ticker
}
