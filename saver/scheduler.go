package saver

import (
	"sync"
	"time"

	"nimbus/config"
)

// Ticker is a periodic clock. The default is a time.Ticker; tests drive
// the loop with tickers they fire by hand.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFunc creates a Ticker firing every d.
type TickerFunc func(d time.Duration) Ticker

type timeTicker struct {
	t *time.Ticker
}

func (t timeTicker) C() <-chan time.Time { return t.t.C }
func (t timeTicker) Stop()               { t.t.Stop() }

// NewTimeTicker is the TickerFunc backed by time.NewTicker.
func NewTimeTicker(d time.Duration) Ticker {
	return timeTicker{t: time.NewTicker(d)}
}

// scheduler owns the tickers of one run. It is created on entering the
// running state and stopped exactly once when the run ends.
type scheduler struct {
	frame   Ticker
	refresh Ticker
	once    sync.Once
}

func startScheduler(cfg *config.Config, newTicker TickerFunc) *scheduler {
	s := &scheduler{frame: newTicker(cfg.Frame)}
	if cfg.Strategy == config.StrategyFull {
		s.refresh = newTicker(cfg.Refresh)
	}
	return s
}

// frames fires when the colour phase should advance.
func (s *scheduler) frames() <-chan time.Time {
	return s.frame.C()
}

// refreshes fires when telemetry should be re-read. It is nil, and so
// never ready, under the phase-only strategy.
func (s *scheduler) refreshes() <-chan time.Time {
	if s.refresh == nil {
		return nil
	}
	return s.refresh.C()
}

func (s *scheduler) stop() {
	s.once.Do(func() {
		s.frame.Stop()
		if s.refresh != nil {
			s.refresh.Stop()
		}
	})
}
