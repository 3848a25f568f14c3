// Package saver runs the screensaver: it owns the terminal while drawing,
// drives the refresh and animation clocks, and restores the terminal on
// every way out.
package saver

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"

	"nimbus/ascii"
	"nimbus/config"
	"nimbus/errors"
	"nimbus/logger"
	"nimbus/rainbow"
	"nimbus/screen"
	"nimbus/sysinfo"
)

// State is the lifecycle state of a Saver.
type State int32

const (
	StateInit State = iota
	StateSkipped
	StateRunning
	StateInterrupted
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StateSkipped:
		return "skipped"
	case StateRunning:
		return "running"
	case StateInterrupted:
		return "interrupted"
	case StateFailed:
		return "failed"
	}
	return fmt.Sprintf("State(%d)", int32(s))
}

// Saver draws the animated glyph until its context is cancelled.
type Saver struct {
	cfg       *config.Config
	tpl       *ascii.Template
	src       sysinfo.Source
	term      screen.Terminal
	log       logger.Logger
	newTicker TickerFunc

	state atomic.Int32

	// size the current frame was composed for
	cols, rows int
}

// Option configures a Saver.
type Option func(*Saver)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l logger.Logger) Option {
	return func(s *Saver) { s.log = l }
}

// WithTicker replaces the clock used for frames and refreshes.
func WithTicker(f TickerFunc) Option {
	return func(s *Saver) { s.newTicker = f }
}

// New creates a Saver drawing on term with telemetry from src.
func New(cfg *config.Config, src sysinfo.Source, term screen.Terminal, opts ...Option) (*Saver, error) {
	tpl, ok := ascii.Lookup(cfg.Glyph)
	if !ok {
		return nil, errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown glyph %q", cfg.Glyph), "")
	}

	s := &Saver{
		cfg:       cfg,
		tpl:       tpl,
		src:       src,
		term:      term,
		log:       logger.Noop(),
		newTicker: NewTimeTicker,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// State returns the current lifecycle state.
func (s *Saver) State() State {
	return State(s.state.Load())
}

func (s *Saver) setState(st State) {
	s.state.Store(int32(st))
	s.log.Debug("state %s", st)
}

// Run draws until ctx is cancelled. It returns nil without writing
// anything when the terminal is smaller than the glyph (or the configured
// minimum), and nil after restoring the terminal on cancellation.
func (s *Saver) Run(ctx context.Context) error {
	cols, rows, err := s.term.Size()
	if err != nil {
		s.setState(StateFailed)
		return err
	}
	s.cols, s.rows = cols, rows
	frame := ascii.Compose(s.tpl, s.snapshot(ctx), cols, rows, s.composeOptions())
	if ctx.Err() != nil {
		s.setState(StateInterrupted)
		return nil
	}

	minW, minH := s.thresholds(frame)
	if s.cols < minW || s.rows < minH {
		s.log.Info("terminal %dx%d is smaller than %dx%d, not drawing", s.cols, s.rows, minW, minH)
		s.setState(StateSkipped)
		return nil
	}

	s.setState(StateRunning)
	release := s.acquire()
	defer release()

	sched := startScheduler(s.cfg, s.newTicker)
	defer sched.stop()

	anim := rainbow.New(frame.Text, s.cfg.Speed, s.term.Profile())
	s.draw(anim.Next())

	for {
		select {
		case <-ctx.Done():
			s.setState(StateInterrupted)
			return nil
		case <-sched.frames():
			s.draw(anim.Next())
		case <-sched.refreshes():
			s.refresh(ctx, anim)
		}
	}
}

// Once prints a single coloured frame to w without taking over the
// terminal. A terminal whose size cannot be read gets the frame uncentered.
func (s *Saver) Once(ctx context.Context, w io.Writer) error {
	cols, rows, err := s.term.Size()
	if err != nil {
		s.log.Debug("no terminal size, printing uncentered: %v", err)
		cols, rows = 0, 0
	}
	frame := ascii.Compose(s.tpl, s.snapshot(ctx), cols, rows, s.composeOptions())

	text := rainbow.New(frame.Text, s.cfg.Speed, s.term.Profile()).Render()
	_, err = io.WriteString(w, ascii.Restore(text)+"\n")
	return err
}

// snapshot collects telemetry. On failure it logs and returns nil, which
// composes the bare glyph.
func (s *Saver) snapshot(ctx context.Context) *sysinfo.Snapshot {
	snap, err := sysinfo.Collect(ctx, s.src)
	if err != nil {
		if ctx.Err() == nil {
			s.log.Warn("telemetry unavailable: %v", err)
		}
		return nil
	}
	return snap
}

func (s *Saver) composeOptions() ascii.Options {
	return ascii.Options{Border: s.cfg.Border}
}

// thresholds returns the smallest terminal the frame may be drawn in.
func (s *Saver) thresholds(frame ascii.Frame) (int, int) {
	w, h := frame.Width, frame.Height
	if s.cfg.MinWidth > 0 {
		w = s.cfg.MinWidth
	}
	if s.cfg.MinHeight > 0 {
		h = s.cfg.MinHeight
	}
	return w, h
}

// refresh re-reads telemetry and replaces the animated text. A failed
// read keeps the current text.
func (s *Saver) refresh(ctx context.Context, anim *rainbow.Animation) {
	cols, rows, err := s.term.Size()
	if err != nil {
		s.log.Warn("skipping refresh: %v", err)
		return
	}

	snap, err := sysinfo.Collect(ctx, s.src)
	if err != nil {
		if ctx.Err() == nil {
			s.log.Warn("skipping refresh: %v", err)
		}
		return
	}

	if cols != s.cols || rows != s.rows {
		s.log.Debug("terminal resized to %dx%d", cols, rows)
		s.cols, s.rows = cols, rows
		s.term.Clear()
	}
	anim.Replace(ascii.Compose(s.tpl, snap, cols, rows, s.composeOptions()).Text)
}

// acquire puts the terminal in drawing mode and returns the function that
// puts it back. The caller defers the release so it also runs when the
// loop panics.
func (s *Saver) acquire() func() {
	s.term.Clear()
	s.term.HideCursor()
	return func() {
		s.term.Clear()
		s.term.ShowCursor()
	}
}

func (s *Saver) draw(text string) {
	s.term.Home()
	if _, err := io.WriteString(s.term, ascii.Restore(text)); err != nil {
		s.log.Error("write frame: %v", err)
	}
	s.term.ClearBelow()
}
