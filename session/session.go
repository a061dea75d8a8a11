// Package session owns the terminal session lifecycle: mode
// transitions at start, frame pacing while active, and symmetric
// teardown at exit.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/nekotui/neko/terminal"
)

// ErrClosed is returned by Draw after the session has exited
var ErrClosed = errors.New("session: closed")

// InitError reports a failed terminal transition at session start.
// Transitions applied before the failing step have been rolled back.
type InitError struct {
	Step string
	Err  error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("session init: %s: %v", e.Step, e.Err)
}

func (e *InitError) Unwrap() error {
	return e.Err
}

// TeardownError reports one or more failed reversal steps at exit.
// Every reversal is attempted regardless of earlier failures; Err
// joins everything that failed.
type TeardownError struct {
	Err error
}

func (e *TeardownError) Error() string {
	return fmt.Sprintf("session teardown: %v", e.Err)
}

func (e *TeardownError) Unwrap() error {
	return e.Err
}

// Config accumulates session options before Start. The fluent steps
// are only reachable before Start consumes the Config: an active
// session exposes no configuration methods, so post-start mutation is
// a compile error rather than a runtime check.
type Config struct {
	frameInterval time.Duration
	clearOnStart  bool
	rawMode       bool
	altScreen     bool
	hideCursor    bool
	clock         Clock
}

// New returns a session configuration targeting the given frame rate.
// fps below 1 is rejected: no frame interval can be derived from it.
func New(fps int) (*Config, error) {
	if fps < 1 {
		return nil, fmt.Errorf("session: invalid frame rate %d", fps)
	}
	return &Config{
		frameInterval: time.Second / time.Duration(fps),
		clock:         systemClock{},
	}, nil
}

// Clear requests a screen clear at session start
func (c *Config) Clear() *Config {
	c.clearOnStart = true
	return c
}

// RawMode requests raw input mode for the session
func (c *Config) RawMode() *Config {
	c.rawMode = true
	return c
}

// AlternateScreen requests the alternate screen buffer for the session
func (c *Config) AlternateScreen() *Config {
	c.altScreen = true
	return c
}

// HideCursor requests an invisible cursor for the session
func (c *Config) HideCursor() *Config {
	c.hideCursor = true
	return c
}

// WithClock substitutes the pacing clock. Intended for tests.
func (c *Config) WithClock(clock Clock) *Config {
	c.clock = clock
	return c
}

// Session is an active terminal session. Create one with Config.Start
// and release it with Exit. Terminal modes are process-wide state:
// keep at most one active session per process.
type Session struct {
	driver terminal.Driver

	frameInterval time.Duration
	clock         Clock

	rawActive    bool
	altActive    bool
	cursorHidden bool
	closed       bool
}

// Start applies the configured transitions in order: clear, raw mode,
// alternate screen, cursor hide. On failure every transition already
// applied is rolled back in reverse before the InitError is returned,
// so a failed start leaks no terminal state.
//
// Start consumes the Config; it must not be reused afterwards.
func (c *Config) Start(d terminal.Driver) (*Session, error) {
	s := &Session{
		driver:        d,
		frameInterval: c.frameInterval,
		clock:         c.clock,
	}

	if c.clearOnStart {
		if err := d.Clear(); err != nil {
			return nil, &InitError{Step: "clear", Err: err}
		}
	}
	if c.rawMode {
		if err := d.EnterRawMode(); err != nil {
			return nil, &InitError{Step: "raw mode", Err: err}
		}
		s.rawActive = true
	}
	if c.altScreen {
		if err := d.EnterAltScreen(); err != nil {
			s.rollback()
			return nil, &InitError{Step: "alternate screen", Err: err}
		}
		s.altActive = true
	}
	if c.hideCursor {
		if err := d.SetCursorVisible(false); err != nil {
			s.rollback()
			return nil, &InitError{Step: "hide cursor", Err: err}
		}
		s.cursorHidden = true
	}

	return s, nil
}

// rollback undoes applied transitions in reverse order. Best-effort:
// the start failure is the error that matters, not the undo's.
func (s *Session) rollback() {
	if s.cursorHidden {
		s.driver.SetCursorVisible(true)
		s.cursorHidden = false
	}
	if s.altActive {
		s.driver.ExitAltScreen()
		s.altActive = false
	}
	if s.rawActive {
		s.driver.ExitRawMode()
		s.rawActive = false
	}
}

// Draw runs one frame: acquires the frame surface, invokes fn with it,
// flushes, then sleeps whatever remains of the frame interval. A slow
// frame never produces a negative sleep. fn's error is returned as-is
// and leaves the session active; one failed frame does not close it.
//
// If fn panics the session is torn down before the panic propagates,
// so the terminal is usable for the stack trace.
func (s *Session) Draw(fn func(terminal.Surface) error) error {
	if s.closed {
		return ErrClosed
	}

	start := s.clock.Now()

	surface, err := s.driver.BeginFrame()
	if err != nil {
		return err
	}

	var cbErr error
	func() {
		defer func() {
			if r := recover(); r != nil {
				s.Exit()
				panic(r)
			}
		}()
		cbErr = fn(surface)
	}()

	if err := s.driver.Flush(); err != nil && cbErr == nil {
		cbErr = err
	}

	if remaining := s.frameInterval - s.clock.Now().Sub(start); remaining > 0 {
		s.clock.Sleep(remaining)
	}

	return cbErr
}

// Exit restores the terminal, reversing the start transitions in the
// opposite order: cursor, alternate screen, raw mode. Every reversal
// is attempted even if an earlier one failed; failures are collected
// into a single TeardownError. Exit on a closed session is a no-op.
func (s *Session) Exit() error {
	if s.closed {
		return nil
	}
	s.closed = true

	var errs []error
	if s.cursorHidden {
		if err := s.driver.SetCursorVisible(true); err != nil {
			errs = append(errs, fmt.Errorf("show cursor: %w", err))
		}
		s.cursorHidden = false
	}
	if s.altActive {
		if err := s.driver.ExitAltScreen(); err != nil {
			errs = append(errs, fmt.Errorf("alternate screen: %w", err))
		}
		s.altActive = false
	}
	if s.rawActive {
		if err := s.driver.ExitRawMode(); err != nil {
			errs = append(errs, fmt.Errorf("raw mode: %w", err))
		}
		s.rawActive = false
	}

	if len(errs) > 0 {
		return &TeardownError{Err: errors.Join(errs...)}
	}
	return nil
}

// Size returns the terminal dimensions in cells
func (s *Session) Size() (width, height int) {
	return s.driver.Size()
}

// MoveCursor positions the terminal cursor (0-indexed)
func (s *Session) MoveCursor(x, y int) error {
	if s.closed {
		return ErrClosed
	}
	return s.driver.MoveCursor(x, y)
}
