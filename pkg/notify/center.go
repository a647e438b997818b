// pkg/notify/center.go

// Package notify provides a single-slot notification center for client
// front ends. Pushing a notification replaces the current one; every
// notification dismisses itself after its duration unless dismissed
// manually first.
package notify

import (
	"sync"
	"time"
)

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

const (
	// DefaultDuration is how long non-error notifications stay visible.
	DefaultDuration = 5000 * time.Millisecond
	// ErrorDuration gives error notifications extra reading time.
	ErrorDuration = 7000 * time.Millisecond
)

// Notification is one visible message. Details carries per-field
// messages for multi-field validation failures.
type Notification struct {
	Message  string
	Severity Severity
	Duration time.Duration
	Details  []string
}

// Listener observes the center's visible state. A nil notification means
// the slot was cleared.
type Listener func(n *Notification)

// Center holds at most one visible notification.
type Center struct {
	mu       sync.Mutex
	current  *Notification
	gen      uint64
	timer    *time.Timer
	listener Listener
}

func NewCenter() *Center {
	return &Center{}
}

// SetListener registers the observer for slot changes.
func (c *Center) SetListener(l Listener) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listener = l
}

// Current returns the visible notification, or nil.
func (c *Center) Current() *Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Push replaces the visible notification and arms its dismiss timer.
func (c *Center) Push(message string, severity Severity) {
	duration := DefaultDuration
	if severity == SeverityError {
		duration = ErrorDuration
	}
	c.PushWithDuration(message, severity, duration)
}

func (c *Center) PushWithDuration(message string, severity Severity, duration time.Duration) {
	c.push(&Notification{Message: message, Severity: severity, Duration: duration})
}

// ErrorWithDetails pushes an error notification carrying one entry per
// violated field.
func (c *Center) ErrorWithDetails(message string, details []string) {
	c.push(&Notification{Message: message, Severity: SeverityError, Duration: ErrorDuration, Details: details})
}

func (c *Center) push(n *Notification) {
	c.mu.Lock()

	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}

	c.gen++
	gen := c.gen
	c.current = n
	c.timer = time.AfterFunc(n.Duration, func() {
		c.dismissGen(gen)
	})
	listener := c.listener
	c.mu.Unlock()

	if listener != nil {
		listener(n)
	}
}

// Dismiss clears the slot immediately. The armed timer is disarmed so a
// later notification is never dismissed by a stale timer.
func (c *Center) Dismiss() {
	c.mu.Lock()
	gen := c.gen
	c.mu.Unlock()
	c.dismissGen(gen)
}

// dismissGen clears the slot only if it still shows generation gen.
func (c *Center) dismissGen(gen uint64) {
	c.mu.Lock()
	if c.gen != gen || c.current == nil {
		c.mu.Unlock()
		return
	}
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.current = nil
	listener := c.listener
	c.mu.Unlock()

	if listener != nil {
		listener(nil)
	}
}

// Success pushes a success notification.
func (c *Center) Success(message string) { c.Push(message, SeveritySuccess) }

// Error pushes an error notification with the longer duration.
func (c *Center) Error(message string) { c.Push(message, SeverityError) }

// Warning pushes a warning notification.
func (c *Center) Warning(message string) { c.Push(message, SeverityWarning) }

// Info pushes an informational notification.
func (c *Center) Info(message string) { c.Push(message, SeverityInfo) }
