package toolkit

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-drift/decl/pkg/errors"
)

// Clock provides time for the event loop. Tests inject a [FakeClock] to make
// timer dispatch deterministic.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// FakeClock provides controllable time for deterministic loop tests.
// All methods are safe for concurrent use.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFakeClock returns a FakeClock starting at a fixed epoch.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Set sets the clock to an exact time.
func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// Timeout is a one-shot timer. Its callback may re-arm it with
// [Toolkit.RepeatTimeout] to make it periodic.
type Timeout struct {
	due    time.Time
	fn     func(*Timeout)
	active bool
}

// Due returns when the timer fires next.
func (t *Timeout) Due() time.Time { return t.due }

// Option configures a Toolkit.
type Option func(*Toolkit)

// WithClock replaces the wall clock used for timers.
func WithClock(c Clock) Option {
	return func(tk *Toolkit) {
		if c != nil {
			tk.clock = c
		}
	}
}

// Toolkit owns every widget, window and timer of one UI thread. Apart from
// Awake and Quit, its methods must be called from the goroutine that runs
// the loop.
type Toolkit struct {
	current Container
	windows []*Window
	clock   Clock
	timers  []*Timeout

	mu    sync.Mutex
	queue []func()
	wake  chan struct{}
	quit  atomic.Bool
}

// New creates a toolkit.
func New(opts ...Option) *Toolkit {
	tk := &Toolkit{
		clock: realClock{},
		wake:  make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(tk)
	}
	return tk
}

// Clock returns the toolkit's clock.
func (tk *Toolkit) Clock() Clock { return tk.clock }

// Current returns the open group new widgets attach to, or nil.
func (tk *Toolkit) Current() Container { return tk.current }

// SetCurrent makes c the open group. Passing nil leaves new widgets detached.
func (tk *Toolkit) SetCurrent(c Container) { tk.current = c }

// Windows returns every window created by the toolkit.
func (tk *Toolkit) Windows() []*Window { return tk.windows }

// AddTimeout schedules fn to run once, d from now.
func (tk *Toolkit) AddTimeout(d time.Duration, fn func(*Timeout)) *Timeout {
	t := &Timeout{due: tk.clock.Now().Add(d), fn: fn, active: true}
	tk.timers = append(tk.timers, t)
	return t
}

// RepeatTimeout re-arms t to fire d after its previous due time. A timer that
// has fallen behind is rescheduled d from now rather than firing in a burst.
func (tk *Toolkit) RepeatTimeout(d time.Duration, t *Timeout) {
	if t == nil {
		return
	}
	now := tk.clock.Now()
	next := t.due.Add(d)
	if next.Before(now) {
		next = now.Add(d)
	}
	t.due = next
	if !t.active {
		t.active = true
		tk.timers = append(tk.timers, t)
	}
}

// RemoveTimeout cancels t. Removing an inactive timer is a no-op.
func (tk *Toolkit) RemoveTimeout(t *Timeout) {
	if t == nil || !t.active {
		return
	}
	t.active = false
	for i, x := range tk.timers {
		if x == t {
			tk.timers = append(tk.timers[:i], tk.timers[i+1:]...)
			break
		}
	}
}

// HasTimeout reports whether t is scheduled.
func (tk *Toolkit) HasTimeout(t *Timeout) bool {
	return t != nil && t.active
}

// Awake queues fn to run on the UI thread and wakes the loop. It is safe to
// call from any goroutine.
func (tk *Toolkit) Awake(fn func()) {
	if fn != nil {
		tk.mu.Lock()
		tk.queue = append(tk.queue, fn)
		tk.mu.Unlock()
	}
	select {
	case tk.wake <- struct{}{}:
	default:
	}
}

// Quit asks Run to return after the current step. It is safe to call from
// any goroutine.
func (tk *Toolkit) Quit() {
	tk.quit.Store(true)
	tk.Awake(nil)
}

func (tk *Toolkit) drainQueue() []func() {
	tk.mu.Lock()
	defer tk.mu.Unlock()
	callbacks := tk.queue
	tk.queue = nil
	return callbacks
}

// Step runs one loop iteration: queued Awake callbacks first, then every
// timer that was due when the step started, earliest first. Timers armed by
// those callbacks wait for a later step. It returns the number of callbacks
// run.
func (tk *Toolkit) Step() int {
	n := 0
	for _, fn := range tk.drainQueue() {
		tk.safeCall("toolkit.awake", fn)
		n++
	}

	now := tk.clock.Now()
	var due []*Timeout
	for _, t := range tk.timers {
		if !t.due.After(now) {
			due = append(due, t)
		}
	}
	sort.SliceStable(due, func(i, j int) bool { return due[i].due.Before(due[j].due) })
	for _, t := range due {
		if !t.active || t.due.After(now) {
			continue
		}
		tk.RemoveTimeout(t)
		if t.fn != nil {
			tk.safeCall("toolkit.timeout", func() { t.fn(t) })
		}
		n++
	}
	return n
}

func (tk *Toolkit) safeCall(op string, fn func()) {
	defer errors.Recover(op)
	fn()
}

// next returns the time until the earliest timer, or false when none are
// scheduled.
func (tk *Toolkit) next() (time.Duration, bool) {
	if len(tk.timers) == 0 {
		return 0, false
	}
	earliest := tk.timers[0].due
	for _, t := range tk.timers[1:] {
		if t.due.Before(earliest) {
			earliest = t.due
		}
	}
	return max(earliest.Sub(tk.clock.Now()), 0), true
}

// Run runs the loop on the calling goroutine until Quit is called (nil) or
// ctx is done (ctx.Err()).
func (tk *Toolkit) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		tk.Step()
		if tk.quit.Swap(false) {
			return nil
		}
		if err := tk.wait(ctx); err != nil {
			return err
		}
	}
}

// wait blocks until the next timer is due, Awake is called or ctx is done.
func (tk *Toolkit) wait(ctx context.Context) error {
	var timer <-chan time.Time
	if d, ok := tk.next(); ok {
		t := time.NewTimer(d)
		defer t.Stop()
		timer = t.C
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-tk.wake:
	case <-timer:
	}
	return nil
}
