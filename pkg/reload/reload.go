// Package reload keeps a widget hierarchy in sync with its description file.
//
// A [Controller] runs a file watcher on a background goroutine. When the
// file is written, the goroutine loads it and hands the new tree to the UI
// thread through a one-slot channel, replacing any tree still waiting, and
// sets a single atomic flag. A repeating toolkit timer polls the flag on the
// UI thread; when it is set the timer takes the latest tree, rebuilds the
// hierarchy and runs the setup callback. Widget handles never leave the UI
// thread, and any number of writes between two polls cost one rebuild.
//
// A file that fails to load is reported as [errors.KindReload] and leaves
// the current hierarchy untouched.
package reload

import (
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/go-drift/decl/pkg/errors"
	"github.com/go-drift/decl/pkg/loader"
	"github.com/go-drift/decl/pkg/node"
	"github.com/go-drift/decl/pkg/toolkit"
)

// DefaultInterval is how often the UI thread polls for a pending rebuild.
const DefaultInterval = 100 * time.Millisecond

// State is the controller's position in the reload cycle.
type State int32

const (
	// Idle means no rebuild is pending.
	Idle State = iota
	// AwaitingRebuild means a new tree is queued for the next poll.
	AwaitingRebuild
	// Rebuilding means the UI thread is replacing the hierarchy.
	Rebuilding
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case AwaitingRebuild:
		return "AwaitingRebuild"
	case Rebuilding:
		return "Rebuilding"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}

// Option configures a Controller.
type Option func(*Controller)

// WithInterval sets the polling interval. Non-positive values are ignored.
func WithInterval(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.interval = d
		}
	}
}

// Controller watches one description file and rebuilds on change.
type Controller struct {
	tk       *toolkit.Toolkit
	path     string
	loader   loader.Loader
	rebuild  func(*node.Node)
	setup    func()
	interval time.Duration

	// Only these two cross goroutines.
	pending chan *node.Node
	dirty   atomic.Bool

	state    atomic.Int32
	rebuilds atomic.Int64
	failures atomic.Int64

	mu      sync.Mutex // guards watcher and done
	watcher *fsnotify.Watcher
	done    chan struct{}
	wg      sync.WaitGroup
	timer   *toolkit.Timeout
}

// New creates a controller for path. rebuild replaces the hierarchy with a
// freshly loaded tree; setup runs after every rebuild. Both run on the UI
// thread.
func New(tk *toolkit.Toolkit, path string, l loader.Loader, rebuild func(*node.Node), setup func(), opts ...Option) *Controller {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	c := &Controller{
		tk:       tk,
		path:     filepath.Clean(path),
		loader:   l,
		rebuild:  rebuild,
		setup:    setup,
		interval: DefaultInterval,
		pending:  make(chan *node.Node, 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Path returns the watched file.
func (c *Controller) Path() string { return c.path }

// Interval returns the polling interval.
func (c *Controller) Interval() time.Duration { return c.interval }

// State returns the current state. It is safe to call from any goroutine.
func (c *Controller) State() State { return State(c.state.Load()) }

// Rebuilds returns how many rebuilds have completed.
func (c *Controller) Rebuilds() int64 { return c.rebuilds.Load() }

// Failures returns how many rebuilds or setup calls panicked.
func (c *Controller) Failures() int64 { return c.failures.Load() }

// Start begins watching and arms the polling timer. It must be called on the
// UI thread.
func (c *Controller) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.watcher != nil {
		return fmt.Errorf("reload: already started")
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("reload: create watcher: %w", err)
	}
	// Watching the directory keeps the watch alive across editors that save
	// by renaming a temporary file over the original.
	if err := w.Add(filepath.Dir(c.path)); err != nil {
		w.Close()
		return fmt.Errorf("reload: watch %s: %w", c.path, err)
	}
	c.watcher = w
	c.done = make(chan struct{})
	c.wg.Add(1)
	go c.watch(w, c.done)

	c.timer = c.tk.AddTimeout(c.interval, c.tick)
	return nil
}

// Close stops the watcher and the polling timer. It must be called on the UI
// thread and is safe to call more than once.
func (c *Controller) Close() error {
	c.mu.Lock()
	w, done := c.watcher, c.done
	c.watcher, c.done = nil, nil
	c.mu.Unlock()

	if c.timer != nil {
		c.tk.RemoveTimeout(c.timer)
		c.timer = nil
	}
	if w == nil {
		return nil
	}
	close(done)
	err := w.Close()
	c.wg.Wait()
	return err
}

func (c *Controller) watch(w *fsnotify.Watcher, done <-chan struct{}) {
	defer c.wg.Done()
	for {
		select {
		case <-done:
			return
		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			c.HandleEvent(ev)
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			errors.Report(&errors.DeclError{
				Op:   "reload.watch",
				Kind: errors.KindWatch,
				Path: c.path,
				Err:  err,
			})
		}
	}
}

// Qualifies reports whether ev should trigger a reload: a write to, or the
// creation of, the watched file.
func (c *Controller) Qualifies(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != c.path {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)
}

// HandleEvent loads the file for a qualifying event and queues the result.
// It runs on the watcher goroutine; tests may call it directly.
func (c *Controller) HandleEvent(ev fsnotify.Event) {
	if !c.Qualifies(ev) {
		return
	}
	n, err := c.loader.Load(c.path)
	if err != nil {
		errors.Report(&errors.DeclError{
			Op:   "reload.load",
			Kind: errors.KindReload,
			Path: c.path,
			Err:  err,
		})
		return
	}
	c.Submit(n)
}

// Submit queues n for the next poll, replacing any tree still waiting. It
// must not be called from more than one goroutine at a time.
func (c *Controller) Submit(n *node.Node) {
	if n == nil {
		return
	}
	select {
	case <-c.pending:
	default:
	}
	c.pending <- n
	c.state.Store(int32(AwaitingRebuild))
	c.dirty.Store(true)
}

// Poll performs a pending rebuild and runs the setup callback. It reports
// whether a rebuild happened. It must be called on the UI thread.
func (c *Controller) Poll() bool {
	if !c.dirty.Swap(false) {
		return false
	}
	var n *node.Node
	select {
	case n = <-c.pending:
	default:
		return false
	}

	c.state.Store(int32(Rebuilding))
	defer c.state.CompareAndSwap(int32(Rebuilding), int32(Idle))
	defer errors.RecoverWithCallback("reload.rebuild", func(any) { c.failures.Add(1) })

	if c.rebuild != nil {
		c.rebuild(n)
	}
	c.rebuilds.Add(1)
	if c.setup != nil {
		c.setup()
	}
	return true
}

func (c *Controller) tick(t *toolkit.Timeout) {
	c.Poll()
	if c.timer == t {
		c.tk.RepeatTimeout(c.interval, t)
	}
}
