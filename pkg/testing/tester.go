package testing

import (
	"fmt"
	"testing"
	"time"

	"github.com/go-drift/decl/pkg/engine"
	"github.com/go-drift/decl/pkg/node"
	"github.com/go-drift/decl/pkg/toolkit"
)

const (
	// DefaultTestWidth is the default window width.
	DefaultTestWidth = 800
	// DefaultTestHeight is the default window height.
	DefaultTestHeight = 600
)

// Tester builds description trees into a window on a toolkit driven by a
// fake clock, and simulates input on the result.
type Tester struct {
	tk      *toolkit.Toolkit
	clock   *toolkit.FakeClock
	win     *toolkit.Window
	builder *engine.Builder
	root    toolkit.Widget
}

// NewTester creates a tester with an empty DefaultTestWidth x
// DefaultTestHeight window.
func NewTester(opts ...engine.Option) *Tester {
	clk := toolkit.NewFakeClock()
	tk := toolkit.New(toolkit.WithClock(clk))
	t := &Tester{
		tk:      tk,
		clock:   clk,
		builder: engine.NewBuilder(tk, opts...),
	}
	t.win = tk.NewWindow(DefaultTestWidth, DefaultTestHeight, "test")
	t.win.End()
	t.win.Show()
	return t
}

// NewTesterWithT creates a tester whose window is cleared when the test ends.
func NewTesterWithT(t *testing.T, opts ...engine.Option) *Tester {
	tester := NewTester(opts...)
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup deletes the built hierarchy.
func (t *Tester) Cleanup() {
	t.win.Clear()
	t.root = nil
}

// SetSize resizes the window and refits the current hierarchy.
func (t *Tester) SetSize(w, h int) {
	t.win.Resize(0, 0, w, h)
	t.win.FitFirstChild()
}

// Clock returns the fake clock.
func (t *Tester) Clock() *toolkit.FakeClock { return t.clock }

// Toolkit returns the tester's toolkit.
func (t *Tester) Toolkit() *toolkit.Toolkit { return t.tk }

// Window returns the test window.
func (t *Tester) Window() *toolkit.Window { return t.win }

// Root returns the widget built by the last Pump, or nil.
func (t *Tester) Root() toolkit.Widget { return t.root }

// Pump replaces the window contents with a hierarchy built from n, fits it
// to the window and runs one loop step. It returns the built root, which is
// nil when n's kind is unknown.
func (t *Tester) Pump(n *node.Node) toolkit.Widget {
	t.win.Clear()
	t.win.Begin()
	t.root = t.builder.Build(n)
	t.win.End()
	t.win.FitFirstChild()
	t.tk.Step()
	return t.root
}

// Step runs one loop step and returns the number of callbacks run.
func (t *Tester) Step() int { return t.tk.Step() }

// Advance moves the fake clock forward by d and runs one loop step.
func (t *Tester) Advance(d time.Duration) int {
	t.clock.Advance(d)
	return t.tk.Step()
}

// Find evaluates finder against the window.
func (t *Tester) Find(finder Finder) FinderResult {
	return FinderResult{widgets: finder.Evaluate(t.win), finder: finder}
}

func (t *Tester) first(op string, finder Finder) (toolkit.Widget, error) {
	result := t.Find(finder)
	if !result.Exists() {
		return nil, fmt.Errorf("%s: finder matched no widgets: %s", op, finder.Description())
	}
	return result.First(), nil
}

// Tap clicks the first button matched by finder.
func (t *Tester) Tap(finder Finder) error {
	w, err := t.first("Tap", finder)
	if err != nil {
		return err
	}
	b, ok := w.(*toolkit.Button)
	if !ok {
		return fmt.Errorf("Tap: %s is a %s, not a button", finder.Description(), w.Kind())
	}
	if !b.Click() {
		return fmt.Errorf("Tap: %s does not accept input", finder.Description())
	}
	return nil
}

// EnterText types text into the first input matched by finder.
func (t *Tester) EnterText(finder Finder, text string) error {
	w, err := t.first("EnterText", finder)
	if err != nil {
		return err
	}
	in, ok := w.(*toolkit.Input)
	if !ok {
		return fmt.Errorf("EnterText: %s is a %s, not an input", finder.Description(), w.Kind())
	}
	if !in.Type(text) {
		return fmt.Errorf("EnterText: %s does not accept input", finder.Description())
	}
	return nil
}

// Select picks item i of the first menu matched by finder.
func (t *Tester) Select(finder Finder, i int) error {
	w, err := t.first("Select", finder)
	if err != nil {
		return err
	}
	m, ok := w.(*toolkit.Menu)
	if !ok {
		return fmt.Errorf("Select: %s is a %s, not a menu", finder.Description(), w.Kind())
	}
	if !m.Pick(i) {
		return fmt.Errorf("Select: %s rejected item %d", finder.Description(), i)
	}
	return nil
}

// Slide moves the first range control matched by finder to v.
func (t *Tester) Slide(finder Finder, v float64) error {
	w, err := t.first("Slide", finder)
	if err != nil {
		return err
	}
	var val *toolkit.Valuator
	switch x := w.(type) {
	case *toolkit.Valuator:
		val = x
	case *toolkit.TextValuator:
		val = &x.Valuator
	default:
		return fmt.Errorf("Slide: %s is a %s, not a range control", finder.Description(), w.Kind())
	}
	if !val.Slide(v) {
		return fmt.Errorf("Slide: %s does not accept input", finder.Description())
	}
	return nil
}

// CaptureSnapshot captures the window's current hierarchy.
func (t *Tester) CaptureSnapshot() *Snapshot {
	return Capture(t.win)
}
