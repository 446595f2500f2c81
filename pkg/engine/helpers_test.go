package engine

import (
	"sync"
	"testing"

	"github.com/go-drift/decl/pkg/errors"
	"github.com/go-drift/decl/pkg/node"
	"github.com/go-drift/decl/pkg/toolkit"
)

type recordingHandler struct {
	mu   sync.Mutex
	errs []*errors.DeclError
}

func (h *recordingHandler) HandleError(err *errors.DeclError) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.errs = append(h.errs, err)
}

func (h *recordingHandler) HandlePanic(*errors.PanicError) {}

func (h *recordingHandler) kinds() []errors.ErrorKind {
	h.mu.Lock()
	defer h.mu.Unlock()
	var out []errors.ErrorKind
	for _, e := range h.errs {
		out = append(out, e.Kind)
	}
	return out
}

func withHandler(t *testing.T) *recordingHandler {
	t.Helper()
	h := &recordingHandler{}
	errors.SetHandler(h)
	t.Cleanup(func() { errors.SetHandler(nil) })
	return h
}

// buildInWindow builds root into a fresh window and closes it.
func buildInWindow(t *testing.T, root *node.Node, opts ...Option) (*toolkit.Window, toolkit.Widget) {
	t.Helper()
	tk := toolkit.New()
	win := tk.NewWindow(400, 300, "test")
	w := NewBuilder(tk, opts...).Build(root)
	win.End()
	return win, w
}

// shape is a comparable summary of a widget subtree.
type shape struct {
	Kind     string
	ID       string
	Label    string
	X, Y     int
	W, H     int
	Visible  bool
	Active   bool
	Children []shape
}

func shapeOf(w toolkit.Widget) shape {
	s := shape{
		Kind: w.Kind(), ID: w.ID(), Label: w.Label(),
		X: w.X(), Y: w.Y(), W: w.W(), H: w.H(),
		Visible: w.Visible(), Active: w.Active(),
	}
	if c, ok := w.(toolkit.Container); ok {
		for _, child := range c.Children() {
			s.Children = append(s.Children, shapeOf(child))
		}
	}
	return s
}

func str(s string) *string { return node.Ptr(s) }
func num(i int) *int       { return node.Ptr(i) }
