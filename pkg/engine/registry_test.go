package engine

import (
	"testing"

	"github.com/go-drift/decl/pkg/toolkit"
)

func TestDefaultRegistry_AllKindsConstruct(t *testing.T) {
	r := DefaultRegistry()
	tags := r.Tags()
	if len(tags) != 59 {
		t.Fatalf("registered %d kinds, want 59", len(tags))
	}
	tk := toolkit.New()
	win := tk.NewWindow(100, 100, "")
	for _, tag := range tags {
		k, _ := r.Lookup(tag)
		w := k.New(tk)
		if w == nil || w.Kind() != tag {
			t.Errorf("%s constructed %v", tag, w)
			continue
		}
		if w.Parent() == nil {
			t.Errorf("%s did not attach to the open group", tag)
		}
		if c, ok := w.(toolkit.Container); ok {
			c.End()
		}
	}
	win.End()
	if got := len(win.Children()); got != 59 {
		t.Errorf("window has %d children, want 59", got)
	}
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()
	if _, ok := r.Lookup("Button"); ok {
		t.Fatal("empty registry has Button")
	}
	r.Register(Kind{Tag: ""})
	r.Register(Kind{Tag: "NoCtor"})
	if len(r.Tags()) != 0 {
		t.Errorf("invalid kinds were registered: %v", r.Tags())
	}

	r.Register(Kind{Tag: "Thing", New: func(tk *toolkit.Toolkit) toolkit.Widget { return tk.NewBox("Thing") }})
	if c, _ := r.Caps("Thing"); c.Has(CapContainer) {
		t.Errorf("box caps = %s", c)
	}
	r.Register(Kind{Tag: "Thing", New: func(tk *toolkit.Toolkit) toolkit.Widget { return tk.NewGroup("Thing") }})
	if c, _ := r.Caps("Thing"); !c.Has(CapContainer) {
		t.Errorf("re-registered kind kept stale caps %s", c)
	}
	if _, ok := r.Caps("Missing"); ok {
		t.Error("Caps(Missing) should report false")
	}
}
