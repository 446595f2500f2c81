package engine

import (
	"sort"
	"sync"

	"github.com/go-drift/decl/pkg/toolkit"
)

// Kind binds a tag to the constructor of its widget. New attaches the widget
// to the toolkit's current group.
type Kind struct {
	Tag string
	New func(tk *toolkit.Toolkit) toolkit.Widget
}

// Registry maps kind tags to constructors. It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	kinds map[string]Kind
	caps  map[string]Capability
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		kinds: make(map[string]Kind),
		caps:  make(map[string]Capability),
	}
}

// Register adds k, replacing any kind with the same tag.
func (r *Registry) Register(k Kind) {
	if k.Tag == "" || k.New == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.kinds[k.Tag] = k
	delete(r.caps, k.Tag)
}

// Lookup returns the kind registered for tag.
func (r *Registry) Lookup(tag string) (Kind, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	k, ok := r.kinds[tag]
	return k, ok
}

// Tags returns the registered tags, sorted.
func (r *Registry) Tags() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tags := make([]string, 0, len(r.kinds))
	for tag := range r.kinds {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Caps returns the capability set of tag's widgets when built without a
// parent, so CapFlexChild is never included.
func (r *Registry) Caps(tag string) (Capability, bool) {
	r.mu.RLock()
	c, ok := r.caps[tag]
	r.mu.RUnlock()
	if ok {
		return c, true
	}
	k, ok := r.Lookup(tag)
	if !ok {
		return 0, false
	}
	c = Classify(k.New(toolkit.New()))
	r.mu.Lock()
	r.caps[tag] = c
	r.mu.Unlock()
	return c, true
}

func group(tag string) Kind {
	return Kind{Tag: tag, New: func(tk *toolkit.Toolkit) toolkit.Widget { return tk.NewGroup(tag) }}
}

func button(tag string) Kind {
	return Kind{Tag: tag, New: func(tk *toolkit.Toolkit) toolkit.Widget { return tk.NewButton(tag) }}
}

func textView(tag string) Kind {
	return Kind{Tag: tag, New: func(tk *toolkit.Toolkit) toolkit.Widget { return tk.NewTextView(tag) }}
}

func input(tag string) Kind {
	return Kind{Tag: tag, New: func(tk *toolkit.Toolkit) toolkit.Widget { return tk.NewInput(tag) }}
}

func menu(tag string) Kind {
	return Kind{Tag: tag, New: func(tk *toolkit.Toolkit) toolkit.Widget { return tk.NewMenu(tag) }}
}

func valuator(tag string) Kind {
	return Kind{Tag: tag, New: func(tk *toolkit.Toolkit) toolkit.Widget { return tk.NewValuator(tag) }}
}

func textValuator(tag string) Kind {
	return Kind{Tag: tag, New: func(tk *toolkit.Toolkit) toolkit.Widget { return tk.NewTextValuator(tag) }}
}

func browser(tag string) Kind {
	return Kind{Tag: tag, New: func(tk *toolkit.Toolkit) toolkit.Widget { return tk.NewBrowser(tag) }}
}

func table(tag string) Kind {
	return Kind{Tag: tag, New: func(tk *toolkit.Toolkit) toolkit.Widget { return tk.NewTable(tag) }}
}

// DefaultRegistry returns a new registry holding every built-in kind.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(Kind{Tag: "Column", New: func(tk *toolkit.Toolkit) toolkit.Widget { return tk.NewFlex("Column", false) }})
	r.Register(Kind{Tag: "Row", New: func(tk *toolkit.Toolkit) toolkit.Widget { return tk.NewFlex("Row", true) }})
	for _, tag := range []string{"Group", "Pack", "Tile", "Tabs", "Scroll", "ColorChooser"} {
		r.Register(group(tag))
	}
	r.Register(Kind{Tag: "Frame", New: func(tk *toolkit.Toolkit) toolkit.Widget { return tk.NewBox("Frame") }})
	for _, tag := range []string{"Button", "CheckButton", "RadioButton", "ToggleButton", "RadioRoundButton", "ReturnButton"} {
		r.Register(button(tag))
	}
	for _, tag := range []string{"TextDisplay", "TextEditor"} {
		r.Register(textView(tag))
	}
	for _, tag := range []string{"Input", "IntInput", "FloatInput", "SecretInput", "FileInput", "MultilineInput", "Output", "MultilineOutput"} {
		r.Register(input(tag))
	}
	for _, tag := range []string{"MenuBar", "SysMenuBar", "Choice"} {
		r.Register(menu(tag))
	}
	for _, tag := range []string{
		"Slider", "NiceSlider", "FillSlider", "Dial", "LineDial", "FillDial",
		"Counter", "Scrollbar", "Roller", "Adjuster",
		"HorSlider", "HorNiceSlider", "HorFillSlider",
	} {
		r.Register(valuator(tag))
	}
	for _, tag := range []string{"ValueSlider", "ValueInput", "ValueOutput", "HorValueSlider"} {
		r.Register(textValuator(tag))
	}
	for _, tag := range []string{"Browser", "SelectBrowser", "HoldBrowser", "FileBrowser", "MultiBrowser"} {
		r.Register(browser(tag))
	}
	r.Register(Kind{Tag: "CheckBrowser", New: func(tk *toolkit.Toolkit) toolkit.Widget { return tk.NewCheckBrowser("CheckBrowser") }})
	for _, tag := range []string{"Table", "TableRow"} {
		r.Register(table(tag))
	}
	r.Register(Kind{Tag: "Tree", New: func(tk *toolkit.Toolkit) toolkit.Widget { return tk.NewTree("Tree") }})
	r.Register(Kind{Tag: "Spinner", New: func(tk *toolkit.Toolkit) toolkit.Widget { return tk.NewSpinner("Spinner") }})
	r.Register(Kind{Tag: "Chart", New: func(tk *toolkit.Toolkit) toolkit.Widget { return tk.NewChart("Chart") }})
	r.Register(Kind{Tag: "Progress", New: func(tk *toolkit.Toolkit) toolkit.Widget { return tk.NewProgress("Progress") }})
	r.Register(Kind{Tag: "InputChoice", New: func(tk *toolkit.Toolkit) toolkit.Widget { return tk.NewInputChoice("InputChoice") }})
	r.Register(Kind{Tag: "HelpView", New: func(tk *toolkit.Toolkit) toolkit.Widget { return tk.NewHelpView("HelpView") }})
	return r
}
