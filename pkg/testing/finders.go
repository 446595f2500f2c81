package testing

import (
	"fmt"
	"reflect"

	"github.com/go-drift/decl/pkg/toolkit"
)

// Finder locates widgets in a hierarchy.
type Finder interface {
	// Evaluate returns all matching widgets under root (depth-first pre-order).
	Evaluate(root toolkit.Widget) []toolkit.Widget
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	widgets []toolkit.Widget
	finder  Finder
}

func (r FinderResult) describe() string {
	if r.finder == nil {
		return "unknown"
	}
	return r.finder.Description()
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() toolkit.Widget {
	if len(r.widgets) == 0 {
		panic(fmt.Sprintf("Finder found no widgets: %s", r.describe()))
	}
	return r.widgets[0]
}

// FirstOrNil returns the first match, or nil if none.
func (r FinderResult) FirstOrNil() toolkit.Widget {
	if len(r.widgets) == 0 {
		return nil
	}
	return r.widgets[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) toolkit.Widget {
	if index < 0 || index >= len(r.widgets) {
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", index, len(r.widgets), r.describe()))
	}
	return r.widgets[index]
}

// All returns all matches in traversal order.
func (r FinderResult) All() []toolkit.Widget { return r.widgets }

// Count returns the number of matches.
func (r FinderResult) Count() int { return len(r.widgets) }

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool { return len(r.widgets) > 0 }

// --- Concrete finders ---

type predicateFinder struct {
	match func(toolkit.Widget) bool
	desc  string
}

func (f *predicateFinder) Evaluate(root toolkit.Widget) []toolkit.Widget {
	var out []toolkit.Widget
	toolkit.Walk(root, func(w toolkit.Widget, _ int) bool {
		if f.match(w) {
			out = append(out, w)
		}
		return true
	})
	return out
}

func (f *predicateFinder) Description() string { return f.desc }

// ByPredicate returns a finder that matches widgets for which match is true.
func ByPredicate(description string, match func(toolkit.Widget) bool) Finder {
	return &predicateFinder{match: match, desc: description}
}

// ByKind matches widgets built from the given kind tag.
func ByKind(kind string) Finder {
	return ByPredicate(fmt.Sprintf("ByKind(%q)", kind), func(w toolkit.Widget) bool {
		return w.Kind() == kind
	})
}

// ByID matches widgets with the given id.
func ByID(id string) Finder {
	return ByPredicate(fmt.Sprintf("ByID(%q)", id), func(w toolkit.Widget) bool {
		return id != "" && w.ID() == id
	})
}

// ByLabel matches widgets whose label equals label.
func ByLabel(label string) Finder {
	return ByPredicate(fmt.Sprintf("ByLabel(%q)", label), func(w toolkit.Widget) bool {
		return w.Label() == label
	})
}

// ByType matches widgets whose concrete type is T.
func ByType[T toolkit.Widget]() Finder {
	t := reflect.TypeOf((*T)(nil)).Elem() // equivalent to reflect.TypeFor[T]() (Go 1.22+)
	return ByPredicate(fmt.Sprintf("ByType(%s)", t), func(w toolkit.Widget) bool {
		return reflect.TypeOf(w) == t
	})
}
