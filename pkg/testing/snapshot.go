package testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/decl/pkg/toolkit"
)

// UpdateEnv names the environment variable that makes MatchesFile rewrite
// golden files instead of comparing against them.
const UpdateEnv = "DECL_UPDATE_SNAPSHOTS"

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot captures the structure of a widget hierarchy.
type Snapshot struct {
	Tree *WidgetNode `json:"tree"`
}

// WidgetNode is one widget in a serialized hierarchy.
type WidgetNode struct {
	Ref      string         `json:"ref"`
	Kind     string         `json:"kind"`
	ID       string         `json:"id,omitempty"`
	Label    string         `json:"label,omitempty"`
	Bounds   [4]int         `json:"bounds"`
	Hidden   bool           `json:"hidden,omitempty"`
	Inactive bool           `json:"inactive,omitempty"`
	Props    map[string]any `json:"props,omitempty"`
	Children []*WidgetNode  `json:"children,omitempty"`
}

// Capture serializes root and its descendants. Deleted widgets are skipped.
func Capture(root toolkit.Widget) *Snapshot {
	if root == nil || root.Deleted() {
		return &Snapshot{}
	}
	return &Snapshot{Tree: captureWidget(root, &typeCounter{})}
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When DECL_UPDATE_SNAPSHOTS=1
// is set, the file is silently updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv(UpdateEnv) == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: %s=1 go test -run %s", path, UpdateEnv, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: %s=1 go test -run %s", path, diff, UpdateEnv, t.Name())
	}
}

// UpdateFile writes this snapshot to the given path, creating directories
// as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := marshalSnapshot(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns a diff between other (expected) and this snapshot (actual).
// Returns empty string if equal.
func (s *Snapshot) Diff(other *Snapshot) string {
	// Both sides are compared in their decoded JSON form.
	a, _ := normalize(s)
	b, _ := normalize(other)
	if d := cmp.Diff(b, a); d != "" {
		return "(-expected +actual)\n" + d
	}
	return ""
}

// --- Internal ---

// typeCounter assigns stable refs like "Button#0", "Button#1".
type typeCounter struct {
	counts map[string]int
}

func (c *typeCounter) next(kind string) string {
	if c.counts == nil {
		c.counts = make(map[string]int)
	}
	n := c.counts[kind]
	c.counts[kind] = n + 1
	return fmt.Sprintf("%s#%d", kind, n)
}

func captureWidget(w toolkit.Widget, counter *typeCounter) *WidgetNode {
	n := &WidgetNode{
		Ref:      counter.next(w.Kind()),
		Kind:     w.Kind(),
		ID:       w.ID(),
		Label:    w.Label(),
		Bounds:   [4]int{w.X(), w.Y(), w.W(), w.H()},
		Hidden:   !w.Visible(),
		Inactive: !w.Active(),
	}
	if props := captureProperties(w); len(props) > 0 {
		n.Props = props
	}
	if c, ok := w.(toolkit.Container); ok {
		for _, child := range c.Children() {
			if child.Deleted() {
				continue
			}
			n.Children = append(n.Children, captureWidget(child, counter))
		}
	}
	return n
}

type colored interface {
	Color() toolkit.Color
	LabelColor() toolkit.Color
}

// captureProperties records the kind-specific state worth diffing.
func captureProperties(w toolkit.Widget) map[string]any {
	props := make(map[string]any)
	if c, ok := w.(colored); ok {
		if c.Color() != toolkit.DefaultColor {
			props["color"] = c.Color().Hex()
		}
		if c.LabelColor() != toolkit.DefaultLabelColor {
			props["labelcolor"] = c.LabelColor().Hex()
		}
	}
	switch v := w.(type) {
	case *toolkit.Window:
		props["title"] = v.Title()
	case *toolkit.Flex:
		l, t, r, b := v.Margins()
		props["row"] = v.IsRow()
		props["pad"] = v.Pad()
		if l|t|r|b != 0 {
			props["margins"] = []int{l, t, r, b}
		}
	case *toolkit.Button:
		props["frame"] = v.Frame().String()
		if v.Shortcut() != 0 {
			props["shortcut"] = int(v.Shortcut())
		}
		if v.Value() {
			props["value"] = true
		}
	case *toolkit.Input:
		props["value"] = v.Value()
	case *toolkit.TextView:
		if v.Buffer() != nil {
			props["text"] = v.Buffer().Text()
		}
	case *toolkit.Menu:
		props["items"] = v.Items()
		props["value"] = v.Value()
	case *toolkit.Valuator:
		props["range"] = []float64{v.Minimum(), v.Maximum(), v.Step()}
		props["value"] = v.Value()
	case *toolkit.TextValuator:
		props["range"] = []float64{v.Minimum(), v.Maximum(), v.Step()}
		props["value"] = v.Value()
	}
	if len(props) == 0 {
		return nil
	}
	return props
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot JSON: %w", err)
	}
	return &snap, nil
}

func marshalSnapshot(s *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func normalize(s *Snapshot) (any, error) {
	data, err := marshalSnapshot(s)
	if err != nil {
		return nil, err
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}
