package testing

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-drift/decl/pkg/loader"
	"github.com/go-drift/decl/pkg/node"
)

// fakeT records failures instead of failing the surrounding test.
type fakeT struct {
	fatal  string
	errors []string
}

func (f *fakeT) Helper()      {}
func (f *fakeT) Name() string { return "TestFake" }
func (f *fakeT) Fatalf(format string, args ...any) {
	f.fatal = fmt.Sprintf(format, args...)
}
func (f *fakeT) Errorf(format string, args ...any) {
	f.errors = append(f.errors, fmt.Sprintf(format, args...))
}

func pumpCounter(t *testing.T) *Tester {
	t.Helper()
	root, err := loader.JSON.Load(filepath.Join("..", "loader", "testdata", "counter.json"))
	if err != nil {
		t.Fatal(err)
	}
	tester := NewTesterWithT(t)
	tester.Pump(root)
	return tester
}

func TestSnapshot_MatchesGolden(t *testing.T) {
	tester := pumpCounter(t)
	tester.CaptureSnapshot().MatchesFile(t, filepath.Join("testdata", "counter.snapshot.json"))
}

func TestSnapshot_RefsAreStable(t *testing.T) {
	tester := pumpCounter(t)
	snap := tester.CaptureSnapshot()
	col := snap.Tree.Children[0]
	var refs []string
	for _, c := range col.Children {
		refs = append(refs, c.Ref)
	}
	if got := strings.Join(refs, ","); got != "Button#0,Frame#0,Button#1" {
		t.Errorf("refs = %s", got)
	}
}

func TestSnapshot_DiffDetectsChange(t *testing.T) {
	tester := pumpCounter(t)
	before := tester.CaptureSnapshot()
	if err := tester.Tap(ByID("inc")); err != nil {
		t.Fatal(err)
	}
	if diff := before.Diff(tester.CaptureSnapshot()); diff != "" {
		t.Errorf("a click without a callback changed the snapshot:\n%s", diff)
	}

	tester.Find(ByID("result")).First().(interface{ SetLabel(string) }).SetLabel("7")
	diff := tester.CaptureSnapshot().Diff(before)
	if !strings.Contains(diff, `"7"`) {
		t.Errorf("diff does not mention the new label:\n%s", diff)
	}
}

func TestSnapshot_UpdateThenMatch(t *testing.T) {
	tester := pumpCounter(t)
	path := filepath.Join(t.TempDir(), "nested", "snap.json")
	snap := tester.CaptureSnapshot()
	if err := snap.UpdateFile(path); err != nil {
		t.Fatalf("UpdateFile: %v", err)
	}
	ft := &fakeT{}
	snap.MatchesFile(ft, path)
	if ft.fatal != "" || len(ft.errors) != 0 {
		t.Errorf("unexpected failure: %q %v", ft.fatal, ft.errors)
	}
}

func TestSnapshot_MissingFile(t *testing.T) {
	t.Setenv(UpdateEnv, "")
	ft := &fakeT{}
	Capture(nil).MatchesFile(ft, filepath.Join(t.TempDir(), "absent.json"))
	if !strings.Contains(ft.fatal, "snapshot file missing") || !strings.Contains(ft.fatal, UpdateEnv+"=1") {
		t.Errorf("fatal = %q", ft.fatal)
	}
}

func TestSnapshot_UpdateEnvRewrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snap.json")
	tester := NewTesterWithT(t)
	tester.Pump(&node.Node{Kind: "Frame", Label: node.Ptr("one")})
	tester.CaptureSnapshot().UpdateFile(path)

	tester.Pump(&node.Node{Kind: "Frame", Label: node.Ptr("two")})
	t.Setenv(UpdateEnv, "1")
	ft := &fakeT{}
	tester.CaptureSnapshot().MatchesFile(ft, path)
	t.Setenv(UpdateEnv, "")
	tester.CaptureSnapshot().MatchesFile(ft, path)
	if ft.fatal != "" || len(ft.errors) != 0 {
		t.Errorf("unexpected failure after update: %q %v", ft.fatal, ft.errors)
	}
}

func TestSnapshot_MismatchReportsDiff(t *testing.T) {
	t.Setenv(UpdateEnv, "")
	path := filepath.Join(t.TempDir(), "snap.json")
	tester := NewTesterWithT(t)
	tester.Pump(&node.Node{Kind: "Frame", Label: node.Ptr("one")})
	tester.CaptureSnapshot().UpdateFile(path)
	tester.Pump(&node.Node{Kind: "Frame", Label: node.Ptr("two"), Hide: node.Ptr(true)})

	ft := &fakeT{}
	tester.CaptureSnapshot().MatchesFile(ft, path)
	if len(ft.errors) != 1 || !strings.Contains(ft.errors[0], "snapshot mismatch") {
		t.Fatalf("errors = %v", ft.errors)
	}
	if !strings.Contains(ft.errors[0], "hidden") {
		t.Errorf("diff does not mention hidden:\n%s", ft.errors[0])
	}
}
