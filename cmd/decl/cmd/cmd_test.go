package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/decl/pkg/engine"
	"github.com/go-drift/decl/pkg/loader"
	"github.com/go-drift/decl/pkg/node"
)

var counterJSON = filepath.Join("..", "..", "..", "pkg", "loader", "testdata", "counter.json")

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    options
		wantErr bool
	}{
		{"positional", []string{"gui.json"}, options{positional: []string{"gui.json"}}, false},
		{"output", []string{"gui.json", "-o", "out.png"}, options{positional: []string{"gui.json"}, output: "out.png"}, false},
		{"output equals", []string{"--output=out.svg"}, options{output: "out.svg"}, false},
		{"interval", []string{"--interval", "250ms"}, options{interval: 250 * time.Millisecond}, false},
		{"size", []string{"--size=640x480"}, options{width: 640, height: 480}, false},
		{"debug port", []string{"--debug-port", "0"}, options{debug: true}, false},
		{"bad debug port", []string{"--debug-port=http"}, options{}, true},
		{"missing value", []string{"-o"}, options{}, true},
		{"bad interval", []string{"--interval", "soon"}, options{}, true},
		{"zero interval", []string{"--interval", "0s"}, options{}, true},
		{"unknown flag", []string{"--fast"}, options{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseArgs(tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseArgs(%q) error = %v, wantErr %v", tt.args, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if diff := cmp.Diff(tt.want, got, cmp.AllowUnexported(options{})); diff != "" {
				t.Errorf("parseArgs(%q) mismatch (-want +got):\n%s", tt.args, diff)
			}
		})
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		in      string
		w, h    int
		wantErr bool
	}{
		{"800x600", 800, 600, false},
		{"10X20", 10, 20, false},
		{"800", 0, 0, true},
		{"0x600", 0, 0, true},
		{"800x-1", 0, 0, true},
		{"axb", 0, 0, true},
	}
	for _, tt := range tests {
		w, h, err := parseSize(tt.in)
		if (err != nil) != tt.wantErr || w != tt.w || h != tt.h {
			t.Errorf("parseSize(%q) = %d, %d, %v", tt.in, w, h, err)
		}
	}
}

func TestConvert_RoundTrip(t *testing.T) {
	want, err := loader.JSON.Load(counterJSON)
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	for _, ext := range []string{".yaml", ".toml", ".xml", ".json5"} {
		out := filepath.Join(dir, "counter"+ext)
		if err := convert(counterJSON, out); err != nil {
			t.Fatalf("convert to %s: %v", ext, err)
		}
		got, err := loader.Auto().Load(out)
		if err != nil {
			t.Fatalf("load %s: %v", out, err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%s round trip mismatch (-want +got):\n%s", ext, diff)
		}
	}
	if err := convert(counterJSON, filepath.Join(dir, "counter.txt")); err == nil {
		t.Error("expected error for unsupported output format")
	}
}

func TestPrintTree(t *testing.T) {
	root := &node.Node{Kind: "Column", Children: []*node.Node{
		{Kind: "Button", ID: node.Ptr("inc"), Label: node.Ptr("Inc")},
		{Kind: "Sparkle", Children: []*node.Node{{Kind: "Frame"}}},
	}}
	var b strings.Builder
	if err := printTree(&b, root, engine.DefaultRegistry()); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	for _, want := range []string{"Column", "#inc", `"Inc"`, "button", "unknown kind, 2 widget(s) dropped", "2 widgets", "2 dropped"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Frame") {
		t.Errorf("children of an unknown kind should not be listed:\n%s", out)
	}
}

func TestExecute_UnknownCommand(t *testing.T) {
	if err := execute([]string{"frobnicate"}); err == nil {
		t.Error("expected error for unknown command")
	}
}

func TestSnapshotCommand(t *testing.T) {
	src, err := filepath.Abs(counterJSON)
	if err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(t.TempDir(), "counter.svg")
	chdirForTest(t, t.TempDir())
	if err := execute([]string{"snapshot", src, "-o", out, "--size", "200x100"}); err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `width="200"`) || !strings.Contains(string(data), ">Inc</text>") {
		t.Errorf("unexpected svg:\n%s", data)
	}
	if err := execute([]string{"snapshot", src, "--interval", "1s"}); err == nil {
		t.Error("snapshot should reject --interval")
	}
}

// chdirForTest mirrors testing.T.Chdir (Go 1.24+) for older toolchains:
// it changes the working directory and restores it when the test ends.
func chdirForTest(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
