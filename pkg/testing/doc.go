// Package testing provides helpers for testing description trees and the
// hierarchies built from them.
//
// # Quick Start
//
// Create a tester, pump a description, and make assertions:
//
//	func TestCounter(t *testing.T) {
//	    tester := decltest.NewTesterWithT(t)
//	    tester.Pump(root)
//
//	    // Find widgets
//	    inc := tester.Find(decltest.ByID("inc")).First()
//
//	    // Simulate input
//	    tester.Tap(decltest.ByLabel("Inc"))
//
//	    // Assert state
//	    if !tester.Find(decltest.ByLabel("1")).Exists() {
//	        t.Error("expected '1'")
//	    }
//	}
//
// # Snapshot Testing
//
// Capture and compare hierarchy snapshots:
//
//	snapshot := tester.CaptureSnapshot()
//	snapshot.MatchesFile(t, "testdata/counter.snapshot.json")
//
// Update snapshots with:
//
//	DECL_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Timer Testing
//
// The tester's toolkit runs on a fake clock:
//
//	tester.Advance(100 * time.Millisecond)
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import decltest "github.com/go-drift/decl/pkg/testing"
package testing
