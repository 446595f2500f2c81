// Package toolkit is a headless, retained-mode widget toolkit.
//
// It implements the toolkit boundary the engine builds against: widget
// handles with labels, colors, fonts and frames; groups that accumulate
// every widget constructed while they are "open"; a flex container that
// distributes space along one axis; and a cooperative single-threaded event
// loop with timers.
//
// # Open groups
//
// Constructing a widget attaches it to the toolkit's current group.
// Constructing a group (or calling Begin on one) makes it current until End
// is called, which restores its parent:
//
//	win := tk.NewWindow(200, 300, "demo")
//	col := tk.NewFlex("Column", false) // col is now current
//	tk.NewButton("Button")             // child of col
//	col.End()                          // win is current again
//	win.End()
//
// # Threading
//
// A Toolkit and every widget it created belong to the goroutine running
// [Toolkit.Run] (or calling [Toolkit.Step]). The only methods safe to call
// from other goroutines are [Toolkit.Awake] and [Toolkit.Quit].
//
// # Snapshots
//
// [WriteSVG] and [WritePNG] render a hierarchy to a static image. They are
// diagnostics for regression snapshots, not a display backend.
package toolkit
