// Package engine turns a description tree into live widgets.
//
// A [Registry] maps kind tags to constructors. A [Builder] constructs a
// widget for each node, classifies the handle into a [Capability] set by
// probing the capability interfaces declared in this package, and applies
// each attribute of the node only when the handle has the capability that
// owns it. Attributes a kind does not support are never read for it.
//
// Children are built while their container is open, in document order, and
// the container is closed afterwards:
//
//	win := tk.NewWindow(400, 300, "demo")
//	b := engine.NewBuilder(tk)
//	b.Build(root) // attaches to win
//	win.End()
//
// Failures never abort a build. A node with an unknown kind is dropped
// together with its subtree and reported as [errors.KindBuild], as are
// children declared under a non-container kind. A bad attribute value is
// skipped and reported as [errors.KindAttribute]. Both are diagnostics,
// printed only by a verbose [errors.LogHandler].
package engine
