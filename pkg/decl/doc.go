// Package decl is the application shell: it loads a description file, builds
// the widget hierarchy into a window, runs the toolkit loop and rebuilds the
// hierarchy whenever the file changes.
//
// A minimal program:
//
//	app, err := decl.NewJSON(300, 200, "counter", "gui.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//	err = app.Run(ctx, func(win *toolkit.Window) {
//		if inc, ok := toolkit.Lookup[*toolkit.Button](win, "inc"); ok {
//			inc.SetCallback(func(toolkit.Widget) { ... })
//		}
//	})
//
// The setup function runs once after the first build and again after every
// reload. Widgets from an earlier build are deleted by a reload, so setup
// must look them up again by id rather than keep handles around. State that
// must survive reloads belongs outside setup, for example in a
// [github.com/go-drift/decl/pkg/state.Shared].
package decl
