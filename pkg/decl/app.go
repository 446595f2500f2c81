package decl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-drift/decl/pkg/engine"
	"github.com/go-drift/decl/pkg/errors"
	"github.com/go-drift/decl/pkg/loader"
	"github.com/go-drift/decl/pkg/node"
	"github.com/go-drift/decl/pkg/reload"
	"github.com/go-drift/decl/pkg/toolkit"
)

// DefaultImagePath is where DumpImage writes when given no path.
const DefaultImagePath = "temp.svg"

// SetupFunc attaches behavior to a freshly built hierarchy.
type SetupFunc func(win *toolkit.Window)

// Option configures an App.
type Option func(*App)

// WithToolkit runs the app on tk instead of a new toolkit.
func WithToolkit(tk *toolkit.Toolkit) Option {
	return func(a *App) {
		if tk != nil {
			a.tk = tk
		}
	}
}

// WithInterval sets the reload polling interval.
func WithInterval(d time.Duration) Option {
	return func(a *App) { a.interval = d }
}

// WithRegistry replaces the widget kind registry.
func WithRegistry(r *engine.Registry) Option {
	return func(a *App) { a.registry = r }
}

// WithImageLoader replaces the loader used for image attributes.
func WithImageLoader(l toolkit.ImageLoader) Option {
	return func(a *App) { a.images = l }
}

// App owns a window whose contents are built from a description tree.
type App struct {
	width, height int
	title         string
	source        string
	loader        loader.Loader

	tk       *toolkit.Toolkit
	interval time.Duration
	registry *engine.Registry
	images   toolkit.ImageLoader

	tree    *node.Node
	win     *toolkit.Window
	builder *engine.Builder
	setup   SetupFunc
	reload  *reload.Controller

	debug debugServer
}

// New loads source with l and returns an app for it. A source that cannot be
// loaded is an error: there is nothing to show without an initial tree.
func New(width, height int, title, source string, l loader.Loader, opts ...Option) (*App, error) {
	if l == nil {
		return nil, fmt.Errorf("decl: nil loader")
	}
	tree, err := l.Load(source)
	if err != nil {
		return nil, &errors.DeclError{Op: "decl.new", Kind: errors.KindLoad, Path: source, Err: err}
	}
	return newApp(width, height, title, source, l, tree, opts), nil
}

// NewJSON is New with the JSON loader.
func NewJSON(width, height int, title, source string, opts ...Option) (*App, error) {
	return New(width, height, title, source, loader.JSON, opts...)
}

// NewJSON5 is New with the JSON5 loader.
func NewJSON5(width, height int, title, source string, opts ...Option) (*App, error) {
	return New(width, height, title, source, loader.JSON5, opts...)
}

// NewYAML is New with the YAML loader.
func NewYAML(width, height int, title, source string, opts ...Option) (*App, error) {
	return New(width, height, title, source, loader.YAML, opts...)
}

// NewTOML is New with the TOML loader.
func NewTOML(width, height int, title, source string, opts ...Option) (*App, error) {
	return New(width, height, title, source, loader.TOML, opts...)
}

// NewXML is New with the XML loader.
func NewXML(width, height int, title, source string, opts ...Option) (*App, error) {
	return New(width, height, title, source, loader.XML, opts...)
}

// NewAuto is New with the format picked from the file extension.
func NewAuto(width, height int, title, source string, opts ...Option) (*App, error) {
	return New(width, height, title, source, loader.Auto(), opts...)
}

// NewInline returns an app for an in-memory tree. It has no file to watch,
// so Run behaves like RunOnce.
func NewInline(width, height int, title string, root *node.Node, opts ...Option) *App {
	return newApp(width, height, title, "", nil, root, opts)
}

func newApp(width, height int, title, source string, l loader.Loader, tree *node.Node, opts []Option) *App {
	a := &App{
		width:    width,
		height:   height,
		title:    title,
		source:   source,
		loader:   l,
		tree:     tree,
		interval: reload.DefaultInterval,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.tk == nil {
		a.tk = toolkit.New()
	}
	a.builder = a.newBuilder(a.tk)
	return a
}

func (a *App) newBuilder(tk *toolkit.Toolkit) *engine.Builder {
	var opts []engine.Option
	if a.registry != nil {
		opts = append(opts, engine.WithRegistry(a.registry))
	}
	if a.images != nil {
		opts = append(opts, engine.WithImageLoader(a.images))
	} else if a.source != "" {
		opts = append(opts, engine.WithImageLoader(toolkit.FileImageLoader{Dir: filepath.Dir(a.source)}))
	}
	return engine.NewBuilder(tk, opts...)
}

// Toolkit returns the toolkit the app runs on.
func (a *App) Toolkit() *toolkit.Toolkit { return a.tk }

// Window returns the app window, or nil before Start.
func (a *App) Window() *toolkit.Window { return a.win }

// Tree returns the description the current hierarchy was built from.
func (a *App) Tree() *node.Node { return a.tree }

// Source returns the description file, or "" for an inline app.
func (a *App) Source() string { return a.source }

// Reloader returns the reload controller, or nil when the app is not
// watching its source.
func (a *App) Reloader() *reload.Controller { return a.reload }

// Start builds the hierarchy, shows the window and runs setup once. For a
// file-backed app it also starts watching the source. Start must be called
// on the UI thread; the caller then runs the toolkit loop.
func (a *App) Start(setup SetupFunc) error {
	a.show(setup)
	if a.source == "" {
		return nil
	}
	a.reload = reload.New(a.tk, a.source, a.loader, a.rebuild, a.runSetup, reload.WithInterval(a.interval))
	if err := a.reload.Start(); err != nil {
		a.reload = nil
		return &errors.DeclError{Op: "decl.start", Kind: errors.KindWatch, Path: a.source, Err: err}
	}
	return nil
}

func (a *App) show(setup SetupFunc) {
	a.setup = setup
	a.win = a.tk.NewWindow(a.width, a.height, a.title)
	a.builder.Build(a.tree)
	a.win.End()
	a.win.Show()
	a.win.FitFirstChild()
	a.runSetup()
}

func (a *App) runSetup() {
	if a.setup != nil {
		a.setup(a.win)
	}
}

// rebuild replaces the window contents with tree. It runs on the UI thread.
func (a *App) rebuild(tree *node.Node) {
	a.tree = tree
	a.win.Clear()
	a.win.Begin()
	a.builder.Build(tree)
	a.win.End()
	a.win.FitFirstChild()
	a.win.Redraw()
}

// Run starts the app, runs the toolkit loop until ctx is done or the toolkit
// quits, and closes the app. An inline app runs as with RunOnce.
func (a *App) Run(ctx context.Context, setup SetupFunc) error {
	if a.source == "" {
		return a.RunOnce(ctx, setup)
	}
	if err := a.Start(setup); err != nil {
		return err
	}
	defer a.Close()
	return a.tk.Run(ctx)
}

// RunOnce is Run without watching the source.
func (a *App) RunOnce(ctx context.Context, setup SetupFunc) error {
	a.show(setup)
	return a.tk.Run(ctx)
}

// DumpImage builds the current tree into an off-screen window and writes it
// to path: PNG for a ".png" path, SVG otherwise. An empty path means
// DefaultImagePath.
func (a *App) DumpImage(path string) error {
	if path == "" {
		path = DefaultImagePath
	}
	tk := toolkit.New()
	win := tk.NewWindow(a.width, a.height, a.title)
	a.newBuilder(tk).Build(a.tree)
	win.End()
	win.FitFirstChild()

	f, err := os.Create(path)
	if err != nil {
		return &errors.DeclError{Op: "decl.dump", Kind: errors.KindRender, Path: path, Err: err}
	}
	if strings.EqualFold(filepath.Ext(path), ".png") {
		err = toolkit.WritePNG(f, win)
	} else {
		err = toolkit.WriteSVG(f, win)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return &errors.DeclError{Op: "decl.dump", Kind: errors.KindRender, Path: path, Err: err}
	}
	return nil
}

// Close stops watching the source and the debug server. It must be called
// on the UI thread.
func (a *App) Close() error {
	a.StopDebugServer()
	if a.reload == nil {
		return nil
	}
	err := a.reload.Close()
	a.reload = nil
	return err
}
