package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/go-drift/decl/pkg/decl"
	"github.com/go-drift/decl/pkg/errors"
	"github.com/go-drift/decl/pkg/toolkit"
)

func init() {
	RegisterCommand(&Command{
		Name:  "run",
		Short: "Build a description and rebuild it on every change",
		Long: `Build the description file into a headless window and keep it in sync
with the file. After the first build and after every rebuild the window is
written to the preview image, so an editor or browser showing that image
follows your edits.

The file defaults to source.path from decl.yaml, or gui.json.

Flags:
  -o, --output FILE    Preview image, .svg or .png (default: temp.svg)
  --interval DURATION  How often the UI thread checks for a new tree (default: 100ms)
  --debug-port PORT    Serve the live hierarchy as JSON on localhost:PORT

Press Ctrl+C to stop.`,
		Usage: "decl run [file] [-o preview.svg] [--interval 100ms] [--debug-port PORT]",
		Run:   runRun,
	})
}

func runRun(args []string) error {
	opts, err := parseArgs(args)
	if err != nil {
		return err
	}
	if opts.width > 0 {
		return fmt.Errorf("--size is only supported by snapshot")
	}
	cfg, err := resolve(opts)
	if err != nil {
		return err
	}

	app, err := decl.NewAuto(cfg.Width, cfg.Height, cfg.Title, cfg.Source, decl.WithInterval(cfg.Interval))
	if err != nil {
		return err
	}

	if opts.debug {
		port, err := app.StartDebugServer(opts.debugPort)
		if err != nil {
			return err
		}
		fmt.Printf("Debug server on http://localhost:%d/widget-tree\n", port)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Watching %s (preview: %s)\n", cfg.Source, cfg.Snapshot)
	builds := 0
	return app.Run(ctx, func(*toolkit.Window) {
		builds++
		if err := app.DumpImage(cfg.Snapshot); err != nil {
			errors.Report(asDeclError(err, "decl.run"))
			return
		}
		if builds > 1 {
			fmt.Printf("Rebuilt %s (%d)\n", cfg.Source, builds-1)
		}
	})
}

func asDeclError(err error, op string) *errors.DeclError {
	if de, ok := err.(*errors.DeclError); ok {
		return de
	}
	return &errors.DeclError{Op: op, Kind: errors.KindRender, Err: err}
}
