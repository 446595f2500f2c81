package cmd

import (
	"fmt"

	"github.com/go-drift/decl/pkg/decl"
)

func init() {
	RegisterCommand(&Command{
		Name:  "snapshot",
		Short: "Render a description to an image",
		Long: `Build the description file once into an off-screen window and write it
as SVG, or as PNG when the output ends in .png.

Flags:
  -o, --output FILE   Output image (default: snapshot.path from decl.yaml, or temp.svg)
  --size WxH          Window size (default: window.width x window.height, or 400x300)`,
		Usage: "decl snapshot [file] [-o out.svg|out.png] [--size WxH]",
		Run:   runSnapshot,
	})
}

func runSnapshot(args []string) error {
	opts, err := parseArgs(args)
	if err != nil {
		return err
	}
	if opts.interval > 0 || opts.debug {
		return fmt.Errorf("--interval and --debug-port are only supported by run")
	}
	cfg, err := resolve(opts)
	if err != nil {
		return err
	}
	app, err := decl.NewAuto(cfg.Width, cfg.Height, cfg.Title, cfg.Source)
	if err != nil {
		return err
	}
	if err := app.DumpImage(cfg.Snapshot); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", cfg.Snapshot)
	return nil
}
