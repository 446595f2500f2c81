package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-drift/decl/cmd/decl/internal/config"
)

// options holds the flags shared by the commands. Zero values mean "use the
// resolved configuration".
type options struct {
	positional []string
	output     string
	interval   time.Duration
	width      int
	height     int
	debugPort  int
	debug      bool
}

func parseArgs(args []string) (options, error) {
	var opts options
	for i := 0; i < len(args); i++ {
		arg := args[i]
		name, value, hasValue := strings.Cut(arg, "=")
		switch name {
		case "-o", "--output", "--interval", "--size", "--debug-port":
			if !hasValue {
				if i+1 >= len(args) {
					return opts, fmt.Errorf("%s requires a value", name)
				}
				value = args[i+1]
				i++
			}
		default:
			if strings.HasPrefix(arg, "-") {
				return opts, fmt.Errorf("unknown flag %s", arg)
			}
			opts.positional = append(opts.positional, arg)
			continue
		}
		switch name {
		case "-o", "--output":
			opts.output = value
		case "--interval":
			d, err := time.ParseDuration(value)
			if err != nil {
				return opts, fmt.Errorf("--interval: %w", err)
			}
			if d <= 0 {
				return opts, fmt.Errorf("--interval must be positive (got %s)", value)
			}
			opts.interval = d
		case "--size":
			w, h, err := parseSize(value)
			if err != nil {
				return opts, err
			}
			opts.width, opts.height = w, h
		case "--debug-port":
			port, err := strconv.Atoi(value)
			if err != nil || port < 0 || port > 65535 {
				return opts, fmt.Errorf("--debug-port %q: want a port number", value)
			}
			opts.debugPort, opts.debug = port, true
		}
	}
	return opts, nil
}

// parseSize parses a WIDTHxHEIGHT string.
func parseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("--size %q: want WIDTHxHEIGHT", s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil || w <= 0 {
		return 0, 0, fmt.Errorf("--size %q: bad width", s)
	}
	h, err := strconv.Atoi(hs)
	if err != nil || h <= 0 {
		return 0, 0, fmt.Errorf("--size %q: bad height", s)
	}
	return w, h, nil
}

// resolve merges the project configuration of the working directory with
// the command-line options.
func resolve(opts options) (*config.Resolved, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	cfg, err := config.Resolve(wd)
	if err != nil {
		return nil, err
	}
	if len(opts.positional) > 0 {
		cfg.Source = opts.positional[0]
	}
	if opts.output != "" {
		cfg.Snapshot = opts.output
	}
	if opts.interval > 0 {
		cfg.Interval = opts.interval
	}
	if opts.width > 0 {
		cfg.Width, cfg.Height = opts.width, opts.height
	}
	return cfg, nil
}
