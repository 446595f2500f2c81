// Package config reads the optional decl.yaml project file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"
)

// FileName is the project configuration file looked up in a directory.
const FileName = "decl.yaml"

// Defaults applied by Resolve.
const (
	DefaultWidth    = 400
	DefaultHeight   = 300
	DefaultSource   = "gui.json"
	DefaultInterval = 100 * time.Millisecond
	DefaultSnapshot = "temp.svg"
)

// Config represents the optional decl.yaml configuration.
type Config struct {
	App      AppConfig      `yaml:"app"`
	Window   WindowConfig   `yaml:"window"`
	Source   SourceConfig   `yaml:"source"`
	Reload   ReloadConfig   `yaml:"reload"`
	Snapshot SnapshotConfig `yaml:"snapshot"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name  string `yaml:"name,omitempty"`
	Title string `yaml:"title,omitempty"`
}

// WindowConfig sizes the top-level window.
type WindowConfig struct {
	Width  int `yaml:"width,omitempty"`
	Height int `yaml:"height,omitempty"`
}

// SourceConfig names the description file.
type SourceConfig struct {
	Path string `yaml:"path,omitempty"`
}

// ReloadConfig tunes the reload controller.
type ReloadConfig struct {
	Interval string `yaml:"interval,omitempty"`
}

// SnapshotConfig names the preview image.
type SnapshotConfig struct {
	Path string `yaml:"path,omitempty"`
}

// Resolved contains resolved configuration values. Paths are absolute.
type Resolved struct {
	Root       string
	ModulePath string
	AppName    string
	Title      string
	Width      int
	Height     int
	Source     string
	Interval   time.Duration
	Snapshot   string
}

// LoadOptional reads decl.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	return &cfg, nil
}

// Resolve loads decl.yaml (if present) from dir and resolves defaults. The
// enclosing go.mod, when there is one, supplies the default app name.
func Resolve(dir string) (*Resolved, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	modPath, err := modulePath(dir)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(cfg.App.Name)
	if name == "" {
		name = defaultAppName(modPath, dir)
	}
	title := strings.TrimSpace(cfg.App.Title)
	if title == "" {
		title = name
	}

	width, height := cfg.Window.Width, cfg.Window.Height
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("window size must not be negative (got %dx%d)", width, height)
	}
	if width == 0 {
		width = DefaultWidth
	}
	if height == 0 {
		height = DefaultHeight
	}

	interval := DefaultInterval
	if s := strings.TrimSpace(cfg.Reload.Interval); s != "" {
		interval, err = time.ParseDuration(s)
		if err != nil {
			return nil, fmt.Errorf("reload.interval: %w", err)
		}
		if interval <= 0 {
			return nil, fmt.Errorf("reload.interval must be positive (got %s)", s)
		}
	}

	return &Resolved{
		Root:       dir,
		ModulePath: modPath,
		AppName:    name,
		Title:      title,
		Width:      width,
		Height:     height,
		Source:     resolvePath(dir, cfg.Source.Path, DefaultSource),
		Interval:   interval,
		Snapshot:   resolvePath(dir, cfg.Snapshot.Path, DefaultSnapshot),
	}, nil
}

func resolvePath(dir, p, def string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		p = def
	}
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(dir, p)
}

// modulePath returns the module path of the nearest go.mod at or above dir,
// or "" when there is none.
func modulePath(dir string) (string, error) {
	for {
		data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
		if err == nil {
			path := modfile.ModulePath(data)
			if path == "" {
				return "", fmt.Errorf("could not determine module path from %s", filepath.Join(dir, "go.mod"))
			}
			return path, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("failed to read go.mod: %w", err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func defaultAppName(modulePath, dir string) string {
	base := filepath.Base(dir)
	if modName, _, ok := module.SplitPathVersion(modulePath); ok && modName != "" {
		parts := strings.Split(modName, "/")
		base = parts[len(parts)-1]
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "decl_app"
	}
	return base
}
