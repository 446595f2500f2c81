// Package loader turns description files into node trees.
//
// A [Loader] is the pluggable collaborator the application shell uses for
// both the initial load and every hot reload. Loaders never panic on bad
// input; they return an error and the caller decides whether that is fatal
// (initial load) or only worth a diagnostic (reload).
package loader

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/titanous/json5"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/decl/pkg/node"
)

// ErrEmptyDocument is returned when a document decodes but has no root kind.
// Editors often truncate a file before writing it; treating that state as a
// valid empty tree would wipe the displayed hierarchy on reload.
var ErrEmptyDocument = errors.New("document has no root widget")

// Format identifies a description text format.
type Format int

const (
	FormatJSON Format = iota
	FormatJSON5
	FormatYAML
	FormatTOML
	FormatXML
)

// Formats lists every supported format.
var Formats = []Format{FormatJSON, FormatJSON5, FormatYAML, FormatTOML, FormatXML}

// String returns the conventional file extension without the dot.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatJSON5:
		return "json5"
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	case FormatXML:
		return "xml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatForPath picks a format from the file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".json5":
		return FormatJSON5, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".xml":
		return FormatXML, nil
	default:
		return 0, fmt.Errorf("unsupported description format %q", filepath.Ext(path))
	}
}

// Loader loads a description tree from a path.
type Loader interface {
	Load(path string) (*node.Node, error)
}

// Func adapts an ordinary function to the Loader interface.
type Func func(path string) (*node.Node, error)

// Load calls f(path).
func (f Func) Load(path string) (*node.Node, error) {
	return f(path)
}

// ForFormat returns a Loader that reads a file and decodes it as f.
func ForFormat(f Format) Loader {
	return Func(func(path string) (*node.Node, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		n, err := Decode(f, data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		return n, nil
	})
}

// Auto returns a Loader that picks the format from each path's extension.
func Auto() Loader {
	return Func(func(path string) (*node.Node, error) {
		f, err := FormatForPath(path)
		if err != nil {
			return nil, err
		}
		return ForFormat(f).Load(path)
	})
}

var (
	JSON  = ForFormat(FormatJSON)
	JSON5 = ForFormat(FormatJSON5)
	YAML  = ForFormat(FormatYAML)
	TOML  = ForFormat(FormatTOML)
	XML   = ForFormat(FormatXML)
)

// Decode parses data in format f.
func Decode(f Format, data []byte) (*node.Node, error) {
	var n node.Node
	var err error
	switch f {
	case FormatJSON:
		err = json.Unmarshal(data, &n)
	case FormatJSON5:
		err = json5.Unmarshal(data, &n)
	case FormatYAML:
		err = yaml.Unmarshal(data, &n)
	case FormatTOML:
		err = toml.Unmarshal(data, &n)
	case FormatXML:
		err = xml.Unmarshal(data, &n)
	default:
		err = fmt.Errorf("unsupported format %v", f)
	}
	if err != nil {
		return nil, err
	}
	if n.Kind == "" {
		return nil, ErrEmptyDocument
	}
	return &n, nil
}

// Encode serializes n in format f. JSON5 output is plain JSON, which every
// JSON5 reader accepts. XML output wraps the tree in a <root> element.
func Encode(f Format, n *node.Node) ([]byte, error) {
	if n == nil {
		return nil, ErrEmptyDocument
	}
	var buf bytes.Buffer
	switch f {
	case FormatJSON, FormatJSON5:
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(n); err != nil {
			return nil, err
		}
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(n); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
	case FormatTOML:
		if err := toml.NewEncoder(&buf).Encode(n); err != nil {
			return nil, err
		}
	case FormatXML:
		buf.WriteString(xml.Header)
		enc := xml.NewEncoder(&buf)
		enc.Indent("", "  ")
		if err := enc.EncodeElement(n, xml.StartElement{Name: xml.Name{Local: "root"}}); err != nil {
			return nil, err
		}
		if err := enc.Flush(); err != nil {
			return nil, err
		}
		buf.WriteByte('\n')
	default:
		return nil, fmt.Errorf("unsupported format %v", f)
	}
	return buf.Bytes(), nil
}

// WriteFile encodes n in the format implied by path and writes it.
func WriteFile(path string, n *node.Node) error {
	f, err := FormatForPath(path)
	if err != nil {
		return err
	}
	data, err := Encode(f, n)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return os.WriteFile(path, data, 0o644)
}
