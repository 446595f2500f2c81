// Package errors provides structured error reporting for decl.
//
// Most failures in a declarative tree are not fatal: an unknown widget kind
// drops a subtree, a bad color leaves a color unchanged, a reload that fails
// to parse keeps the previous hierarchy. Those are reported through the
// package-level [ErrorHandler] instead of being returned, so callers keep
// running while the diagnostic stream still records what happened.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindLoad indicates a description file that could not be read or decoded.
	KindLoad
	// KindBuild indicates nodes that produced no widget: an unknown kind or
	// children declared under a leaf.
	KindBuild
	// KindAttribute indicates an attribute value that could not be applied.
	KindAttribute
	// KindReload indicates a failed hot-reload attempt.
	KindReload
	// KindWatch indicates a file-change observer failure.
	KindWatch
	// KindRender indicates a snapshot rendering failure.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindLoad:
		return "load"
	case KindBuild:
		return "build"
	case KindAttribute:
		return "attribute"
	case KindReload:
		return "reload"
	case KindWatch:
		return "watch"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Diagnostic reports whether errors of this kind are expected during normal
// operation and only worth showing in verbose mode.
func (k ErrorKind) Diagnostic() bool {
	return k == KindBuild || k == KindAttribute
}

// DeclError represents a structured error.
type DeclError struct {
	// Op is the operation that failed (e.g., "reload.Controller.load").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Path is the description file involved, if any.
	Path string
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *DeclError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s [%s] path=%s: %v", e.Op, e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *DeclError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "decl.App.setup").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// AttributeError describes an attribute that was skipped.
type AttributeError struct {
	// Widget is the kind tag of the node carrying the attribute.
	Widget string
	// Attribute is the attribute key as written in the description.
	Attribute string
	// Value is the rejected value.
	Value any
	// Err is the underlying cause, if any.
	Err error
}

func (e *AttributeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s.%s=%v: %v", e.Widget, e.Attribute, e.Value, e.Err)
	}
	return fmt.Sprintf("%s.%s=%v: out of range", e.Widget, e.Attribute, e.Value)
}

func (e *AttributeError) Unwrap() error {
	return e.Err
}

// UnknownKindError is reported when a node's kind is not registered.
type UnknownKindError struct {
	Kind string
	// Dropped is the number of nodes discarded with it (the node included).
	Dropped int
}

func (e *UnknownKindError) Error() string {
	if e.Kind == "" {
		return fmt.Sprintf("node without widget kind, %d node(s) dropped", e.Dropped)
	}
	return fmt.Sprintf("unknown widget kind %q, %d node(s) dropped", e.Kind, e.Dropped)
}

// LeafChildrenError is reported when a node of a non-container kind
// declares children. The widget is built; its children are not.
type LeafChildrenError struct {
	Kind    string
	Dropped int
}

func (e *LeafChildrenError) Error() string {
	return fmt.Sprintf("%s cannot hold children, %d node(s) dropped", e.Kind, e.Dropped)
}

// ErrorHandler receives errors reported by decl.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *DeclError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
