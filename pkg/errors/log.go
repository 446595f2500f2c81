package errors

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// LogHandler is an ErrorHandler that writes to a diagnostic stream.
type LogHandler struct {
	// Out receives the log lines. Nil means os.Stderr.
	Out io.Writer
	// Verbose enables build and attribute diagnostics plus stack traces.
	Verbose bool

	mu sync.Mutex
}

func (h *LogHandler) out() io.Writer {
	if h.Out == nil {
		return os.Stderr
	}
	return h.Out
}

// HandleError logs a DeclError. Diagnostic kinds are dropped unless Verbose.
func (h *LogHandler) HandleError(err *DeclError) {
	if err == nil {
		return
	}
	if err.Kind.Diagnostic() && !h.Verbose {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	w := h.out()
	if h.Verbose {
		fmt.Fprintf(w, "[decl %s] %s", err.Kind, err.Op)
		if err.Path != "" {
			fmt.Fprintf(w, " path=%s", err.Path)
		}
		fmt.Fprintf(w, ": %v\n", err.Err)
	} else {
		fmt.Fprintf(w, "[decl error] %s: %v\n", err.Op, err.Err)
	}
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	w := h.out()
	if err.Op != "" {
		fmt.Fprintf(w, "[decl panic] %s: %v\n", err.Op, err.Value)
	} else {
		fmt.Fprintf(w, "[decl panic] %v\n", err.Value)
	}
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
	}
}
