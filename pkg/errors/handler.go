package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"
)

// handler receives every reported error. Guarded by handlerMu.
var (
	handlerMu sync.RWMutex
	handler   ErrorHandler = &LogHandler{}
)

// SetHandler installs h as the process-wide error handler. Nil restores a
// quiet LogHandler writing to stderr.
func SetHandler(h ErrorHandler) {
	if h == nil {
		h = &LogHandler{}
	}
	handlerMu.Lock()
	handler = h
	handlerMu.Unlock()
}

func currentHandler() ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return handler
}

// Report stamps err and hands it to the installed handler. It is safe to
// call from any goroutine; the reload watcher reports from its own.
func Report(err *DeclError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	currentHandler().HandleError(err)
}

// ReportPanic stamps err and hands it to the installed handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	currentHandler().HandlePanic(err)
}

// Recover reports a panic in the deferring function as a PanicError for op
// and lets the caller continue.
//
//	defer errors.Recover("toolkit.timeout")
func Recover(op string) {
	if r := recover(); r != nil {
		reportRecovered(op, r)
	}
}

// RecoverWithCallback is Recover followed by callback(r), so the caller can
// record the failure after it has been reported.
func RecoverWithCallback(op string, callback func(r any)) {
	if r := recover(); r != nil {
		reportRecovered(op, r)
		if callback != nil {
			callback(r)
		}
	}
}

func reportRecovered(op string, r any) {
	ReportPanic(&PanicError{
		Op:         op,
		Value:      r,
		StackTrace: stackAbove(4),
		Timestamp:  time.Now(),
	})
}

// stackAbove formats the goroutine's stack, omitting the innermost skip
// frames (runtime.Callers counts as one).
func stackAbove(skip int) string {
	pcs := make([]uintptr, 32)
	pcs = pcs[:runtime.Callers(skip, pcs)]
	if len(pcs) == 0 {
		return ""
	}
	var sb strings.Builder
	frames := runtime.CallersFrames(pcs)
	for {
		f, more := frames.Next()
		fmt.Fprintf(&sb, "%s\n\t%s:%d\n", f.Function, f.File, f.Line)
		if !more {
			return sb.String()
		}
	}
}
