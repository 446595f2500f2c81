package decl

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"reflect"
	"runtime"
	"sync"
	"time"

	"github.com/go-drift/decl/pkg/engine"
	"github.com/go-drift/decl/pkg/node"
	"github.com/go-drift/decl/pkg/toolkit"
)

// debugServer manages the HTTP server for live hierarchy inspection.
type debugServer struct {
	server   *http.Server
	listener net.Listener
	mu       sync.Mutex
}

// uiTimeout bounds how long a request waits for the UI thread.
const uiTimeout = 2 * time.Second

// maxTreeDepth limits recursion depth when serializing a hierarchy.
const maxTreeDepth = 500

// WidgetTreeNode is one widget of the serialized live hierarchy.
type WidgetTreeNode struct {
	Kind         string           `json:"kind"`
	Type         string           `json:"type"`
	ID           string           `json:"id,omitempty"`
	Label        string           `json:"label,omitempty"`
	Bounds       [4]int           `json:"bounds"`
	Depth        int              `json:"depth"`
	Visible      bool             `json:"visible"`
	Active       bool             `json:"active"`
	Capabilities string           `json:"capabilities"`
	Children     []WidgetTreeNode `json:"children,omitempty"`
}

// ReloadStatus describes the reload controller.
type ReloadStatus struct {
	Watching bool   `json:"watching"`
	Path     string `json:"path,omitempty"`
	State    string `json:"state,omitempty"`
	Rebuilds int64  `json:"rebuilds"`
	Failures int64  `json:"failures"`
	Interval string `json:"interval,omitempty"`
}

// RuntimeSample captures runtime memory/GC stats.
type RuntimeSample struct {
	Timestamp    int64  `json:"ts"`
	Goroutines   int    `json:"goroutines"`
	HeapAlloc    uint64 `json:"heapAlloc"`
	HeapInuse    uint64 `json:"heapInuse"`
	HeapSys      uint64 `json:"heapSys"`
	NumGC        uint32 `json:"numGC"`
	PauseTotalNs uint64 `json:"pauseTotalNs"`
}

// StartDebugServer serves the app's state over HTTP on localhost:port.
// It returns the actual port (useful when port=0 for ephemeral allocation).
// Endpoints read the hierarchy on the UI thread, so they only answer while
// the toolkit loop is running.
//
//	/health       liveness
//	/widget-tree  the live hierarchy with each widget's capabilities
//	/source       the description tree last built
//	/reload       reload controller state
//	/runtime      memory and GC stats
func (a *App) StartDebugServer(port int) (int, error) {
	a.debug.mu.Lock()
	defer a.debug.mu.Unlock()

	if a.debug.server != nil {
		return a.debug.listener.Addr().(*net.TCPAddr).Port, nil
	}

	// Bind listener first to fail fast on port conflicts
	listener, err := net.Listen("tcp", fmt.Sprintf("localhost:%d", port))
	if err != nil {
		return 0, fmt.Errorf("debug server listen: %w", err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", handleHealth)
	mux.HandleFunc("/widget-tree", a.handleWidgetTree)
	mux.HandleFunc("/source", a.handleSource)
	mux.HandleFunc("/reload", a.handleReload)
	mux.HandleFunc("/runtime", handleRuntime)

	server := &http.Server{Handler: mux}
	a.debug.server = server
	a.debug.listener = listener

	go func() {
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			// Server failed - clear state so it can be restarted
			a.debug.mu.Lock()
			if a.debug.server == server {
				a.debug.server = nil
				a.debug.listener = nil
			}
			a.debug.mu.Unlock()
			fmt.Printf("debug server error: %v\n", err)
		}
	}()

	return listener.Addr().(*net.TCPAddr).Port, nil
}

// StopDebugServer gracefully shuts down the debug server.
func (a *App) StopDebugServer() {
	a.debug.mu.Lock()
	server := a.debug.server
	a.debug.server = nil
	a.debug.listener = nil
	a.debug.mu.Unlock()

	if server == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	server.Shutdown(ctx)
}

// onUI runs fn on the UI thread and waits for it.
func (a *App) onUI(ctx context.Context, fn func()) error {
	done := make(chan struct{})
	a.tk.Awake(func() {
		defer close(done)
		fn()
	})
	timer := time.NewTimer(uiTimeout)
	defer timer.Stop()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return fmt.Errorf("UI thread did not respond within %v", uiTimeout)
	}
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func (a *App) handleWidgetTree(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var tree *WidgetTreeNode
	var panicked any
	err := a.onUI(r.Context(), func() {
		defer func() { panicked = recover() }()
		if a.win != nil {
			n := serializeWidget(a.win, 0)
			tree = &n
		}
	})
	switch {
	case err != nil:
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
	case panicked != nil:
		http.Error(w, fmt.Sprintf("panic: %v", panicked), http.StatusInternalServerError)
	case tree == nil:
		http.Error(w, "no window", http.StatusServiceUnavailable)
	default:
		writeJSON(w, tree)
	}
}

func (a *App) handleSource(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var tree *node.Node
	if err := a.onUI(r.Context(), func() { tree = a.tree.Clone() }); err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, tree)
}

func (a *App) handleReload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var status ReloadStatus
	err := a.onUI(r.Context(), func() {
		if c := a.reload; c != nil {
			status = ReloadStatus{
				Watching: true,
				Path:     c.Path(),
				State:    c.State().String(),
				Rebuilds: c.Rebuilds(),
				Failures: c.Failures(),
				Interval: c.Interval().String(),
			}
		}
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, status)
}

func handleRuntime(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, sampleRuntime())
}

func sampleRuntime() RuntimeSample {
	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)
	return RuntimeSample{
		Timestamp:    time.Now().UnixMilli(),
		Goroutines:   runtime.NumGoroutine(),
		HeapAlloc:    stats.HeapAlloc,
		HeapInuse:    stats.HeapInuse,
		HeapSys:      stats.HeapSys,
		NumGC:        stats.NumGC,
		PauseTotalNs: stats.PauseTotalNs,
	}
}

func serializeWidget(w toolkit.Widget, depth int) WidgetTreeNode {
	n := WidgetTreeNode{
		Kind:         w.Kind(),
		Type:         reflect.TypeOf(w).String(),
		ID:           w.ID(),
		Label:        w.Label(),
		Bounds:       [4]int{w.X(), w.Y(), w.W(), w.H()},
		Depth:        depth,
		Visible:      w.Visible(),
		Active:       w.Active(),
		Capabilities: engine.Classify(w).String(),
	}
	if c, ok := w.(toolkit.Container); ok && depth < maxTreeDepth {
		for _, child := range c.Children() {
			n.Children = append(n.Children, serializeWidget(child, depth+1))
		}
	}
	return n
}

// writeJSON encodes to a buffer first so encoding errors become a 500.
func writeJSON(w http.ResponseWriter, v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		http.Error(w, fmt.Sprintf("json encode error: %v", err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}
