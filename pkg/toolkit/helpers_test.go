package toolkit

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/go-drift/decl/pkg/errors"
)

type recordingHandler struct {
	mu     sync.Mutex
	errs   []*errors.DeclError
	panics []*errors.PanicError
}

func (h *recordingHandler) HandleError(err *errors.DeclError) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.errs = append(h.errs, err)
}

func (h *recordingHandler) HandlePanic(err *errors.PanicError) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.panics = append(h.panics, err)
}

func withHandler(t *testing.T, h errors.ErrorHandler) {
	t.Helper()
	errors.SetHandler(h)
	t.Cleanup(func() { errors.SetHandler(nil) })
}

func writeFile(t *testing.T, dir, name string, data []byte) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		t.Fatal(err)
	}
}
