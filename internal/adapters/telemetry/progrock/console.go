package progrock

import (
	"fmt"
	"io"
	"sync"

	"github.com/vito/progrock"
)

// ConsoleWriter consumes status updates and renders each vertex transition
// as one plain line. Suitable for non-TTY output.
type ConsoleWriter struct {
	mu      sync.Mutex
	out     io.Writer
	started map[string]struct{}
	done    map[string]struct{}
}

// NewConsoleWriter creates a ConsoleWriter rendering to out.
func NewConsoleWriter(out io.Writer) *ConsoleWriter {
	return &ConsoleWriter{
		out:     out,
		started: make(map[string]struct{}),
		done:    make(map[string]struct{}),
	}
}

// WriteStatus renders the transitions it has not reported yet. The recorder
// resends known vertices on every sync, so each transition is reported once.
func (w *ConsoleWriter) WriteStatus(status *progrock.StatusUpdate) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, v := range status.Vertexes {
		if _, ok := w.started[v.Id]; !ok {
			w.started[v.Id] = struct{}{}
			_, _ = fmt.Fprintf(w.out, "-> %s\n", v.Name)
		}
		if v.Completed == nil {
			continue
		}
		if _, ok := w.done[v.Id]; ok {
			continue
		}
		w.done[v.Id] = struct{}{}
		if v.Error != nil {
			_, _ = fmt.Fprintf(w.out, "err %s: %s\n", v.Name, v.GetError())
			continue
		}
		_, _ = fmt.Fprintf(w.out, "ok %s\n", v.Name)
	}

	return nil
}

// Close implements progrock.Writer. The ConsoleWriter holds no resources.
func (w *ConsoleWriter) Close() error {
	return nil
}
