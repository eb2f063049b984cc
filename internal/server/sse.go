package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jonathan/design-solver/internal/pipeline"
)

// Stream pushes one run's lifecycle to a client as Server-Sent Events: a
// start marker, progress snapshots, the final result, and a terminal
// complete or error event.
type Stream struct {
	w       http.ResponseWriter
	flusher http.Flusher
	runID   string
}

// NewStream prepares the response for event streaming and announces the
// run. Fails when the connection cannot flush incrementally.
func NewStream(w http.ResponseWriter, runID string) (*Stream, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, fmt.Errorf("streaming not supported")
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	s := &Stream{w: w, flusher: flusher, runID: runID}
	s.send("start", map[string]string{"run_id": runID})
	return s, nil
}

// Progress forwards one pipeline snapshot. Its signature matches
// pipeline.UpdateFunc so the method can be passed as the run's callback.
func (s *Stream) Progress(snap pipeline.Snapshot) {
	s.send("progress", snap)
}

// Result sends the completed run followed by the terminal complete event.
func (s *Stream) Result(result *pipeline.Result) {
	s.send("result", result)
	s.complete(string(result.Status))
}

// Fail reports a fatal run error and terminates the stream.
func (s *Stream) Fail(message string) {
	s.send("error", map[string]string{"error": message})
	s.complete(string(pipeline.StatusError))
}

func (s *Stream) complete(status string) {
	s.send("complete", map[string]string{"run_id": s.runID, "status": status})
}

// send marshals and flushes one event. A write error means the client went
// away; the run itself is unaffected, so the error is dropped.
func (s *Stream) send(event string, data any) {
	payload, err := json.Marshal(data)
	if err != nil {
		return
	}
	fmt.Fprintf(s.w, "event: %s\ndata: %s\n\n", event, payload) //nolint:errcheck
	s.flusher.Flush()
}
