package testutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"comanda/internal/config"
	"comanda/internal/infrastructure/backend"
)

// FakeBackend stands in for the remote restaurant backend in tests: canned
// responses keyed by method and path, with every request recorded.
type FakeBackend struct {
	server *httptest.Server

	mu        sync.Mutex
	requests  []RecordedRequest
	responses map[string]cannedResponse
}

type RecordedRequest struct {
	Method   string
	Path     string
	RawQuery string
	Body     string
}

type cannedResponse struct {
	status int
	body   string
}

func NewFakeBackend(t *testing.T) *FakeBackend {
	t.Helper()

	f := &FakeBackend{
		responses: make(map[string]cannedResponse),
	}
	f.server = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.server.Close)
	return f
}

// Stub registers the response for method+path. Unstubbed paths return 404.
func (f *FakeBackend) Stub(method, path string, status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[method+" "+path] = cannedResponse{status: status, body: body}
}

func (f *FakeBackend) Requests() []RecordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]RecordedRequest, len(f.requests))
	copy(out, f.requests)
	return out
}

// Client builds a backend client pointed at this fake.
func (f *FakeBackend) Client() *backend.Client {
	return backend.NewClient(config.BackendConfig{
		BaseURL: f.server.URL,
		Timeout: 2 * time.Second,
	})
}

func (f *FakeBackend) handle(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	f.mu.Lock()
	f.requests = append(f.requests, RecordedRequest{
		Method:   r.Method,
		Path:     r.URL.Path,
		RawQuery: r.URL.RawQuery,
		Body:     string(body),
	})
	resp, ok := f.responses[r.Method+" "+r.URL.Path]
	f.mu.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.status)
	if resp.body != "" {
		w.Write([]byte(resp.body))
	}
}
