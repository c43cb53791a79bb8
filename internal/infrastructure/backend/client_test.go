package backend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"comanda/internal/config"
	apperrors "comanda/internal/errors"

	"github.com/stretchr/testify/assert"
)

func newTestClient(serverURL string) *Client {
	return NewClient(config.BackendConfig{
		BaseURL: serverURL,
		Timeout: 2 * time.Second,
	})
}

func TestClient_GetJSON_DecodesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/restauranttable", r.URL.Path)
		w.Write([]byte(`[{"tableId":1,"tableNumber":5,"status":2}]`))
	}))
	defer srv.Close()

	var out []map[string]int
	err := newTestClient(srv.URL).GetJSON(context.Background(), "listing tables", "/restauranttable", &out)

	assert.NoError(t, err)
	assert.Len(t, out, 1)
	assert.Equal(t, 5, out[0]["tableNumber"])
}

func TestClient_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := newTestClient(srv.URL).Delete(context.Background(), "deleting table", "/restauranttable/9")

	re, ok := apperrors.IsRemoteError(err)
	assert.True(t, ok)
	assert.Equal(t, "deleting table", re.Op)
}

func TestClient_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	var out map[string]interface{}
	err := newTestClient(srv.URL).GetJSON(context.Background(), "listing orders", "/order", &out)

	_, ok := apperrors.IsRemoteError(err)
	assert.True(t, ok)
}

func TestClient_TransportFailure(t *testing.T) {
	// Nothing listens here.
	err := newTestClient("http://127.0.0.1:1").GetJSON(context.Background(), "listing tables", "/restauranttable", nil)

	_, ok := apperrors.IsRemoteError(err)
	assert.True(t, ok)
}

func TestClient_PostJSON_SendsBody(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Content-Type")
		w.Write([]byte(`{"tableId":7}`))
	}))
	defer srv.Close()

	var out struct {
		TableID int `json:"tableId"`
	}
	err := newTestClient(srv.URL).PostJSON(context.Background(), "creating table", "/restauranttable",
		map[string]int{"tableNumber": 3}, &out)

	assert.NoError(t, err)
	assert.Equal(t, "application/json", got)
	assert.Equal(t, 7, out.TableID)
}
