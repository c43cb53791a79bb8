package push

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"comanda/internal/domain"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

func newPushServer(t *testing.T, frames []string) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{}

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade failed: %v", err)
			return
		}
		defer conn.Close()

		for _, f := range frames {
			if err := conn.WriteMessage(websocket.TextMessage, []byte(f)); err != nil {
				return
			}
		}
		// Keep the connection open so the listener does not reconnect
		// while the test drains events.
		time.Sleep(200 * time.Millisecond)
	}))
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func TestListener_DeliversTableUpdates(t *testing.T) {
	srv := newPushServer(t, []string{
		`{"event":"table-updated","data":{"mesa":1,"estado":3}}`,
	})
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	l := NewListener(wsURL(srv), zap.NewNop())
	go l.Run(ctx)

	select {
	case ev := <-l.Events():
		if ev != (domain.TableUpdate{Mesa: 1, Estado: 3}) {
			t.Errorf("unexpected event: %+v", ev)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for push event")
	}
}

func TestListener_IgnoresOtherEvents(t *testing.T) {
	srv := newPushServer(t, []string{
		`{"event":"waiter-called","data":{"mesa":9,"estado":9}}`,
		`{"event":"table-updated","data":{"mesa":2,"estado":1}}`,
	})
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	l := NewListener(wsURL(srv), zap.NewNop())
	go l.Run(ctx)

	select {
	case ev := <-l.Events():
		if ev.Mesa != 2 {
			t.Errorf("expected the table-updated event, got %+v", ev)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for push event")
	}
}

func TestListener_StopsOnContextCancel(t *testing.T) {
	srv := newPushServer(t, nil)
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	l := NewListener(wsURL(srv), zap.NewNop())

	stopped := make(chan struct{})
	go func() {
		l.Run(ctx)
		close(stopped)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("listener did not stop after cancel")
	}
}
