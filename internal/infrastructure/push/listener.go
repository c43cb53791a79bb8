package push

import (
	"context"
	"time"

	"comanda/internal/domain"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const eventTableUpdated = "table-updated"

const (
	initialBackoff = time.Second
	maxBackoff     = 30 * time.Second
)

type frame struct {
	Event string             `json:"event"`
	Data  domain.TableUpdate `json:"data"`
}

// Listener keeps a websocket subscription to the backend's publish channel
// and forwards table-updated events. It is constructed in main and injected
// into the synchronizer; its lifetime is the dashboard's lifetime.
type Listener struct {
	url    string
	logger *zap.Logger
	events chan domain.TableUpdate
}

func NewListener(url string, logger *zap.Logger) *Listener {
	return &Listener{
		url:    url,
		logger: logger,
		events: make(chan domain.TableUpdate, 16),
	}
}

// Events delivers table-updated payloads. Other event types on the channel
// are ignored.
func (l *Listener) Events() <-chan domain.TableUpdate {
	return l.events
}

// Run dials the push channel and reads until ctx is cancelled, reconnecting
// with exponential backoff after any failure.
func (l *Listener) Run(ctx context.Context) {
	backoff := initialBackoff

	for {
		if ctx.Err() != nil {
			return
		}

		conn, _, err := websocket.DefaultDialer.DialContext(ctx, l.url, nil)
		if err != nil {
			l.logger.Warn("push channel dial failed", zap.String("url", l.url), zap.Error(err))
			select {
			case <-ctx.Done():
				return
			case <-time.After(backoff):
			}
			if backoff < maxBackoff {
				backoff *= 2
			}
			continue
		}

		l.logger.Info("push channel connected", zap.String("url", l.url))
		backoff = initialBackoff
		l.read(ctx, conn)
	}
}

func (l *Listener) read(ctx context.Context, conn *websocket.Conn) {
	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
		case <-done:
		}
		conn.Close()
	}()

	for {
		var f frame
		if err := conn.ReadJSON(&f); err != nil {
			if ctx.Err() == nil {
				l.logger.Warn("push channel read failed", zap.Error(err))
			}
			return
		}

		if f.Event != eventTableUpdated {
			continue
		}

		select {
		case l.events <- f.Data:
		case <-ctx.Done():
			return
		default:
			// A full buffer means the synchronizer is behind; dropping is
			// safe because every event triggers the same full re-merge.
			l.logger.Warn("push event dropped", zap.Int("mesa", f.Data.Mesa))
		}
	}
}
