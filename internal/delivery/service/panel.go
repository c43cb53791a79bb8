package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"comanda/internal/domain"
	apperrors "comanda/internal/errors"

	"go.uber.org/zap"
)

type DeliveryGateway interface {
	ListOrders(ctx context.Context) ([]domain.DeliveryOrder, error)
	UpdateStatus(ctx context.Context, orderID int, status string) error
	Delete(ctx context.Context, orderID int) error
}

// Panel drives the delivery-order lifecycle independently of the table grid.
// A failed refresh clears the list instead of showing stale orders; the
// kitchen must never act on an order the backend no longer confirms.
type Panel struct {
	gateway DeliveryGateway
	logger  *zap.Logger

	pollInterval time.Duration

	mu      sync.Mutex
	orders  []domain.DeliveryOrder
	loading bool
	lastErr error
}

func NewPanel(gateway DeliveryGateway, logger *zap.Logger, pollInterval time.Duration) *Panel {
	return &Panel{
		gateway:      gateway,
		logger:       logger,
		pollInterval: pollInterval,
		orders:       []domain.DeliveryOrder{},
	}
}

// Load fetches all delivery orders and replaces the list wholesale. On
// failure the list is cleared and the error retained for the panel view.
// showSpinner toggles the loading flag so background polls stay silent.
func (p *Panel) Load(ctx context.Context, showSpinner bool) {
	if showSpinner {
		p.mu.Lock()
		p.loading = true
		p.mu.Unlock()
	}

	orders, err := p.gateway.ListOrders(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()

	p.loading = false
	if err != nil {
		p.logger.Error("loading delivery orders failed", zap.Error(err))
		p.orders = []domain.DeliveryOrder{}
		p.lastErr = err
		return
	}

	if orders == nil {
		orders = []domain.DeliveryOrder{}
	}
	p.orders = orders
	p.lastErr = nil
}

// AdvanceStatus moves an order one step along the kitchen lifecycle. The
// backend is updated first; local state changes only on acknowledgement.
// Reaching ENTREGADO deletes the order remotely and locally instead of
// retaining it.
func (p *Panel) AdvanceStatus(ctx context.Context, orderID int) error {
	p.mu.Lock()
	var current string
	found := false
	for _, o := range p.orders {
		if o.OrderTransactionDeliveryID == orderID {
			current = o.StatusOrder
			found = true
			break
		}
	}
	p.mu.Unlock()

	if !found {
		return apperrors.NewNotFoundError(fmt.Sprintf("delivery order %d not found", orderID))
	}

	next := domain.NextDeliveryStatus(current)

	if err := p.gateway.UpdateStatus(ctx, orderID, next); err != nil {
		p.logger.Warn("advancing delivery status failed",
			zap.Int("orderId", orderID),
			zap.String("to", next),
			zap.Error(err))
		return err
	}

	if next == domain.DeliveryStatusEntregado {
		if err := p.gateway.Delete(ctx, orderID); err != nil {
			p.logger.Warn("deleting delivered order failed", zap.Int("orderId", orderID), zap.Error(err))
			return err
		}
		p.drop(orderID)
		p.logger.Info("delivery order delivered and removed", zap.Int("orderId", orderID))
		return nil
	}

	p.mu.Lock()
	for i := range p.orders {
		if p.orders[i].OrderTransactionDeliveryID == orderID {
			p.orders[i].StatusOrder = next
			break
		}
	}
	p.mu.Unlock()

	p.logger.Info("delivery status advanced",
		zap.Int("orderId", orderID),
		zap.String("from", current),
		zap.String("to", next))
	return nil
}

// Remove deletes an order remotely and drops it locally on success.
func (p *Panel) Remove(ctx context.Context, orderID int) error {
	if err := p.gateway.Delete(ctx, orderID); err != nil {
		p.logger.Warn("removing delivery order failed", zap.Int("orderId", orderID), zap.Error(err))
		return err
	}
	p.drop(orderID)
	return nil
}

func (p *Panel) drop(orderID int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	kept := p.orders[:0]
	for _, o := range p.orders {
		if o.OrderTransactionDeliveryID != orderID {
			kept = append(kept, o)
		}
	}
	p.orders = kept
}

// Active returns the orders the panel displays: ACTIVE and not yet delivered.
func (p *Panel) Active() []domain.DeliveryOrder {
	p.mu.Lock()
	defer p.mu.Unlock()

	active := []domain.DeliveryOrder{}
	for _, o := range p.orders {
		if o.IsActive() {
			active = append(active, o)
		}
	}
	return active
}

// Snapshot exposes the panel state for rendering.
func (p *Panel) Snapshot() (orders []domain.DeliveryOrder, loading bool, lastErr error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	orders = make([]domain.DeliveryOrder, len(p.orders))
	copy(orders, p.orders)
	return orders, p.loading, p.lastErr
}

// Run does the initial visible load, then silent background polls until ctx
// is cancelled.
func (p *Panel) Run(ctx context.Context) {
	p.Load(ctx, true)

	ticker := time.NewTicker(p.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.Load(ctx, false)
		}
	}
}
