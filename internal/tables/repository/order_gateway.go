package repository

import (
	"context"
	"fmt"

	"comanda/internal/domain"
	"comanda/internal/infrastructure/backend"
)

type OrderGateway struct {
	client *backend.Client
}

func NewOrderGateway(client *backend.Client) *OrderGateway {
	return &OrderGateway{client: client}
}

// ListTableOrders fetches the current per-table order bundles.
func (g *OrderGateway) ListTableOrders(ctx context.Context) ([]domain.TableOrder, error) {
	var bundles []domain.TableOrder
	if err := g.client.GetJSON(ctx, "listing table orders", "/order", &bundles); err != nil {
		return nil, err
	}
	return bundles, nil
}

// Send dispatches an order to the kitchen.
func (g *OrderGateway) Send(ctx context.Context, orderID int) error {
	path := fmt.Sprintf("/order/status/send/%d", orderID)
	return g.client.PostJSON(ctx, "sending order", path, nil, nil)
}

// History fetches the delivered-order feed for one table.
func (g *OrderGateway) History(ctx context.Context, tableNumber int) ([]domain.OrderHistory, error) {
	var feed []domain.OrderHistory
	path := fmt.Sprintf("/order/enviada/%d", tableNumber)
	if err := g.client.GetJSON(ctx, "fetching order history", path, &feed); err != nil {
		return nil, err
	}
	return feed, nil
}
