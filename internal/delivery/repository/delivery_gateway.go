package repository

import (
	"context"
	"fmt"

	"comanda/internal/domain"
	"comanda/internal/infrastructure/backend"
)

type DeliveryGateway struct {
	client *backend.Client
}

func NewDeliveryGateway(client *backend.Client) *DeliveryGateway {
	return &DeliveryGateway{client: client}
}

func (g *DeliveryGateway) ListOrders(ctx context.Context) ([]domain.DeliveryOrder, error) {
	var orders []domain.DeliveryOrder
	if err := g.client.GetJSON(ctx, "listing delivery orders", "/order-delivery/get-all-orders", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

type updateStatusRequest struct {
	OrderStatus string `json:"orderStatus"`
}

func (g *DeliveryGateway) UpdateStatus(ctx context.Context, orderID int, status string) error {
	path := fmt.Sprintf("/order-delivery/updateStatus/%d", orderID)
	return g.client.PutJSON(ctx, "updating delivery status", path, updateStatusRequest{OrderStatus: status}, nil)
}

func (g *DeliveryGateway) Delete(ctx context.Context, orderID int) error {
	path := fmt.Sprintf("/order-delivery/delete/%d", orderID)
	return g.client.Delete(ctx, "deleting delivery order", path)
}
