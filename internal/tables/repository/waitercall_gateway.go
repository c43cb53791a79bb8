package repository

import (
	"context"

	"comanda/internal/infrastructure/backend"
)

type WaiterCallGateway struct {
	client *backend.Client
}

func NewWaiterCallGateway(client *backend.Client) *WaiterCallGateway {
	return &WaiterCallGateway{client: client}
}

type createWaiterCallRequest struct {
	TableID int `json:"tableId"`
	Status  int `json:"status"`
}

func (g *WaiterCallGateway) Create(ctx context.Context, tableID, status int) error {
	return g.client.PostJSON(ctx, "creating waiter call", "/waitercall/create-waitercall",
		createWaiterCallRequest{TableID: tableID, Status: status}, nil)
}
