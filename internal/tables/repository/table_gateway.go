package repository

import (
	"context"
	"fmt"

	"comanda/internal/domain"
	"comanda/internal/infrastructure/backend"
)

type TableGateway struct {
	client *backend.Client
}

func NewTableGateway(client *backend.Client) *TableGateway {
	return &TableGateway{client: client}
}

func (g *TableGateway) List(ctx context.Context) ([]domain.Table, error) {
	var tables []domain.Table
	if err := g.client.GetJSON(ctx, "listing tables", "/restauranttable", &tables); err != nil {
		return nil, err
	}
	return tables, nil
}

type createTableRequest struct {
	TableNumber int `json:"tableNumber"`
}

func (g *TableGateway) Create(ctx context.Context, tableNumber int) (*domain.Table, error) {
	var created domain.Table
	err := g.client.PostJSON(ctx, "creating table", "/restauranttable",
		createTableRequest{TableNumber: tableNumber}, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (g *TableGateway) Remove(ctx context.Context, tableID int) error {
	return g.client.Delete(ctx, "deleting table", fmt.Sprintf("/restauranttable/%d", tableID))
}

// SetFree and SetOccupied map to the backend's two status-change endpoints,
// both keyed by table number.

func (g *TableGateway) SetFree(ctx context.Context, tableNumber int) error {
	path := fmt.Sprintf("/restauranttable/change/status-free?tableNumber=%d", tableNumber)
	return g.client.PostJSON(ctx, "freeing table", path, nil, nil)
}

func (g *TableGateway) SetOccupied(ctx context.Context, tableNumber int) error {
	path := fmt.Sprintf("/restauranttable/change/status-ocuped?tableNumber=%d", tableNumber)
	return g.client.PostJSON(ctx, "occupying table", path, nil, nil)
}
