package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"comanda/internal/domain"
	apperrors "comanda/internal/errors"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type mockPanel struct {
	ActiveFunc        func() []domain.DeliveryOrder
	SnapshotFunc      func() ([]domain.DeliveryOrder, bool, error)
	AdvanceStatusFunc func(ctx context.Context, orderID int) error
	RemoveFunc        func(ctx context.Context, orderID int) error
}

func (m *mockPanel) Active() []domain.DeliveryOrder { return m.ActiveFunc() }
func (m *mockPanel) Snapshot() ([]domain.DeliveryOrder, bool, error) {
	return m.SnapshotFunc()
}
func (m *mockPanel) AdvanceStatus(ctx context.Context, orderID int) error {
	return m.AdvanceStatusFunc(ctx, orderID)
}
func (m *mockPanel) Remove(ctx context.Context, orderID int) error {
	return m.RemoveFunc(ctx, orderID)
}

func newTestRouter(panel Panel) http.Handler {
	c := NewController(panel, zap.NewNop())
	r := chi.NewRouter()
	r.Get("/delivery", c.HandleListOrders)
	r.Post("/delivery/{orderId}/advance", c.HandleAdvanceStatus)
	r.Delete("/delivery/{orderId}", c.HandleRemoveOrder)
	return r
}

func TestHandleListOrders_RendersCards(t *testing.T) {
	order := domain.DeliveryOrder{
		OrderTransactionDeliveryID: 3,
		NameClient:                 "Ana",
		Phone:                      "3001234567",
		Products: []domain.Product{
			{ID: "p1", Nombre: "Pizza", Precio: 25000, Cantidad: 2},
		},
		Total:       50000,
		Method:      domain.DeliveryMethodDomicilio,
		Address:     "Calle 10 #4-20",
		Status:      domain.DeliveryActive,
		StatusOrder: domain.DeliveryStatusPreparando,
		DateOrder:   "2025-07-14T18:05:33Z",
	}

	panel := &mockPanel{
		ActiveFunc:   func() []domain.DeliveryOrder { return []domain.DeliveryOrder{order} },
		SnapshotFunc: func() ([]domain.DeliveryOrder, bool, error) { return []domain.DeliveryOrder{order}, false, nil },
	}

	rec := httptest.NewRecorder()
	newTestRouter(panel).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/delivery", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp PanelResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if len(resp.Orders) != 1 {
		t.Fatalf("expected 1 card, got %d", len(resp.Orders))
	}

	card := resp.Orders[0]
	if card.TotalText != "$50.000" {
		t.Errorf("unexpected total text: %s", card.TotalText)
	}
	if card.Products[0].LineTotal != "$50.000" {
		t.Errorf("unexpected line total: %s", card.Products[0].LineTotal)
	}
	if card.TimeText != "18:05" {
		t.Errorf("unexpected time text: %s", card.TimeText)
	}
}

func TestHandleListOrders_FailedRefreshShowsEmptyPlusError(t *testing.T) {
	panel := &mockPanel{
		ActiveFunc: func() []domain.DeliveryOrder { return []domain.DeliveryOrder{} },
		SnapshotFunc: func() ([]domain.DeliveryOrder, bool, error) {
			return []domain.DeliveryOrder{}, false, apperrors.NewRemoteError("listing delivery orders", nil)
		},
	}

	rec := httptest.NewRecorder()
	newTestRouter(panel).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/delivery", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp PanelResponse
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if len(resp.Orders) != 0 {
		t.Errorf("expected empty set, got %d", len(resp.Orders))
	}
	if resp.Error == "" {
		t.Error("expected an error string in the panel response")
	}
}

func TestHandleAdvanceStatus_NotFound(t *testing.T) {
	panel := &mockPanel{
		AdvanceStatusFunc: func(ctx context.Context, orderID int) error {
			return apperrors.NewNotFoundError("delivery order 9 not found")
		},
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/delivery/9/advance", nil)
	newTestRouter(panel).ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestHandleAdvanceStatus_Success(t *testing.T) {
	var got int
	panel := &mockPanel{
		AdvanceStatusFunc: func(ctx context.Context, orderID int) error {
			got = orderID
			return nil
		},
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/delivery/3/advance", nil)
	newTestRouter(panel).ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if got != 3 {
		t.Errorf("advanced order %d", got)
	}
}

func TestHandleRemoveOrder_InvalidID(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/delivery/nope", nil)
	newTestRouter(&mockPanel{}).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestHandleRemoveOrder_BackendFailure(t *testing.T) {
	panel := &mockPanel{
		RemoveFunc: func(ctx context.Context, orderID int) error {
			return apperrors.NewRemoteError("deleting delivery order", nil)
		},
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/delivery/3", nil)
	newTestRouter(panel).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
}
