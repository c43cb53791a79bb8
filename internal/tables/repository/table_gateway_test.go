package repository

import (
	"context"
	"net/http"
	"testing"

	apperrors "comanda/internal/errors"
	"comanda/internal/testutil"
)

func TestTableGateway_List(t *testing.T) {
	ctx := context.Background()
	fake := testutil.NewFakeBackend(t)
	fake.Stub(http.MethodGet, "/restauranttable", http.StatusOK,
		`[{"tableId":1,"tableNumber":5,"status":2},{"tableId":2,"tableNumber":6,"status":1}]`)

	gw := NewTableGateway(fake.Client())

	tables, err := gw.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tables) != 2 {
		t.Fatalf("expected 2 tables, got %d", len(tables))
	}
	if tables[0].TableNumber != 5 || tables[0].Status != 2 {
		t.Errorf("unexpected first table: %+v", tables[0])
	}
}

func TestTableGateway_List_BackendDown(t *testing.T) {
	ctx := context.Background()
	fake := testutil.NewFakeBackend(t)
	fake.Stub(http.MethodGet, "/restauranttable", http.StatusInternalServerError, "")

	gw := NewTableGateway(fake.Client())

	_, err := gw.List(ctx)
	if _, ok := apperrors.IsRemoteError(err); !ok {
		t.Errorf("expected RemoteError, got %v", err)
	}
}

func TestTableGateway_Create(t *testing.T) {
	ctx := context.Background()
	fake := testutil.NewFakeBackend(t)
	fake.Stub(http.MethodPost, "/restauranttable", http.StatusOK,
		`{"tableId":9,"tableNumber":3,"status":1}`)

	gw := NewTableGateway(fake.Client())

	created, err := gw.Create(ctx, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.TableID != 9 {
		t.Errorf("expected tableId 9, got %d", created.TableID)
	}

	reqs := fake.Requests()
	if len(reqs) != 1 || reqs[0].Body != `{"tableNumber":3}` {
		t.Errorf("unexpected request body: %+v", reqs)
	}
}

func TestTableGateway_StatusEndpoints(t *testing.T) {
	ctx := context.Background()
	fake := testutil.NewFakeBackend(t)
	fake.Stub(http.MethodPost, "/restauranttable/change/status-free", http.StatusOK, "")
	fake.Stub(http.MethodPost, "/restauranttable/change/status-ocuped", http.StatusOK, "")

	gw := NewTableGateway(fake.Client())

	if err := gw.SetFree(ctx, 4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := gw.SetOccupied(ctx, 4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reqs := fake.Requests()
	if len(reqs) != 2 {
		t.Fatalf("expected 2 requests, got %d", len(reqs))
	}
	if reqs[0].Path != "/restauranttable/change/status-free" || reqs[0].RawQuery != "tableNumber=4" {
		t.Errorf("unexpected free request: %+v", reqs[0])
	}
	if reqs[1].Path != "/restauranttable/change/status-ocuped" || reqs[1].RawQuery != "tableNumber=4" {
		t.Errorf("unexpected occupy request: %+v", reqs[1])
	}
}

func TestTableGateway_Remove(t *testing.T) {
	ctx := context.Background()
	fake := testutil.NewFakeBackend(t)
	fake.Stub(http.MethodDelete, "/restauranttable/7", http.StatusOK, "")

	gw := NewTableGateway(fake.Client())

	if err := gw.Remove(ctx, 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
