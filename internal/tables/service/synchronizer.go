package service

import (
	"context"
	stderrors "errors"
	"sync"
	"time"

	"comanda/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TableGateway interface {
	List(ctx context.Context) ([]domain.Table, error)
	Create(ctx context.Context, tableNumber int) (*domain.Table, error)
	Remove(ctx context.Context, tableID int) error
	SetFree(ctx context.Context, tableNumber int) error
	SetOccupied(ctx context.Context, tableNumber int) error
}

type OrderGateway interface {
	ListTableOrders(ctx context.Context) ([]domain.TableOrder, error)
	Send(ctx context.Context, orderID int) error
	History(ctx context.Context, tableNumber int) ([]domain.OrderHistory, error)
}

type WaiterCallGateway interface {
	Create(ctx context.Context, tableID, status int) error
}

// PendingChange marks a table whose status was patched optimistically and is
// awaiting confirmation by the next full refresh. There is no automatic
// rollback; a retry/timeout layer can be built on top of the marker.
type PendingChange struct {
	OpID   string    `json:"opId"`
	Status int       `json:"status"`
	At     time.Time `json:"at"`
}

// TableView is one renderable row of the dashboard's table grid.
type TableView struct {
	domain.TableOrderWithID
	Pending *PendingChange `json:"pending,omitempty"`
}

// Synchronizer owns the client-side merge of tables and their live orders.
// Successful fetches replace state wholesale, which keeps every refresh
// idempotent and safe to run redundantly; the one in-place mutation is the
// push-event status patch, where last-to-complete wins.
type Synchronizer struct {
	tableGw  TableGateway
	orderGw  OrderGateway
	waiterGw WaiterCallGateway
	logger   *zap.Logger

	pollInterval time.Duration

	mu      sync.Mutex
	tables  []domain.Table
	merged  []domain.TableOrderWithID
	pending map[int]PendingChange
}

func NewSynchronizer(
	tableGw TableGateway,
	orderGw OrderGateway,
	waiterGw WaiterCallGateway,
	logger *zap.Logger,
	pollInterval time.Duration,
) *Synchronizer {
	return &Synchronizer{
		tableGw:      tableGw,
		orderGw:      orderGw,
		waiterGw:     waiterGw,
		logger:       logger,
		pollInterval: pollInterval,
		merged:       []domain.TableOrderWithID{},
		pending:      make(map[int]PendingChange),
	}
}

// RefreshTables replaces the cached table list wholesale and re-merges.
// On failure it logs and leaves prior state untouched; no error reaches the
// caller.
func (s *Synchronizer) RefreshTables(ctx context.Context) {
	tables, err := s.tableGw.List(ctx)
	if err != nil {
		s.logger.Error("refreshing tables failed", zap.Error(err))
		return
	}

	s.mu.Lock()
	s.tables = tables
	s.pending = make(map[int]PendingChange)
	s.mu.Unlock()

	s.logger.Info("tables refreshed", zap.Int("count", len(tables)))
	s.RefreshOrdersAndMerge(ctx)
}

// RefreshOrdersAndMerge fetches the per-table order bundles and rebuilds the
// merged view wholesale. On failure the prior merged view stays as-is.
func (s *Synchronizer) RefreshOrdersAndMerge(ctx context.Context) {
	bundles, err := s.orderGw.ListTableOrders(ctx)
	if err != nil {
		s.logger.Error("refreshing table orders failed", zap.Error(err))
		return
	}

	s.mu.Lock()
	s.merged = domain.MergeTables(s.tables, bundles)
	s.mu.Unlock()
}

// ApplyPush patches the status of the table named by a push event in place,
// then reconciles orders with a full re-merge. This is the only spot where
// remote state lands without a prior fetch; it races in-flight refreshes and
// last-to-complete wins.
func (s *Synchronizer) ApplyPush(ctx context.Context, ev domain.TableUpdate) {
	s.mu.Lock()
	for i := range s.tables {
		if s.tables[i].TableID == ev.Mesa {
			s.tables[i].Status = ev.Estado
			break
		}
	}
	s.mu.Unlock()

	s.logger.Info("push event applied",
		zap.Int("tableId", ev.Mesa),
		zap.Int("status", ev.Estado))

	s.RefreshOrdersAndMerge(ctx)
}

// ChangeTableStatus picks the free or occupied endpoint by target status,
// and on success patches the cached table optimistically, leaving a pending
// marker. Failure is returned to the caller; the local state is not touched.
func (s *Synchronizer) ChangeTableStatus(ctx context.Context, tableNumber, status int) error {
	var err error
	if status == domain.TableStatusAvailable {
		err = s.tableGw.SetFree(ctx, tableNumber)
	} else {
		err = s.tableGw.SetOccupied(ctx, tableNumber)
	}
	if err != nil {
		s.logger.Warn("changing table status failed",
			zap.Int("tableNumber", tableNumber),
			zap.Int("status", status),
			zap.Error(err))
		return err
	}

	s.patchStatus(tableNumber, status)
	s.RefreshOrdersAndMerge(ctx)
	return nil
}

// CallWaiter raises a staff-attention request and marks the table occupied.
// Both backend calls are attempted even if the first fails; any failure makes
// the combined operation fail with no compensation for the partial state.
func (s *Synchronizer) CallWaiter(ctx context.Context, tableID, tableNumber int) error {
	callErr := s.waiterGw.Create(ctx, tableID, 1)
	occErr := s.tableGw.SetOccupied(ctx, tableNumber)

	if callErr != nil || occErr != nil {
		s.logger.Warn("waiter call failed",
			zap.Int("tableId", tableID),
			zap.Int("tableNumber", tableNumber),
			zap.NamedError("callError", callErr),
			zap.NamedError("occupyError", occErr))
		return stderrors.Join(callErr, occErr)
	}

	s.patchStatus(tableNumber, domain.TableStatusOccupied)
	s.RefreshOrdersAndMerge(ctx)
	return nil
}

func (s *Synchronizer) patchStatus(tableNumber, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tables {
		if s.tables[i].TableNumber == tableNumber {
			s.tables[i].Status = status
			s.pending[s.tables[i].TableID] = PendingChange{
				OpID:   uuid.New().String(),
				Status: status,
				At:     time.Now(),
			}
			return
		}
	}
}

// AddTable creates a table numbered one past the current maximum and appends
// it to the cache on success.
func (s *Synchronizer) AddTable(ctx context.Context) (*domain.Table, error) {
	s.mu.Lock()
	next := 1
	for _, t := range s.tables {
		if t.TableNumber >= next {
			next = t.TableNumber + 1
		}
	}
	s.mu.Unlock()

	created, err := s.tableGw.Create(ctx, next)
	if err != nil {
		return nil, err
	}

	table := domain.Table{
		TableID:     created.TableID,
		TableNumber: next,
		Status:      domain.TableStatusAvailable,
	}

	s.mu.Lock()
	s.tables = append(s.tables, table)
	s.mu.Unlock()

	s.logger.Info("table added",
		zap.Int("tableId", table.TableID),
		zap.Int("tableNumber", table.TableNumber))

	s.RefreshOrdersAndMerge(ctx)
	return &table, nil
}

// RemoveTable deletes the table remotely and drops it from the cache on
// success.
func (s *Synchronizer) RemoveTable(ctx context.Context, tableID int) error {
	if err := s.tableGw.Remove(ctx, tableID); err != nil {
		return err
	}

	s.mu.Lock()
	kept := s.tables[:0]
	for _, t := range s.tables {
		if t.TableID != tableID {
			kept = append(kept, t)
		}
	}
	s.tables = kept
	delete(s.pending, tableID)
	s.mu.Unlock()

	s.logger.Info("table removed", zap.Int("tableId", tableID))

	s.RefreshOrdersAndMerge(ctx)
	return nil
}

// SendOrder dispatches an order to the kitchen; failure goes to the caller.
func (s *Synchronizer) SendOrder(ctx context.Context, orderID int) error {
	return s.orderGw.Send(ctx, orderID)
}

// History returns the grouped line items of the table's first delivered-order
// feed entry, or an empty slice when the feed has none.
func (s *Synchronizer) History(ctx context.Context, tableNumber int) ([]domain.GroupedOrder, error) {
	feed, err := s.orderGw.History(ctx, tableNumber)
	if err != nil {
		return nil, err
	}
	if len(feed) == 0 {
		return []domain.GroupedOrder{}, nil
	}
	return domain.GroupByOrderID(feed[0].Orders), nil
}

// MergedView returns a copy of the current merged view, each row annotated
// with its pending marker if one exists.
func (s *Synchronizer) MergedView() []TableView {
	s.mu.Lock()
	defer s.mu.Unlock()

	view := make([]TableView, len(s.merged))
	for i, row := range s.merged {
		view[i] = TableView{TableOrderWithID: row}
		if p, ok := s.pending[row.TableID]; ok {
			pc := p
			view[i].Pending = &pc
		}
	}
	return view
}

// ActiveCalls counts tables currently requesting attention, for the header
// badge.
func (s *Synchronizer) ActiveCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, t := range s.tables {
		if t.Status == domain.TableStatusRequestingAttention {
			n++
		}
	}
	return n
}

// Run performs the initial load, then serves push events and the poll ticker
// until ctx is cancelled. Redundant refreshes caused by overlapping triggers
// are harmless since merges are idempotent over the same inputs.
func (s *Synchronizer) Run(ctx context.Context, events <-chan domain.TableUpdate) {
	s.RefreshTables(ctx)

	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-events:
			s.ApplyPush(ctx, ev)
		case <-ticker.C:
			s.RefreshTables(ctx)
		}
	}
}
