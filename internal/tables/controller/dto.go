package controller

import (
	"comanda/internal/domain"
	"comanda/internal/format"
	"comanda/internal/tables/service"
)

type OrderItemDTO struct {
	OrderID        int     `json:"orderId"`
	ProductID      string  `json:"productId"`
	Name           string  `json:"name"`
	Qty            int     `json:"qty"`
	UnitPrice      float64 `json:"unitPrice"`
	TotalPrice     float64 `json:"totalPrice"`
	TotalPriceText string  `json:"totalPriceText"`
}

type GroupedOrderDTO struct {
	OrderID int            `json:"orderId"`
	Items   []OrderItemDTO `json:"items"`
}

// TableCardDTO is what the front end renders as one table card: merged state
// plus display-ready status and price strings.
type TableCardDTO struct {
	TableID      int                    `json:"tableId"`
	Mesa         int                    `json:"mesa"`
	StatusMesa   int                    `json:"statusMesa"`
	StatusText   string                 `json:"statusText"`
	Orders       []GroupedOrderDTO      `json:"orders"`
	TotalGeneral float64                `json:"totalGeneral"`
	TotalText    string                 `json:"totalText"`
	Pending      *service.PendingChange `json:"pending,omitempty"`
}

type TableGridResponse struct {
	TraceID     string         `json:"traceId"`
	ActiveCalls int            `json:"activeCalls"`
	Tables      []TableCardDTO `json:"tables"`
}

type HistoryResponse struct {
	TraceID string            `json:"traceId"`
	Mesa    int               `json:"mesa"`
	Orders  []GroupedOrderDTO `json:"orders"`
}

type AddTableResponse struct {
	TraceID string       `json:"traceId"`
	Table   domain.Table `json:"table"`
}

type ChangeStatusRequest struct {
	Status int `json:"status"`
}

type WaiterCallRequest struct {
	TableNumber int `json:"tableNumber"`
}

func toOrderItemDTOs(items []domain.OrderItem) []OrderItemDTO {
	out := make([]OrderItemDTO, len(items))
	for i, item := range items {
		out[i] = OrderItemDTO{
			OrderID:        item.OrderID,
			ProductID:      item.ProductID,
			Name:           item.Name,
			Qty:            item.Qty,
			UnitPrice:      item.UnitPrice,
			TotalPrice:     item.TotalPrice,
			TotalPriceText: format.Price(item.TotalPrice),
		}
	}
	return out
}

func toGroupedOrderDTOs(grouped []domain.GroupedOrder) []GroupedOrderDTO {
	out := make([]GroupedOrderDTO, len(grouped))
	for i, g := range grouped {
		out[i] = GroupedOrderDTO{
			OrderID: g.OrderID,
			Items:   toOrderItemDTOs(g.Items),
		}
	}
	return out
}

func toTableCardDTO(row service.TableView) TableCardDTO {
	return TableCardDTO{
		TableID:      row.TableID,
		Mesa:         row.Mesa,
		StatusMesa:   row.StatusMesa,
		StatusText:   domain.TableStatusText(row.StatusMesa),
		Orders:       toGroupedOrderDTOs(domain.GroupByOrderID(row.Orders)),
		TotalGeneral: row.TotalGeneral,
		TotalText:    format.Price(row.TotalGeneral),
		Pending:      row.Pending,
	}
}
