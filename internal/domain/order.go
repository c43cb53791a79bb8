package domain

// OrderItem is a single line of a table order. TotalPrice comes from the
// backend as-is; it is rendered, never recomputed from Qty*UnitPrice.
type OrderItem struct {
	OrderID    int     `json:"orderId"`
	ProductID  string  `json:"productId"`
	Name       string  `json:"name"`
	Qty        int     `json:"qty"`
	UnitPrice  float64 `json:"unitPrice"`
	TotalPrice float64 `json:"totalPrice"`
}

// TableOrder is the per-table bundle as served by the backend order feed.
type TableOrder struct {
	Mesa         int         `json:"mesa"`
	StatusMesa   int         `json:"statusMesa"`
	Orders       []OrderItem `json:"orders"`
	TotalGeneral float64     `json:"totalGeneral"`
}

// TableOrderWithID joins a cached table with its order bundle. It is rebuilt
// wholesale on every synchronization pass.
type TableOrderWithID struct {
	TableID      int         `json:"tableId"`
	Mesa         int         `json:"mesa"`
	StatusMesa   int         `json:"statusMesa"`
	Orders       []OrderItem `json:"orders"`
	TotalGeneral float64     `json:"totalGeneral"`
}

// GroupedOrder buckets the line items of one order. Derived, never persisted.
type GroupedOrder struct {
	OrderID int         `json:"orderId"`
	Items   []OrderItem `json:"items"`
}

// OrderHistory is one entry of the delivered-order history feed.
type OrderHistory struct {
	Mesa       int         `json:"mesa"`
	StatusMesa int         `json:"statusMesa"`
	Orders     []OrderItem `json:"orders"`
}

// GroupByOrderID partitions items by order id, preserving first-seen order of
// groups and of items within each group.
func GroupByOrderID(items []OrderItem) []GroupedOrder {
	grouped := []GroupedOrder{}
	index := make(map[int]int)

	for _, item := range items {
		i, ok := index[item.OrderID]
		if !ok {
			i = len(grouped)
			index[item.OrderID] = i
			grouped = append(grouped, GroupedOrder{OrderID: item.OrderID})
		}
		grouped[i].Items = append(grouped[i].Items, item)
	}

	return grouped
}

// MergeTables joins each table with the first bundle whose Mesa matches its
// table number. Tables with no bundle get empty orders and a zero total.
// Duplicate table numbers in the bundle feed are ignored beyond the first.
func MergeTables(tables []Table, bundles []TableOrder) []TableOrderWithID {
	merged := make([]TableOrderWithID, 0, len(tables))

	for _, table := range tables {
		row := TableOrderWithID{
			TableID:    table.TableID,
			Mesa:       table.TableNumber,
			StatusMesa: table.Status,
			Orders:     []OrderItem{},
		}
		for _, bundle := range bundles {
			if bundle.Mesa == table.TableNumber {
				if bundle.Orders != nil {
					row.Orders = bundle.Orders
				}
				row.TotalGeneral = bundle.TotalGeneral
				break
			}
		}
		merged = append(merged, row)
	}

	return merged
}
