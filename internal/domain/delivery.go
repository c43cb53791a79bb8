package domain

// Product is a line of a delivery order.
type Product struct {
	ID       string  `json:"id"`
	Nombre   string  `json:"nombre"`
	Precio   float64 `json:"precio"`
	Cantidad int     `json:"cantidad"`
}

// DeliveryOrder is a home-delivery or pickup order as served by the backend.
type DeliveryOrder struct {
	OrderTransactionDeliveryID int       `json:"orderTransactionDeliveryId"`
	NameClient                 string    `json:"nameClient"`
	Phone                      string    `json:"phone"`
	Products                   []Product `json:"products"`
	Total                      float64   `json:"total"`
	Method                     string    `json:"method"`
	Address                    string    `json:"address"`
	Status                     string    `json:"status"`
	StatusOrder                string    `json:"statusOrder"`
	DateOrder                  string    `json:"dateOrder"`
}

const (
	DeliveryMethodDomicilio = "domicilio"
	DeliveryMethodRecoger   = "recoger"

	DeliveryActive   = "ACTIVE"
	DeliveryInactive = "INACTIVE"

	DeliveryStatusPendiente  = "PENDIENTE"
	DeliveryStatusPreparando = "PREPARANDO"
	DeliveryStatusListo      = "LISTO"
	DeliveryStatusEntregado  = "ENTREGADO"
)

// NextDeliveryStatus advances the kitchen lifecycle one step. Anything outside
// the known progression, ENTREGADO included, falls back to PENDIENTE.
func NextDeliveryStatus(status string) string {
	switch status {
	case DeliveryStatusPendiente:
		return DeliveryStatusPreparando
	case DeliveryStatusPreparando:
		return DeliveryStatusListo
	case DeliveryStatusListo:
		return DeliveryStatusEntregado
	default:
		return DeliveryStatusPendiente
	}
}

// IsActive reports whether the order should appear on the delivery panel.
func (o DeliveryOrder) IsActive() bool {
	return o.Status == DeliveryActive && o.StatusOrder != DeliveryStatusEntregado
}
