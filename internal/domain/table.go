package domain

type Table struct {
	TableID     int `json:"tableId"`
	TableNumber int `json:"tableNumber"`
	Status      int `json:"status"`
}

const (
	TableStatusAvailable           = 1
	TableStatusOccupied            = 2
	TableStatusRequestingAttention = 3
	TableStatusReserved            = 4
)

// TableStatusText returns the display label for a table status code.
// Unknown codes render as "Desconocido" rather than failing.
func TableStatusText(status int) string {
	switch status {
	case TableStatusAvailable:
		return "Disponible"
	case TableStatusOccupied:
		return "Ocupada"
	case TableStatusRequestingAttention:
		return "Solicitando atención"
	case TableStatusReserved:
		return "Reservada"
	default:
		return "Desconocido"
	}
}

// TableUpdate is the payload of a table-updated push event. Mesa carries the
// table id, Estado the new status code.
type TableUpdate struct {
	Mesa   int `json:"mesa"`
	Estado int `json:"estado"`
}
