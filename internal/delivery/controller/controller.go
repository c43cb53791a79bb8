package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"comanda/internal/domain"
	apperrors "comanda/internal/errors"
	"comanda/internal/format"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Panel interface {
	Active() []domain.DeliveryOrder
	Snapshot() (orders []domain.DeliveryOrder, loading bool, lastErr error)
	AdvanceStatus(ctx context.Context, orderID int) error
	Remove(ctx context.Context, orderID int) error
}

type Controller struct {
	panel  Panel
	logger *zap.Logger
}

func NewController(panel Panel, logger *zap.Logger) *Controller {
	return &Controller{
		panel:  panel,
		logger: logger,
	}
}

type ProductDTO struct {
	Nombre    string  `json:"nombre"`
	Cantidad  int     `json:"cantidad"`
	Precio    float64 `json:"precio"`
	LineTotal string  `json:"lineTotal"`
}

// DeliveryCardDTO is one delivery order as the panel renders it.
type DeliveryCardDTO struct {
	OrderID     int          `json:"orderId"`
	NameClient  string       `json:"nameClient"`
	Phone       string       `json:"phone"`
	Products    []ProductDTO `json:"products"`
	Total       float64      `json:"total"`
	TotalText   string       `json:"totalText"`
	Method      string       `json:"method"`
	Address     string       `json:"address"`
	StatusOrder string       `json:"statusOrder"`
	TimeText    string       `json:"timeText"`
}

type PanelResponse struct {
	TraceID string            `json:"traceId"`
	Loading bool              `json:"loading"`
	Error   string            `json:"error,omitempty"`
	Orders  []DeliveryCardDTO `json:"orders"`
}

// HandleListOrders serves the active delivery orders from cached state. A
// failed background refresh shows up as an empty list plus an error string,
// never as stale orders.
func (c *Controller) HandleListOrders(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()

	_, loading, lastErr := c.panel.Snapshot()

	active := c.panel.Active()
	cards := make([]DeliveryCardDTO, len(active))
	for i, o := range active {
		cards[i] = toDeliveryCardDTO(o)
	}

	resp := PanelResponse{
		TraceID: traceID,
		Loading: loading,
		Orders:  cards,
	}
	if lastErr != nil {
		resp.Error = "delivery orders unavailable"
	}

	c.writeJSON(w, http.StatusOK, resp)
}

func (c *Controller) HandleAdvanceStatus(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	orderID, err := strconv.Atoi(chi.URLParam(r, "orderId"))
	if err != nil || orderID <= 0 {
		c.writeValidationError(w, traceID, "invalid orderId", apperrors.ValidationDetail{
			Field:   "orderId",
			Message: "orderId must be a positive integer",
		})
		return
	}

	if err := c.panel.AdvanceStatus(r.Context(), orderID); err != nil {
		c.handleError(w, traceID, err, logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (c *Controller) HandleRemoveOrder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	orderID, err := strconv.Atoi(chi.URLParam(r, "orderId"))
	if err != nil || orderID <= 0 {
		c.writeValidationError(w, traceID, "invalid orderId", apperrors.ValidationDetail{
			Field:   "orderId",
			Message: "orderId must be a positive integer",
		})
		return
	}

	if err := c.panel.Remove(r.Context(), orderID); err != nil {
		c.handleError(w, traceID, err, logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toDeliveryCardDTO(o domain.DeliveryOrder) DeliveryCardDTO {
	products := make([]ProductDTO, len(o.Products))
	for i, p := range o.Products {
		products[i] = ProductDTO{
			Nombre:    p.Nombre,
			Cantidad:  p.Cantidad,
			Precio:    p.Precio,
			LineTotal: format.Price(p.Precio * float64(p.Cantidad)),
		}
	}

	return DeliveryCardDTO{
		OrderID:     o.OrderTransactionDeliveryID,
		NameClient:  o.NameClient,
		Phone:       o.Phone,
		Products:    products,
		Total:       o.Total,
		TotalText:   format.Price(o.Total),
		Method:      o.Method,
		Address:     o.Address,
		StatusOrder: o.StatusOrder,
		TimeText:    format.Clock(o.DateOrder),
	}
}

func (c *Controller) handleError(w http.ResponseWriter, traceID string, err error, logger *zap.Logger) {
	if nfe, ok := apperrors.IsNotFoundError(err); ok {
		c.writeError(w, traceID, http.StatusNotFound, "NOT_FOUND", nfe.Message)
		return
	}

	if _, ok := apperrors.IsRemoteError(err); ok {
		logger.Error("backend call failed", zap.Error(err))
		c.writeError(w, traceID, http.StatusBadGateway, "BACKEND_UNAVAILABLE", "the restaurant backend rejected the operation")
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	c.writeError(w, traceID, http.StatusInternalServerError, "INTERNAL_ERROR", "an unexpected error occurred")
}

type errorResponse struct {
	TraceID string                       `json:"traceId"`
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details,omitempty"`
}

func (c *Controller) writeValidationError(w http.ResponseWriter, traceID, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, errorResponse{
		TraceID: traceID,
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func (c *Controller) writeError(w http.ResponseWriter, traceID string, status int, code, message string) {
	c.writeJSON(w, status, errorResponse{
		TraceID: traceID,
		Error:   code,
		Message: message,
	})
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
