package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"comanda/internal/domain"
	apperrors "comanda/internal/errors"
	"comanda/internal/tables/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Synchronizer interface {
	MergedView() []service.TableView
	ActiveCalls() int
	ChangeTableStatus(ctx context.Context, tableNumber, status int) error
	CallWaiter(ctx context.Context, tableID, tableNumber int) error
	AddTable(ctx context.Context) (*domain.Table, error)
	RemoveTable(ctx context.Context, tableID int) error
	SendOrder(ctx context.Context, orderID int) error
	History(ctx context.Context, tableNumber int) ([]domain.GroupedOrder, error)
}

type Controller struct {
	sync   Synchronizer
	logger *zap.Logger
}

func NewController(sync Synchronizer, logger *zap.Logger) *Controller {
	return &Controller{
		sync:   sync,
		logger: logger,
	}
}

// HandleListTables serves the merged table grid. It reads cached state only,
// so it never fails with a backend error.
func (c *Controller) HandleListTables(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()

	view := c.sync.MergedView()
	cards := make([]TableCardDTO, len(view))
	for i, row := range view {
		cards[i] = toTableCardDTO(row)
	}

	c.writeJSON(w, http.StatusOK, TableGridResponse{
		TraceID:     traceID,
		ActiveCalls: c.sync.ActiveCalls(),
		Tables:      cards,
	})
}

func (c *Controller) HandleAddTable(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	created, err := c.sync.AddTable(r.Context())
	if err != nil {
		c.handleError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusCreated, AddTableResponse{
		TraceID: traceID,
		Table:   *created,
	})
}

func (c *Controller) HandleRemoveTable(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	tableID, err := strconv.Atoi(chi.URLParam(r, "tableId"))
	if err != nil || tableID <= 0 {
		c.writeValidationError(w, traceID, "invalid tableId", apperrors.ValidationDetail{
			Field:   "tableId",
			Message: "tableId must be a positive integer",
		})
		return
	}

	if err := c.sync.RemoveTable(r.Context(), tableID); err != nil {
		c.handleError(w, traceID, err, logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (c *Controller) HandleChangeStatus(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	tableNumber, err := strconv.Atoi(chi.URLParam(r, "tableNumber"))
	if err != nil || tableNumber <= 0 {
		c.writeValidationError(w, traceID, "invalid tableNumber", apperrors.ValidationDetail{
			Field:   "tableNumber",
			Message: "tableNumber must be a positive integer",
		})
		return
	}

	var req ChangeStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, traceID, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if req.Status < domain.TableStatusAvailable || req.Status > domain.TableStatusReserved {
		c.writeValidationError(w, traceID, "invalid status", apperrors.ValidationDetail{
			Field:   "status",
			Message: "status must be between 1 and 4",
		})
		return
	}

	if err := c.sync.ChangeTableStatus(r.Context(), tableNumber, req.Status); err != nil {
		c.handleError(w, traceID, err, logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (c *Controller) HandleWaiterCall(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	tableID, err := strconv.Atoi(chi.URLParam(r, "tableId"))
	if err != nil || tableID <= 0 {
		c.writeValidationError(w, traceID, "invalid tableId", apperrors.ValidationDetail{
			Field:   "tableId",
			Message: "tableId must be a positive integer",
		})
		return
	}

	var req WaiterCallRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, traceID, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if req.TableNumber <= 0 {
		c.writeValidationError(w, traceID, "invalid tableNumber", apperrors.ValidationDetail{
			Field:   "tableNumber",
			Message: "tableNumber must be a positive integer",
		})
		return
	}

	if err := c.sync.CallWaiter(r.Context(), tableID, req.TableNumber); err != nil {
		c.handleError(w, traceID, err, logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (c *Controller) HandleSendOrder(w http.ResponseWriter, r *http.Request) {
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

	if err := c.sync.SendOrder(r.Context(), orderID); err != nil {
		c.handleError(w, traceID, err, logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (c *Controller) HandleHistory(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	tableNumber, err := strconv.Atoi(chi.URLParam(r, "tableNumber"))
	if err != nil || tableNumber <= 0 {
		c.writeValidationError(w, traceID, "invalid tableNumber", apperrors.ValidationDetail{
			Field:   "tableNumber",
			Message: "tableNumber must be a positive integer",
		})
		return
	}

	grouped, err := c.sync.History(r.Context(), tableNumber)
	if err != nil {
		c.handleError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, HistoryResponse{
		TraceID: traceID,
		Mesa:    tableNumber,
		Orders:  toGroupedOrderDTOs(grouped),
	})
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
