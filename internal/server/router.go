package server

import (
	"net/http"
	"time"

	deliverycontroller "comanda/internal/delivery/controller"
	tablescontroller "comanda/internal/tables/controller"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func NewRouter(
	tablesCtrl *tablescontroller.Controller,
	deliveryCtrl *deliverycontroller.Controller,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()
	r.Use(requestLogger(logger))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/dashboard", func(r chi.Router) {
		r.Get("/tables", tablesCtrl.HandleListTables)
		r.Post("/tables", tablesCtrl.HandleAddTable)
		r.Delete("/tables/{tableId}", tablesCtrl.HandleRemoveTable)
		r.Put("/tables/{tableNumber}/status", tablesCtrl.HandleChangeStatus)
		r.Post("/tables/{tableId}/waiter-call", tablesCtrl.HandleWaiterCall)
		r.Get("/tables/{tableNumber}/history", tablesCtrl.HandleHistory)
		r.Post("/orders/{orderId}/send", tablesCtrl.HandleSendOrder)

		r.Get("/delivery", deliveryCtrl.HandleListOrders)
		r.Post("/delivery/{orderId}/advance", deliveryCtrl.HandleAdvanceStatus)
		r.Delete("/delivery/{orderId}", deliveryCtrl.HandleRemoveOrder)
	})

	return r
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			logger.Debug("request handled",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Duration("elapsed", time.Since(start)))
		})
	}
}
