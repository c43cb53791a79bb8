package tables

import (
	"comanda/internal/config"
	"comanda/internal/infrastructure/backend"
	"comanda/internal/tables/controller"
	"comanda/internal/tables/repository"
	"comanda/internal/tables/service"

	"go.uber.org/zap"
)

// Module bundles the synchronizer (for the run loop in main) with its HTTP
// controller.
type Module struct {
	Synchronizer *service.Synchronizer
	Controller   *controller.Controller
}

func NewModule(client *backend.Client, cfg *config.Config, logger *zap.Logger) *Module {
	tableGw := repository.NewTableGateway(client)
	orderGw := repository.NewOrderGateway(client)
	waiterGw := repository.NewWaiterCallGateway(client)

	sync := service.NewSynchronizer(
		tableGw,
		orderGw,
		waiterGw,
		logger,
		cfg.Sync.TablePollInterval,
	)

	return &Module{
		Synchronizer: sync,
		Controller:   controller.NewController(sync, logger),
	}
}
