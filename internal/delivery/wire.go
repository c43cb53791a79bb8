package delivery

import (
	"comanda/internal/config"
	"comanda/internal/delivery/controller"
	"comanda/internal/delivery/repository"
	"comanda/internal/delivery/service"
	"comanda/internal/infrastructure/backend"

	"go.uber.org/zap"
)

type Module struct {
	Panel      *service.Panel
	Controller *controller.Controller
}

func NewModule(client *backend.Client, cfg *config.Config, logger *zap.Logger) *Module {
	gw := repository.NewDeliveryGateway(client)

	panel := service.NewPanel(gw, logger, cfg.Sync.DeliveryPollInterval)

	return &Module{
		Panel:      panel,
		Controller: controller.NewController(panel, logger),
	}
}
