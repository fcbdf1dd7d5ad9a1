package order

import (
	"github.com/autoparts/catalog/internal/order/repository"
	"github.com/autoparts/catalog/internal/order/service"
	"go.uber.org/fx"
)

var Module = fx.Module("order.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
