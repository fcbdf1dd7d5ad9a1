package catalog

import (
	"github.com/autoparts/catalog/internal/catalog/repository"
	"github.com/autoparts/catalog/internal/catalog/service"
	"go.uber.org/fx"
)

var Module = fx.Module("catalog.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
