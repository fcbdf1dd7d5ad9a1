package search

import (
	"github.com/autoparts/catalog/internal/search/repository"
	"github.com/autoparts/catalog/internal/search/service"
	"go.uber.org/fx"
)

var Module = fx.Module("search.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
