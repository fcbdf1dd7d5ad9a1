package main

import (
	"github.com/autoparts/catalog/internal/config"
	"github.com/autoparts/catalog/internal/logger"
	"github.com/autoparts/catalog/internal/migration"
	"github.com/autoparts/catalog/internal/server"
	"github.com/autoparts/catalog/pkg/db"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		logger.Module,
		fx.Provide(registerSnowflake),
		db.Module,
		migration.Module,

		// HTTP server pulls in the catalog, search and order domains.
		server.Module,
	)
	app.Run()
}

func registerSnowflake() (*snowflake.Node, error) {
	return snowflake.NewNode(1)
}
