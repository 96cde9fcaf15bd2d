package main

import (
	"github.com/aivanlabs/fleetdash/internal/clock"
	"github.com/aivanlabs/fleetdash/internal/config"
	"github.com/aivanlabs/fleetdash/internal/driver"
	"github.com/aivanlabs/fleetdash/internal/export"
	"github.com/aivanlabs/fleetdash/internal/fuel"
	"github.com/aivanlabs/fleetdash/internal/fuel/archive"
	"github.com/aivanlabs/fleetdash/internal/migration"
	"github.com/aivanlabs/fleetdash/internal/overview"
	"github.com/aivanlabs/fleetdash/internal/report"
	"github.com/aivanlabs/fleetdash/internal/server"
	"github.com/aivanlabs/fleetdash/internal/vehicle"
	"github.com/aivanlabs/fleetdash/pkg/db"
	"github.com/aivanlabs/fleetdash/pkg/log"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		log.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,
		migration.Module,

		// Functional domains
		vehicle.Module,
		driver.Module,
		fuel.Module,
		archive.Module,
		report.Module,
		overview.Module,
		export.Module,

		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
