// Package migration prepares the embedded database schema on startup.
package migration

import (
	driverdomain "github.com/aivanlabs/fleetdash/internal/driver/domain"
	fueldomain "github.com/aivanlabs/fleetdash/internal/fuel/domain"
	reportdomain "github.com/aivanlabs/fleetdash/internal/report/domain"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migration",
	fx.Invoke(Run),
)

// Run migrates every persisted model. The store is a single sqlite file, so
// gorm's AutoMigrate covers schema evolution here.
func Run(db *gorm.DB) error {
	return db.AutoMigrate(
		&fueldomain.FuelEvent{},
		&driverdomain.Driver{},
		&reportdomain.Snapshot{},
	)
}
