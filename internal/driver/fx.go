package driver

import (
	"github.com/aivanlabs/fleetdash/internal/driver/service"
	"go.uber.org/fx"
)

var Module = fx.Module("driver.service",
	fx.Provide(service.NewService),
)
