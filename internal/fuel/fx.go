package fuel

import (
	"github.com/aivanlabs/fleetdash/internal/fuel/service"
	"go.uber.org/fx"
)

var Module = fx.Module("fuel.service",
	fx.Provide(service.NewService),
)
