package vehicle

import "go.uber.org/fx"

var Module = fx.Module("vehicle.repository",
	fx.Provide(NewRepository),
)
