package archive

import "go.uber.org/fx"

var Module = fx.Module("fuel.archive",
	fx.Provide(NewSource),
)
