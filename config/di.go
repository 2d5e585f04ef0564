package config

import (
	"log/slog"

	"go.uber.org/fx"
)

type moduleParams struct {
	fx.In

	Logger *slog.Logger `optional:"true"`
}

// NewModule creates an Fx module providing a loaded *Store.
// The logger supplied to the container is used unless opts set one.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(opts ...Option) fx.Option {
	return fx.Module("config",
		fx.Provide(func(params moduleParams) *Store {
			var all []Option
			if params.Logger != nil {
				all = append(all, WithLogger(params.Logger))
			}

			return Load(append(all, opts...)...)
		}),
	)
}
