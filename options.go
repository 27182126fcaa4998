package formy

import "log/slog"

type registryOptions struct {
	logger *slog.Logger
}

// RegistryOption configures a Registry.
type RegistryOption func(*registryOptions)

// WithLogger sets a logger for registry lifecycle events (definitions being
// registered). Validation-time logging is a middleware concern; see
// WithLogging.
func WithLogger(logger *slog.Logger) RegistryOption {
	return func(o *registryOptions) {
		o.logger = logger
	}
}
