package log

// Option applies a single configuration setting to a config.
type Option func(config) config

// apply folds the given options over a base config, in order.
func apply(cfg config, opts ...Option) config {
	for _, opt := range opts {
		cfg = opt(cfg)
	}

	return cfg
}
