package splice

// config holds the substitution settings.
type config struct {
	limit int
}

// Option applies a configuration option to config.
type Option func(config) config

// makeConfig creates a config with defaults and applies the given options.
func makeConfig(opts ...Option) config {
	cfg := config{limit: 1}

	for _, opt := range opts {
		cfg = opt(cfg)
	}

	return cfg
}

// WithConcurrency sets the number of directive evaluations that may run
// concurrently. The default is 1: matches evaluate strictly in sequence.
// Output order is preserved regardless of scheduling.
func WithConcurrency(n int) Option {
	return func(cfg config) config {
		if n > 0 {
			cfg.limit = n
		}

		return cfg
	}
}
