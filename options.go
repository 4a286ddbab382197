package vector

import (
	"github.com/go-kit/log"
)

// Option configures a Vector at construction time.
type Option func(*config)

type config struct {
	logger log.Logger
}

// WithLogger sets the logger used to report reallocations at debug level.
// A nil logger is ignored.
func WithLogger(logger log.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func newConfig(opts []Option) config {
	c := config{logger: log.NewNopLogger()}
	for _, o := range opts {
		o(&c)
	}
	return c
}
