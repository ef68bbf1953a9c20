package jan

import "go.uber.org/zap"

// Starting page sizes of the record pools.
const (
	FACE_POOL_PAGE   = 1024
	EDGE_POOL_PAGE   = 4096
	VERTEX_POOL_PAGE = 4096
	LINK_POOL_PAGE   = 8192
	BORDER_POOL_PAGE = 8192
)

const DEFAULT_WORKERS = 1

// Limits caps the number of live records per pool. Zero means unlimited.
type Limits struct {
	Faces    int
	Edges    int
	Vertices int
	Links    int
	Borders  int
}

// Config holds the construction-time settings of a Mesh.
type Config struct {
	Limits  Limits
	Workers int
	Logger  *zap.Logger
}

// DefaultConfig returns unlimited pools, one worker and a no-op logger.
func DefaultConfig() Config {
	return Config{
		Workers: DEFAULT_WORKERS,
		Logger:  zap.NewNop(),
	}
}

// Option configures a Mesh at construction.
type Option func(*Config)

// WithPoolLimits caps the record pools. Allocations past a limit fail with
// ErrPoolExhausted.
func WithPoolLimits(limits Limits) Option {
	return func(c *Config) {
		c.Limits = limits
	}
}

// WithWorkers sets how many goroutines UpdateNormals uses.
func WithWorkers(workers int) Option {
	return func(c *Config) {
		c.Workers = max(DEFAULT_WORKERS, workers)
	}
}

// WithLogger sets the logger used for diagnostics and by Validate when it is
// given no logger of its own.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Config) {
		if logger != nil {
			c.Logger = logger
		}
	}
}
