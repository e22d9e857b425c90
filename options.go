package stylist

import (
	"go.uber.org/zap"

	"github.com/styleloom/stylist/internal/usecase/match"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	catalogPath string
	items       []Item

	driver   string // "memory" or "redis"
	addrs    []string
	username string
	password string

	weights      *match.Weights
	defaultLimit int

	logger *zap.Logger
}

// WithCatalogFile loads the catalog from a YAML file.
func WithCatalogFile(path string) Option {
	return optionFunc(func(c *clientConfig) {
		c.catalogPath = path
	})
}

// WithItems builds the catalog from the given items. Takes precedence over
// WithCatalogFile.
func WithItems(items []Item) Option {
	return optionFunc(func(c *clientConfig) {
		c.items = items
	})
}

// WithRedis persists wishlists in a Redis instance. Without it the client
// keeps wishlists in process memory.
func WithRedis(addr, username, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = "redis"
		c.addrs = []string{addr}
		c.username = username
		c.password = password
	})
}

// WithWeights overrides the scoring weights.
func WithWeights(w Weights) Option {
	return optionFunc(func(c *clientConfig) {
		mw := match.Weights(w)
		c.weights = &mw
	})
}

// WithDefaultLimit sets the result cap used when a call passes limit <= 0.
// Default: 6.
func WithDefaultLimit(limit int) Option {
	return optionFunc(func(c *clientConfig) {
		c.defaultLimit = limit
	})
}

// WithLogger enables structured logging for client operations.
// Pass nil to disable (default).
func WithLogger(l *zap.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}
