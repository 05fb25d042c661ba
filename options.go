package accountpkg

import (
	"github.com/rs/zerolog"
)

// InstantiateOption configures the Instantiate() operation.
type InstantiateOption func(*instantiateConfig)

// instantiateConfig holds configuration for the Instantiate() method.
type instantiateConfig struct {
	logger      zerolog.Logger
	accountType *AccountType
}

// defaultInstantiateConfig returns the default instantiation configuration.
func defaultInstantiateConfig() *instantiateConfig {
	return &instantiateConfig{
		logger: zerolog.Nop(),
	}
}

// WithLogger sets a logger that receives debug events for each converted entry.
// Default is a no-op logger.
func WithLogger(logger zerolog.Logger) InstantiateOption {
	return func(c *instantiateConfig) {
		c.logger = logger
	}
}

// ForAccountType requires the package to target t. The resulting component
// still reports every target of the package as supported.
func ForAccountType(t AccountType) InstantiateOption {
	return func(c *instantiateConfig) {
		c.accountType = &t
	}
}
