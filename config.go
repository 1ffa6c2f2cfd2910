package utfc

// Config controls how a Codec scans ASCII runs.
//
// The wire format does not depend on the configuration: every Config
// produces byte-identical output.
//
// Example:
//
//	config := utfc.DefaultConfig()
//	config.MaxVectorWidth = 16 // SSE/NEON-sized blocks only
//	codec, err := utfc.NewCodec(config)
type Config struct {
	// EnableSIMD enables the vector scanner tiers for ASCII runs.
	// When false, runs are located with a scalar loop.
	// Default: true
	EnableSIMD bool

	// MaxVectorWidth caps the block size, in bytes, of the scanner tiers
	// used. 0 means no cap (widest compiled tier first).
	// Valid values: 0, 16, 32, 64
	// Default: 0
	MaxVectorWidth int
}

// DefaultConfig returns a configuration that uses every vector tier the
// build and CPU support.
func DefaultConfig() Config {
	return Config{
		EnableSIMD:     true,
		MaxVectorWidth: 0,
	}
}

// Validate checks if the configuration is valid.
// Returns an error if any parameter is out of range.
func (c Config) Validate() error {
	switch c.MaxVectorWidth {
	case 0, 16, 32, 64:
	default:
		return &ConfigError{
			Field:   "MaxVectorWidth",
			Message: "must be 0, 16, 32 or 64",
		}
	}
	return nil
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "utfc: invalid config: " + e.Field + ": " + e.Message
}
