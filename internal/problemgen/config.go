package problemgen

// Config holds generator tuning knobs.
type Config struct {
	// MaxAttempts bounds the rejection-sampling loops in the
	// find-quadrant and distance generators. When the cap is reached the
	// generator applies a deterministic adjustment instead of looping
	// forever, so generation always terminates.
	MaxAttempts int
}

// DefaultConfig returns the standard generator configuration.
func DefaultConfig() Config {
	return Config{
		MaxAttempts: 1000,
	}
}
