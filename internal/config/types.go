// Package config provides the project-level configuration for xerreader,
// decoupled from CLI flag parsing so other entry points (the HTTP API,
// the REPL) can load the same settings.
package config

// ThresholdConfig holds the numeric analyzer thresholds. Only FloatDays is
// passed to the analyzer (as the float-bucket boundary); HighFloatDays,
// HighDurationDays and OverAllocationCount are loaded but not read by the
// analyzer, whose DCMA and resource-loading checks use fixed values of 44,
// 44 and 10.
type ThresholdConfig struct {
	FloatDays           int `koanf:"float_days"`
	HighFloatDays       int `koanf:"high_float_days"`
	HighDurationDays    int `koanf:"high_duration_days"`
	OverAllocationCount int `koanf:"over_allocation_count"`
}

// StoreConfig selects and configures the schedule cache backend.
type StoreConfig struct {
	// Type is "sqlite", "postgres", or "none" to disable caching.
	Type string `koanf:"type"`
	// DSN is the backend's connection string (a file path for sqlite).
	DSN string `koanf:"dsn"`
}

// OutputConfig controls how CLI results are rendered.
type OutputConfig struct {
	// Format is "text", "json", or "markdown".
	Format string `koanf:"format"`
	// Color is "auto", "always", or "never" — whether text-mode output
	// carries ANSI styling.
	Color string `koanf:"color"`
}

// ProjectConfig is the full configuration tree loaded from
// xerreader.yaml, environment variables, and CLI flags, in that order
// of increasing precedence.
type ProjectConfig struct {
	Thresholds ThresholdConfig `koanf:"thresholds"`
	Store      StoreConfig     `koanf:"store"`
	Output     OutputConfig    `koanf:"output"`
}
