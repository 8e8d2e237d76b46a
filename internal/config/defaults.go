package config

// Default configuration values, applied whenever the corresponding key
// is absent from every layer (file, env, flags).
const (
	DefaultFloatThresholdDays  = 5
	DefaultHighFloatDays       = 44
	DefaultHighDurationDays    = 44
	DefaultOverAllocationCount = 10
	DefaultStoreType           = "sqlite"
	DefaultStoreDSN            = "xerreader.db"
	DefaultOutputFormat        = "text"
	DefaultOutputColor         = "auto"
)

// ApplyDefaults fills in every zero-valued field of c with its default.
func ApplyDefaults(c *ProjectConfig) {
	if c == nil {
		return
	}
	if c.Thresholds.FloatDays == 0 {
		c.Thresholds.FloatDays = DefaultFloatThresholdDays
	}
	if c.Thresholds.HighFloatDays == 0 {
		c.Thresholds.HighFloatDays = DefaultHighFloatDays
	}
	if c.Thresholds.HighDurationDays == 0 {
		c.Thresholds.HighDurationDays = DefaultHighDurationDays
	}
	if c.Thresholds.OverAllocationCount == 0 {
		c.Thresholds.OverAllocationCount = DefaultOverAllocationCount
	}
	if c.Store.Type == "" {
		c.Store.Type = DefaultStoreType
	}
	if c.Store.DSN == "" {
		c.Store.DSN = DefaultStoreDSN
	}
	if c.Output.Format == "" {
		c.Output.Format = DefaultOutputFormat
	}
	if c.Output.Color == "" {
		c.Output.Color = DefaultOutputColor
	}
}
