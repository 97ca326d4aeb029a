package config

// Merge merges two configs, with the second one taking precedence. Empty
// override fields keep the base value; NoColor can only be switched on.
func Merge(base, override *Config) *Config {
	result := *base
	if override.LogLevel != "" {
		result.LogLevel = override.LogLevel
	}
	if override.NoColor {
		result.NoColor = true
	}
	return &result
}
