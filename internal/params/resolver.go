package params

import (
	"github.com/spf13/viper"

	"github.com/hashdot/hashdot/internal/constants"
)

// Resolution of launcher settings from multiple sources, in priority
// order: environment variables (HASHDOT_*) > config file > built-in
// defaults. Viper holds the merged view.

// ProfileDir returns the effective profile directory
func ProfileDir() string {
	if viper.IsSet("profile_dir") {
		if dir := viper.GetString("profile_dir"); dir != "" {
			return dir
		}
	}
	return constants.DefaultProfileDir
}

// EnvProfile returns the HASHDOT_PROFILE override, or ""
func EnvProfile() string {
	return viper.GetString("profile")
}

// DebugEnabled reports whether HASHDOT_DEBUG is set to any value
func DebugEnabled() bool {
	return viper.IsSet("debug") && viper.GetString("debug") != ""
}

// LogLevel returns the effective log level name. HASHDOT_DEBUG forces
// debug regardless of log_level.
func LogLevel() string {
	if DebugEnabled() {
		return "debug"
	}
	if lvl := viper.GetString("log_level"); lvl != "" {
		return lvl
	}
	return "warn"
}
