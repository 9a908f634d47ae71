package params

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"

	"github.com/hashdot/hashdot/internal/constants"
)

func reset(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestProfileDir(t *testing.T) {
	reset(t)
	assert.Equal(t, constants.DefaultProfileDir, ProfileDir())

	viper.Set("profile_dir", "/custom/profiles")
	assert.Equal(t, "/custom/profiles", ProfileDir())

	viper.Set("profile_dir", "")
	assert.Equal(t, constants.DefaultProfileDir, ProfileDir())
}

func TestEnvProfile(t *testing.T) {
	reset(t)
	assert.Equal(t, "", EnvProfile())

	viper.Set("profile", "site")
	assert.Equal(t, "site", EnvProfile())
}

func TestLogLevel(t *testing.T) {
	reset(t)
	assert.Equal(t, "warn", LogLevel())

	viper.Set("log_level", "info")
	assert.Equal(t, "info", LogLevel())

	// HASHDOT_DEBUG forces debug regardless of log_level.
	viper.Set("debug", "1")
	assert.True(t, DebugEnabled())
	assert.Equal(t, "debug", LogLevel())
}
