package launch

import "fmt"

// ConfigError is a missing or malformed required property or argument
type ConfigError struct {
	What   string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s", e.What, e.Reason)
}

// GlobMissError is a classpath glob pattern that matched nothing
type GlobMissError struct {
	Pattern string
}

func (e *GlobMissError) Error() string {
	return fmt.Sprintf("classpath pattern %q matched nothing", e.Pattern)
}
