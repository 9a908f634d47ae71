package constants

// These variables can be overridden during the build using ldflags.
var (
	// Version is stamped into every launch as the hashdot.version property.
	Version = "1.4.0"

	// DefaultProfileDir is where profile (.hdp) files are looked up unless
	// HASHDOT_PROFILE_DIR or a config file says otherwise.
	DefaultProfileDir = "/etc/hashdot/profiles"
)

const (
	// CanonicalName is the executable name for explicit invocation
	// (hashdot script-file). Any other argv[0] basename selects the
	// alias launch mode.
	CanonicalName = "hashdot"

	// ProfileExt is the file extension of profile files.
	ProfileExt = ".hdp"

	// MaxLineLen is the largest accepted logical directive line in bytes.
	MaxLineLen = 4096
)
