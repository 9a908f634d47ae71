package launch

import (
	"errors"
	"io/fs"

	"github.com/hashdot/hashdot/internal/jvm"
	"github.com/hashdot/hashdot/internal/profile"
	"github.com/hashdot/hashdot/internal/props"
)

// Process exit codes. Parse errors carry their own codes, all above 10.
const (
	ExitConfig      = 1
	ExitGlobMiss    = 2
	ExitEntryClass  = 3
	ExitEntryMethod = 4
	ExitVMLoad      = 6
	ExitVMInit      = 7
	ExitOS          = 8
)

// ExitCode maps a pipeline error to the process exit code
func ExitCode(err error) int {
	var parseErr *props.ParseError
	if errors.As(err, &parseErr) {
		return parseErr.Kind.Code()
	}
	var entryErr *jvm.EntryNotFoundError
	if errors.As(err, &entryErr) {
		if entryErr.Kind == jvm.EntryMethod {
			return ExitEntryMethod
		}
		return ExitEntryClass
	}
	var loadErr *jvm.LoadError
	if errors.As(err, &loadErr) {
		return ExitVMLoad
	}
	var initErr *jvm.InitError
	if errors.As(err, &initErr) {
		return ExitVMInit
	}
	var globErr *GlobMissError
	if errors.As(err, &globErr) {
		return ExitGlobMiss
	}
	var notFound *profile.NotFoundError
	var cycle *profile.CycleError
	var tooLong *profile.LineTooLongError
	var cfg *ConfigError
	if errors.As(err, &notFound) || errors.As(err, &cycle) ||
		errors.As(err, &tooLong) || errors.As(err, &cfg) {
		return ExitConfig
	}
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return ExitOS
	}
	return ExitConfig
}
