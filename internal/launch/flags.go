package launch

import (
	"github.com/hashdot/hashdot/internal/logging"
	"github.com/hashdot/hashdot/internal/props"
)

// ScriptIndex scans argv for the script-file argument in alias mode.
// Flags listed in hashdot.parse_flags.value_args consume the following
// argument as well; a flag in hashdot.parse_flags.terminal stops the
// scan entirely (the remaining argv belongs to the hosted program).
// Returns 0 when no script argument is present.
func ScriptIndex(store *props.Store, argv []string) int {
	valueArgs, _ := store.Get(props.PropFlagValueArgs)
	terminal, _ := store.Get(props.PropFlagTerminal)

	for i := 1; i < len(argv); i++ {
		arg := argv[i]
		if len(arg) > 0 && arg[0] == '-' {
			if contains(terminal, arg) {
				return 0
			}
			if contains(valueArgs, arg) {
				i++ // skip the flag and its value
			}
			continue
		}
		logging.Debug("skipped flags to script", "script", arg)
		return i
	}
	return 0
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
