package launch

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/sys/unix"

	"github.com/hashdot/hashdot/internal/logging"
	"github.com/hashdot/hashdot/internal/props"
)

// InjectEnv sets one environment variable per hashdot.env.* property,
// joining multi-valued properties with single spaces.
func InjectEnv(store *props.Store) error {
	for _, name := range store.Names() {
		if !strings.HasPrefix(name, props.PropEnvPrefix) ||
			len(name) == len(props.PropEnvPrefix) {
			continue
		}
		key := name[len(props.PropEnvPrefix):]
		val, _ := store.Join(name, " ")
		logging.Debug("environment injected", "name", key, "value", val)
		if err := os.Setenv(key, val); err != nil {
			return fmt.Errorf("set env %s: %w", key, err)
		}
	}
	return nil
}

// ReexecForLibPath prepends hashdot.vm.libpath entries not already in
// LD_LIBRARY_PATH and, if any were new, re-execs this executable so the
// dynamic loader observes them. Does not return after a successful exec.
func ReexecForLibPath(store *props.Store) error {
	paths, ok := store.Get(props.PropVMLibPath)
	if !ok {
		return nil
	}

	ld := os.Getenv("LD_LIBRARY_PATH")
	var fresh []string
	for _, p := range paths {
		if ld == "" || !strings.Contains(ld, p) {
			fresh = append(fresh, p)
			logging.Debug("new library path", "path", p)
		}
	}
	if len(fresh) == 0 {
		return nil
	}

	if ld != "" {
		fresh = append(fresh, ld)
	}
	newLD := strings.Join(fresh, ":")
	if err := os.Setenv("LD_LIBRARY_PATH", newLD); err != nil {
		return fmt.Errorf("set LD_LIBRARY_PATH: %w", err)
	}

	// argv[0] may be a bare name resolved through PATH; exec through the
	// kernel's self link instead.
	exe, err := selfExe()
	if err != nil {
		return err
	}

	logging.Debug("re-exec for library path", "exe", exe, "ld_library_path", newLD)
	if err := unix.Exec(exe, os.Args, os.Environ()); err != nil {
		return fmt.Errorf("re-exec %s: %w", exe, err)
	}
	return nil
}

func selfExe() (string, error) {
	exe, err := os.Readlink("/proc/self/exe")
	if err != nil {
		return "", fmt.Errorf("resolve own executable: %w", err)
	}
	return exe, nil
}
