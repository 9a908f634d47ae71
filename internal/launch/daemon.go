package launch

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"

	"github.com/hashdot/hashdot/internal/logging"
	"github.com/hashdot/hashdot/internal/props"
)

// daemonMarkerEnv tells a re-exec'd child it is already the daemon.
const daemonMarkerEnv = "_HASHDOT_DAEMON"

// Daemonize detaches the process when hashdot.daemonize is set to
// anything but "false", then applies any hashdot.io_redirect.* settings.
//
// fork(2) is not usable under the Go runtime, so detaching re-invokes
// this executable in a new session and the parent exits 0; the child
// re-runs the pipeline, finds the marker, and continues here.
func Daemonize(store *props.Store) error {
	if val, ok := store.Join(props.PropDaemonize, ":"); ok && val != "false" {
		if os.Getenv(daemonMarkerEnv) == "" {
			return respawnDetached()
		}
		os.Unsetenv(daemonMarkerEnv)
	}
	return redirectIO(store)
}

func respawnDetached() error {
	logging.Debug("forking daemon")

	exe, err := selfExe()
	if err != nil {
		return err
	}

	cmd := exec.Command(exe, os.Args[1:]...)
	cmd.Args[0] = os.Args[0] // keep the invocation name for profile lookup
	cmd.Env = append(os.Environ(), daemonMarkerEnv+"=1")
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("daemonize: %w", err)
	}
	os.Exit(0)
	return nil
}

// redirectIO reopens stdin on the null device and stdout/stderr on the
// configured file. Applies whether or not the process daemonized.
func redirectIO(store *props.Store) error {
	fname, ok := store.Join(props.PropRedirectFile, "/")
	if !ok || fname == "" {
		return nil
	}

	appendMode := true
	if val, ok := store.Join(props.PropRedirectAppend, ":"); ok && val == "false" {
		appendMode = false
	}

	logging.Debug("redirecting stdout/stderr", "file", fname, "append", appendMode)

	devnull, err := os.Open(os.DevNull)
	if err != nil {
		return fmt.Errorf("open %s: %w", os.DevNull, err)
	}
	if err := unix.Dup3(int(devnull.Fd()), 0, 0); err != nil {
		return fmt.Errorf("redirect stdin: %w", err)
	}

	flags := os.O_WRONLY | os.O_CREATE
	if appendMode {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}
	out, err := os.OpenFile(fname, flags, 0644)
	if err != nil {
		return fmt.Errorf("open redirect file %s: %w", fname, err)
	}
	if err := unix.Dup3(int(out.Fd()), 1, 0); err != nil {
		return fmt.Errorf("redirect stdout: %w", err)
	}
	if err := unix.Dup3(int(out.Fd()), 2, 0); err != nil {
		return fmt.Errorf("redirect stderr: %w", err)
	}
	return nil
}
