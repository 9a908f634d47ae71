package launch

import (
	"fmt"
	"path/filepath"
	"strings"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/hashdot/hashdot/internal/constants"
	"github.com/hashdot/hashdot/internal/jvm"
	"github.com/hashdot/hashdot/internal/logging"
	"github.com/hashdot/hashdot/internal/profile"
	"github.com/hashdot/hashdot/internal/props"
)

// Options carries the resolved launcher configuration into Run
type Options struct {
	ProfileDir string
	EnvProfile string // HASHDOT_PROFILE, "" when unset
}

// Run executes the whole launch pipeline for the given argv (including
// argv[0]) and only returns on error or after the hosted program's main
// method has returned and the VM is destroyed.
func Run(argv []string, opts Options) error {
	res, err := Resolve(argv, opts)
	if err != nil {
		return err
	}
	store := res.Store

	if err := ReexecForLibPath(store); err != nil {
		return err
	}
	if err := InjectEnv(store); err != nil {
		return err
	}
	if err := setProcessName(res.ProcessName); err != nil {
		return err
	}
	if err := Daemonize(store); err != nil {
		return err
	}

	vmOpts, err := VMOptions(store)
	if err != nil {
		return err
	}

	lib, err := jvm.Load()
	if err != nil {
		return err
	}
	machine, err := lib.Create(vmOpts)
	if err != nil {
		return err
	}

	mainClass, ok := store.Scalar(props.PropMain)
	if !ok {
		return &ConfigError{What: props.PropMain, Reason: "need single value"}
	}

	pre, _ := store.Get(props.PropArgsPre)
	args := make([]string, 0, len(pre)+len(res.ScriptArgs))
	args = append(args, pre...)
	args = append(args, res.ScriptArgs...)

	err = machine.RunMain(internalClassName(mainClass), args)
	logging.Debug("returned from main")
	machine.Destroy()
	return err
}

// Resolution is the composed launch state before any process mutation
type Resolution struct {
	Store       *props.Store
	ScriptPath  string   // "" when launched by alias without a script arg
	ScriptArgs  []string // argv entries handed to the hosted main
	ProcessName string
	CalledAs    string
}

// Resolve composes the property store for argv without touching process
// state. Both the launch pipeline and the check command run through it.
func Resolve(argv []string, opts Options) (*Resolution, error) {
	calledAs := filepath.Base(argv[0])
	canonical := calledAs == constants.CanonicalName
	logging.Debug("run as", "argv0", calledAs)

	fileOffset := 0
	if canonical {
		if len(argv) < 2 {
			return nil, &ConfigError{
				What:   "usage",
				Reason: fmt.Sprintf("script-file argument required: %s script-file", argv[0]),
			}
		}
		fileOffset = 1
	}

	comp := profile.NewComposition(opts.ProfileDir)
	if err := comp.Base(); err != nil {
		return nil, err
	}

	if canonical {
		comp.SetScript(argv[fileOffset])
	}

	if opts.EnvProfile != "" {
		if err := comp.ApplyProfile(opts.EnvProfile); err != nil {
			return nil, err
		}
	}

	if !canonical {
		if err := comp.ApplyProfile(calledAs); err != nil {
			return nil, err
		}
		fileOffset = ScriptIndex(comp.Store, argv)
		if fileOffset > 0 {
			comp.SetScript(argv[fileOffset])
		}
	}

	if fileOffset > 0 {
		if err := comp.ApplyHeader(argv[fileOffset]); err != nil {
			return nil, err
		}
	}

	comp.Finish()

	res := &Resolution{
		Store:       comp.Store,
		CalledAs:    calledAs,
		ProcessName: calledAs,
	}
	if fileOffset > 0 {
		res.ScriptPath = argv[fileOffset]
		res.ProcessName = filepath.Base(argv[fileOffset])
		res.ScriptArgs = argv[fileOffset+1:]
	} else {
		res.ScriptArgs = argv[1:]
	}
	return res, nil
}

// VMOptions builds the VM initialization option strings: the compacted
// hashdot.vm.options first, then -Djava.class.path with globs expanded,
// then a -D entry for every other property.
func VMOptions(store *props.Store) ([]string, error) {
	var opts []string

	if vals, ok := store.Get(props.PropVMOptions); ok {
		compacted := CompactOptions(vals)
		store.Set(props.PropVMOptions, compacted)
		opts = append(opts, compacted...)
	}

	if vals, ok := store.Get(props.PropClassPath); ok {
		expanded, err := ExpandGlobs(vals)
		if err != nil {
			return nil, err
		}
		opt := "-D" + props.PropClassPath + "=" + strings.Join(expanded, ":")
		logging.Debug("system property", "option", opt)
		opts = append(opts, opt)
	}

	for _, name := range store.Names() {
		if name == props.PropClassPath {
			continue
		}
		joined, _ := store.Join(name, " ")
		opt := "-D" + name + "=" + joined
		logging.Debug("system property", "option", opt)
		opts = append(opts, opt)
	}
	return opts, nil
}

// internalClassName translates a dotted class name to the VM's internal
// slash-separated form.
func internalClassName(name string) string {
	return strings.ReplaceAll(name, ".", "/")
}

// setProcessName renames the OS process to the script basename (or the
// invocation alias). The kernel truncates to its comm length.
func setProcessName(name string) error {
	buf := make([]byte, len(name)+1)
	copy(buf, name)
	if err := unix.Prctl(unix.PR_SET_NAME, uintptr(unsafe.Pointer(&buf[0])), 0, 0, 0); err != nil {
		return fmt.Errorf("set process name: %w", err)
	}
	return nil
}
