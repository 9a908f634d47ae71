package profile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hashdot/hashdot/internal/constants"
	"github.com/hashdot/hashdot/internal/embedded"
	"github.com/hashdot/hashdot/internal/logging"
	"github.com/hashdot/hashdot/internal/props"
)

// Loader reads directive sources into a property store. It owns the
// include stack, so a hashdot.profile directive anywhere in the chain
// loads through the same loader and cycles are caught.
type Loader struct {
	Dir    string
	parser *props.Parser
	stack  []string
}

// NewLoader creates a loader over the given profile directory, installing
// into store.
func NewLoader(dir string, store *props.Store) *Loader {
	l := &Loader{Dir: dir}
	l.parser = &props.Parser{Store: store, Include: l.Load}
	return l
}

// Path returns the file path of a named profile
func (l *Loader) Path(name string) string {
	return filepath.Join(l.Dir, name+constants.ProfileExt)
}

// Load parses the named profile file into the store
func (l *Loader) Load(name string) error {
	if err := l.push(name); err != nil {
		return err
	}
	defer l.pop()

	path := l.Path(name)
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &NotFoundError{Name: name, Path: path}
		}
		return fmt.Errorf("open profile %s: %w", path, err)
	}
	defer f.Close()

	logging.Debug("parsing profile", "path", path)
	return l.readProfile(f, path)
}

// LoadEmbedded parses a profile compiled into the binary
func (l *Loader) LoadEmbedded(name string) error {
	if err := l.push(name); err != nil {
		return err
	}
	defer l.pop()

	f, err := embedded.OpenProfile(name)
	if err != nil {
		return &NotFoundError{Name: name, Path: "embedded:" + name}
	}
	defer f.Close()

	logging.Debug("parsing embedded profile", "name", name)
	return l.readProfile(f, "embedded:"+name)
}

// LoadHeader parses the leading #-comment block of a script file,
// forwarding only the "#." directive lines.
func (l *Loader) LoadHeader(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("could not open script [%s]: %w", path, err)
		}
		return fmt.Errorf("open script %s: %w", path, err)
	}
	defer f.Close()

	logging.Debug("parsing hashdot header", "path", path)

	sc := newLineScanner(f)
	lineno := 0
	for sc.Scan() {
		lineno++
		line := sc.Text()
		// First line not starting with '#' ends the header block.
		if len(line) == 0 || line[0] != '#' {
			break
		}
		if len(line) >= 2 && line[1] == '.' {
			if err := l.parser.ParseLine(line[2:]); err != nil {
				return fmt.Errorf("%s:%d: %w", path, lineno, err)
			}
		}
	}
	return scanErr(sc, path, lineno+1)
}

// readProfile parses every non-comment line of a profile stream
func (l *Loader) readProfile(r io.Reader, path string) error {
	sc := newLineScanner(r)
	lineno := 0
	for sc.Scan() {
		lineno++
		line := sc.Text()
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		if err := l.parser.ParseLine(line); err != nil {
			return fmt.Errorf("%s:%d: %w", path, lineno, err)
		}
	}
	return scanErr(sc, path, lineno+1)
}

func (l *Loader) push(name string) error {
	for _, s := range l.stack {
		if s == name {
			return &CycleError{Name: name, Stack: append([]string(nil), l.stack...)}
		}
	}
	l.stack = append(l.stack, name)
	return nil
}

func (l *Loader) pop() {
	l.stack = l.stack[:len(l.stack)-1]
}

// newLineScanner bounds lines at MaxLineLen bytes. The extra byte of
// buffer admits the newline of a line at exactly the limit.
func newLineScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 256), constants.MaxLineLen+1)
	return sc
}

func scanErr(sc *bufio.Scanner, path string, lineno int) error {
	err := sc.Err()
	if err == nil {
		return nil
	}
	if errors.Is(err, bufio.ErrTooLong) {
		return &LineTooLongError{Path: path, Line: lineno, Max: constants.MaxLineLen}
	}
	return fmt.Errorf("read %s: %w", path, err)
}
