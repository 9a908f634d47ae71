package profile

import (
	"fmt"
	"strings"
)

// NotFoundError is returned when a named profile does not exist in the
// profile directory. A missing profile is always fatal; there is no
// silent skip.
type NotFoundError struct {
	Name string
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("profile %q not found (%s)", e.Name, e.Path)
}

// CycleError is returned when hashdot.profile inclusion re-enters a
// profile already on the include stack.
type CycleError struct {
	Name  string
	Stack []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("profile include cycle: %s -> %s",
		strings.Join(e.Stack, " -> "), e.Name)
}

// LineTooLongError is returned for a logical line over the fixed buffer
// size.
type LineTooLongError struct {
	Path string
	Line int
	Max  int
}

func (e *LineTooLongError) Error() string {
	return fmt.Sprintf("%s:%d: line exceeds %d bytes", e.Path, e.Line, e.Max)
}
