package profile

import (
	"errors"

	"github.com/hashdot/hashdot/internal/constants"
	"github.com/hashdot/hashdot/internal/logging"
	"github.com/hashdot/hashdot/internal/props"
)

// Composition layers directive sources into one property store in the
// fixed precedence order: built-in default profile, hashdot.script,
// HASHDOT_PROFILE, the invocation-name profile, the script header, and
// finally the version stamp. Later layers override plain assignments and
// extend appends.
type Composition struct {
	Store  *props.Store
	Loader *Loader
}

// NewComposition creates an empty composition over the profile directory
func NewComposition(dir string) *Composition {
	store := props.NewStore()
	return &Composition{
		Store:  store,
		Loader: NewLoader(dir, store),
	}
}

// Base loads the built-in default profile. When the profile directory has
// no default.hdp the copy embedded in the binary is used, so a fresh
// install can still launch.
func (c *Composition) Base() error {
	err := c.Loader.Load("default")
	if err == nil {
		return nil
	}
	var nf *NotFoundError
	if errors.As(err, &nf) {
		logging.Debug("no default profile on disk, using embedded", "path", nf.Path)
		return c.Loader.LoadEmbedded("default")
	}
	return err
}

// SetScript registers the script path as hashdot.script. Called before
// the header is parsed so the header may reference ${hashdot.script}.
func (c *Composition) SetScript(path string) {
	c.Store.Set(props.PropScript, []string{path})
}

// ApplyProfile layers a named profile (HASHDOT_PROFILE or the invocation
// alias). Missing profiles are fatal.
func (c *Composition) ApplyProfile(name string) error {
	return c.Loader.Load(name)
}

// ApplyHeader layers the script file's own directive header
func (c *Composition) ApplyHeader(scriptPath string) error {
	return c.Loader.LoadHeader(scriptPath)
}

// Finish stamps hashdot.version from the build constant
func (c *Composition) Finish() {
	c.Store.Set(props.PropVersion, []string{constants.Version})
}
