package jvm

import (
	"github.com/ebitengine/purego"

	"github.com/hashdot/hashdot/internal/logging"
)

// libName is the platform-conventional VM library, found through the
// dynamic loader's normal search (hence the LD_LIBRARY_PATH re-exec
// earlier in the pipeline).
const libName = "libjvm.so"

const createSymbol = "JNI_CreateJavaVM"

// Library is a loaded VM shared library with its creation symbol
// resolved.
type Library struct {
	handle   uintptr
	createVM uintptr
}

// Load opens the VM library and resolves the VM-creation entry symbol
func Load() (*Library, error) {
	handle, err := purego.Dlopen(libName, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, &LoadError{Lib: libName, Err: err}
	}

	sym, err := purego.Dlsym(handle, createSymbol)
	if err != nil {
		return nil, &LoadError{Lib: libName, Err: err}
	}

	logging.Debug("VM library loaded", "lib", libName)
	return &Library{handle: handle, createVM: sym}, nil
}
