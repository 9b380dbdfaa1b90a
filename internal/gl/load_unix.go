// SPDX-License-Identifier: Unlicense OR MIT

//go:build darwin || freebsd || linux

package gl

import (
	"fmt"
	"runtime"

	"github.com/ebitengine/purego"
)

// LoadFunctions opens the GL library selected by cfg and resolves
// the entry points of the returned Functions. The library stays open
// for the life of the process.
func LoadFunctions(cfg Config) (*Functions, error) {
	lib := cfg.Library
	if lib == "" {
		lib = defaultLibrary(cfg.ES)
	}
	handle, err := purego.Dlopen(lib, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, fmt.Errorf("gl: failed to load %s: %w", lib, err)
	}
	f := new(Functions)
	for _, ep := range f.entryPoints() {
		sym, err := purego.Dlsym(handle, ep.name)
		if err != nil || sym == 0 {
			if ep.optional {
				continue
			}
			return nil, fmt.Errorf("gl: %s: missing %s", lib, ep.name)
		}
		purego.RegisterFunc(ep.fptr, sym)
	}
	return f, nil
}

func defaultLibrary(es bool) string {
	switch {
	case runtime.GOOS == "darwin":
		return "/System/Library/Frameworks/OpenGL.framework/OpenGL"
	case es:
		return "libGLESv2.so.2"
	default:
		return "libGL.so.1"
	}
}
