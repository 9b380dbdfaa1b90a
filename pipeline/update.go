// SPDX-License-Identifier: Unlicense OR MIT

package pipeline

import (
	"gioui.org/shader"

	"github.com/lumengfx/lumen/driver"
)

// Updater is invoked with the shader program of the enclosing shading
// command immediately before its level of the hierarchy is processed.
type Updater interface {
	Update(p driver.Program)
}

// NopUpdater does nothing.
type NopUpdater struct{}

// UpdaterFunc adapts a function to Updater.
type UpdaterFunc func(p driver.Program)

// UniformSet uploads a fixed set of uniform values. Layout describes
// each uniform inside Data.
type UniformSet struct {
	Layout []shader.UniformLocation
	Data   []byte
}

func (NopUpdater) Update(p driver.Program) {}

func (f UpdaterFunc) Update(p driver.Program) {
	f(p)
}

// Update uploads every uniform of s to p, which must implement
// driver.UniformProgram.
func (s UniformSet) Update(p driver.Program) {
	up, ok := p.(driver.UniformProgram)
	if !ok {
		panic("pipeline: program does not accept uniform values")
	}
	for _, loc := range s.Layout {
		up.SetUniform(loc, s.Data)
	}
}
