// SPDX-License-Identifier: Unlicense OR MIT

package pipeline

import (
	"github.com/lumengfx/lumen/driver"
	"github.com/lumengfx/lumen/render"
)

// Pipe pairs a value with the Updater run before the value is
// processed. A nil Update does nothing.
type Pipe[T any] struct {
	Update Updater
	Value  T
}

// ShadingCommand renders its commands with a single shader program.
type ShadingCommand struct {
	Program  driver.Program
	Commands []Pipe[RenderCommand]
}

// RenderCommand is a fixed-function configuration and the drawables
// rendered with it.
//
// RenderCommand controls blending and the depth test only. Use
// driver.ApplyState for depth writes, face culling and separate
// blending.
type RenderCommand struct {
	// Blending is the blending equation and factors. Nil disables
	// blending.
	Blending      *render.Blending
	DepthTest     bool
	Tessellations []Pipe[Drawable]
	Instances     int
	// RasterizationSize is the point size or line width passed to
	// each drawable. Zero leaves the device default.
	RasterizationSize float32
}

// Drawable issues the draw call of a piece of geometry.
type Drawable interface {
	// Render draws instances instances of the geometry. A non-zero
	// size sets the rasterization size first.
	Render(d driver.Device, size float32, instances int)
}

// NewPipe returns a Pipe running u before v is processed.
func NewPipe[T any](u Updater, v T) Pipe[T] {
	return Pipe[T]{Update: u, Value: v}
}

// NewShadingCommand returns a ShadingCommand rendering commands with p.
func NewShadingCommand(p driver.Program, commands []Pipe[RenderCommand]) ShadingCommand {
	return ShadingCommand{Program: p, Commands: commands}
}

// NewRenderCommand returns a RenderCommand; a nil blending disables
// blending and a zero size keeps the device rasterization size.
func NewRenderCommand(blending *render.Blending, depthTest bool, tessellations []Pipe[Drawable], instances int, size float32) RenderCommand {
	return RenderCommand{
		Blending:          blending,
		DepthTest:         depthTest,
		Tessellations:     tessellations,
		Instances:         instances,
		RasterizationSize: size,
	}
}

func (p Pipe[T]) update(prog driver.Program) {
	if p.Update != nil {
		p.Update.Update(prog)
	}
}
