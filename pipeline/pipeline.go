// SPDX-License-Identifier: Unlicense OR MIT

/*
Package pipeline describes and executes rendering passes.

A Pipeline renders into a framebuffer through a hierarchy of
commands:

	Pipeline
	  ShadingCommand   one shader program
	    RenderCommand  one fixed-function configuration
	      Drawable     one draw call

Every level is wrapped in a Pipe whose Updater runs immediately before
the level is processed, typically to set uniform values of the current
program.

Resources referenced by a Pipeline are borrowed: it never creates or
releases device objects, and they must stay valid until Run returns.
*/
package pipeline

import (
	"fmt"

	"golang.org/x/image/math/f32"

	"github.com/lumengfx/lumen/driver"
)

// Pipeline is a rendering pass.
type Pipeline struct {
	Framebuffer driver.Framebuffer
	// ClearColor is passed to the device unclamped.
	ClearColor f32.Vec4
	// Textures are bound to the texture unit of their index.
	Textures []driver.Texture
	// Buffers are bound to the uniform block binding of their index.
	Buffers  []driver.Buffer
	Commands []Pipe[ShadingCommand]
}

// New returns a Pipeline of its arguments, unvalidated.
func New(fb driver.Framebuffer, clearColor f32.Vec4, textures []driver.Texture, buffers []driver.Buffer, commands []Pipe[ShadingCommand]) *Pipeline {
	return &Pipeline{
		Framebuffer: fb,
		ClearColor:  clearColor,
		Textures:    textures,
		Buffers:     buffers,
		Commands:    commands,
	}
}

// Run executes the pipeline on d, in list order at every level, and
// returns the device error raised meanwhile, if any. Execution is not
// interrupted by errors.
func (p *Pipeline) Run(d driver.Device) error {
	fb := p.Framebuffer
	d.BindFramebuffer(fb)
	d.Viewport(0, 0, fb.Width(), fb.Height())
	c := p.ClearColor
	d.Clear(c[0], c[1], c[2], c[3])
	for i, tex := range p.Textures {
		d.BindTexture(i, tex)
	}
	for i, buf := range p.Buffers {
		d.BindUniformBuffer(i, buf)
	}
	draws := 0
	for _, sc := range p.Commands {
		prog := sc.Value.Program
		sc.update(prog)
		d.BindProgram(prog)
		for _, rc := range sc.Value.Commands {
			draws += runRenderCommand(d, prog, rc)
		}
	}
	driver.Logger().Debug("pipeline run",
		"shading_commands", len(p.Commands),
		"draws", draws)
	if err := d.Err(); err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}
	return nil
}

func runRenderCommand(d driver.Device, prog driver.Program, rc Pipe[RenderCommand]) int {
	rc.update(prog)
	cmd := rc.Value
	if b := cmd.Blending; b != nil {
		d.SetBlend(true)
		d.BlendEquation(b.Equation)
		d.BlendFunc(b.Src, b.Dst)
	} else {
		d.SetBlend(false)
	}
	d.SetDepthTest(cmd.DepthTest)
	for _, t := range cmd.Tessellations {
		t.update(prog)
		t.Value.Render(d, cmd.RasterizationSize, cmd.Instances)
	}
	return len(cmd.Tessellations)
}
