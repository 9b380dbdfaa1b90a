// SPDX-License-Identifier: Unlicense OR MIT

// Package rendertest provides a driver.Device recording every call,
// for asserting exact device call sequences in tests.
package rendertest

import (
	"fmt"

	"gioui.org/shader"

	"github.com/lumengfx/lumen/driver"
	"github.com/lumengfx/lumen/render"
)

// Device implements driver.Device by appending a line per call to
// Calls.
type Device struct {
	Calls []string
	// Error is returned, and cleared, by Err.
	Error error
}

type Framebuffer struct {
	Name string
	W, H int
}

type Texture struct {
	Name string
	Tgt  driver.TextureTarget
}

type Buffer struct {
	Name string
	N    int
}

// Program records uniform uploads on its Device.
type Program struct {
	Name   string
	Device *Device
}

type VertexArray struct {
	Name string
}

var _ driver.Device = (*Device)(nil)

func (d *Device) record(format string, args ...interface{}) {
	d.Calls = append(d.Calls, fmt.Sprintf(format, args...))
}

// Reset forgets the recorded calls.
func (d *Device) Reset() {
	d.Calls = d.Calls[:0]
}

// Count returns how many recorded calls start with prefix.
func (d *Device) Count(prefix string) int {
	n := 0
	for _, c := range d.Calls {
		if len(c) >= len(prefix) && c[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}

func (d *Device) BindFramebuffer(f driver.Framebuffer) {
	d.record("BindFramebuffer(%s)", name(f))
}

func (d *Device) Viewport(x, y, width, height int) {
	d.record("Viewport(%d, %d, %d, %d)", x, y, width, height)
}

func (d *Device) Clear(r, g, b, a float32) {
	d.record("Clear(%g, %g, %g, %g)", r, g, b, a)
}

func (d *Device) BindTexture(unit int, t driver.Texture) {
	d.record("BindTexture(%d, %s, %v)", unit, name(t), t.Target())
}

func (d *Device) BindUniformBuffer(binding int, b driver.Buffer) {
	d.record("BindUniformBuffer(%d, %s)", binding, name(b))
}

func (d *Device) BindProgram(p driver.Program) {
	d.record("BindProgram(%s)", name(p))
}

func (d *Device) SetBlend(enable bool) {
	d.record("SetBlend(%v)", enable)
}

func (d *Device) BlendEquation(eq render.Equation) {
	d.record("BlendEquation(%v)", eq)
}

func (d *Device) BlendFunc(src, dst render.Factor) {
	d.record("BlendFunc(%v, %v)", src, dst)
}

func (d *Device) BlendEquationSeparate(rgb, alpha render.Equation) {
	d.record("BlendEquationSeparate(%v, %v)", rgb, alpha)
}

func (d *Device) BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha render.Factor) {
	d.record("BlendFuncSeparate(%v, %v, %v, %v)", srcRGB, dstRGB, srcAlpha, dstAlpha)
}

func (d *Device) SetDepthTest(enable bool) {
	d.record("SetDepthTest(%v)", enable)
}

func (d *Device) DepthFunc(c render.Comparison) {
	d.record("DepthFunc(%v)", c)
}

func (d *Device) DepthMask(mask bool) {
	d.record("DepthMask(%v)", mask)
}

func (d *Device) SetFaceCulling(enable bool) {
	d.record("SetFaceCulling(%v)", enable)
}

func (d *Device) CullFace(order render.FaceCullingOrder, mode render.FaceCullingMode) {
	d.record("CullFace(%v, %v)", order, mode)
}

func (d *Device) BindVertexArray(v driver.VertexArray) {
	d.record("BindVertexArray(%s)", name(v))
}

func (d *Device) RasterizationSize(size float32) {
	d.record("RasterizationSize(%g)", size)
}

func (d *Device) DrawArrays(mode driver.DrawMode, first, count, instances int) {
	d.record("DrawArrays(%v, %d, %d, %d)", mode, first, count, instances)
}

func (d *Device) DrawElements(mode driver.DrawMode, count, instances int) {
	d.record("DrawElements(%v, %d, %d)", mode, count, instances)
}

func (d *Device) Err() error {
	err := d.Error
	d.Error = nil
	return err
}

func (f *Framebuffer) Width() int  { return f.W }
func (f *Framebuffer) Height() int { return f.H }

func (t *Texture) Target() driver.TextureTarget { return t.Tgt }

func (b *Buffer) Size() int { return b.N }

func (p *Program) Valid() bool { return p != nil }

func (p *Program) SetUniform(loc shader.UniformLocation, data []byte) {
	if p.Device == nil {
		return
	}
	end := loc.Offset + loc.Size*4
	p.Device.record("SetUniform(%s, %s, % x)", p.Name, loc.Name, data[loc.Offset:end])
}

func (v *VertexArray) Valid() bool { return v != nil }

func name(v interface{}) string {
	switch v := v.(type) {
	case *Framebuffer:
		return v.Name
	case *Texture:
		return v.Name
	case *Buffer:
		return v.Name
	case *Program:
		return v.Name
	case *VertexArray:
		return v.Name
	case nil:
		return "<nil>"
	default:
		return fmt.Sprintf("%T", v)
	}
}
