// SPDX-License-Identifier: Unlicense OR MIT

// Package opengl implements driver.Device over OpenGL 3.3 core and
// OpenGL ES 3.0.
//
// The Backend keeps a shadow copy of the context state it changes and
// skips GL calls that would not change it. The shadow copy is only
// valid while the Backend is the sole user of the context; call Reset
// after running foreign GL code.
package opengl

import (
	"fmt"

	"github.com/lumengfx/lumen/driver"
	"github.com/lumengfx/lumen/internal/gl"
	"github.com/lumengfx/lumen/render"
)

// Functions is the set of GL entry points the Backend calls. It is
// implemented by *gl.Functions.
type Functions interface {
	ActiveTexture(texture gl.Enum)
	BindBufferBase(target gl.Enum, index int, b gl.Buffer)
	BindFramebuffer(target gl.Enum, fb gl.Framebuffer)
	BindTexture(target gl.Enum, t gl.Texture)
	BindVertexArray(a gl.VertexArray)
	BlendEquationSeparate(modeRGB, modeAlpha gl.Enum)
	BlendFuncSeparate(srcRGB, dstRGB, srcA, dstA gl.Enum)
	Clear(mask gl.Enum)
	ClearColor(red, green, blue, alpha float32)
	ClearDepthf(d float32)
	CullFace(mode gl.Enum)
	DepthFunc(v gl.Enum)
	DepthMask(mask bool)
	Disable(cap gl.Enum)
	DrawArrays(mode gl.Enum, first, count int)
	DrawArraysInstanced(mode gl.Enum, first, count, primcount int)
	DrawElements(mode gl.Enum, count int, ty gl.Enum, offset int)
	DrawElementsInstanced(mode gl.Enum, count int, ty gl.Enum, offset, primcount int)
	Enable(cap gl.Enum)
	FrontFace(mode gl.Enum)
	GetError() gl.Enum
	GetInteger(pname gl.Enum) int
	GetString(pname gl.Enum) string
	GetUniformLocation(p gl.Program, name string) gl.Uniform
	LineWidth(width float32)
	PointSize(size float32)
	Uniform1f(dst gl.Uniform, v float32)
	Uniform2f(dst gl.Uniform, v0, v1 float32)
	Uniform3f(dst gl.Uniform, v0, v1, v2 float32)
	Uniform4f(dst gl.Uniform, v0, v1, v2, v3 float32)
	Uniform1i(dst gl.Uniform, v int)
	Uniform2i(dst gl.Uniform, v0, v1 int)
	Uniform3i(dst gl.Uniform, v0, v1, v2 int)
	Uniform4i(dst gl.Uniform, v0, v1, v2, v3 int)
	UseProgram(p gl.Program)
	Viewport(x, y, width, height int)
}

// Backend implements driver.Device.
type Backend struct {
	funcs   Functions
	glstate glState

	glver [2]int
	gles  bool
	// Limits of the context, sizing the shadow state.
	texUnits    int
	uniBindings int
}

// GLError is a GL error code reported by glGetError.
type GLError gl.Enum

// Minimum limits guaranteed by OpenGL ES 3.0.
const (
	minTextureUnits          = 32
	minUniformBufferBindings = 24
)

const maxPendingErrors = 8

var (
	_ driver.Device = (*Backend)(nil)
	_ Functions     = (*gl.Functions)(nil)
)

// NewBackend returns a Backend issuing calls through f. The GL context
// of f must be current.
func NewBackend(f Functions) (*Backend, error) {
	glVer := f.GetString(gl.VERSION)
	ver, gles, err := gl.ParseGLVersion(glVer)
	if err != nil {
		return nil, err
	}
	if (gles && ver[0] < 3) || (!gles && (ver[0] < 3 || (ver[0] == 3 && ver[1] < 3))) {
		return nil, fmt.Errorf("opengl: unsupported version %q", glVer)
	}
	b := &Backend{
		funcs:       f,
		glver:       ver,
		gles:        gles,
		texUnits:    f.GetInteger(gl.MAX_COMBINED_TEXTURE_UNITS),
		uniBindings: f.GetInteger(gl.MAX_UNIFORM_BUFFER_BINDINGS),
	}
	if b.texUnits < minTextureUnits {
		b.texUnits = minTextureUnits
	}
	if b.uniBindings < minUniformBufferBindings {
		b.uniBindings = minUniformBufferBindings
	}
	b.glstate = newGLState(b.texUnits, b.uniBindings)
	driver.Logger().Debug("opengl backend",
		"version", glVer,
		"renderer", f.GetString(gl.RENDERER),
		"es", gles,
		"texture_units", b.texUnits,
		"uniform_buffer_bindings", b.uniBindings)
	return b, nil
}

// Reset forgets the shadow state. The next call of every setter reaches
// GL.
func (b *Backend) Reset() {
	b.glstate = newGLState(b.texUnits, b.uniBindings)
	driver.Logger().Debug("opengl state reset")
}

func (b *Backend) BindFramebuffer(fbo driver.Framebuffer) {
	b.glstate.bindFramebuffer(b.funcs, gl.FRAMEBUFFER, fbo.(*Framebuffer).Obj)
}

func (b *Backend) Viewport(x, y, width, height int) {
	b.glstate.setViewport(b.funcs, x, y, width, height)
}

// Clear clears the color and depth attachments. The depth mask applies
// to clears, so depth writes are enabled for the clear and a disabled
// mask is restored afterwards.
func (b *Backend) Clear(colR, colG, colB, colA float32) {
	s := &b.glstate
	masked := s.known&knowDepthMask != 0 && !s.depthMask
	s.setClearColor(b.funcs, colR, colG, colB, colA)
	s.setClearDepth(b.funcs, 1)
	s.setDepthMask(b.funcs, true)
	b.funcs.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	if masked {
		s.setDepthMask(b.funcs, false)
	}
}

func (b *Backend) BindTexture(unit int, t driver.Texture) {
	tex := t.(*Texture)
	b.glstate.bindTexture(b.funcs, unit, toGLTextureTarget(tex.Tgt), tex.Obj)
}

func (b *Backend) BindUniformBuffer(binding int, buf driver.Buffer) {
	b.glstate.bindBufferBase(b.funcs, gl.UNIFORM_BUFFER, binding, buf.(*Buffer).Obj)
}

func (b *Backend) BindProgram(prog driver.Program) {
	b.glstate.useProgram(b.funcs, prog.(*Program).Obj)
}

func (b *Backend) SetBlend(enable bool) {
	b.glstate.set(b.funcs, gl.BLEND, enable)
}

func (b *Backend) BlendEquation(eq render.Equation) {
	e := toGLBlendEquation(eq)
	b.glstate.setBlendEquationSeparate(b.funcs, e, e)
}

func (b *Backend) BlendFunc(sfactor, dfactor render.Factor) {
	src, dst := toGLBlendFactor(sfactor), toGLBlendFactor(dfactor)
	b.glstate.setBlendFuncSeparate(b.funcs, src, dst, src, dst)
}

func (b *Backend) BlendEquationSeparate(rgb, alpha render.Equation) {
	b.glstate.setBlendEquationSeparate(b.funcs, toGLBlendEquation(rgb), toGLBlendEquation(alpha))
}

func (b *Backend) BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha render.Factor) {
	b.glstate.setBlendFuncSeparate(b.funcs,
		toGLBlendFactor(srcRGB), toGLBlendFactor(dstRGB),
		toGLBlendFactor(srcAlpha), toGLBlendFactor(dstAlpha))
}

func (b *Backend) SetDepthTest(enable bool) {
	b.glstate.set(b.funcs, gl.DEPTH_TEST, enable)
}

func (b *Backend) DepthFunc(c render.Comparison) {
	b.glstate.setDepthFunc(b.funcs, toGLDepthFunc(c))
}

func (b *Backend) DepthMask(mask bool) {
	b.glstate.setDepthMask(b.funcs, mask)
}

func (b *Backend) SetFaceCulling(enable bool) {
	b.glstate.set(b.funcs, gl.CULL_FACE, enable)
}

func (b *Backend) CullFace(order render.FaceCullingOrder, mode render.FaceCullingMode) {
	b.glstate.setFrontFace(b.funcs, toGLFrontFace(order))
	b.glstate.setCullFace(b.funcs, toGLCullFace(mode))
}

func (b *Backend) BindVertexArray(v driver.VertexArray) {
	b.glstate.bindVertexArray(b.funcs, v.(*VertexArray).Obj)
}

// RasterizationSize sets the line width and, on desktop OpenGL, the
// point size. OpenGL ES programs set gl_PointSize instead.
func (b *Backend) RasterizationSize(size float32) {
	if size <= 0 {
		panic("non-positive rasterization size")
	}
	if !b.gles {
		b.glstate.setPointSize(b.funcs, size)
	}
	b.glstate.setLineWidth(b.funcs, size)
}

func (b *Backend) DrawArrays(mode driver.DrawMode, first, count, instances int) {
	m := toGLDrawMode(mode)
	if instances > 1 {
		b.funcs.DrawArraysInstanced(m, first, count, instances)
	} else {
		b.funcs.DrawArrays(m, first, count)
	}
}

// DrawElements draws with 32-bit indices.
func (b *Backend) DrawElements(mode driver.DrawMode, count, instances int) {
	m := toGLDrawMode(mode)
	if instances > 1 {
		b.funcs.DrawElementsInstanced(m, count, gl.UNSIGNED_INT, 0, instances)
	} else {
		b.funcs.DrawElements(m, count, gl.UNSIGNED_INT, 0)
	}
}

// Err returns the first pending GL error, and discards the rest.
func (b *Backend) Err() error {
	code := b.funcs.GetError()
	if code == gl.NO_ERROR {
		return nil
	}
	for i := 0; i < maxPendingErrors; i++ {
		if b.funcs.GetError() == gl.NO_ERROR {
			break
		}
	}
	var err error = GLError(code)
	if code == gl.CONTEXT_LOST {
		err = driver.ErrContextLost
	}
	driver.Logger().Warn("opengl error", "err", err)
	return err
}

func (e GLError) Error() string {
	var name string
	switch e {
	case gl.INVALID_ENUM:
		name = "invalid enum"
	case gl.INVALID_VALUE:
		name = "invalid value"
	case gl.INVALID_OPERATION:
		name = "invalid operation"
	case gl.INVALID_FRAMEBUFFER_OP:
		name = "invalid framebuffer operation"
	case gl.OUT_OF_MEMORY:
		name = "out of memory"
	default:
		return fmt.Sprintf("opengl: error %#x", uint(e))
	}
	return fmt.Sprintf("opengl: %s (%#x)", name, uint(e))
}
