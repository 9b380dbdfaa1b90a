// SPDX-License-Identifier: Unlicense OR MIT

// Package driver defines the device abstraction pipelines render
// through.
//
// A Device is the explicit stand-in for the implicit, process-wide
// state of a graphics context: the bound framebuffer, program,
// texture units, uniform buffer bindings and fixed-function toggles.
// Passing it to every operation keeps that state out of globals and
// lets tests substitute a recording device.
package driver

import (
	"errors"
	"strconv"

	"gioui.org/shader"

	"github.com/lumengfx/lumen/render"
)

// Device represents the abstraction of underlying GPU APIs such as
// OpenGL.
type Device interface {
	// BindFramebuffer makes f the render target.
	BindFramebuffer(f Framebuffer)
	Viewport(x, y, width, height int)
	// Clear clears the color and depth attachments of the bound
	// framebuffer. The color is passed to the device unclamped.
	Clear(r, g, b, a float32)
	// BindTexture binds t to texture unit unit using the target
	// reported by t.
	BindTexture(unit int, t Texture)
	// BindUniformBuffer binds b to uniform block binding point
	// binding.
	BindUniformBuffer(binding int, b Buffer)
	BindProgram(p Program)

	SetBlend(enable bool)
	BlendEquation(eq render.Equation)
	BlendFunc(src, dst render.Factor)
	BlendEquationSeparate(rgb, alpha render.Equation)
	BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha render.Factor)
	SetDepthTest(enable bool)
	DepthFunc(c render.Comparison)
	DepthMask(mask bool)
	SetFaceCulling(enable bool)
	CullFace(order render.FaceCullingOrder, mode render.FaceCullingMode)

	BindVertexArray(v VertexArray)
	// RasterizationSize sets the point size and line width used by
	// point and line primitives.
	RasterizationSize(size float32)
	// DrawArrays draws count vertices starting at first, instances
	// times. An instance count below 2 draws once without
	// instancing.
	DrawArrays(mode DrawMode, first, count, instances int)
	// DrawElements draws count indices from the bound element buffer
	// of the bound vertex array.
	DrawElements(mode DrawMode, count, instances int)

	// Err reports the first device error raised since the last call,
	// if any.
	Err() error
}

// Framebuffer is a render target of a fixed size.
type Framebuffer interface {
	Width() int
	Height() int
}

// Texture is a bindable texture object.
type Texture interface {
	Target() TextureTarget
}

// Buffer is a bindable buffer object.
type Buffer interface {
	// Size is the buffer size in bytes.
	Size() int
}

// Program is a linked shader program.
type Program interface {
	// Valid reports whether the program refers to a device object.
	Valid() bool
}

// UniformProgram is implemented by programs accepting uniform values
// directly, outside of uniform buffers.
type UniformProgram interface {
	Program
	// SetUniform uploads the value described by loc from data. The
	// value starts at data[loc.Offset].
	SetUniform(loc shader.UniformLocation, data []byte)
}

// VertexArray is a bindable vertex array object.
type VertexArray interface {
	Valid() bool
}

type TextureTarget uint8

type DrawMode uint8

const (
	TextureTarget1D TextureTarget = iota
	TextureTarget2D
	TextureTarget3D
	TextureTargetCube
	TextureTarget1DArray
	TextureTarget2DArray
	TextureTargetCubeArray
)

const (
	DrawModePoints DrawMode = iota
	DrawModeLines
	DrawModeLineStrip
	DrawModeTriangles
	DrawModeTriangleStrip
	DrawModeTriangleFan
)

// ErrContextLost is returned when the underlying context was lost,
// for example after a GPU reset. Every object of the context is gone.
var ErrContextLost = errors.New("driver: context lost")

func (t TextureTarget) String() string {
	switch t {
	case TextureTarget1D:
		return "1d"
	case TextureTarget2D:
		return "2d"
	case TextureTarget3D:
		return "3d"
	case TextureTargetCube:
		return "cube"
	case TextureTarget1DArray:
		return "1d-array"
	case TextureTarget2DArray:
		return "2d-array"
	case TextureTargetCubeArray:
		return "cube-array"
	default:
		return "TextureTarget(" + strconv.Itoa(int(t)) + ")"
	}
}

func (m DrawMode) String() string {
	switch m {
	case DrawModePoints:
		return "points"
	case DrawModeLines:
		return "lines"
	case DrawModeLineStrip:
		return "line-strip"
	case DrawModeTriangles:
		return "triangles"
	case DrawModeTriangleStrip:
		return "triangle-strip"
	case DrawModeTriangleFan:
		return "triangle-fan"
	default:
		return "DrawMode(" + strconv.Itoa(int(m)) + ")"
	}
}
