// SPDX-License-Identifier: Unlicense OR MIT

package opengl

import (
	"github.com/lumengfx/lumen/driver"
	"github.com/lumengfx/lumen/internal/gl"
	"github.com/lumengfx/lumen/render"
)

func toGLBlendEquation(e render.Equation) gl.Enum {
	switch e {
	case render.Additive:
		return gl.FUNC_ADD
	case render.Subtract:
		return gl.FUNC_SUBTRACT
	case render.ReverseSubtract:
		return gl.FUNC_REVERSE_SUBTRACT
	case render.Min:
		return gl.MIN
	case render.Max:
		return gl.MAX
	default:
		panic("unsupported blend equation")
	}
}

func toGLBlendFactor(f render.Factor) gl.Enum {
	switch f {
	case render.One:
		return gl.ONE
	case render.Zero:
		return gl.ZERO
	case render.SrcColor:
		return gl.SRC_COLOR
	case render.SrcColorComplement:
		return gl.ONE_MINUS_SRC_COLOR
	case render.DstColor:
		return gl.DST_COLOR
	case render.DstColorComplement:
		return gl.ONE_MINUS_DST_COLOR
	case render.SrcAlpha:
		return gl.SRC_ALPHA
	case render.SrcAlphaComplement:
		return gl.ONE_MINUS_SRC_ALPHA
	case render.DstAlpha:
		return gl.DST_ALPHA
	case render.DstAlphaComplement:
		return gl.ONE_MINUS_DST_ALPHA
	case render.SrcAlphaSaturate:
		return gl.SRC_ALPHA_SATURATE
	default:
		panic("unsupported blend factor")
	}
}

func toGLDepthFunc(c render.Comparison) gl.Enum {
	switch c {
	case render.Never:
		return gl.NEVER
	case render.Always:
		return gl.ALWAYS
	case render.Equal:
		return gl.EQUAL
	case render.NotEqual:
		return gl.NOTEQUAL
	case render.Less:
		return gl.LESS
	case render.LessOrEqual:
		return gl.LEQUAL
	case render.Greater:
		return gl.GREATER
	case render.GreaterOrEqual:
		return gl.GEQUAL
	default:
		panic("unsupported depth func")
	}
}

func toGLCullFace(m render.FaceCullingMode) gl.Enum {
	switch m {
	case render.CullFront:
		return gl.FRONT
	case render.CullBack:
		return gl.BACK
	case render.CullFrontAndBack:
		return gl.FRONT_AND_BACK
	default:
		panic("unsupported cull mode")
	}
}

func toGLFrontFace(o render.FaceCullingOrder) gl.Enum {
	switch o {
	case render.CW:
		return gl.CW
	case render.CCW:
		return gl.CCW
	default:
		panic("unsupported winding order")
	}
}

func toGLDrawMode(mode driver.DrawMode) gl.Enum {
	switch mode {
	case driver.DrawModePoints:
		return gl.POINTS
	case driver.DrawModeLines:
		return gl.LINES
	case driver.DrawModeLineStrip:
		return gl.LINE_STRIP
	case driver.DrawModeTriangles:
		return gl.TRIANGLES
	case driver.DrawModeTriangleStrip:
		return gl.TRIANGLE_STRIP
	case driver.DrawModeTriangleFan:
		return gl.TRIANGLE_FAN
	default:
		panic("unsupported draw mode")
	}
}

func toGLTextureTarget(t driver.TextureTarget) gl.Enum {
	switch t {
	case driver.TextureTarget1D:
		return gl.TEXTURE_1D
	case driver.TextureTarget2D:
		return gl.TEXTURE_2D
	case driver.TextureTarget3D:
		return gl.TEXTURE_3D
	case driver.TextureTargetCube:
		return gl.TEXTURE_CUBE_MAP
	case driver.TextureTarget1DArray:
		return gl.TEXTURE_1D_ARRAY
	case driver.TextureTarget2DArray:
		return gl.TEXTURE_2D_ARRAY
	case driver.TextureTargetCubeArray:
		return gl.TEXTURE_CUBE_MAP_ARRAY
	default:
		panic("unsupported texture target")
	}
}
