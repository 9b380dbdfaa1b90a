// SPDX-License-Identifier: Unlicense OR MIT

package opengl

import "github.com/lumengfx/lumen/internal/gl"

// glState shadows the GL context state the backend changes. A value is
// compared against the shadow copy only once it is known; the zero
// glState knows nothing and every setter reaches GL.
type glState struct {
	known stateBits

	drawFBO   gl.Framebuffer
	prog      gl.Program
	vertArray gl.VertexArray
	texUnits  struct {
		active gl.Enum
		binds  []texBinding
	}
	uniBufs []bufBinding
	blend   struct {
		enable         bool
		eqRGB, eqA     gl.Enum
		srcRGB, dstRGB gl.Enum
		srcA, dstA     gl.Enum
	}
	depthTest  bool
	depthFunc  gl.Enum
	depthMask  bool
	cull       bool
	cullFace   gl.Enum
	frontFace  gl.Enum
	clearColor [4]float32
	clearDepth float32
	viewport   [4]int
	pointSize  float32
	lineWidth  float32
}

type texBinding struct {
	known  bool
	target gl.Enum
	tex    gl.Texture
}

type bufBinding struct {
	known bool
	buf   gl.Buffer
}

type stateBits uint32

const (
	knowDrawFBO stateBits = 1 << iota
	knowProg
	knowVertArray
	knowActiveTexture
	knowBlend
	knowBlendEquation
	knowBlendFunc
	knowDepthTest
	knowDepthFunc
	knowDepthMask
	knowCull
	knowCullFace
	knowFrontFace
	knowClearColor
	knowClearDepth
	knowViewport
	knowPointSize
	knowLineWidth
)

func newGLState(texUnits, uniBindings int) glState {
	var s glState
	s.texUnits.binds = make([]texBinding, texUnits)
	s.uniBufs = make([]bufBinding, uniBindings)
	return s
}

// has reports whether bit is known, and marks it known.
func (s *glState) has(bit stateBits) bool {
	k := s.known&bit != 0
	s.known |= bit
	return k
}

func (s *glState) activeTexture(f Functions, unit gl.Enum) {
	if !s.has(knowActiveTexture) || unit != s.texUnits.active {
		f.ActiveTexture(unit)
		s.texUnits.active = unit
	}
}

func (s *glState) bindTexture(f Functions, unit int, target gl.Enum, t gl.Texture) {
	if unit < 0 || unit >= len(s.texUnits.binds) {
		panic("texture unit out of range")
	}
	b := &s.texUnits.binds[unit]
	if b.known && b.target == target && t.Equal(b.tex) {
		return
	}
	s.activeTexture(f, gl.TEXTURE0+gl.Enum(unit))
	f.BindTexture(target, t)
	*b = texBinding{known: true, target: target, tex: t}
}

func (s *glState) bindVertexArray(f Functions, a gl.VertexArray) {
	if !s.has(knowVertArray) || !a.Equal(s.vertArray) {
		f.BindVertexArray(a)
		s.vertArray = a
	}
}

func (s *glState) useProgram(f Functions, p gl.Program) {
	if !s.has(knowProg) || !p.Equal(s.prog) {
		f.UseProgram(p)
		s.prog = p
	}
}

func (s *glState) bindFramebuffer(f Functions, target gl.Enum, fbo gl.Framebuffer) {
	switch target {
	case gl.FRAMEBUFFER:
		if s.has(knowDrawFBO) && fbo.Equal(s.drawFBO) {
			return
		}
		s.drawFBO = fbo
	default:
		panic("unknown target")
	}
	f.BindFramebuffer(target, fbo)
}

func (s *glState) bindBufferBase(f Functions, target gl.Enum, idx int, buf gl.Buffer) {
	switch target {
	case gl.UNIFORM_BUFFER:
		if idx < 0 || idx >= len(s.uniBufs) {
			panic("uniform buffer binding out of range")
		}
		b := &s.uniBufs[idx]
		if b.known && buf.Equal(b.buf) {
			return
		}
		*b = bufBinding{known: true, buf: buf}
	default:
		panic("unknown buffer target")
	}
	f.BindBufferBase(target, idx, buf)
}

func (s *glState) setClearDepth(f Functions, d float32) {
	if !s.has(knowClearDepth) || d != s.clearDepth {
		f.ClearDepthf(d)
		s.clearDepth = d
	}
}

func (s *glState) setClearColor(f Functions, r, g, b, a float32) {
	col := [4]float32{r, g, b, a}
	if !s.has(knowClearColor) || col != s.clearColor {
		f.ClearColor(r, g, b, a)
		s.clearColor = col
	}
}

func (s *glState) setViewport(f Functions, x, y, width, height int) {
	view := [4]int{x, y, width, height}
	if !s.has(knowViewport) || view != s.viewport {
		f.Viewport(x, y, width, height)
		s.viewport = view
	}
}

func (s *glState) setDepthFunc(f Functions, df gl.Enum) {
	if !s.has(knowDepthFunc) || df != s.depthFunc {
		f.DepthFunc(df)
		s.depthFunc = df
	}
}

func (s *glState) setBlendEquationSeparate(f Functions, eqRGB, eqA gl.Enum) {
	if !s.has(knowBlendEquation) || eqRGB != s.blend.eqRGB || eqA != s.blend.eqA {
		s.blend.eqRGB = eqRGB
		s.blend.eqA = eqA
		f.BlendEquationSeparate(eqRGB, eqA)
	}
}

func (s *glState) setBlendFuncSeparate(f Functions, srcRGB, dstRGB, srcA, dstA gl.Enum) {
	if !s.has(knowBlendFunc) || srcRGB != s.blend.srcRGB || dstRGB != s.blend.dstRGB || srcA != s.blend.srcA || dstA != s.blend.dstA {
		s.blend.srcRGB = srcRGB
		s.blend.dstRGB = dstRGB
		s.blend.srcA = srcA
		s.blend.dstA = dstA
		f.BlendFuncSeparate(srcRGB, dstRGB, srcA, dstA)
	}
}

func (s *glState) setDepthMask(f Functions, enable bool) {
	if !s.has(knowDepthMask) || enable != s.depthMask {
		f.DepthMask(enable)
		s.depthMask = enable
	}
}

func (s *glState) setCullFace(f Functions, mode gl.Enum) {
	if !s.has(knowCullFace) || mode != s.cullFace {
		f.CullFace(mode)
		s.cullFace = mode
	}
}

func (s *glState) setFrontFace(f Functions, mode gl.Enum) {
	if !s.has(knowFrontFace) || mode != s.frontFace {
		f.FrontFace(mode)
		s.frontFace = mode
	}
}

func (s *glState) setPointSize(f Functions, size float32) {
	if !s.has(knowPointSize) || size != s.pointSize {
		f.PointSize(size)
		s.pointSize = size
	}
}

func (s *glState) setLineWidth(f Functions, width float32) {
	if !s.has(knowLineWidth) || width != s.lineWidth {
		f.LineWidth(width)
		s.lineWidth = width
	}
}

func (s *glState) set(f Functions, target gl.Enum, enable bool) {
	switch target {
	case gl.BLEND:
		if s.has(knowBlend) && enable == s.blend.enable {
			return
		}
		s.blend.enable = enable
	case gl.DEPTH_TEST:
		if s.has(knowDepthTest) && enable == s.depthTest {
			return
		}
		s.depthTest = enable
	case gl.CULL_FACE:
		if s.has(knowCull) && enable == s.cull {
			return
		}
		s.cull = enable
	default:
		panic("unknown enable")
	}
	if enable {
		f.Enable(target)
	} else {
		f.Disable(target)
	}
}
