// SPDX-License-Identifier: Unlicense OR MIT

package opengl

import (
	"encoding/binary"
	"math"

	"gioui.org/shader"

	"github.com/lumengfx/lumen/driver"
	"github.com/lumengfx/lumen/internal/gl"
)

// Framebuffer is an existing GL framebuffer object of size W×H.
type Framebuffer struct {
	Obj  gl.Framebuffer
	W, H int
}

// Texture is an existing GL texture object bound to Tgt.
type Texture struct {
	Obj gl.Texture
	Tgt driver.TextureTarget
}

// Buffer is an existing GL buffer object of Len bytes.
type Buffer struct {
	Obj gl.Buffer
	Len int
}

// VertexArray is an existing GL vertex array object.
type VertexArray struct {
	Obj gl.VertexArray
}

// Program is an existing, linked GL program. Create it with
// Backend.WrapProgram.
type Program struct {
	Obj     gl.Program
	backend *Backend
	locs    map[string]gl.Uniform
}

var (
	_ driver.Framebuffer    = (*Framebuffer)(nil)
	_ driver.Texture        = (*Texture)(nil)
	_ driver.Buffer         = (*Buffer)(nil)
	_ driver.VertexArray    = (*VertexArray)(nil)
	_ driver.UniformProgram = (*Program)(nil)
)

// DefaultFramebuffer returns the framebuffer of the window system,
// object 0.
func DefaultFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{W: width, H: height}
}

func (f *Framebuffer) Width() int  { return f.W }
func (f *Framebuffer) Height() int { return f.H }

func (t *Texture) Target() driver.TextureTarget { return t.Tgt }

func (b *Buffer) Size() int { return b.Len }

func (a *VertexArray) Valid() bool { return a.Obj.Valid() }

// WrapProgram returns a Program for the linked program obj.
func (b *Backend) WrapProgram(obj gl.Program) *Program {
	return &Program{
		Obj:     obj,
		backend: b,
		locs:    make(map[string]gl.Uniform),
	}
}

func (p *Program) Valid() bool { return p.Obj.Valid() }

// SetUniform makes p the current program and uploads the uniform
// described by loc. Values are read as little-endian 32-bit words
// starting at data[loc.Offset]. Uniforms the linker removed are
// skipped.
func (p *Program) SetUniform(loc shader.UniformLocation, data []byte) {
	b := p.backend
	u, ok := p.locs[loc.Name]
	if !ok {
		u = b.funcs.GetUniformLocation(p.Obj, loc.Name)
		p.locs[loc.Name] = u
		if !u.Valid() {
			driver.Logger().Debug("inactive uniform", "name", loc.Name)
		}
	}
	if !u.Valid() {
		return
	}
	b.glstate.useProgram(b.funcs, p.Obj)
	data = data[loc.Offset : loc.Offset+loc.Size*4]
	word := func(i int) uint32 {
		return binary.LittleEndian.Uint32(data[i*4:])
	}
	float := func(i int) float32 {
		return math.Float32frombits(word(i))
	}
	integer := func(i int) int {
		return int(int32(word(i)))
	}
	f := b.funcs
	switch {
	case loc.Type == shader.DataTypeFloat && loc.Size == 1:
		f.Uniform1f(u, float(0))
	case loc.Type == shader.DataTypeFloat && loc.Size == 2:
		f.Uniform2f(u, float(0), float(1))
	case loc.Type == shader.DataTypeFloat && loc.Size == 3:
		f.Uniform3f(u, float(0), float(1), float(2))
	case loc.Type == shader.DataTypeFloat && loc.Size == 4:
		f.Uniform4f(u, float(0), float(1), float(2), float(3))
	case loc.Type == shader.DataTypeInt && loc.Size == 1:
		f.Uniform1i(u, integer(0))
	case loc.Type == shader.DataTypeInt && loc.Size == 2:
		f.Uniform2i(u, integer(0), integer(1))
	case loc.Type == shader.DataTypeInt && loc.Size == 3:
		f.Uniform3i(u, integer(0), integer(1), integer(2))
	case loc.Type == shader.DataTypeInt && loc.Size == 4:
		f.Uniform4i(u, integer(0), integer(1), integer(2), integer(3))
	default:
		panic("unsupported uniform data type or size")
	}
}
