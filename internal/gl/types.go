// SPDX-License-Identifier: Unlicense OR MIT

package gl

// Object handles. The zero value of each is the GL null object, except
// for Uniform where -1 marks a missing location.
type (
	Buffer      struct{ V uint }
	Framebuffer struct{ V uint }
	Program     struct{ V uint }
	Texture     struct{ V uint }
	Uniform     struct{ V int }
	VertexArray struct{ V uint }
)

func (b Buffer) Valid() bool {
	return b.V != 0
}

func (t Texture) Valid() bool {
	return t.V != 0
}

func (u Uniform) Valid() bool {
	return u.V != -1
}

func (p Program) Valid() bool {
	return p.V != 0
}

func (a VertexArray) Valid() bool {
	return a.V != 0
}

func (b Buffer) Equal(b2 Buffer) bool {
	return b.V == b2.V
}

func (f Framebuffer) Equal(f2 Framebuffer) bool {
	return f.V == f2.V
}

func (p Program) Equal(p2 Program) bool {
	return p.V == p2.V
}

func (t Texture) Equal(t2 Texture) bool {
	return t.V == t2.V
}

func (u Uniform) Equal(u2 Uniform) bool {
	return u.V == u2.V
}

func (a VertexArray) Equal(a2 VertexArray) bool {
	return a.V == a2.V
}
