// SPDX-License-Identifier: Unlicense OR MIT

// Package render describes the fixed-function state a GPU applies
// while rasterizing: blending, depth testing, depth writes and face
// culling.
//
// A State is a plain value. It can be built, compared with == and
// cached without a GPU context; applying it to a device is the job of
// the driver package.
package render

// State is the fixed-function configuration of a draw.
//
// The zero State disables every toggle and writes depth; use
// DefaultState for the usual starting point. The Set and Disable
// methods return modified copies and never change the receiver.
type State struct {
	blending    BlendingMode
	hasBlending bool

	depthTest    Comparison
	hasDepthTest bool

	depthWrite DepthWrite

	faceCulling    FaceCulling
	hasFaceCulling bool
}

// DefaultState returns a State without blending, with a Less depth
// test, depth writes enabled and face culling disabled.
func DefaultState() State {
	return State{
		depthTest:    Less,
		hasDepthTest: true,
		depthWrite:   DepthWriteOn,
	}
}

// SetBlending enables blending of every channel with b.
func (s State) SetBlending(b Blending) State {
	return s.SetBlendingMode(Combined(b))
}

// SetBlendingSeparate enables blending with independent RGB and alpha
// configurations.
func (s State) SetBlendingSeparate(rgb, alpha Blending) State {
	return s.SetBlendingMode(SeparateBlending(rgb, alpha))
}

// SetBlendingMode enables blending with m.
func (s State) SetBlendingMode(m BlendingMode) State {
	s.blending = m
	s.hasBlending = true
	return s
}

// DisableBlending turns blending off.
func (s State) DisableBlending() State {
	s.blending = BlendingMode{}
	s.hasBlending = false
	return s
}

// Blending returns the blending mode and whether blending is enabled.
func (s State) Blending() (BlendingMode, bool) {
	return s.blending, s.hasBlending
}

// SetDepthTest enables depth testing with comparison c.
func (s State) SetDepthTest(c Comparison) State {
	s.depthTest = c
	s.hasDepthTest = true
	return s
}

// DisableDepthTest turns depth testing off.
func (s State) DisableDepthTest() State {
	s.depthTest = 0
	s.hasDepthTest = false
	return s
}

// DepthTest returns the depth comparison and whether depth testing is
// enabled.
func (s State) DepthTest() (Comparison, bool) {
	return s.depthTest, s.hasDepthTest
}

func (s State) SetDepthWrite(w DepthWrite) State {
	s.depthWrite = w
	return s
}

func (s State) DepthWrite() DepthWrite {
	return s.depthWrite
}

// SetFaceCulling enables face culling with fc.
func (s State) SetFaceCulling(fc FaceCulling) State {
	s.faceCulling = fc
	s.hasFaceCulling = true
	return s
}

// DisableFaceCulling turns face culling off.
func (s State) DisableFaceCulling() State {
	s.faceCulling = FaceCulling{}
	s.hasFaceCulling = false
	return s
}

// FaceCulling returns the culling configuration and whether culling
// is enabled.
func (s State) FaceCulling() (FaceCulling, bool) {
	return s.faceCulling, s.hasFaceCulling
}
