// SPDX-License-Identifier: Unlicense OR MIT

package driver

import "github.com/lumengfx/lumen/render"

// ApplyState configures the fixed-function state of d to match s.
//
// Blending is set with the separate RGB and alpha entry points only
// when s uses separate blending. Depth writes are configured even with
// the depth test disabled; the mask is independent of the test.
func ApplyState(d Device, s render.State) {
	if m, ok := s.Blending(); ok {
		d.SetBlend(true)
		if m.Separate {
			d.BlendEquationSeparate(m.RGB.Equation, m.Alpha.Equation)
			d.BlendFuncSeparate(m.RGB.Src, m.RGB.Dst, m.Alpha.Src, m.Alpha.Dst)
		} else {
			d.BlendEquation(m.RGB.Equation)
			d.BlendFunc(m.RGB.Src, m.RGB.Dst)
		}
	} else {
		d.SetBlend(false)
	}
	if c, ok := s.DepthTest(); ok {
		d.SetDepthTest(true)
		d.DepthFunc(c)
	} else {
		d.SetDepthTest(false)
	}
	d.DepthMask(s.DepthWrite().Enabled())
	if fc, ok := s.FaceCulling(); ok {
		d.SetFaceCulling(true)
		d.CullFace(fc.Order, fc.Mode)
	} else {
		d.SetFaceCulling(false)
	}
}
