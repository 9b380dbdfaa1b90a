// SPDX-License-Identifier: Unlicense OR MIT

package driver_test

import (
	"reflect"
	"testing"

	"github.com/lumengfx/lumen/driver"
	"github.com/lumengfx/lumen/internal/rendertest"
	"github.com/lumengfx/lumen/render"
)

func TestApplyDefaultState(t *testing.T) {
	d := new(rendertest.Device)
	driver.ApplyState(d, render.DefaultState())
	exp := []string{
		"SetBlend(false)",
		"SetDepthTest(true)",
		"DepthFunc(less)",
		"DepthMask(true)",
		"SetFaceCulling(false)",
	}
	if !reflect.DeepEqual(d.Calls, exp) {
		t.Errorf("got calls %q, expected %q", d.Calls, exp)
	}
}

func TestApplyCombinedBlending(t *testing.T) {
	d := new(rendertest.Device)
	s := render.DefaultState().
		SetBlending(render.Blending{Equation: render.Additive, Src: render.One, Dst: render.Zero}).
		DisableDepthTest().
		SetDepthWrite(render.DepthWriteOff).
		SetFaceCulling(render.DefaultFaceCulling())
	driver.ApplyState(d, s)
	exp := []string{
		"SetBlend(true)",
		"BlendEquation(additive)",
		"BlendFunc(one, zero)",
		"SetDepthTest(false)",
		"DepthMask(false)",
		"SetFaceCulling(true)",
		"CullFace(ccw, back)",
	}
	if !reflect.DeepEqual(d.Calls, exp) {
		t.Errorf("got calls %q, expected %q", d.Calls, exp)
	}
}

func TestApplySeparateBlending(t *testing.T) {
	d := new(rendertest.Device)
	s := render.DefaultState().SetBlendingSeparate(
		render.Blending{Equation: render.Additive, Src: render.SrcAlpha, Dst: render.SrcAlphaComplement},
		render.Blending{Equation: render.Max, Src: render.One, Dst: render.One},
	)
	driver.ApplyState(d, s)
	exp := []string{
		"SetBlend(true)",
		"BlendEquationSeparate(additive, max)",
		"BlendFuncSeparate(src-alpha, src-alpha-complement, one, one)",
	}
	if got := d.Calls[:len(exp)]; !reflect.DeepEqual(got, exp) {
		t.Errorf("got calls %q, expected %q", got, exp)
	}
	if n := d.Count("BlendEquation("); n != 0 {
		t.Errorf("separate blending issued %d combined equation calls", n)
	}
}
