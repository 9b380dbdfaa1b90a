// SPDX-License-Identifier: Unlicense OR MIT

package render

import (
	"errors"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestParseStateDefaults(t *testing.T) {
	s, err := ParseState(nil)
	if err != nil {
		t.Fatal(err)
	}
	if s != DefaultState() {
		t.Errorf("got %+v, expected the default state", s)
	}
	s, err = ParseState([]byte("depth_write: off\n"))
	if err != nil {
		t.Fatal(err)
	}
	if exp := DefaultState().SetDepthWrite(DepthWriteOff); s != exp {
		t.Errorf("got %+v, expected %+v", s, exp)
	}
}

func TestParseState(t *testing.T) {
	doc := `
blending:
  equation: additive
  src: src-alpha
  dst: src-alpha-complement
depth_test: greater-or-equal
depth_write: on
face_culling:
  order: cw
`
	s, err := ParseState([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	exp := DefaultState().
		SetBlending(Blending{Equation: Additive, Src: SrcAlpha, Dst: SrcAlphaComplement}).
		SetDepthTest(GreaterOrEqual).
		SetFaceCulling(FaceCulling{Order: CW, Mode: CullBack})
	if s != exp {
		t.Errorf("got %+v, expected %+v", s, exp)
	}
}

func TestParseStateSeparateAndOff(t *testing.T) {
	doc := `
blending:
  rgb: {equation: min, src: one, dst: one}
  alpha: {equation: max, src: zero, dst: dst-alpha}
depth_test: off
face_culling: off
`
	s, err := ParseState([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	exp := DefaultState().
		SetBlendingSeparate(
			Blending{Equation: Min, Src: One, Dst: One},
			Blending{Equation: Max, Src: Zero, Dst: DstAlpha},
		).
		DisableDepthTest()
	if s != exp {
		t.Errorf("got %+v, expected %+v", s, exp)
	}
}

func TestParseStateErrors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		unknown bool
	}{
		{"unknown comparison", "depth_test: sometimes\n", true},
		{"unknown factor", "blending: {equation: additive, src: one, dst: two}\n", true},
		{"unknown depth write", "depth_write: maybe\n", true},
		{"missing factor", "blending: {equation: additive, src: one}\n", false},
		{"half separate", "blending: {rgb: {equation: min, src: one, dst: one}}\n", false},
		{"scalar blending", "blending: on\n", false},
	}
	for _, tt := range tests {
		_, err := ParseState([]byte(tt.doc))
		if err == nil {
			t.Errorf("%s: expected an error", tt.name)
			continue
		}
		if got := errors.Is(err, ErrUnknownName); got != tt.unknown {
			t.Errorf("%s: errors.Is(%v, ErrUnknownName) = %v, expected %v", tt.name, err, got, tt.unknown)
		}
	}
}

func TestStateYAMLRoundTrip(t *testing.T) {
	states := []State{
		DefaultState(),
		DefaultState().DisableDepthTest().SetDepthWrite(DepthWriteOff),
		DefaultState().SetBlending(Blending{Equation: ReverseSubtract, Src: DstColor, Dst: DstColorComplement}),
		DefaultState().SetBlendingSeparate(
			Blending{Equation: Additive, Src: SrcColor, Dst: SrcColorComplement},
			Blending{Equation: Additive, Src: DstAlpha, Dst: DstAlphaComplement},
		),
		DefaultState().SetFaceCulling(FaceCulling{Order: CCW, Mode: CullFront}),
	}
	for _, s := range states {
		data, err := yaml.Marshal(s)
		if err != nil {
			t.Fatal(err)
		}
		got, err := ParseState(data)
		if err != nil {
			t.Fatalf("parsing %q: %v", data, err)
		}
		if got != s {
			t.Errorf("round trip of %q: got %+v, expected %+v", data, got, s)
		}
	}
}

func TestParseStateToggles(t *testing.T) {
	tests := []struct {
		doc string
		exp State
	}{
		{"depth_test: greater\n", DefaultState().SetDepthTest(Greater)},
		{"blending: off\n", DefaultState()},
		{
			"blending: {equation: additive, src: one, dst: zero}\n",
			DefaultState().SetBlending(Blending{Equation: Additive, Src: One, Dst: Zero}),
		},
		{
			"face_culling: {order: cw, mode: front}\n",
			DefaultState().SetFaceCulling(FaceCulling{Order: CW, Mode: CullFront}),
		},
		{"face_culling: off\ndepth_test: off\n", DefaultState().DisableDepthTest()},
	}
	for _, tt := range tests {
		s, err := ParseState([]byte(tt.doc))
		if err != nil {
			t.Errorf("%q: %v", tt.doc, err)
			continue
		}
		if s != tt.exp {
			t.Errorf("%q: got %+v, expected %+v", tt.doc, s, tt.exp)
		}
	}
}
