// SPDX-License-Identifier: Unlicense OR MIT

package render

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// off is the scalar disabling an optional toggle in a document.
const off = "off"

// stateDoc holds the raw toggles of a document. Absent keys leave
// their node with a zero Kind.
type stateDoc struct {
	Blending    yaml.Node   `yaml:"blending"`
	DepthTest   yaml.Node   `yaml:"depth_test"`
	DepthWrite  *DepthWrite `yaml:"depth_write"`
	FaceCulling yaml.Node   `yaml:"face_culling"`
}

type blendingDoc struct {
	Equation *Equation `yaml:"equation"`
	Src      *Factor   `yaml:"src"`
	Dst      *Factor   `yaml:"dst"`
	RGB      *Blending `yaml:"rgb"`
	Alpha    *Blending `yaml:"alpha"`
}

type separateDoc struct {
	RGB   Blending `yaml:"rgb"`
	Alpha Blending `yaml:"alpha"`
}

type stateOut struct {
	Blending    interface{} `yaml:"blending"`
	DepthTest   interface{} `yaml:"depth_test"`
	DepthWrite  DepthWrite  `yaml:"depth_write"`
	FaceCulling interface{} `yaml:"face_culling"`
}

// ParseState decodes a YAML render state document. Keys missing from
// the document keep their DefaultState value.
func ParseState(data []byte) (State, error) {
	s := DefaultState()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return State{}, fmt.Errorf("render: parsing state: %w", err)
	}
	return s, nil
}

// MarshalYAML implements yaml.Marshaler. Disabled toggles are written
// as "off".
func (s State) MarshalYAML() (interface{}, error) {
	out := stateOut{
		Blending:    off,
		DepthTest:   off,
		DepthWrite:  s.depthWrite,
		FaceCulling: off,
	}
	if m, ok := s.Blending(); ok {
		if m.Separate {
			out.Blending = separateDoc{RGB: m.RGB, Alpha: m.Alpha}
		} else {
			out.Blending = m.RGB
		}
	}
	if c, ok := s.DepthTest(); ok {
		out.DepthTest = c
	}
	if fc, ok := s.FaceCulling(); ok {
		out.FaceCulling = fc
	}
	return out, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *State) UnmarshalYAML(value *yaml.Node) error {
	var doc stateDoc
	if err := value.Decode(&doc); err != nil {
		return err
	}
	st := DefaultState()
	if n := &doc.Blending; n.Kind != 0 {
		if isOff(n) {
			st = st.DisableBlending()
		} else {
			m, err := decodeBlending(n)
			if err != nil {
				return err
			}
			st = st.SetBlendingMode(m)
		}
	}
	if n := &doc.DepthTest; n.Kind != 0 {
		if isOff(n) {
			st = st.DisableDepthTest()
		} else {
			var c Comparison
			if err := n.Decode(&c); err != nil {
				return err
			}
			st = st.SetDepthTest(c)
		}
	}
	if doc.DepthWrite != nil {
		st = st.SetDepthWrite(*doc.DepthWrite)
	}
	if n := &doc.FaceCulling; n.Kind != 0 {
		if isOff(n) {
			st = st.DisableFaceCulling()
		} else {
			fc := DefaultFaceCulling()
			if err := n.Decode(&fc); err != nil {
				return err
			}
			st = st.SetFaceCulling(fc)
		}
	}
	*s = st
	return nil
}

func isOff(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.Value == off
}

func decodeBlending(n *yaml.Node) (BlendingMode, error) {
	if n.Kind != yaml.MappingNode {
		return BlendingMode{}, fmt.Errorf("render: line %d: blending must be a mapping or %q", n.Line, off)
	}
	var doc blendingDoc
	if err := n.Decode(&doc); err != nil {
		return BlendingMode{}, err
	}
	if doc.RGB != nil || doc.Alpha != nil {
		if doc.RGB == nil || doc.Alpha == nil {
			return BlendingMode{}, fmt.Errorf("render: line %d: separate blending needs both rgb and alpha", n.Line)
		}
		if doc.Equation != nil || doc.Src != nil || doc.Dst != nil {
			return BlendingMode{}, fmt.Errorf("render: line %d: separate blending mixed with combined fields", n.Line)
		}
		return SeparateBlending(*doc.RGB, *doc.Alpha), nil
	}
	if doc.Equation == nil || doc.Src == nil || doc.Dst == nil {
		return BlendingMode{}, errors.New("render: blending needs equation, src and dst")
	}
	return Combined(Blending{Equation: *doc.Equation, Src: *doc.Src, Dst: *doc.Dst}), nil
}
