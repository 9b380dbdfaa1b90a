// SPDX-License-Identifier: Unlicense OR MIT

package render

import "strconv"

// Equation is the formula combining the source and destination
// colors once they are multiplied by their blending factors.
type Equation uint8

// Factor is a blending factor applied to the source or destination
// color before the blending equation runs.
type Factor uint8

// Blending is a blending equation and its source and destination
// factors.
type Blending struct {
	Equation Equation `yaml:"equation"`
	Src      Factor   `yaml:"src"`
	Dst      Factor   `yaml:"dst"`
}

// BlendingMode is either one Blending for all channels or separate
// blendings for the RGB and alpha channels.
type BlendingMode struct {
	RGB   Blending
	Alpha Blending
	// Separate reports whether RGB and Alpha were configured
	// independently. Combined modes carry the same Blending in both.
	Separate bool
}

const (
	// Additive computes src + dst.
	Additive Equation = iota
	// Subtract computes src - dst.
	Subtract
	// ReverseSubtract computes dst - src.
	ReverseSubtract
	// Min computes min(src, dst).
	Min
	// Max computes max(src, dst).
	Max

	equationCount
)

const (
	One Factor = iota
	Zero
	SrcColor
	SrcColorComplement
	DstColor
	DstColorComplement
	SrcAlpha
	SrcAlphaComplement
	DstAlpha
	DstAlphaComplement
	SrcAlphaSaturate

	factorCount
)

var equationNames = [equationCount]string{
	Additive:        "additive",
	Subtract:        "subtract",
	ReverseSubtract: "reverse-subtract",
	Min:             "min",
	Max:             "max",
}

var factorNames = [factorCount]string{
	One:                "one",
	Zero:               "zero",
	SrcColor:           "src-color",
	SrcColorComplement: "src-color-complement",
	DstColor:           "dst-color",
	DstColorComplement: "dst-color-complement",
	SrcAlpha:           "src-alpha",
	SrcAlphaComplement: "src-alpha-complement",
	DstAlpha:           "dst-alpha",
	DstAlphaComplement: "dst-alpha-complement",
	SrcAlphaSaturate:   "src-alpha-saturate",
}

// Equations returns every blending equation in declaration order.
func Equations() []Equation {
	eqs := make([]Equation, equationCount)
	for i := range eqs {
		eqs[i] = Equation(i)
	}
	return eqs
}

// Factors returns every blending factor in declaration order.
func Factors() []Factor {
	fs := make([]Factor, factorCount)
	for i := range fs {
		fs[i] = Factor(i)
	}
	return fs
}

// Combined returns a mode applying b to every channel.
func Combined(b Blending) BlendingMode {
	return BlendingMode{RGB: b, Alpha: b}
}

// SeparateBlending returns a mode blending the RGB and alpha channels
// independently.
func SeparateBlending(rgb, alpha Blending) BlendingMode {
	return BlendingMode{RGB: rgb, Alpha: alpha, Separate: true}
}

func (e Equation) String() string {
	if e >= equationCount {
		return "Equation(" + strconv.Itoa(int(e)) + ")"
	}
	return equationNames[e]
}

func (f Factor) String() string {
	if f >= factorCount {
		return "Factor(" + strconv.Itoa(int(f)) + ")"
	}
	return factorNames[f]
}

func (e Equation) MarshalText() ([]byte, error) {
	if e >= equationCount {
		return nil, unknownValue("equation", int(e))
	}
	return []byte(equationNames[e]), nil
}

func (e *Equation) UnmarshalText(text []byte) error {
	i, err := lookupName("equation", equationNames[:], string(text))
	if err != nil {
		return err
	}
	*e = Equation(i)
	return nil
}

func (f Factor) MarshalText() ([]byte, error) {
	if f >= factorCount {
		return nil, unknownValue("factor", int(f))
	}
	return []byte(factorNames[f]), nil
}

func (f *Factor) UnmarshalText(text []byte) error {
	i, err := lookupName("factor", factorNames[:], string(text))
	if err != nil {
		return err
	}
	*f = Factor(i)
	return nil
}
