// SPDX-License-Identifier: Unlicense OR MIT

package render

import "strconv"

// Comparison is the test a fragment depth must pass against the
// depth buffer to be kept.
type Comparison uint8

// DepthWrite controls whether passing fragments update the depth
// buffer.
type DepthWrite uint8

const (
	Never Comparison = iota
	Always
	Equal
	NotEqual
	Less
	LessOrEqual
	Greater
	GreaterOrEqual

	comparisonCount
)

const (
	DepthWriteOn DepthWrite = iota
	DepthWriteOff

	depthWriteCount
)

var comparisonNames = [comparisonCount]string{
	Never:          "never",
	Always:         "always",
	Equal:          "equal",
	NotEqual:       "not-equal",
	Less:           "less",
	LessOrEqual:    "less-or-equal",
	Greater:        "greater",
	GreaterOrEqual: "greater-or-equal",
}

var depthWriteNames = [depthWriteCount]string{
	DepthWriteOn:  "on",
	DepthWriteOff: "off",
}

// Comparisons returns every depth comparison in declaration order.
func Comparisons() []Comparison {
	cs := make([]Comparison, comparisonCount)
	for i := range cs {
		cs[i] = Comparison(i)
	}
	return cs
}

// Enabled reports whether w lets fragments write depth.
func (w DepthWrite) Enabled() bool {
	return w == DepthWriteOn
}

func (c Comparison) String() string {
	if c >= comparisonCount {
		return "Comparison(" + strconv.Itoa(int(c)) + ")"
	}
	return comparisonNames[c]
}

func (w DepthWrite) String() string {
	if w >= depthWriteCount {
		return "DepthWrite(" + strconv.Itoa(int(w)) + ")"
	}
	return depthWriteNames[w]
}

func (c Comparison) MarshalText() ([]byte, error) {
	if c >= comparisonCount {
		return nil, unknownValue("comparison", int(c))
	}
	return []byte(comparisonNames[c]), nil
}

func (c *Comparison) UnmarshalText(text []byte) error {
	i, err := lookupName("comparison", comparisonNames[:], string(text))
	if err != nil {
		return err
	}
	*c = Comparison(i)
	return nil
}

func (w DepthWrite) MarshalText() ([]byte, error) {
	if w >= depthWriteCount {
		return nil, unknownValue("depth write", int(w))
	}
	return []byte(depthWriteNames[w]), nil
}

func (w *DepthWrite) UnmarshalText(text []byte) error {
	i, err := lookupName("depth write", depthWriteNames[:], string(text))
	if err != nil {
		return err
	}
	*w = DepthWrite(i)
	return nil
}
