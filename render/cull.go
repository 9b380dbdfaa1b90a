// SPDX-License-Identifier: Unlicense OR MIT

package render

import "strconv"

// FaceCullingOrder is the winding order of front-facing triangles.
type FaceCullingOrder uint8

// FaceCullingMode selects which faces are discarded.
type FaceCullingMode uint8

// FaceCulling discards triangles by facing.
type FaceCulling struct {
	Order FaceCullingOrder `yaml:"order"`
	Mode  FaceCullingMode  `yaml:"mode"`
}

const (
	// CW treats clockwise triangles as front-facing.
	CW FaceCullingOrder = iota
	// CCW treats counter-clockwise triangles as front-facing.
	CCW

	orderCount
)

const (
	CullFront FaceCullingMode = iota
	CullBack
	CullFrontAndBack

	cullModeCount
)

var orderNames = [orderCount]string{
	CW:  "cw",
	CCW: "ccw",
}

var cullModeNames = [cullModeCount]string{
	CullFront:        "front",
	CullBack:         "back",
	CullFrontAndBack: "both",
}

// DefaultFaceCulling culls back faces of counter-clockwise geometry.
func DefaultFaceCulling() FaceCulling {
	return FaceCulling{Order: CCW, Mode: CullBack}
}

func (o FaceCullingOrder) String() string {
	if o >= orderCount {
		return "FaceCullingOrder(" + strconv.Itoa(int(o)) + ")"
	}
	return orderNames[o]
}

func (m FaceCullingMode) String() string {
	if m >= cullModeCount {
		return "FaceCullingMode(" + strconv.Itoa(int(m)) + ")"
	}
	return cullModeNames[m]
}

func (o FaceCullingOrder) MarshalText() ([]byte, error) {
	if o >= orderCount {
		return nil, unknownValue("face culling order", int(o))
	}
	return []byte(orderNames[o]), nil
}

func (o *FaceCullingOrder) UnmarshalText(text []byte) error {
	i, err := lookupName("face culling order", orderNames[:], string(text))
	if err != nil {
		return err
	}
	*o = FaceCullingOrder(i)
	return nil
}

func (m FaceCullingMode) MarshalText() ([]byte, error) {
	if m >= cullModeCount {
		return nil, unknownValue("face culling mode", int(m))
	}
	return []byte(cullModeNames[m]), nil
}

func (m *FaceCullingMode) UnmarshalText(text []byte) error {
	i, err := lookupName("face culling mode", cullModeNames[:], string(text))
	if err != nil {
		return err
	}
	*m = FaceCullingMode(i)
	return nil
}
