// SPDX-License-Identifier: Unlicense OR MIT

// Package webgpu translates render states into WebGPU render pipeline
// descriptors.
//
// WebGPU bakes fixed-function state into immutable pipelines, so a
// render.State maps to descriptor fields instead of device calls.
package webgpu

import (
	"errors"

	"github.com/gogpu/gputypes"

	"github.com/lumengfx/lumen/render"
)

// ErrUnsupportedCulling is returned for render.CullFrontAndBack, which
// WebGPU cannot express.
var ErrUnsupportedCulling = errors.New("webgpu: culling both faces is not supported")

// BlendState returns the blend state of m. Combined blending applies
// the RGB settings to both components.
func BlendState(m render.BlendingMode) gputypes.BlendState {
	alpha := m.RGB
	if m.Separate {
		alpha = m.Alpha
	}
	return gputypes.BlendState{
		Color: blendComponent(m.RGB),
		Alpha: blendComponent(alpha),
	}
}

// ColorTarget returns the color target state of s for a target of the
// given format. Blend is nil when s disables blending.
func ColorTarget(s render.State, format gputypes.TextureFormat) gputypes.ColorTargetState {
	t := gputypes.ColorTargetState{
		Format:    format,
		WriteMask: gputypes.ColorWriteMaskAll,
	}
	if m, ok := s.Blending(); ok {
		b := BlendState(m)
		t.Blend = &b
	}
	return t
}

// DepthStencil returns the depth-stencil state of s for a depth
// attachment of the given format, or nil when s neither tests nor
// writes depth. Writes without a test use an always passing compare
// function.
func DepthStencil(s render.State, format gputypes.TextureFormat) *gputypes.DepthStencilState {
	c, test := s.DepthTest()
	write := s.DepthWrite().Enabled()
	if !test && !write {
		return nil
	}
	ds := gputypes.DefaultDepthStencilState(format)
	ds.DepthWriteEnabled = write
	ds.DepthCompare = gputypes.CompareFunctionAlways
	if test {
		ds.DepthCompare = toCompareFunction(c)
	}
	return &ds
}

// Primitive returns the primitive state of s drawing topology.
func Primitive(s render.State, topology gputypes.PrimitiveTopology) (gputypes.PrimitiveState, error) {
	p := gputypes.PrimitiveState{
		Topology:  topology,
		FrontFace: gputypes.FrontFaceCCW,
		CullMode:  gputypes.CullModeNone,
	}
	fc, ok := s.FaceCulling()
	if !ok {
		return p, nil
	}
	switch fc.Mode {
	case render.CullFront:
		p.CullMode = gputypes.CullModeFront
	case render.CullBack:
		p.CullMode = gputypes.CullModeBack
	case render.CullFrontAndBack:
		return gputypes.PrimitiveState{}, ErrUnsupportedCulling
	default:
		panic("unsupported cull mode")
	}
	p.FrontFace = toFrontFace(fc.Order)
	return p, nil
}

func blendComponent(b render.Blending) gputypes.BlendComponent {
	return gputypes.BlendComponent{
		SrcFactor: toBlendFactor(b.Src),
		DstFactor: toBlendFactor(b.Dst),
		Operation: toBlendOperation(b.Equation),
	}
}

func toBlendOperation(e render.Equation) gputypes.BlendOperation {
	switch e {
	case render.Additive:
		return gputypes.BlendOperationAdd
	case render.Subtract:
		return gputypes.BlendOperationSubtract
	case render.ReverseSubtract:
		return gputypes.BlendOperationReverseSubtract
	case render.Min:
		return gputypes.BlendOperationMin
	case render.Max:
		return gputypes.BlendOperationMax
	default:
		panic("unsupported blend equation")
	}
}

func toBlendFactor(f render.Factor) gputypes.BlendFactor {
	switch f {
	case render.One:
		return gputypes.BlendFactorOne
	case render.Zero:
		return gputypes.BlendFactorZero
	case render.SrcColor:
		return gputypes.BlendFactorSrc
	case render.SrcColorComplement:
		return gputypes.BlendFactorOneMinusSrc
	case render.DstColor:
		return gputypes.BlendFactorDst
	case render.DstColorComplement:
		return gputypes.BlendFactorOneMinusDst
	case render.SrcAlpha:
		return gputypes.BlendFactorSrcAlpha
	case render.SrcAlphaComplement:
		return gputypes.BlendFactorOneMinusSrcAlpha
	case render.DstAlpha:
		return gputypes.BlendFactorDstAlpha
	case render.DstAlphaComplement:
		return gputypes.BlendFactorOneMinusDstAlpha
	case render.SrcAlphaSaturate:
		return gputypes.BlendFactorSrcAlphaSaturated
	default:
		panic("unsupported blend factor")
	}
}

func toCompareFunction(c render.Comparison) gputypes.CompareFunction {
	switch c {
	case render.Never:
		return gputypes.CompareFunctionNever
	case render.Always:
		return gputypes.CompareFunctionAlways
	case render.Equal:
		return gputypes.CompareFunctionEqual
	case render.NotEqual:
		return gputypes.CompareFunctionNotEqual
	case render.Less:
		return gputypes.CompareFunctionLess
	case render.LessOrEqual:
		return gputypes.CompareFunctionLessEqual
	case render.Greater:
		return gputypes.CompareFunctionGreater
	case render.GreaterOrEqual:
		return gputypes.CompareFunctionGreaterEqual
	default:
		panic("unsupported depth func")
	}
}

func toFrontFace(o render.FaceCullingOrder) gputypes.FrontFace {
	switch o {
	case render.CW:
		return gputypes.FrontFaceCW
	case render.CCW:
		return gputypes.FrontFaceCCW
	default:
		panic("unsupported winding order")
	}
}
