// SPDX-License-Identifier: Unlicense OR MIT

package pipeline_test

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"gioui.org/shader"
	"golang.org/x/image/math/f32"

	"github.com/lumengfx/lumen/driver"
	"github.com/lumengfx/lumen/internal/rendertest"
	"github.com/lumengfx/lumen/pipeline"
	"github.com/lumengfx/lumen/render"
	"github.com/lumengfx/lumen/tess"
)

// trace returns an Updater recording its invocation on d.
func trace(d *rendertest.Device, name string) pipeline.Updater {
	return pipeline.UpdaterFunc(func(p driver.Program) {
		d.Calls = append(d.Calls, fmt.Sprintf("Update(%s, %s)", name, p.(*rendertest.Program).Name))
	})
}

func triangle(name string) tess.Tess {
	return tess.Tess{
		Mode:        driver.DrawModeTriangles,
		VertexArray: &rendertest.VertexArray{Name: name},
		Vertices:    3,
	}
}

func TestRunSequence(t *testing.T) {
	d := new(rendertest.Device)
	fb := &rendertest.Framebuffer{Name: "fb", W: 800, H: 600}
	textures := []driver.Texture{
		&rendertest.Texture{Name: "albedo", Tgt: driver.TextureTarget2D},
		&rendertest.Texture{Name: "sky", Tgt: driver.TextureTargetCube},
	}
	buffers := []driver.Buffer{&rendertest.Buffer{Name: "camera", N: 64}}
	prog := &rendertest.Program{Name: "prog"}
	blend := &render.Blending{Equation: render.Additive, Src: render.One, Dst: render.Zero}
	rc := pipeline.NewRenderCommand(blend, true, []pipeline.Pipe[pipeline.Drawable]{
		pipeline.NewPipe[pipeline.Drawable](trace(d, "tri"), triangle("tri")),
	}, 2, 0)
	sc := pipeline.NewShadingCommand(prog, []pipeline.Pipe[pipeline.RenderCommand]{
		pipeline.NewPipe(trace(d, "rc"), rc),
	})
	p := pipeline.New(fb, f32.Vec4{0.1, 0.2, 0.3, 2}, textures, buffers, []pipeline.Pipe[pipeline.ShadingCommand]{
		pipeline.NewPipe(trace(d, "sc"), sc),
	})
	if err := p.Run(d); err != nil {
		t.Fatal(err)
	}
	exp := []string{
		"BindFramebuffer(fb)",
		"Viewport(0, 0, 800, 600)",
		"Clear(0.1, 0.2, 0.3, 2)",
		"BindTexture(0, albedo, 2d)",
		"BindTexture(1, sky, cube)",
		"BindUniformBuffer(0, camera)",
		"Update(sc, prog)",
		"BindProgram(prog)",
		"Update(rc, prog)",
		"SetBlend(true)",
		"BlendEquation(additive)",
		"BlendFunc(one, zero)",
		"SetDepthTest(true)",
		"Update(tri, prog)",
		"BindVertexArray(tri)",
		"DrawArrays(triangles, 0, 3, 2)",
	}
	if !reflect.DeepEqual(d.Calls, exp) {
		t.Errorf("got calls\n%q\nexpected\n%q", d.Calls, exp)
	}
}

func TestRunDrawCount(t *testing.T) {
	const n, m, k = 2, 3, 4
	d := new(rendertest.Device)
	updates := 0
	count := pipeline.UpdaterFunc(func(driver.Program) { updates++ })
	var scs []pipeline.Pipe[pipeline.ShadingCommand]
	for i := 0; i < n; i++ {
		var rcs []pipeline.Pipe[pipeline.RenderCommand]
		for j := 0; j < m; j++ {
			var draws []pipeline.Pipe[pipeline.Drawable]
			for l := 0; l < k; l++ {
				name := fmt.Sprintf("va%d.%d.%d", i, j, l)
				draws = append(draws, pipeline.NewPipe[pipeline.Drawable](count, triangle(name)))
			}
			rcs = append(rcs, pipeline.NewPipe(count, pipeline.NewRenderCommand(nil, false, draws, 1, 0)))
		}
		prog := &rendertest.Program{Name: fmt.Sprintf("prog%d", i)}
		scs = append(scs, pipeline.NewPipe(count, pipeline.NewShadingCommand(prog, rcs)))
	}
	fb := &rendertest.Framebuffer{Name: "fb", W: 1, H: 1}
	if err := pipeline.New(fb, f32.Vec4{}, nil, nil, scs).Run(d); err != nil {
		t.Fatal(err)
	}
	if got := d.Count("DrawArrays("); got != n*m*k {
		t.Errorf("got %d draw calls, expected %d", got, n*m*k)
	}
	if exp := n + n*m + n*m*k; updates != exp {
		t.Errorf("got %d updates, expected %d", updates, exp)
	}
	// Draws follow list order.
	var order []string
	for _, c := range d.Calls {
		var name string
		if _, err := fmt.Sscanf(c, "BindVertexArray(%s", &name); err == nil {
			order = append(order, name[:len(name)-1])
		}
	}
	i := 0
	for a := 0; a < n; a++ {
		for b := 0; b < m; b++ {
			for c := 0; c < k; c++ {
				if exp := fmt.Sprintf("va%d.%d.%d", a, b, c); order[i] != exp {
					t.Errorf("draw %d: got %s, expected %s", i, order[i], exp)
				}
				i++
			}
		}
	}
}

func TestRunBlendingDisabled(t *testing.T) {
	d := new(rendertest.Device)
	rc := pipeline.NewRenderCommand(nil, false, []pipeline.Pipe[pipeline.Drawable]{
		{Value: triangle("a")},
		{Value: triangle("b")},
	}, 0, 0)
	sc := pipeline.NewShadingCommand(&rendertest.Program{Name: "prog"}, []pipeline.Pipe[pipeline.RenderCommand]{{Value: rc}})
	fb := &rendertest.Framebuffer{Name: "fb", W: 1, H: 1}
	if err := pipeline.New(fb, f32.Vec4{}, nil, nil, []pipeline.Pipe[pipeline.ShadingCommand]{{Value: sc}}).Run(d); err != nil {
		t.Fatal(err)
	}
	if got := d.Count("SetBlend(false)"); got != 1 {
		t.Errorf("got %d SetBlend(false) calls, expected 1", got)
	}
	if got := d.Count("SetBlend(true)") + d.Count("Blend"); got != 0 {
		t.Errorf("disabled blending issued %d blending calls", got)
	}
	if got := d.Count("SetDepthTest(false)"); got != 1 {
		t.Errorf("got %d SetDepthTest(false) calls, expected 1", got)
	}
	if got := d.Count("DrawArrays(triangles, 0, 3, 0)"); got != 2 {
		t.Errorf("got %d draws, expected 2", got)
	}
}

func TestRunEmpty(t *testing.T) {
	d := new(rendertest.Device)
	fb := &rendertest.Framebuffer{Name: "fb", W: 16, H: 9}
	tex := []driver.Texture{&rendertest.Texture{Name: "t", Tgt: driver.TextureTarget2DArray}}
	bufs := []driver.Buffer{&rendertest.Buffer{Name: "a"}, &rendertest.Buffer{Name: "b"}}
	if err := pipeline.New(fb, f32.Vec4{-1, 0, 0, 1}, tex, bufs, nil).Run(d); err != nil {
		t.Fatal(err)
	}
	exp := []string{
		"BindFramebuffer(fb)",
		"Viewport(0, 0, 16, 9)",
		"Clear(-1, 0, 0, 1)",
		"BindTexture(0, t, 2d-array)",
		"BindUniformBuffer(0, a)",
		"BindUniformBuffer(1, b)",
	}
	if !reflect.DeepEqual(d.Calls, exp) {
		t.Errorf("got calls %q, expected %q", d.Calls, exp)
	}
}

func TestRunRasterizationSize(t *testing.T) {
	d := new(rendertest.Device)
	points := tess.Tess{Mode: driver.DrawModePoints, VertexArray: &rendertest.VertexArray{Name: "pts"}, Vertices: 10}
	rc := pipeline.NewRenderCommand(nil, true, []pipeline.Pipe[pipeline.Drawable]{{Value: points}}, 1, 4)
	sc := pipeline.NewShadingCommand(&rendertest.Program{Name: "prog"}, []pipeline.Pipe[pipeline.RenderCommand]{{Value: rc}})
	fb := &rendertest.Framebuffer{Name: "fb", W: 1, H: 1}
	if err := pipeline.New(fb, f32.Vec4{}, nil, nil, []pipeline.Pipe[pipeline.ShadingCommand]{{Value: sc}}).Run(d); err != nil {
		t.Fatal(err)
	}
	exp := []string{
		"BindVertexArray(pts)",
		"RasterizationSize(4)",
		"DrawArrays(points, 0, 10, 1)",
	}
	if got := d.Calls[len(d.Calls)-len(exp):]; !reflect.DeepEqual(got, exp) {
		t.Errorf("got calls %q, expected %q", got, exp)
	}
}

func TestRunDeviceError(t *testing.T) {
	d := &rendertest.Device{Error: driver.ErrContextLost}
	fb := &rendertest.Framebuffer{Name: "fb", W: 1, H: 1}
	err := pipeline.New(fb, f32.Vec4{}, nil, nil, nil).Run(d)
	if !errors.Is(err, driver.ErrContextLost) {
		t.Errorf("got %v, expected %v", err, driver.ErrContextLost)
	}
}

func TestUniformSet(t *testing.T) {
	d := new(rendertest.Device)
	prog := &rendertest.Program{Name: "prog", Device: d}
	set := pipeline.UniformSet{
		Layout: []shader.UniformLocation{
			{Name: "scale", Type: shader.DataTypeFloat, Size: 1, Offset: 0},
			{Name: "offset", Type: shader.DataTypeFloat, Size: 2, Offset: 4},
		},
		Data: []byte{0, 0, 0x80, 0x3f, 1, 2, 3, 4, 5, 6, 7, 8},
	}
	rc := pipeline.NewRenderCommand(nil, false, nil, 1, 0)
	sc := pipeline.NewShadingCommand(prog, []pipeline.Pipe[pipeline.RenderCommand]{pipeline.NewPipe[pipeline.RenderCommand](set, rc)})
	fb := &rendertest.Framebuffer{Name: "fb", W: 1, H: 1}
	if err := pipeline.New(fb, f32.Vec4{}, nil, nil, []pipeline.Pipe[pipeline.ShadingCommand]{{Value: sc}}).Run(d); err != nil {
		t.Fatal(err)
	}
	exp := []string{
		"BindProgram(prog)",
		"SetUniform(prog, scale, 00 00 80 3f)",
		"SetUniform(prog, offset, 01 02 03 04 05 06 07 08)",
		"SetBlend(false)",
	}
	if got := d.Calls[3 : 3+len(exp)]; !reflect.DeepEqual(got, exp) {
		t.Errorf("got calls %q, expected %q", got, exp)
	}
}

func TestUniformSetRequiresUniformProgram(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("UniformSet accepted a program without uniform support")
		}
	}()
	pipeline.UniformSet{}.Update(plainProgram{})
}

type plainProgram struct{}

func (plainProgram) Valid() bool { return true }
