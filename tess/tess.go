// SPDX-License-Identifier: Unlicense OR MIT

// Package tess implements drawables over vertex arrays.
package tess

import "github.com/lumengfx/lumen/driver"

// Tess draws Vertices vertices, or indices when Indexed, of its vertex
// array with a single, possibly instanced, draw call.
type Tess struct {
	Mode        driver.DrawMode
	VertexArray driver.VertexArray
	Vertices    int
	Indexed     bool
}

// Render binds the vertex array, sets a non-zero size as the
// rasterization size and draws. Instance counts of 0 and 1 both draw
// once.
func (t Tess) Render(d driver.Device, size float32, instances int) {
	d.BindVertexArray(t.VertexArray)
	if size != 0 {
		d.RasterizationSize(size)
	}
	if t.Indexed {
		d.DrawElements(t.Mode, t.Vertices, instances)
	} else {
		d.DrawArrays(t.Mode, 0, t.Vertices, instances)
	}
}
