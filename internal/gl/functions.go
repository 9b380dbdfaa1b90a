// SPDX-License-Identifier: Unlicense OR MIT

package gl

// Config selects the GL library LoadFunctions opens.
type Config struct {
	// Library is the path or soname of the GL library. Empty selects
	// the platform default for ES.
	Library string
	// ES selects OpenGL ES instead of desktop OpenGL.
	ES bool
}

// Functions is a table of GL entry points resolved at run time.
type Functions struct {
	glActiveTexture         func(texture uint32)
	glBindBufferBase        func(target, index, buffer uint32)
	glBindFramebuffer       func(target, fb uint32)
	glBindTexture           func(target, texture uint32)
	glBindVertexArray       func(array uint32)
	glBlendEquationSeparate func(modeRGB, modeAlpha uint32)
	glBlendFuncSeparate     func(srcRGB, dstRGB, srcAlpha, dstAlpha uint32)
	glClear                 func(mask uint32)
	glClearColor            func(r, g, b, a float32)
	glClearDepthf           func(d float32)
	glCullFace              func(mode uint32)
	glDepthFunc             func(fn uint32)
	glDepthMask             func(flag bool)
	glDisable               func(cap uint32)
	glDrawArrays            func(mode uint32, first, count int32)
	glDrawArraysInstanced   func(mode uint32, first, count, primcount int32)
	glDrawElements          func(mode uint32, count int32, ty uint32, offset uintptr)
	glDrawElementsInstanced func(mode uint32, count int32, ty uint32, offset uintptr, primcount int32)
	glEnable                func(cap uint32)
	glFrontFace             func(mode uint32)
	glGetError              func() uint32
	glGetIntegerv           func(pname uint32, data *int32)
	glGetString             func(name uint32) string
	glGetUniformLocation    func(program uint32, name string) int32
	glLineWidth             func(width float32)
	glPointSize             func(size float32)
	glUniform1f             func(location int32, v0 float32)
	glUniform2f             func(location int32, v0, v1 float32)
	glUniform3f             func(location int32, v0, v1, v2 float32)
	glUniform4f             func(location int32, v0, v1, v2, v3 float32)
	glUniform1i             func(location, v0 int32)
	glUniform2i             func(location, v0, v1 int32)
	glUniform3i             func(location, v0, v1, v2 int32)
	glUniform4i             func(location, v0, v1, v2, v3 int32)
	glUseProgram            func(program uint32)
	glViewport              func(x, y, width, height int32)
}

// entryPoints lists the function pointers of f with their GL names.
// Optional entry points may be missing from the library.
func (f *Functions) entryPoints() []entryPoint {
	return []entryPoint{
		{&f.glActiveTexture, "glActiveTexture", false},
		{&f.glBindBufferBase, "glBindBufferBase", false},
		{&f.glBindFramebuffer, "glBindFramebuffer", false},
		{&f.glBindTexture, "glBindTexture", false},
		{&f.glBindVertexArray, "glBindVertexArray", false},
		{&f.glBlendEquationSeparate, "glBlendEquationSeparate", false},
		{&f.glBlendFuncSeparate, "glBlendFuncSeparate", false},
		{&f.glClear, "glClear", false},
		{&f.glClearColor, "glClearColor", false},
		{&f.glClearDepthf, "glClearDepthf", false},
		{&f.glCullFace, "glCullFace", false},
		{&f.glDepthFunc, "glDepthFunc", false},
		{&f.glDepthMask, "glDepthMask", false},
		{&f.glDisable, "glDisable", false},
		{&f.glDrawArrays, "glDrawArrays", false},
		{&f.glDrawArraysInstanced, "glDrawArraysInstanced", false},
		{&f.glDrawElements, "glDrawElements", false},
		{&f.glDrawElementsInstanced, "glDrawElementsInstanced", false},
		{&f.glEnable, "glEnable", false},
		{&f.glFrontFace, "glFrontFace", false},
		{&f.glGetError, "glGetError", false},
		{&f.glGetIntegerv, "glGetIntegerv", false},
		{&f.glGetString, "glGetString", false},
		{&f.glGetUniformLocation, "glGetUniformLocation", false},
		{&f.glLineWidth, "glLineWidth", false},
		// Missing from OpenGL ES.
		{&f.glPointSize, "glPointSize", true},
		{&f.glUniform1f, "glUniform1f", false},
		{&f.glUniform2f, "glUniform2f", false},
		{&f.glUniform3f, "glUniform3f", false},
		{&f.glUniform4f, "glUniform4f", false},
		{&f.glUniform1i, "glUniform1i", false},
		{&f.glUniform2i, "glUniform2i", false},
		{&f.glUniform3i, "glUniform3i", false},
		{&f.glUniform4i, "glUniform4i", false},
		{&f.glUseProgram, "glUseProgram", false},
		{&f.glViewport, "glViewport", false},
	}
}

type entryPoint struct {
	fptr     interface{}
	name     string
	optional bool
}

func (f *Functions) ActiveTexture(texture Enum) {
	f.glActiveTexture(uint32(texture))
}

func (f *Functions) BindBufferBase(target Enum, index int, b Buffer) {
	f.glBindBufferBase(uint32(target), uint32(index), uint32(b.V))
}

func (f *Functions) BindFramebuffer(target Enum, fb Framebuffer) {
	f.glBindFramebuffer(uint32(target), uint32(fb.V))
}

func (f *Functions) BindTexture(target Enum, t Texture) {
	f.glBindTexture(uint32(target), uint32(t.V))
}

func (f *Functions) BindVertexArray(a VertexArray) {
	f.glBindVertexArray(uint32(a.V))
}

func (f *Functions) BlendEquationSeparate(modeRGB, modeAlpha Enum) {
	f.glBlendEquationSeparate(uint32(modeRGB), uint32(modeAlpha))
}

func (f *Functions) BlendFuncSeparate(srcRGB, dstRGB, srcA, dstA Enum) {
	f.glBlendFuncSeparate(uint32(srcRGB), uint32(dstRGB), uint32(srcA), uint32(dstA))
}

func (f *Functions) Clear(mask Enum) {
	f.glClear(uint32(mask))
}

func (f *Functions) ClearColor(red, green, blue, alpha float32) {
	f.glClearColor(red, green, blue, alpha)
}

func (f *Functions) ClearDepthf(d float32) {
	f.glClearDepthf(d)
}

func (f *Functions) CullFace(mode Enum) {
	f.glCullFace(uint32(mode))
}

func (f *Functions) DepthFunc(v Enum) {
	f.glDepthFunc(uint32(v))
}

func (f *Functions) DepthMask(mask bool) {
	f.glDepthMask(mask)
}

func (f *Functions) Disable(cap Enum) {
	f.glDisable(uint32(cap))
}

func (f *Functions) DrawArrays(mode Enum, first, count int) {
	f.glDrawArrays(uint32(mode), int32(first), int32(count))
}

func (f *Functions) DrawArraysInstanced(mode Enum, first, count, primcount int) {
	f.glDrawArraysInstanced(uint32(mode), int32(first), int32(count), int32(primcount))
}

func (f *Functions) DrawElements(mode Enum, count int, ty Enum, offset int) {
	f.glDrawElements(uint32(mode), int32(count), uint32(ty), uintptr(offset))
}

func (f *Functions) DrawElementsInstanced(mode Enum, count int, ty Enum, offset, primcount int) {
	f.glDrawElementsInstanced(uint32(mode), int32(count), uint32(ty), uintptr(offset), int32(primcount))
}

func (f *Functions) Enable(cap Enum) {
	f.glEnable(uint32(cap))
}

func (f *Functions) FrontFace(mode Enum) {
	f.glFrontFace(uint32(mode))
}

func (f *Functions) GetError() Enum {
	return Enum(f.glGetError())
}

func (f *Functions) GetInteger(pname Enum) int {
	var v int32
	f.glGetIntegerv(uint32(pname), &v)
	return int(v)
}

func (f *Functions) GetString(pname Enum) string {
	return f.glGetString(uint32(pname))
}

func (f *Functions) GetUniformLocation(p Program, name string) Uniform {
	return Uniform{int(f.glGetUniformLocation(uint32(p.V), name))}
}

func (f *Functions) LineWidth(width float32) {
	f.glLineWidth(width)
}

// PointSize sets the point size. It does nothing if the library lacks
// glPointSize.
func (f *Functions) PointSize(size float32) {
	if f.glPointSize != nil {
		f.glPointSize(size)
	}
}

func (f *Functions) Uniform1f(dst Uniform, v float32) {
	f.glUniform1f(int32(dst.V), v)
}

func (f *Functions) Uniform2f(dst Uniform, v0, v1 float32) {
	f.glUniform2f(int32(dst.V), v0, v1)
}

func (f *Functions) Uniform3f(dst Uniform, v0, v1, v2 float32) {
	f.glUniform3f(int32(dst.V), v0, v1, v2)
}

func (f *Functions) Uniform4f(dst Uniform, v0, v1, v2, v3 float32) {
	f.glUniform4f(int32(dst.V), v0, v1, v2, v3)
}

func (f *Functions) Uniform1i(dst Uniform, v int) {
	f.glUniform1i(int32(dst.V), int32(v))
}

func (f *Functions) Uniform2i(dst Uniform, v0, v1 int) {
	f.glUniform2i(int32(dst.V), int32(v0), int32(v1))
}

func (f *Functions) Uniform3i(dst Uniform, v0, v1, v2 int) {
	f.glUniform3i(int32(dst.V), int32(v0), int32(v1), int32(v2))
}

func (f *Functions) Uniform4i(dst Uniform, v0, v1, v2, v3 int) {
	f.glUniform4i(int32(dst.V), int32(v0), int32(v1), int32(v2), int32(v3))
}

func (f *Functions) UseProgram(p Program) {
	f.glUseProgram(uint32(p.V))
}

func (f *Functions) Viewport(x, y, width, height int) {
	f.glViewport(int32(x), int32(y), int32(width), int32(height))
}
