package render

import (
	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/jakubDoka/mlok/ggl"
)

// mlok remembers the vao, vbo and program it bound last and skips the gl
// call when asked to bind the same object again. Raw binds must start
// with mlok's cache cleared and end with gl unbound, so both sides agree
// on 0 when the window draws its canvas.
var (
	resetCache = func() {
		ggl.EndVao()
		ggl.EndVbo()
		ggl.EndProgram()
	}
	unbind = func() {
		gl.BindVertexArray(0)
		gl.BindBuffer(gl.ARRAY_BUFFER, 0)
		gl.UseProgram(0)
	}
)

// rawBinds runs fn, which may bind gl objects directly, between a cache
// reset and a full unbind.
func rawBinds(fn func()) {
	resetCache()
	defer unbind()
	fn()
}
