package render

import (
	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	positionAttrib = "LVertexPos3D"
	mvpUniform     = "mvp"
)

// Mesh is a static line list uploaded once and drawn every frame with
// a fresh mvp matrix.
type Mesh struct {
	program  *Program
	position uint32
	mvp      int32

	vao, vbo, ibo uint32
	count         int32
}

// NMesh uploads vertices (xyz triplets) and indices (pairs of line
// endpoints) for drawing with program.
func NMesh(program *Program, vertices []float32, indices []uint32) (*Mesh, error) {
	m := &Mesh{
		program: program,
		count:   int32(len(indices)),
	}

	var err error
	if m.position, err = program.Attrib(positionAttrib); err != nil {
		return nil, err
	}
	if m.mvp, err = program.Uniform(mvpUniform); err != nil {
		return nil, err
	}

	rawBinds(func() {
		gl.GenVertexArrays(1, &m.vao)
		gl.BindVertexArray(m.vao)

		gl.GenBuffers(1, &m.vbo)
		gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
		gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

		gl.GenBuffers(1, &m.ibo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ibo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

		gl.EnableVertexAttribArray(m.position)
		gl.VertexAttribPointer(m.position, 3, gl.FLOAT, false, 3*4, gl.PtrOffset(0))
	})

	return m, nil
}

// Draw submits mesh as lines. Matrix is passed as its 16 contiguous
// column-major floats.
func (m *Mesh) Draw(mvp mgl32.Mat4) {
	rawBinds(func() {
		m.program.Use()
		gl.UniformMatrix4fv(m.mvp, 1, false, &mvp[0])

		gl.BindVertexArray(m.vao)
		gl.DrawElements(gl.LINES, m.count, gl.UNSIGNED_INT, gl.PtrOffset(0))
	})
}

func (m *Mesh) Delete() {
	gl.DeleteVertexArrays(1, &m.vao)
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteBuffers(1, &m.ibo)
}
