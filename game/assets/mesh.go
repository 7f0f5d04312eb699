package assets

import "github.com/jakubDoka/sterr"

var (
	ErrIndex  = sterr.New("index %d refers to vertex %d of %d")
	ErrLayout = sterr.New("mesh has %d floats and %d indices, want xyz triplets and index pairs")
)

// Mesh is a wireframe, Vertices holds xyz triplets and every two
// Indices form one edge.
type Mesh struct {
	Vertices []float32
	Indices  []uint32
}

// Cube returns wireframe cube with given half extent centered on origin.
func Cube(h float32) Mesh {
	return Mesh{
		Vertices: []float32{
			-h, -h, -h,
			h, -h, -h,
			h, h, -h,
			-h, h, -h,
			-h, -h, h,
			h, -h, h,
			h, h, h,
			-h, h, h,
		},
		Indices: []uint32{
			// bottom
			0, 1, 1, 2, 2, 3, 3, 0,
			// top
			4, 5, 5, 6, 6, 7, 7, 4,
			// sides
			0, 4, 1, 5, 2, 6, 3, 7,
		},
	}
}

func (m Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

func (m Mesh) EdgeCount() int {
	return len(m.Indices) / 2
}

func (m Mesh) Validate() error {
	if len(m.Vertices)%3 != 0 || len(m.Indices)%2 != 0 || len(m.Indices) == 0 {
		return ErrLayout.Args(len(m.Vertices), len(m.Indices))
	}

	vc := m.VertexCount()
	for i, idx := range m.Indices {
		if int(idx) >= vc {
			return ErrIndex.Args(i, idx, vc)
		}
	}

	return nil
}
