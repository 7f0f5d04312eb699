package render

import (
	"github.com/go-gl/gl/v3.2-core/gl"
)

type Program struct {
	ID uint32
}

// LinkProgram links shaders into program. Shaders are deleted
// afterwards whether linking succeeds or not.
func LinkProgram(shaders ...Shader) (*Program, error) {
	defer func() {
		for _, s := range shaders {
			gl.DeleteShader(s.ID)
		}
	}()

	if len(shaders) == 0 {
		return nil, ErrNoShaders
	}

	p := &Program{ID: gl.CreateProgram()}
	for _, s := range shaders {
		gl.AttachShader(p.ID, s.ID)
	}
	gl.LinkProgram(p.ID)

	var status int32
	gl.GetProgramiv(p.ID, gl.LINK_STATUS, &status)
	if status != gl.TRUE {
		err := &LinkError{Log: infoLog(p.ID, gl.GetProgramiv, gl.GetProgramInfoLog)}
		gl.DeleteProgram(p.ID)
		return nil, err
	}

	for _, s := range shaders {
		gl.DetachShader(p.ID, s.ID)
	}

	return p, nil
}

// NTankProgram builds the program that draws tank wireframe.
func NTankProgram() (*Program, error) {
	vert, err := LoadShader(Vertex, "tank.vert")
	if err != nil {
		return nil, err
	}

	frag, err := LoadShader(Fragment, "tank.frag")
	if err != nil {
		gl.DeleteShader(vert.ID)
		return nil, err
	}

	return LinkProgram(vert, frag)
}

func (p *Program) Attrib(name string) (uint32, error) {
	loc := gl.GetAttribLocation(p.ID, gl.Str(name+"\x00"))
	if loc < 0 {
		return 0, ErrAttrib.Args(name)
	}
	return uint32(loc), nil
}

func (p *Program) Uniform(name string) (int32, error) {
	loc := gl.GetUniformLocation(p.ID, gl.Str(name+"\x00"))
	if loc < 0 {
		return 0, ErrUniform.Args(name)
	}
	return loc, nil
}

func (p *Program) Use() {
	gl.UseProgram(p.ID)
}

func (p *Program) Delete() {
	gl.DeleteProgram(p.ID)
}
