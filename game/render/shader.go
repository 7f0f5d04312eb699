package render

import (
	"embed"
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/jakubDoka/sterr"
)

//go:embed shaders
var Sources embed.FS

var (
	ErrInit      = sterr.New("unable to load opengl functions")
	ErrSource    = sterr.New("unable to read shader source %s")
	ErrAttrib    = sterr.New("%s is not a valid glsl program attribute")
	ErrUniform   = sterr.New("%s is not a valid glsl program uniform")
	ErrNoShaders = sterr.New("program needs at least one shader")
)

// Init loads gl functions for the context that is current on calling thread.
func Init() error {
	if err := gl.Init(); err != nil {
		return ErrInit.Wrap(err)
	}
	return nil
}

// Stage is a programmable pipeline stage.
type Stage uint32

const (
	Vertex   Stage = gl.VERTEX_SHADER
	Fragment Stage = gl.FRAGMENT_SHADER
)

func (s Stage) String() string {
	switch s {
	case Vertex:
		return "vertex"
	case Fragment:
		return "fragment"
	default:
		return fmt.Sprintf("stage(%#x)", uint32(s))
	}
}

// CompileError is returned when shader fails to compile, Log holds
// the driver output.
type CompileError struct {
	Stage Stage
	Log   string
}

func (c *CompileError) Error() string {
	return diagnostic(fmt.Sprintf("unable to compile %s shader", c.Stage), c.Log)
}

// LinkError is returned when program fails to link.
type LinkError struct {
	Log string
}

func (l *LinkError) Error() string {
	return diagnostic("unable to link program", l.Log)
}

func diagnostic(what, log string) string {
	log = strings.TrimSpace(strings.TrimRight(log, "\x00"))
	if log == "" {
		return what
	}
	return what + ": " + log
}

type Shader struct {
	ID    uint32
	Stage Stage
}

func CompileShader(stage Stage, source string) (Shader, error) {
	s := Shader{ID: gl.CreateShader(uint32(stage)), Stage: stage}

	src, free := gl.Strs(source + "\x00")
	gl.ShaderSource(s.ID, 1, src, nil)
	free()
	gl.CompileShader(s.ID)

	var status int32
	gl.GetShaderiv(s.ID, gl.COMPILE_STATUS, &status)
	if status != gl.TRUE {
		err := &CompileError{
			Stage: stage,
			Log:   infoLog(s.ID, gl.GetShaderiv, gl.GetShaderInfoLog),
		}
		gl.DeleteShader(s.ID)
		return Shader{}, err
	}

	return s, nil
}

// LoadShader compiles a shader embedded under shaders/.
func LoadShader(stage Stage, name string) (Shader, error) {
	bts, err := Sources.ReadFile("shaders/" + name)
	if err != nil {
		return Shader{}, ErrSource.Args(name).Wrap(err)
	}
	return CompileShader(stage, string(bts))
}

// infoLog reads a shader or program log. The buffer size comes from
// INFO_LOG_LENGTH, which includes the terminating zero.
func infoLog(
	id uint32,
	param func(uint32, uint32, *int32),
	read func(uint32, int32, *int32, *uint8),
) string {
	var size int32
	param(id, gl.INFO_LOG_LENGTH, &size)
	if size <= 0 {
		return ""
	}

	buf := make([]uint8, size)
	var written int32
	read(id, size, &written, &buf[0])
	if written < 0 || written > size {
		written = size
	}

	return string(buf[:written])
}
