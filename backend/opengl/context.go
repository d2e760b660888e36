// Package opengl provides an OpenGL 4.1 core backend for the shader package.
package opengl

import (
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/shader"
)

// Context implements shader.Context on the OpenGL context current on the
// calling thread. Handles are GL object names.
type Context struct{}

var (
	_ shader.Context[uint32, uint32] = Context{}
	_ shader.ShaderDeleter[uint32]   = Context{}
)

// InitProgram builds a program from vertex and fragment GLSL source on the
// current GL context. Sources need not be NUL-terminated.
func InitProgram(vertexSource, fragmentSource string, opts ...shader.Option) (uint32, error) {
	return shader.InitProgram[uint32, uint32](Context{}, vertexSource, fragmentSource, opts...)
}

// CreateShader allocates a shader object for the given stage.
func (Context) CreateShader(kind shader.Kind) uint32 {
	return gl.CreateShader(shaderType(kind))
}

// ShaderSource replaces the source of s.
func (Context) ShaderSource(s uint32, source string) {
	csource, free := gl.Strs(terminate(source))
	gl.ShaderSource(s, 1, csource, nil)
	free()
}

func (Context) CompileShader(s uint32) {
	gl.CompileShader(s)
}

func (Context) ShaderCompileStatus(s uint32) bool {
	var status int32
	gl.GetShaderiv(s, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (Context) ShaderInfoLog(s uint32) string {
	var logLength int32
	gl.GetShaderiv(s, gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return ""
	}
	log := make([]byte, logLength+1)
	gl.GetShaderInfoLog(s, logLength, nil, &log[0])
	return trimLog(log)
}

func (Context) DeleteShader(s uint32) {
	gl.DeleteShader(s)
}

func (Context) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (Context) AttachShader(p, s uint32) {
	gl.AttachShader(p, s)
}

func (Context) LinkProgram(p uint32) {
	gl.LinkProgram(p)
}

func (Context) ProgramLinkStatus(p uint32) bool {
	var status int32
	gl.GetProgramiv(p, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (Context) ProgramInfoLog(p uint32) string {
	var logLength int32
	gl.GetProgramiv(p, gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return ""
	}
	log := make([]byte, logLength+1)
	gl.GetProgramInfoLog(p, logLength, nil, &log[0])
	return trimLog(log)
}

// shaderType maps a stage to its GL enum. Unknown kinds map to 0, which
// makes glCreateShader fail with GL_INVALID_ENUM.
func shaderType(kind shader.Kind) uint32 {
	switch kind {
	case shader.Vertex:
		return gl.VERTEX_SHADER
	case shader.Fragment:
		return gl.FRAGMENT_SHADER
	default:
		return 0
	}
}

// terminate appends the NUL byte gl.Strs requires.
func terminate(source string) string {
	if strings.HasSuffix(source, "\x00") {
		return source
	}
	return source + "\x00"
}

// trimLog drops the NUL terminator and padding the driver leaves in an
// info log buffer.
func trimLog(log []byte) string {
	if i := strings.IndexByte(string(log), 0); i >= 0 {
		log = log[:i]
	}
	return string(log)
}
