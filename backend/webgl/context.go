//go:build js && wasm

// Package webgl provides a browser WebGL backend for the shader package.
package webgl

import (
	"errors"
	"syscall/js"

	"github.com/go-theft-auto/shader"
)

// ErrNoContext is returned when a canvas cannot provide a WebGL context.
var ErrNoContext = errors.New("webgl: context unavailable")

// Context implements shader.Context on a WebGLRenderingContext.
// Handles are the JS WebGLShader and WebGLProgram objects.
type Context struct {
	gl js.Value
}

var (
	_ shader.Context[js.Value, js.Value] = Context{}
	_ shader.ShaderDeleter[js.Value]     = Context{}
)

// New wraps an existing WebGLRenderingContext.
func New(gl js.Value) Context {
	return Context{gl: gl}
}

// FromCanvas requests a "webgl" context from a canvas element.
func FromCanvas(canvas js.Value) (Context, error) {
	gl := canvas.Call("getContext", "webgl")
	if gl.IsNull() || gl.IsUndefined() {
		return Context{}, ErrNoContext
	}
	return New(gl), nil
}

// InitProgram builds a program from vertex and fragment GLSL ES source.
func InitProgram(gl js.Value, vertexSource, fragmentSource string, opts ...shader.Option) (js.Value, error) {
	return shader.InitProgram[js.Value, js.Value](New(gl), vertexSource, fragmentSource, opts...)
}

// Value returns the underlying WebGLRenderingContext.
func (c Context) Value() js.Value { return c.gl }

func (c Context) CreateShader(kind shader.Kind) js.Value {
	return c.gl.Call("createShader", c.shaderType(kind))
}

func (c Context) ShaderSource(s js.Value, source string) {
	c.gl.Call("shaderSource", s, source)
}

func (c Context) CompileShader(s js.Value) {
	c.gl.Call("compileShader", s)
}

func (c Context) ShaderCompileStatus(s js.Value) bool {
	return c.gl.Call("getShaderParameter", s, c.gl.Get("COMPILE_STATUS")).Truthy()
}

func (c Context) ShaderInfoLog(s js.Value) string {
	return stringOrEmpty(c.gl.Call("getShaderInfoLog", s))
}

func (c Context) DeleteShader(s js.Value) {
	c.gl.Call("deleteShader", s)
}

func (c Context) CreateProgram() js.Value {
	return c.gl.Call("createProgram")
}

func (c Context) AttachShader(p, s js.Value) {
	c.gl.Call("attachShader", p, s)
}

func (c Context) LinkProgram(p js.Value) {
	c.gl.Call("linkProgram", p)
}

func (c Context) ProgramLinkStatus(p js.Value) bool {
	return c.gl.Call("getProgramParameter", p, c.gl.Get("LINK_STATUS")).Truthy()
}

func (c Context) ProgramInfoLog(p js.Value) string {
	return stringOrEmpty(c.gl.Call("getProgramInfoLog", p))
}

// shaderType reads the stage constant from the context itself.
func (c Context) shaderType(kind shader.Kind) js.Value {
	switch kind {
	case shader.Vertex:
		return c.gl.Get("VERTEX_SHADER")
	case shader.Fragment:
		return c.gl.Get("FRAGMENT_SHADER")
	default:
		return js.ValueOf(0)
	}
}

// stringOrEmpty maps the null returned by a lost context to an empty log.
func stringOrEmpty(v js.Value) string {
	if v.Type() != js.TypeString {
		return ""
	}
	return v.String()
}
