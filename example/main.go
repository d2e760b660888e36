// Example builds a shader program and draws a triangle with it.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// Pass -broken to feed the fragment stage invalid GLSL and print the
// resulting compile error instead.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/shader"
	"github.com/go-theft-auto/shader/backend/opengl"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "shader example"
)

const vertexShaderSource = `
#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec3 aColor;

out vec3 Color;

void main() {
    gl_Position = vec4(aPos, 0.0, 1.0);
    Color = aColor;
}
`

const fragmentShaderSource = `
#version 410 core
in vec3 Color;

out vec4 FragColor;

void main() {
    FragColor = vec4(Color, 1.0);
}
`

const brokenFragmentSource = `
#version 410 core
out vec4 FragColor;

void main() {
    FragColor = vec4(1.0) !!
}
`

// Interleaved position (x, y) and color (r, g, b).
var triangle = []float32{
	0.0, 0.6, 1, 0, 0,
	-0.6, -0.6, 0, 1, 0,
	0.6, -0.6, 0, 0, 1,
}

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	broken := flag.Bool("broken", false, "use an invalid fragment shader")
	verbose := flag.Bool("v", false, "log compile and link steps")
	flag.Parse()

	shader.SetVerbose(*verbose)

	if err := run(*broken); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(broken bool) error {
	window, err := opengl.OpenWindow(opengl.WindowConfig{
		Width:  windowWidth,
		Height: windowHeight,
		Title:  windowTitle,
	})
	if err != nil {
		return err
	}
	defer window.Close()
	glfw.SwapInterval(1) // vsync

	fragment := fragmentShaderSource
	if broken {
		fragment = brokenFragmentSource
	}

	program, err := opengl.InitProgram(vertexShaderSource, fragment, shader.ReleaseShaders())
	if err != nil {
		var ce *shader.CompileError
		if errors.As(err, &ce) {
			return fmt.Errorf("%s stage: %w", ce.Kind, err)
		}
		return err
	}
	defer gl.DeleteProgram(program)

	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)
	defer gl.DeleteVertexArrays(1, &vao)

	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	defer gl.DeleteBuffers(1, &vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(triangle)*4, gl.Ptr(triangle), gl.STATIC_DRAW)

	stride := int32(5 * unsafe.Sizeof(float32(0)))
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 2*unsafe.Sizeof(float32(0)))
	gl.EnableVertexAttribArray(1)
	gl.BindVertexArray(0)

	// Main loop.
	for !window.ShouldClose() {
		glfw.PollEvents()

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		gl.UseProgram(program)
		gl.BindVertexArray(vao)
		gl.DrawArrays(gl.TRIANGLES, 0, 3)
		gl.BindVertexArray(0)

		window.SwapBuffers()
	}

	return nil
}
