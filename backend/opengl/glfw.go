package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// WindowConfig describes the window OpenWindow creates.
type WindowConfig struct {
	Width  int
	Height int
	Title  string

	// Hidden creates an invisible window. Useful when only a GL context
	// is needed, e.g. to check shaders from the command line.
	Hidden bool
}

// Window is a GLFW window whose GL 4.1 core context is current on the
// calling thread.
type Window struct {
	*glfw.Window
}

// OpenWindow initializes GLFW, creates a window with an OpenGL 4.1 core
// context, makes it current and loads the GL function pointers.
//
// GLFW must run on the main thread; call runtime.LockOSThread in init.
func OpenWindow(cfg WindowConfig) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if cfg.Hidden {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	return &Window{Window: window}, nil
}

// Version returns the GL_VERSION string of the current context.
func (w *Window) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

// Close destroys the window and terminates GLFW.
func (w *Window) Close() {
	w.Destroy()
	glfw.Terminate()
}
