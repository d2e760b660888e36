// Command shadercheck compiles and links a vertex and a fragment shader on
// the local OpenGL driver and reports the first failure.
//
// Usage:
//
//	go run ./cmd/shadercheck -vertex scene.vert -fragment scene.frag
//
// Exit status is 0 when the program links, 1 on a compile or link error and
// 2 on usage or environment errors.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/shader"
	"github.com/go-theft-auto/shader/backend/opengl"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	vertexPath := flag.String("vertex", "", "vertex shader source file")
	fragmentPath := flag.String("fragment", "", "fragment shader source file")
	verbose := flag.Bool("v", false, "log compile and link steps")
	flag.Parse()

	shader.SetVerbose(*verbose)

	if *vertexPath == "" || *fragmentPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	os.Exit(run(os.Stdout, os.Stderr, *vertexPath, *fragmentPath))
}

func run(stdout, stderr io.Writer, vertexPath, fragmentPath string) int {
	vertex, err := os.ReadFile(vertexPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	fragment, err := os.ReadFile(fragmentPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	window, err := opengl.OpenWindow(opengl.WindowConfig{
		Width:  1,
		Height: 1,
		Title:  "shadercheck",
		Hidden: true,
	})
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	defer window.Close()

	program, err := opengl.InitProgram(string(vertex), string(fragment), shader.ReleaseShaders())
	if err != nil {
		fmt.Fprintln(stderr, describe(err, vertexPath, fragmentPath))
		return 1
	}
	gl.DeleteProgram(program)

	fmt.Fprintf(stdout, "ok: %s + %s (%s)\n", vertexPath, fragmentPath, window.Version())
	return 0
}

// describe prefixes err with the file it came from.
func describe(err error, vertexPath, fragmentPath string) string {
	var ce *shader.CompileError
	if errors.As(err, &ce) {
		path := vertexPath
		if ce.Kind == shader.Fragment {
			path = fragmentPath
		}
		return fmt.Sprintf("%s: %v", path, err)
	}
	var le *shader.LinkError
	if errors.As(err, &le) {
		return fmt.Sprintf("%s + %s: %v", vertexPath, fragmentPath, err)
	}
	return err.Error()
}
