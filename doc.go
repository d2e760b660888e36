/*
Package shader compiles vertex and fragment shaders and links them into a
program through a graphics context.

# Overview

The package does not talk to a graphics API itself. It drives a [Context],
a small capability interface with one method per driver call (create, source,
compile, query status, read info log, attach, link). Backends implement it:

	backend/opengl   desktop OpenGL 4.1 core via go-gl
	backend/webgl    browser WebGL via syscall/js (js/wasm builds only)

Handle types are chosen by the backend, so the core functions are generic over
the shader handle S and the program handle P.

# Quick Start

	window, err := opengl.OpenWindow(opengl.WindowConfig{Width: 800, Height: 600, Title: "demo"})
	if err != nil {
	    return err
	}
	defer window.Close()

	program, err := opengl.InitProgram(vertexSource, fragmentSource)
	if err != nil {
	    var ce *shader.CompileError
	    if errors.As(err, &ce) {
	        fmt.Println(ce.Kind, "stage failed:", ce.Log)
	    }
	    return err
	}
	defer gl.DeleteProgram(program)

# Errors

A failed compile returns a *CompileError whose message starts with
"An error occurred compiling the shaders: ". A failed link returns a
*LinkError whose message starts with "Unable to initialize the shader program: ".
Both carry the driver's info log verbatim. The vertex stage is always compiled
first; when it fails the fragment source is never handed to the context.

# Resource Lifetime

The returned program belongs to the caller. Shader objects are left alive by
default; pass [ReleaseShaders] to delete them once the link has been attempted.
*/
package shader
