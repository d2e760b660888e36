package shader

const (
	compileErrorPrefix = "An error occurred compiling the shaders: "
	linkErrorPrefix    = "Unable to initialize the shader program: "
)

// CompileError reports a shader that the context failed to compile.
// Log holds the context's info log unchanged.
type CompileError struct {
	Kind Kind
	Log  string
}

func (e *CompileError) Error() string {
	return compileErrorPrefix + e.Log
}

// LinkError reports a program that failed to link after both of its
// shaders compiled.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return linkErrorPrefix + e.Log
}
