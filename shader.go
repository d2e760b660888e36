package shader

import "fmt"

// Context is the subset of a graphics API needed to build a program.
// S is the backend's shader handle type and P its program handle type.
//
// Every call is synchronous. Implementations are usually bound to one
// thread; callers must serialize access.
type Context[S, P any] interface {
	CreateShader(kind Kind) S
	ShaderSource(s S, source string)
	CompileShader(s S)
	ShaderCompileStatus(s S) bool
	ShaderInfoLog(s S) string

	CreateProgram() P
	AttachShader(p P, s S)
	LinkProgram(p P)
	ProgramLinkStatus(p P) bool
	ProgramInfoLog(p P) string
}

// ShaderDeleter is implemented by contexts that can free shader objects.
// It is only used when ReleaseShaders is set.
type ShaderDeleter[S any] interface {
	DeleteShader(s S)
}

// Compile creates a shader of the given kind, sets its source and compiles it.
//
// On failure it returns the zero handle and a *CompileError carrying the
// context's info log. The failed shader object is not deleted unless
// ReleaseShaders is passed.
func Compile[S, P any](ctx Context[S, P], kind Kind, source string, opts ...Option) (S, error) {
	return compile(ctx, kind, source, newOptions(opts))
}

func compile[S, P any](ctx Context[S, P], kind Kind, source string, o options) (S, error) {
	var zero S
	if !kind.Valid() {
		return zero, fmt.Errorf("%w: %d", ErrUnknownKind, uint8(kind))
	}

	s := ctx.CreateShader(kind)
	ctx.ShaderSource(s, source)
	ctx.CompileShader(s)

	if !ctx.ShaderCompileStatus(s) {
		err := &CompileError{Kind: kind, Log: ctx.ShaderInfoLog(s)}
		release(ctx, o, s)
		return zero, err
	}

	logger.Debug("shader compiled", "kind", kind, "bytes", len(source))
	return s, nil
}

// InitProgram compiles vertexSource and fragmentSource, attaches both shaders
// to a new program and links it.
//
// The vertex stage is compiled first. If it fails its *CompileError is
// returned as is and the fragment source is never passed to the context.
// A link failure returns a *LinkError. A program handle is only returned
// when both compiles and the link succeeded; the caller owns it.
func InitProgram[S, P any](ctx Context[S, P], vertexSource, fragmentSource string, opts ...Option) (P, error) {
	var zero P
	o := newOptions(opts)

	vs, err := compile(ctx, Vertex, vertexSource, o)
	if err != nil {
		return zero, err
	}
	fs, err := compile(ctx, Fragment, fragmentSource, o)
	if err != nil {
		release(ctx, o, vs)
		return zero, err
	}

	p := ctx.CreateProgram()
	ctx.AttachShader(p, vs)
	ctx.AttachShader(p, fs)
	ctx.LinkProgram(p)

	ok := ctx.ProgramLinkStatus(p)
	var linkErr error
	if !ok {
		linkErr = &LinkError{Log: ctx.ProgramInfoLog(p)}
	}

	// Shaders may be deleted once the link was attempted; the program keeps
	// what it needs.
	release(ctx, o, vs, fs)

	if linkErr != nil {
		return zero, linkErr
	}
	logger.Debug("program linked")
	return p, nil
}

func release[S, P any](ctx Context[S, P], o options, shaders ...S) {
	if !o.releaseShaders {
		return
	}
	d, ok := ctx.(ShaderDeleter[S])
	if !ok {
		return
	}
	for _, s := range shaders {
		d.DeleteShader(s)
	}
	logger.Debug("shaders released", "count", len(shaders))
}
