package shader

// Option configures Compile and InitProgram.
type Option func(*options)

type options struct {
	releaseShaders bool
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ReleaseShaders deletes shader objects once they are no longer needed:
// a shader that failed to compile right away, and both stage shaders after
// the link attempt, whether it succeeded or not.
//
// It only has an effect when the context implements ShaderDeleter. Without
// it, shader objects stay alive until the caller or the context frees them.
func ReleaseShaders() Option {
	return func(o *options) {
		o.releaseShaders = true
	}
}
