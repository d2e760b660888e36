package main

import (
	"errors"
	"io"
	"testing"

	"github.com/go-theft-auto/shader"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "vertex",
			err:  &shader.CompileError{Kind: shader.Vertex, Log: "bad"},
			want: "a.vert: An error occurred compiling the shaders: bad",
		},
		{
			name: "fragment",
			err:  &shader.CompileError{Kind: shader.Fragment, Log: "bad"},
			want: "b.frag: An error occurred compiling the shaders: bad",
		},
		{
			name: "link",
			err:  &shader.LinkError{Log: "mismatch"},
			want: "a.vert + b.frag: Unable to initialize the shader program: mismatch",
		},
		{
			name: "other",
			err:  errors.New("boom"),
			want: "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := describe(tt.err, "a.vert", "b.frag"); got != tt.want {
				t.Errorf("describe() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRunMissingFile(t *testing.T) {
	if code := run(io.Discard, io.Discard, "does-not-exist.vert", "does-not-exist.frag"); code != 2 {
		t.Errorf("expected exit code 2, got %d", code)
	}
}
