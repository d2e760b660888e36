package shader

import (
	"errors"
	"fmt"
)

// Kind identifies a pipeline stage. It is independent of any graphics API;
// backends map it to their own constants.
type Kind uint8

const (
	// Vertex is the vertex processing stage.
	Vertex Kind = iota + 1
	// Fragment is the fragment processing stage.
	Fragment
)

// ErrUnknownKind is returned when a Kind is neither Vertex nor Fragment.
var ErrUnknownKind = errors.New("unknown shader kind")

// String returns the lowercase stage name.
func (k Kind) String() string {
	switch k {
	case Vertex:
		return "vertex"
	case Fragment:
		return "fragment"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Valid reports whether k names a supported stage.
func (k Kind) Valid() bool {
	return k == Vertex || k == Fragment
}
