package graphics

import "fmt"

// GLError wraps a raw OpenGL error code with the operation that produced it.
// Any GL error in this program is unrecoverable.
type GLError struct {
	Op   string
	Code uint32
}

func (e *GLError) Error() string {
	return fmt.Sprintf("%s: GL error 0x%04x", e.Op, e.Code)
}
