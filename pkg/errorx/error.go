package errorx

import "fmt"

// Error is the only error type surfaced to clients. Anything else raised
// below the handler layer is collapsed into Unknown before it reaches the
// response writer.
type Error struct {
	Code    Code
	Message string
}

func (e Error) Error() string {
	return e.Message
}

func New(code Code, format string, a ...any) Error {
	return Error{Code: code, Message: fmt.Sprintf(format, a...)}
}
