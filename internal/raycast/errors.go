package raycast

import (
	"errors"
	"fmt"
)

// ErrRayEscaped is returned when a traversal leaves the grid without hitting a
// wall. It means the border-wall precondition was violated; the result is
// never clamped.
var ErrRayEscaped = errors.New("raycast: ray left the grid without hitting a wall")

// Validation error codes.
const (
	CodeEmptyGrid        = "EMPTY_GRID"
	CodeRaggedGrid       = "RAGGED_GRID"
	CodeOpenBorder       = "OPEN_BORDER"
	CodeStartInWall      = "START_IN_WALL"
	CodeStartOutOfBounds = "START_OUT_OF_BOUNDS"
	CodeDegenerateCamera = "DEGENERATE_CAMERA"
	CodeMissingTexture   = "MISSING_TEXTURE"
	CodeBadTextureSize   = "BAD_TEXTURE_SIZE"
	CodeBadMotion        = "BAD_MOTION"
)

// ValidationError contains details about a scene configuration failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func invalid(code, format string, args ...any) error {
	return ValidationError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// IsCode reports whether err is a ValidationError with the given code.
func IsCode(err error, code string) bool {
	var ve ValidationError
	return errors.As(err, &ve) && ve.Code == code
}
