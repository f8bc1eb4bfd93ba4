package force

import "errors"

// Domain errors for curve operations.
var (
	// ErrUnknownParam indicates SetParam was called with a name the curve does not define.
	ErrUnknownParam = errors.New("force: unknown parameter")

	// ErrUnknownCurve indicates a curve name missing from the registry.
	ErrUnknownCurve = errors.New("force: unknown curve")

	// ErrEmptySeries indicates an operation that needs at least one sample.
	ErrEmptySeries = errors.New("force: empty series")

	// ErrNoFiniteSamples indicates a series whose every sample is NaN or infinite.
	ErrNoFiniteSamples = errors.New("force: no finite samples")

	// ErrLengthMismatch indicates X and Y of a series differ in length.
	ErrLengthMismatch = errors.New("force: x and y length mismatch")
)

// ParamError wraps ErrUnknownParam with the curve and parameter involved.
type ParamError struct {
	Curve string
	Param string
}

func (e *ParamError) Error() string {
	return "force: " + e.Curve + ": unknown parameter " + e.Param
}

func (e *ParamError) Unwrap() error {
	return ErrUnknownParam
}
