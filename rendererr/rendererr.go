// Package rendererr defines the renderer's error categories: every failure the renderer can produce
// is one of a small set of kinds, each carrying the component that raised it
// and, where applicable, the underlying cause.
package rendererr

import "fmt"

// Kind classifies a renderer error for the host's recovery policy: some
// kinds are always fatal to the whole render, others are recovered locally
// by the component that raised them.
type Kind int

const (
	// Configuration covers malformed or out-of-range parameters caught at
	// validation time, before any ray is traced.
	Configuration Kind = iota
	// Resource covers failures loading or allocating an external resource
	// (a texture file, a scene reference) needed mid-render.
	Resource
	// Topology covers structural problems in scene or shader-graph data:
	// cycles, dangling references, inconsistent dicing state.
	Topology
	// Cancellation reports that a render was stopped by the host's
	// Canceler rather than failing on its own.
	Cancellation
	// Numerical covers NaN/Inf propagation and other floating-point
	// failures detected during shading or integration.
	Numerical
)

func (k Kind) String() string {
	switch k {
	case Configuration:
		return "configuration"
	case Resource:
		return "resource"
	case Topology:
		return "topology"
	case Cancellation:
		return "cancellation"
	case Numerical:
		return "numerical"
	default:
		return "unknown"
	}
}

// Error is the renderer's single error type. Component names the package or
// subsystem that raised it (e.g. "camera", "bvh", "texture"); Cause is the
// wrapped underlying error, if any.
type Error struct {
	Kind      Kind
	Component string
	Message   string
	Cause     error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %s: %v", e.Kind, e.Component, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s: %s", e.Kind, e.Component, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

func newf(kind Kind, component string, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Component: component, Message: fmt.Sprintf(format, args...), Cause: cause}
}

func NewConfigurationError(component string, cause error, format string, args ...any) *Error {
	return newf(Configuration, component, cause, format, args...)
}

func NewResourceError(component string, cause error, format string, args ...any) *Error {
	return newf(Resource, component, cause, format, args...)
}

func NewTopologyError(component string, cause error, format string, args ...any) *Error {
	return newf(Topology, component, cause, format, args...)
}

func NewCancellationError(component string, cause error, format string, args ...any) *Error {
	return newf(Cancellation, component, cause, format, args...)
}

func NewNumericalError(component string, cause error, format string, args ...any) *Error {
	return newf(Numerical, component, cause, format, args...)
}

// Is reports whether err is a renderer Error of the given Kind, walking
// the wrap chain the way errors.Is would but without the extra import at
// every call site that just wants to branch on Kind.
func Is(err error, kind Kind) bool {
	for err != nil {
		if e, ok := err.(*Error); ok {
			if e.Kind == kind {
				return true
			}
			err = e.Cause
			continue
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
