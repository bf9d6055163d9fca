package core

import "math"

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// NopLogger discards everything
type NopLogger struct{}

func (NopLogger) Printf(format string, args ...interface{}) {}

// Default ray interval bounds. DefaultTMin keeps secondary rays from
// re-hitting the surface they leave.
const (
	DefaultTMin = 1e-4
	DefaultTMax = math.MaxFloat64
)
