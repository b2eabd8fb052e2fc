package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vector is a 2D vector kept in polar form. Angle is in radians, measured
// counter-clockwise from the positive X axis. A negative Magnitude points
// the opposite way.
type Vector struct {
	Magnitude float64
	Angle     float64
}

// NewWithRadians builds a vector from a magnitude and an angle in radians.
func NewWithRadians(magnitude, angle float64) Vector {
	return Vector{Magnitude: magnitude, Angle: angle}
}

// Angle returns the direction of the vector (dx, dy) in radians, in [-π, π].
// Angle(-1, 0) is +π. The degenerate Angle(0, 0) is 0.
func Angle(dx, dy float64) float64 {
	return math.Atan2(dy, dx)
}

// X returns the horizontal Cartesian component.
func (v Vector) X() float64 { return v.Magnitude * math.Cos(v.Angle) }

// Y returns the vertical Cartesian component.
func (v Vector) Y() float64 { return v.Magnitude * math.Sin(v.Angle) }

func (v Vector) cartesian() mgl64.Vec2 {
	return mgl64.Vec2{v.X(), v.Y()}
}

func fromCartesian(c mgl64.Vec2) Vector {
	return Vector{Magnitude: c.Len(), Angle: Angle(c.X(), c.Y())}
}

// Add returns the superposition v + o. Both operands go through Cartesian
// components, so the result always has a non-negative magnitude.
func (v Vector) Add(o Vector) Vector {
	return fromCartesian(v.cartesian().Add(o.cartesian()))
}

// Recip returns the vector pointing the opposite way with the same magnitude.
func (v Vector) Recip() Vector {
	return Vector{Magnitude: v.Magnitude, Angle: normalizeAngle(v.Angle + math.Pi)}
}

// Degrees returns the angle converted to degrees.
func (v Vector) Degrees() float64 {
	return mgl64.RadToDeg(v.Angle)
}

// IsFinite reports whether both the magnitude and the angle are finite numbers.
func (v Vector) IsFinite() bool {
	return !math.IsNaN(v.Magnitude) && !math.IsInf(v.Magnitude, 0) &&
		!math.IsNaN(v.Angle) && !math.IsInf(v.Angle, 0)
}

// ApproxEqual compares the Cartesian components of both vectors within eps.
// Two polar forms of the same vector (angle off by 2π, or negated magnitude
// with a rotated angle) compare equal.
func (v Vector) ApproxEqual(o Vector, eps float64) bool {
	return math.Abs(v.X()-o.X()) <= eps && math.Abs(v.Y()-o.Y()) <= eps
}

func normalizeAngle(a float64) float64 {
	return math.Remainder(a, 2*math.Pi)
}
