package physics

import (
	"math"

	"github.com/zeusync/coulomb/pkg/sequence"
)

// Coordinates is a position in the plane, in metres.
type Coordinates struct {
	X, Y float64
}

// Sign is the polarity of a charge.
type Sign uint8

const (
	Positive Sign = iota
	Negative
)

func (s Sign) String() string {
	switch s {
	case Positive:
		return "Positive"
	case Negative:
		return "Negative"
	default:
		return "Unknown"
	}
}

// Interaction describes how two charges act on each other.
type Interaction uint8

const (
	Attract Interaction = iota
	Dispel
)

func (i Interaction) String() string {
	switch i {
	case Attract:
		return "Attract"
	case Dispel:
		return "Dispel"
	default:
		return "Unknown"
	}
}

// Charge is an unsigned magnitude in coulombs plus its Sign.
type Charge struct {
	Magnitude float64
	Sign      Sign
}

// NewCharge splits a signed quantity. Zero, including negative zero, is Positive.
func NewCharge(q float64) Charge {
	sign := Positive
	if q < 0 {
		sign = Negative
	}
	return Charge{Magnitude: math.Abs(q), Sign: sign}
}

// Value returns the signed quantity.
func (c Charge) Value() float64 {
	if c.Sign == Negative {
		return -c.Magnitude
	}
	return c.Magnitude
}

// Interaction returns Dispel for equal signs and Attract otherwise.
func (c Charge) Interaction(other Charge) Interaction {
	if c.Sign == other.Sign {
		return Dispel
	}
	return Attract
}

// PointCharge is a charge concentrated at a single position.
type PointCharge struct {
	C Coordinates
	Q Charge
}

// NewPointCharge places a charge of signed quantity q at (x, y).
func NewPointCharge(x, y, q float64) PointCharge {
	return PointCharge{
		C: Coordinates{X: x, Y: y},
		Q: NewCharge(q),
	}
}

// Distance2 computes Euclidean distance between two 2D points.
func Distance2(x1, y1, x2, y2 float64) float64 { return math.Hypot(x2-x1, y2-y1) }

// DistanceTo returns the distance between both charges.
func (p PointCharge) DistanceTo(other PointCharge) float64 {
	return Distance2(p.C.X, p.C.Y, other.C.X, other.C.Y)
}

// Interaction compares the signs of both charges.
func (p PointCharge) Interaction(other PointCharge) Interaction {
	return p.Q.Interaction(other.Q)
}

// Force returns the force that other exerts on p.
//
// The raw vector points from p toward other. An attracting pair keeps it,
// a dispelling pair gets it reversed so that p is pushed away.
// Coincident charges produce a non-finite magnitude.
func (p PointCharge) Force(other PointCharge) Vector {
	dx := other.C.X - p.C.X
	dy := other.C.Y - p.C.Y

	f := NewWithRadians(CoulombsLaw(p.Q.Magnitude, other.Q.Magnitude, p.DistanceTo(other)), Angle(dx, dy))
	if p.Interaction(other) == Dispel {
		return f.Recip()
	}
	return f
}

// NetForce superposes the forces every charge in others exerts on p.
// An empty list yields the zero vector.
func (p PointCharge) NetForce(others []PointCharge) Vector {
	forces := sequence.ToArray(sequence.From(others), p.Force)
	return sequence.From(forces).Reduce(NewWithRadians(0, 0), Vector.Add)
}
