package physics

// K is Coulomb's constant in N·m²/C².
const K = 8.99e9

// CoulombsLaw returns the magnitude of the electrostatic force between two
// charges of magnitudes q1 and q2 (coulombs) separated by d metres.
// A zero distance is not guarded and yields +Inf (or NaN for zero charges).
func CoulombsLaw(q1, q2, d float64) float64 {
	return K * q1 * q2 / (d * d)
}
