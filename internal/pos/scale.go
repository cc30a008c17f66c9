package pos

// Reading is one sample from the scale.
type Reading struct {
	Weight int
	Stable bool
}

// DefaultIncrement is the scale graduation in pounds.
const DefaultIncrement = 20

// ScaleGate holds the live reading and refuses captures while it moves.
type ScaleGate struct {
	reading   Reading
	increment int
}

// NewScaleGate starts from an initial reading.
func NewScaleGate(initial Reading, increment int) *ScaleGate {
	if increment <= 0 {
		increment = DefaultIncrement
	}
	return &ScaleGate{reading: initial, increment: increment}
}

// Update replaces the live reading.
func (g *ScaleGate) Update(r Reading) {
	g.reading = r
}

// Reading returns the live reading.
func (g *ScaleGate) Reading() Reading {
	return g.reading
}

// Capture returns the current weight rounded to the scale graduation. The
// stability flag is checked at call time, not when the UI last rendered.
func (g *ScaleGate) Capture() (int, error) {
	if !g.reading.Stable {
		return 0, ErrUnstableScale
	}
	return RoundToIncrement(g.reading.Weight, g.increment), nil
}

// RoundToIncrement rounds to the nearest multiple of increment, halves away
// from zero.
func RoundToIncrement(value, increment int) int {
	if increment <= 0 {
		return value
	}
	if value < 0 {
		return -RoundToIncrement(-value, increment)
	}
	return (value + increment/2) / increment * increment
}
