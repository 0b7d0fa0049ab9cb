package rewire

// Direction is the way the coefficient has to move to reach the target.
type Direction int

const (
	// DirectionRaise moves the coefficient up by pairing similar degrees.
	DirectionRaise Direction = iota
	// DirectionLower moves the coefficient down by pairing dissimilar degrees.
	DirectionLower
)

// DirectionFor returns the direction that moves current toward target.
// A current value below target needs raising; anything else, including an
// undefined (NaN) coefficient, is treated as lowering.
func DirectionFor(current, target float64) Direction {
	if current < target {
		return DirectionRaise
	}
	return DirectionLower
}

func (d Direction) String() string {
	if d == DirectionRaise {
		return "raise"
	}
	return "lower"
}

// needsMove reports whether r is still on the wrong side of target.
// NaN never needs moving.
func (d Direction) needsMove(r, target float64) bool {
	if d == DirectionRaise {
		return r < target
	}
	return r > target
}

// reached reports whether r is on or past target. NaN never reaches.
func (d Direction) reached(r, target float64) bool {
	if d == DirectionRaise {
		return r >= target
	}
	return r <= target
}

// Extreme returns the reconstruction extreme lying in this direction.
func (d Direction) Extreme() Extreme {
	if d == DirectionRaise {
		return ExtremeMax
	}
	return ExtremeMin
}

// Extreme is the assortativity extreme a reconstruction pushes toward.
type Extreme int

const (
	// ExtremeMax connects high-degree nodes to each other first.
	ExtremeMax Extreme = iota
	// ExtremeMin connects low-degree nodes to high-degree nodes first.
	ExtremeMin
)

// Opposite returns the other extreme.
func (e Extreme) Opposite() Extreme {
	if e == ExtremeMax {
		return ExtremeMin
	}
	return ExtremeMax
}

func (e Extreme) String() string {
	if e == ExtremeMax {
		return "max"
	}
	return "min"
}
