// SPDX-License-Identifier: MIT

package dial

const (
	// Size is the number of positions on the dial.
	Size = 100
	// Start is the initial pointer position.
	Start = 50
)

// Dial is the fold state: the pointer Position in [0, Size) and the number of
// zero events counted so far.
type Dial struct {
	Position int
	Count    int
}

// New returns a dial at Start with a zero count.
func New() Dial {
	return Dial{Position: Start}
}

// StepStop applies delta and counts one event if the pointer stops on 0.
func (d Dial) StepStop(delta int) Dial {
	next := mod(d.Position+delta, Size)
	if next == 0 {
		d.Count++
	}
	d.Position = next

	return d
}

// StepCross applies delta and counts every time the pointer passes through or
// lands on 0 during the rotation.
func (d Dial) StepCross(delta int) Dial {
	unbounded := d.Position + delta
	next := mod(unbounded, Size)

	crossed := abs(floorDiv(unbounded, Size) - floorDiv(d.Position, Size))
	if delta < 0 {
		switch {
		case next == 0 && d.Position == 0:
			// floor difference is already right
		case next == 0:
			crossed++
		case d.Position == 0:
			crossed--
		}
	}

	d.Count += crossed
	d.Position = next

	return d
}

// CountZeroStops folds deltas from a fresh dial with StepStop.
func CountZeroStops(deltas []int) int {
	d := New()
	for _, delta := range deltas {
		d = d.StepStop(delta)
	}

	return d.Count
}

// CountZeroCrossings folds deltas from a fresh dial with StepCross.
func CountZeroCrossings(deltas []int) int {
	d := New()
	for _, delta := range deltas {
		d = d.StepCross(delta)
	}

	return d.Count
}

// mod is the Euclidean remainder: always in [0, m) for m > 0.
func mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}

	return r
}

// floorDiv rounds toward negative infinity for m > 0.
func floorDiv(a, m int) int {
	q := a / m
	if a%m < 0 {
		q--
	}

	return q
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
