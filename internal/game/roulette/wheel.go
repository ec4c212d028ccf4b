package roulette

// European single-zero wheel. The red/black partition of 1-36 is fixed by
// the physical wheel layout, not derivable from parity.
var redNumbers = map[int]bool{
	1: true, 3: true, 5: true, 7: true, 9: true, 12: true,
	14: true, 16: true, 18: true, 19: true, 21: true, 23: true,
	25: true, 27: true, 30: true, 32: true, 34: true, 36: true,
}

type Color string

const (
	ColorGreen Color = "green"
	ColorRed   Color = "red"
	ColorBlack Color = "black"
)

// ColorOf reports a pocket's color; 0 is green and belongs to neither side.
func ColorOf(n int) Color {
	switch {
	case n == 0:
		return ColorGreen
	case redNumbers[n]:
		return ColorRed
	default:
		return ColorBlack
	}
}

// dozenOf maps 1-36 to dozens 1-3; 0 belongs to no dozen.
func dozenOf(n int) int {
	if n == 0 {
		return 0
	}
	return (n-1)/12 + 1
}
