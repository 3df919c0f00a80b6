package invaders

// CalcFleetSize returns how many unit columns and rows fit on the screen.
//
// Columns use the full screen width, rows only the top half. Each count is
// then reduced to an odd number that leaves at least one empty unit of margin
// on every side: even counts lose one, odd counts lose two.
//
// Non-positive unit sizes yield (0, 0). Units that are large relative to the
// screen can produce zero or negative counts; NewFleet treats those as an
// empty fleet.
func CalcFleetSize(unitW, unitH, screenW, screenH int) (cols, rows int) {
	if unitW <= 0 || unitH <= 0 {
		return 0, 0
	}
	cols = oddWithMargin(screenW / unitW)
	rows = oddWithMargin((screenH / 2) / unitH)
	return cols, rows
}

func oddWithMargin(n int) int {
	if n%2 == 0 {
		return n - 1
	}
	return n - 2
}

// CalcOffsets returns the top-left corner of a cols x rows fleet, centered
// horizontally on the screen and vertically within its top half.
func CalcOffsets(unitW, unitH, screenW, screenH, cols, rows int) (xOffset, yOffset int) {
	xOffset = (screenW - cols*unitW) / 2
	yOffset = ((screenH / 2) - rows*unitH) / 2
	return xOffset, yOffset
}
