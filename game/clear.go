package game

// FullRows returns the indices of completely occupied rows, top to
// bottom.
func FullRows(b *Board) []int {
	var rows []int
	for row := 0; row < b.Height(); row++ {
		full := true
		for col := 0; col < b.Width(); col++ {
			if !b.IsOccupied(col, row) {
				full = false
				break
			}
		}
		if full {
			rows = append(rows, row)
		}
	}
	return rows
}

// ClearFull removes every full row from the board and reports how many
// were cleared (0-4 after a single lock).
func ClearFull(b *Board) int {
	rows := FullRows(b)
	b.ClearRows(rows)
	return len(rows)
}
