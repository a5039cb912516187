package puzzle

// Default returns the built-in 7x7 instance: three carved-out cells on the
// bottom row, one 3x2 piece pre-placed at the top and five pieces left to
// place. Piece areas exactly balance the open cells, so the first solution
// found is a full tiling.
func Default() Definition {
	return Definition{
		Width:  7,
		Height: 7,
		Blocked: []Cell{
			{X: 0, Y: 6},
			{X: 3, Y: 6},
			{X: 6, Y: 6},
		},
		Fixed: []Placement{
			{Width: 3, Height: 2, Color: 9, X: 2, Y: 0},
		},
		Pool: []PoolEntry{
			{Width: 2, Height: 1, Colors: []int{1, 2}},
			{Width: 2, Height: 6, Colors: []int{3, 4}},
			{Width: 3, Height: 4, Colors: []int{5}},
		},
	}
}
