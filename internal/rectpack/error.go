package rectpack

import "fmt"

type AssertionError struct {
	message string
}

// [AssertionError] implements [error]
func (e AssertionError) Error() string {
	return e.message
}

// OutOfBoundsError reports a placement whose footprint would leave the board
// given its anchor.
type OutOfBoundsError struct {
	X, Y int
}

func (e OutOfBoundsError) Error() string {
	return fmt.Sprintf("placement at %d:%d out of bounds", e.X, e.Y)
}

// FilledCellError reports the first occupied cell found under a placement
// footprint, in row-major scan order.
type FilledCellError struct {
	X, Y int
}

func (e FilledCellError) Error() string {
	return fmt.Sprintf("cell %d:%d is already filled", e.X, e.Y)
}
