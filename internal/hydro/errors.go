package hydro

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownShape indicates a cross-section other than circular, rectangular or annular.
var ErrUnknownShape = errors.New("hydro: unknown shape")

// ErrInvalidGeometry indicates dimensions that give a non-positive hydraulic
// diameter or area, such as an annulus whose inner diameter is not smaller
// than its outer one.
var ErrInvalidGeometry = errors.New("hydro: invalid geometry")

// Dimension names a geometric input.
type Dimension struct {
	Name        string
	Description string
}

// MissingDimensionError lists the dimensions a shape needs but did not get.
type MissingDimensionError struct {
	Shape   Shape
	Missing []Dimension
}

func (e *MissingDimensionError) Error() string {
	names := make([]string, len(e.Missing))
	for i, d := range e.Missing {
		names[i] = d.Name
	}
	return fmt.Sprintf("hydro: %s section missing %s", e.Shape, strings.Join(names, ", "))
}
