// pkg/gridmap/cell.go
package gridmap

import (
	"fmt"
	"math"
)

// Cell is one square of the walkability grid, addressed by column X and row Y.
type Cell struct {
	X, Y int
}

// NeighborDirections lists the eight moves from a cell: the four orthogonal
// ones first (E, S, W, N), then the diagonals. Pathfinding expands neighbours
// in exactly this order, which keeps results deterministic.
var NeighborDirections = []Cell{
	{X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 0, Y: -1},
	{X: 1, Y: 1}, {X: -1, Y: 1}, {X: -1, Y: -1}, {X: 1, Y: -1},
}

// Add returns the component-wise sum of two cells.
func (c Cell) Add(other Cell) Cell {
	return Cell{X: c.X + other.X, Y: c.Y + other.Y}
}

// Subtract returns the component-wise difference of two cells.
func (c Cell) Subtract(other Cell) Cell {
	return Cell{X: c.X - other.X, Y: c.Y - other.Y}
}

// IsAdjacent reports whether other is one of the eight neighbours of c.
func (c Cell) IsAdjacent(other Cell) bool {
	d := c.Subtract(other)
	if d.X == 0 && d.Y == 0 {
		return false
	}
	return abs(d.X) <= 1 && abs(d.Y) <= 1
}

// IsDiagonal reports whether the step from c to other is diagonal.
func (c Cell) IsDiagonal(other Cell) bool {
	d := c.Subtract(other)
	return abs(d.X) == 1 && abs(d.Y) == 1
}

// Distance is the straight-line distance between cell centres, in cells.
func (c Cell) Distance(other Cell) float64 {
	dx := float64(c.X - other.X)
	dy := float64(c.Y - other.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// ToPixel returns the pixel coordinates of the cell centre.
func (c Cell) ToPixel(cellSize float64) (x, y float64) {
	x = float64(c.X)*cellSize + cellSize/2
	y = float64(c.Y)*cellSize + cellSize/2
	return
}

// PixelToCell maps a pixel position to the cell that contains it.
func PixelToCell(x, y, cellSize float64) Cell {
	return Cell{
		X: int(math.Floor(x / cellSize)),
		Y: int(math.Floor(y / cellSize)),
	}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
