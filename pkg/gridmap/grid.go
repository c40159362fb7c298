// pkg/gridmap/grid.go
package gridmap

// Grid is the walkability model of the play field. Cells become blocked when
// a tower is built on them and never become walkable again until the whole
// grid is rebuilt. A set of protected cells can never be blocked.
type Grid struct {
	Width, Height int
	Diagonal      bool // allow diagonal steps in pathfinding

	blocked   []bool
	wear      []int
	maxWear   int
	protected map[Cell]bool
}

// NewGrid creates a fully walkable grid. maxWear is the starting terrain wear
// value of every cell.
func NewGrid(width, height, maxWear int) *Grid {
	g := &Grid{
		Width:     width,
		Height:    height,
		Diagonal:  true,
		blocked:   make([]bool, width*height),
		wear:      make([]int, width*height),
		maxWear:   maxWear,
		protected: make(map[Cell]bool),
	}
	for i := range g.wear {
		g.wear[i] = maxWear
	}
	return g
}

// InBounds reports whether c lies on the grid.
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < g.Width && c.Y < g.Height
}

// IsWalkable reports whether c is on the grid and not blocked.
func (g *Grid) IsWalkable(c Cell) bool {
	return g.InBounds(c) && !g.blocked[g.index(c)]
}

// IsBlocked reports whether c is blocked. Out-of-bounds cells count as blocked.
func (g *Grid) IsBlocked(c Cell) bool {
	return !g.IsWalkable(c)
}

// Protect adds cells to the set that Block refuses to touch.
func (g *Grid) Protect(cells ...Cell) {
	for _, c := range cells {
		g.protected[c] = true
	}
}

// IsProtected reports whether c is in the protected set.
func (g *Grid) IsProtected(c Cell) bool {
	return g.protected[c]
}

// Block marks c permanently non-walkable. It returns false and changes nothing
// when c is out of bounds, protected or already blocked.
func (g *Grid) Block(c Cell) bool {
	if !g.InBounds(c) || g.protected[c] {
		return false
	}
	i := g.index(c)
	if g.blocked[i] {
		return false
	}
	g.blocked[i] = true
	return true
}

// HasRouteWithout reports whether a route from -> to would still exist if
// extra were blocked as well.
func (g *Grid) HasRouteWithout(extra, from, to Cell) bool {
	if !g.InBounds(extra) {
		return AStar(from, to, g) != nil
	}
	i := g.index(extra)
	was := g.blocked[i]
	g.blocked[i] = true
	path := AStar(from, to, g)
	g.blocked[i] = was
	return path != nil
}

// Neighbors returns the walkable neighbours of c in NeighborDirections order.
func (g *Grid) Neighbors(c Cell) []Cell {
	dirs := NeighborDirections
	if !g.Diagonal {
		dirs = dirs[:4]
	}
	out := make([]Cell, 0, len(dirs))
	for _, d := range dirs {
		n := c.Add(d)
		if g.IsWalkable(n) {
			out = append(out, n)
		}
	}
	return out
}

// Wear returns the terrain wear value of c, or 0 off the grid.
func (g *Grid) Wear(c Cell) int {
	if !g.InBounds(c) {
		return 0
	}
	return g.wear[g.index(c)]
}

// MaxWear is the wear value every cell starts with.
func (g *Grid) MaxWear() int {
	return g.maxWear
}

// WearDown decrements the wear counter of c, never below zero.
func (g *Grid) WearDown(c Cell) {
	if !g.InBounds(c) {
		return
	}
	if i := g.index(c); g.wear[i] > 0 {
		g.wear[i]--
	}
}

// Reset unblocks every cell and restores full wear. Protected cells stay
// protected.
func (g *Grid) Reset() {
	for i := range g.blocked {
		g.blocked[i] = false
		g.wear[i] = g.maxWear
	}
}

// BlockedCells returns every blocked cell in row-major order.
func (g *Grid) BlockedCells() []Cell {
	var cells []Cell
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.blocked[y*g.Width+x] {
				cells = append(cells, Cell{X: x, Y: y})
			}
		}
	}
	return cells
}

func (g *Grid) index(c Cell) int {
	return c.Y*g.Width + c.X
}
