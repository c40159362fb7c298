// component/movement.go
package component

import "github.com/PaliBr/gamejam/pkg/gridmap"

// Position — компонент позиции, in pixels.
type Position struct {
	X, Y float64
}

// Path is an ordered list of cells to walk and the index of the next one.
type Path struct {
	Cells  []gridmap.Cell
	Cursor int
}

// Remaining returns how many cells are left to walk.
func (p *Path) Remaining() int {
	if p.Cursor >= len(p.Cells) {
		return 0
	}
	return len(p.Cells) - p.Cursor
}

// Next returns the next cell to walk to.
func (p *Path) Next() (gridmap.Cell, bool) {
	if p.Cursor >= len(p.Cells) {
		return gridmap.Cell{}, false
	}
	return p.Cells[p.Cursor], true
}

// Replace swaps in a new route starting from its first cell.
func (p *Path) Replace(cells []gridmap.Cell) {
	p.Cells = cells
	p.Cursor = 0
}
