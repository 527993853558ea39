package stagecraft

// grid is a fixed-size 2-D array of Cells, the core data structure the
// Canvas diffs between frames. Grounded on germtb-goli/buffer.go's
// CellBuffer, adapted to this package's Cell type.
type grid struct {
	width, height int
	cells         []Cell
}

func newGrid(width, height int) *grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = BlankCell
	}
	return &grid{width: width, height: height, cells: cells}
}

func (g *grid) index(x, y int) int { return y*g.width + x }

func (g *grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

func (g *grid) get(x, y int) Cell {
	if !g.inBounds(x, y) {
		return BlankCell
	}
	return g.cells[g.index(x, y)]
}

func (g *grid) set(x, y int, c Cell) {
	if !g.inBounds(x, y) {
		return
	}
	g.cells[g.index(x, y)] = c
}

// resize grows or shrinks the grid in place, preserving the overlap with
// the previous contents (top-left anchored).
func (g *grid) resize(width, height int) {
	next := newGrid(width, height)
	w := min(width, g.width)
	h := min(height, g.height)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			next.set(x, y, g.get(x, y))
		}
	}
	*g = *next
}

func (g *grid) clone() *grid {
	out := &grid{width: g.width, height: g.height, cells: make([]Cell, len(g.cells))}
	copy(out.cells, g.cells)
	return out
}

// cellChange is one position whose cell differs between two grids.
type cellChange struct {
	X, Y int
	Cell Cell
}

// diffGrids returns every position where `to` differs from `from`, in
// row-major order so the caller can batch same-style runs per row.
// Grounded on germtb-goli/diff.go's DiffBuffers.
func diffGrids(from, to *grid) []cellChange {
	w := min(from.width, to.width)
	h := min(from.height, to.height)

	estimate := (to.width * to.height) / 5
	if estimate < 64 {
		estimate = 64
	}
	changes := make([]cellChange, 0, estimate)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			a, b := from.get(x, y), to.get(x, y)
			if !a.Equal(b) {
				changes = append(changes, cellChange{X: x, Y: y, Cell: b})
			}
		}
	}
	for y := h; y < to.height; y++ {
		for x := 0; x < to.width; x++ {
			changes = append(changes, cellChange{X: x, Y: y, Cell: to.get(x, y)})
		}
	}
	for y := 0; y < h; y++ {
		for x := w; x < to.width; x++ {
			changes = append(changes, cellChange{X: x, Y: y, Cell: to.get(x, y)})
		}
	}
	return changes
}

// CellRun is a horizontal run of cells sharing one style, the unit the
// Driver's write_cells contract consumes (spec.md §6).
type CellRun struct {
	X, Y  int
	Cells []Cell
}

// groupRuns batches row-adjacent, same-style changes into runs, matching
// spec.md §4.1's "Colour changes are batched into runs sharing the same
// style triple".
func groupRuns(changes []cellChange) []CellRun {
	if len(changes) == 0 {
		return nil
	}
	byRow := make(map[int][]cellChange)
	for _, c := range changes {
		byRow[c.Y] = append(byRow[c.Y], c)
	}

	var runs []CellRun
	for y, row := range byRow {
		// row is already x-ascending because diffGrids walks x ascending
		// per row, but guard with a stable sort in case callers reorder.
		insertionSortByX(row)
		var cur *CellRun
		for _, c := range row {
			if cur != nil && c.X == cur.X+len(cur.Cells) && cur.Cells[len(cur.Cells)-1].Style == c.Cell.Style {
				cur.Cells = append(cur.Cells, c.Cell)
				continue
			}
			runs = append(runs, CellRun{X: c.X, Y: y, Cells: []Cell{c.Cell}})
			cur = &runs[len(runs)-1]
		}
	}
	return runs
}

func insertionSortByX(row []cellChange) {
	for i := 1; i < len(row); i++ {
		j := i
		for j > 0 && row[j-1].X > row[j].X {
			row[j-1], row[j] = row[j], row[j-1]
			j--
		}
	}
}
