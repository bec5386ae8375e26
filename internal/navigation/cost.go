// Package navigation builds the per-turn traversal data the AI moves on: a
// cost field from terrain plus occupancy, and a weighted Dijkstra distance
// field rooted at a target cell.
package navigation

// Terrain is the read side of a tile grid
type Terrain interface {
	Width() int
	Height() int
	IsWalkable(x, y int) bool
}

// CostField marks each cell passable (1) or impassable (0)
type CostField struct {
	Width, Height int
	Cost          []uint8
}

// NewCostField creates a field with floor at 1 and everything else at 0
func NewCostField(t Terrain) *CostField {
	w, h := t.Width(), t.Height()
	f := &CostField{
		Width:  w,
		Height: h,
		Cost:   make([]uint8, w*h),
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if t.IsWalkable(x, y) {
				f.Cost[y*w+x] = 1
			}
		}
	}
	return f
}

// Block makes a cell impassable. Out-of-bounds cells are ignored.
func (f *CostField) Block(x, y int) {
	if f.inBounds(x, y) {
		f.Cost[y*f.Width+x] = 0
	}
}

// Passable reports whether a cell has non-zero cost
func (f *CostField) Passable(x, y int) bool {
	return f.inBounds(x, y) && f.Cost[y*f.Width+x] > 0
}

func (f *CostField) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < f.Width && y < f.Height
}
