package navigation

// Step costs: cardinal = 2, diagonal = 3
const (
	costCardinal    = 2
	costDiagonal    = 3
	costUnreachable = 1<<30 - 1
)

// DirVectors lists the eight neighbors: N, NE, E, SE, S, SW, W, NW
var DirVectors = [8][2]int{
	{0, -1}, {1, -1}, {1, 0}, {1, 1},
	{0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

var dirCosts = [8]int{
	costCardinal, costDiagonal, costCardinal, costDiagonal,
	costCardinal, costDiagonal, costCardinal, costDiagonal,
}

type heapEntry struct {
	idx  int
	dist int
}

type minHeap []heapEntry

func (h *minHeap) push(e heapEntry) {
	*h = append(*h, e)
	i := len(*h) - 1
	for i > 0 {
		parent := (i - 1) / 2
		if (*h)[parent].dist <= (*h)[i].dist {
			break
		}
		(*h)[parent], (*h)[i] = (*h)[i], (*h)[parent]
		i = parent
	}
}

func (h *minHeap) pop() heapEntry {
	old := *h
	n := len(old)
	e := old[0]
	old[0] = old[n-1]
	*h = old[:n-1]

	i := 0
	for {
		left := 2*i + 1
		if left >= len(*h) {
			break
		}
		smallest := left
		if right := left + 1; right < len(*h) && (*h)[right].dist < (*h)[left].dist {
			smallest = right
		}
		if (*h)[i].dist <= (*h)[smallest].dist {
			break
		}
		(*h)[i], (*h)[smallest] = (*h)[smallest], (*h)[i]
		i = smallest
	}
	return e
}

// DistanceField holds weighted distances to a root cell
type DistanceField struct {
	Width, Height int
	RootX, RootY  int
	Distances     []int
}

// Compute runs Dijkstra outward from (rootX, rootY) over passable cells.
// The root itself may be impassable, as when it is the cell an occupant
// stands on; it still seeds the search at distance zero. Diagonal moves may
// cut corners.
func Compute(cost *CostField, rootX, rootY int) *DistanceField {
	size := cost.Width * cost.Height
	f := &DistanceField{
		Width:     cost.Width,
		Height:    cost.Height,
		RootX:     rootX,
		RootY:     rootY,
		Distances: make([]int, size),
	}
	for i := range f.Distances {
		f.Distances[i] = costUnreachable
	}
	if !cost.inBounds(rootX, rootY) {
		return f
	}

	w := cost.Width
	rootIdx := rootY*w + rootX
	f.Distances[rootIdx] = 0

	h := make(minHeap, 0, size/4)
	h.push(heapEntry{idx: rootIdx, dist: 0})

	for len(h) > 0 {
		entry := h.pop()
		if entry.dist > f.Distances[entry.idx] {
			continue
		}

		cx, cy := entry.idx%w, entry.idx/w
		for dir, v := range DirVectors {
			nx, ny := cx+v[0], cy+v[1]
			if !cost.Passable(nx, ny) {
				continue
			}
			nIdx := ny*w + nx
			newDist := entry.dist + dirCosts[dir]
			if newDist < f.Distances[nIdx] {
				f.Distances[nIdx] = newDist
				h.push(heapEntry{idx: nIdx, dist: newDist})
			}
		}
	}
	return f
}

// Distance returns the weighted distance at (x, y) and whether it is reachable
func (f *DistanceField) Distance(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return 0, false
	}
	d := f.Distances[y*f.Width+x]
	return d, d < costUnreachable
}

// FirstStep returns the neighbor of (x, y) on a shortest path to the root:
// the one minimizing its distance plus the step cost to reach it. It fails
// when (x, y) is unreachable or already the root. Ties go to the first
// direction in DirVectors order.
func (f *DistanceField) FirstStep(x, y int) (int, int, bool) {
	own, ok := f.Distance(x, y)
	if !ok || own == 0 {
		return x, y, false
	}

	bestX, bestY, best := x, y, costUnreachable
	for dir, v := range DirVectors {
		nx, ny := x+v[0], y+v[1]
		d, ok := f.Distance(nx, ny)
		if !ok || d >= own {
			continue
		}
		if total := d + dirCosts[dir]; total < best {
			bestX, bestY, best = nx, ny, total
		}
	}
	return bestX, bestY, best < costUnreachable
}

// FleeStep returns the passable, reachable neighbor of (x, y) farthest from
// the root. Neighbors are scanned with dx outer and dy inner, both -1..1,
// and the first maximum wins.
func (f *DistanceField) FleeStep(cost *CostField, x, y int) (int, int, bool) {
	found := false
	bestX, bestY, best := x, y, -1
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if !cost.Passable(nx, ny) {
				continue
			}
			d, ok := f.Distance(nx, ny)
			if !ok || d <= best {
				continue
			}
			bestX, bestY, best = nx, ny, d
			found = true
		}
	}
	return bestX, bestY, found
}
