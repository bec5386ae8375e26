package dungeon

import "github.com/KirkDiggler/rpg-dungeon/internal/pkg/random"

const (
	// caveMaskChance is the share of walls eligible for erosion
	caveMaskChance = 0.20
	// caveSeedChance is the initial density of the cave field
	caveSeedChance = 0.45
	// caveWallThreshold is the 3x3 cave count that keeps a cell solid
	caveWallThreshold = 5
	// minCaveIterations and maxCaveIterations bound the automaton passes
	minCaveIterations = 4
	maxCaveIterations = 6

	// openFloorThreshold is the 3x3 floor count that opens a wall
	openFloorThreshold = 4
	openPasses         = 3
	extraCorridors     = 10
)

// erodeCaves runs the cellular automaton over a random subset of walls and
// writes the result back only at those cells. It returns the pass count.
func (g *Grid) erodeCaves(rng *random.Source) int {
	size := len(g.tiles)
	mask := make([]bool, size)
	cave := make([]bool, size)
	for i, t := range g.tiles {
		eligible := rng.Float64() < caveMaskChance
		seeded := rng.Float64() < caveSeedChance
		mask[i] = t == Wall && eligible
		cave[i] = mask[i] && seeded
	}

	passes := rng.IntRange(minCaveIterations, maxCaveIterations)
	next := make([]bool, size)
	for p := 0; p < passes; p++ {
		copy(next, cave)
		for y := 1; y < g.height-1; y++ {
			for x := 1; x < g.width-1; x++ {
				idx := y*g.width + x
				if !mask[idx] {
					continue
				}
				next[idx] = g.countCave(cave, x, y) >= caveWallThreshold
			}
		}
		cave, next = next, cave
	}

	for i := range g.tiles {
		if !mask[i] {
			continue
		}
		if cave[i] {
			g.tiles[i] = Wall
		} else {
			g.tiles[i] = Floor
		}
	}
	return passes
}

func (g *Grid) countCave(cave []bool, x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if cave[(y+dy)*g.width+x+dx] {
				n++
			}
		}
	}
	return n
}

// openUp turns interior walls with enough floor around them into floor.
// The scan updates in place, so openings cascade within a pass.
func (g *Grid) openUp() {
	for x := 1; x < g.width-1; x++ {
		for y := 1; y < g.height-1; y++ {
			if g.At(x, y) != Wall {
				continue
			}
			if g.countAround(x, y, Floor) >= openFloorThreshold {
				g.set(x, y, Floor)
			}
		}
	}
}

// forceOpen grows the floor outward from existing floor, breadth first,
// until at most maxWalls walls remain.
func (g *Grid) forceOpen(maxWalls int) {
	walls := g.WallCount()
	if walls <= maxWalls {
		return
	}

	var queue []int
	for i, t := range g.tiles {
		if t == Floor {
			queue = append(queue, i)
		}
	}
	if len(queue) == 0 {
		cx, cy := g.width/2, g.height/2
		g.set(cx, cy, Floor)
		walls--
		queue = append(queue, cy*g.width+cx)
	}

	offsets := [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	for len(queue) > 0 && walls > maxWalls {
		idx := queue[0]
		queue = queue[1:]
		x, y := idx%g.width, idx/g.width
		for _, o := range offsets {
			nx, ny := x+o[0], y+o[1]
			if !g.InBounds(nx, ny) || g.At(nx, ny) != Wall {
				continue
			}
			g.set(nx, ny, Floor)
			walls--
			queue = append(queue, ny*g.width+nx)
			if walls <= maxWalls {
				return
			}
		}
	}
}
