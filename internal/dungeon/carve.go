package dungeon

import "github.com/KirkDiggler/rpg-dungeon/internal/pkg/random"

// carveRoom writes r as floor, clipped to the grid
func (g *Grid) carveRoom(r Rect) {
	c := r.Clip(g.width, g.height)
	for y := c.Y; y < c.Y+c.H; y++ {
		for x := c.X; x < c.X+c.W; x++ {
			g.set(x, y, Floor)
		}
	}
}

// carveCorridor digs an L-shaped tunnel between two points. Both ends are
// clamped into the grid first; the elbow orientation is a coin flip.
func (g *Grid) carveCorridor(rng *random.Source, x1, y1, x2, y2 int) {
	x1, y1 = g.clamp(x1, y1)
	x2, y2 = g.clamp(x2, y2)

	if rng.Float64() > 0.5 {
		g.carveHorizontal(x1, x2, y1)
		g.carveVertical(y1, y2, x2)
		return
	}
	g.carveVertical(y1, y2, x1)
	g.carveHorizontal(x1, x2, y2)
}

func (g *Grid) carveHorizontal(x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		g.set(x, y, Floor)
	}
}

func (g *Grid) carveVertical(y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		g.set(x, y, Floor)
	}
}

func (g *Grid) clamp(x, y int) (int, int) {
	return min(max(x, 0), g.width-1), min(max(y, 0), g.height-1)
}

// connectRooms links consecutive rooms, then adds len/2 extra links between
// random room pairs. Full connectivity is not guaranteed by the extras, only
// by the consecutive chain.
func (g *Grid) connectRooms(rng *random.Source, rooms []Rect) {
	for i := 0; i+1 < len(rooms); i++ {
		ax, ay := rooms[i].Center()
		bx, by := rooms[i+1].Center()
		g.carveCorridor(rng, ax, ay, bx, by)
	}

	for i := 0; i < len(rooms)/2; i++ {
		a := rng.IntN(len(rooms))
		b := rng.IntN(len(rooms))
		if a == b {
			continue
		}
		ax, ay := rooms[a].Center()
		bx, by := rooms[b].Center()
		g.carveCorridor(rng, ax, ay, bx, by)
	}
}

// randomCorridors digs n corridors between random points kept away from the
// border when the grid is large enough.
func (g *Grid) randomCorridors(rng *random.Source, n int) {
	lox, hix := interiorSpan(g.width)
	loy, hiy := interiorSpan(g.height)
	for i := 0; i < n; i++ {
		g.carveCorridor(rng,
			rng.IntRange(lox, hix), rng.IntRange(loy, hiy),
			rng.IntRange(lox, hix), rng.IntRange(loy, hiy),
		)
	}
}

// interiorSpan returns [5, dim-6], falling back to the whole axis on small grids.
func interiorSpan(dim int) (int, int) {
	const margin = 5
	lo, hi := margin, dim-margin-1
	if hi < lo {
		return 0, dim - 1
	}
	return lo, hi
}
