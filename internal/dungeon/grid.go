// Package dungeon builds and queries the tile grid a level is played on.
package dungeon

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
)

// Tile is the content of one grid cell
type Tile uint8

const (
	// Wall blocks movement
	Wall Tile = iota
	// Floor can be walked on
	Floor
)

// String returns the glyph used by the ASCII renderer
func (t Tile) String() string {
	if t == Floor {
		return "."
	}
	return "#"
}

// Grid is a width x height array of tiles. A Grid handed out by the
// generator is never modified again; only this package can write tiles.
type Grid struct {
	width  int
	height int
	tiles  []Tile
}

// newGrid allocates a grid filled with walls
func newGrid(width, height int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		tiles:  make([]Tile, width*height),
	}
}

// ParseGrid builds a grid from rows of '#' (wall) and '.' (floor). It is
// the inverse of Render and lets fixed layouts be loaded for scenarios.
func ParseGrid(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, errors.InvalidArgument("grid needs at least one row and column")
	}

	g := newGrid(len(rows[0]), len(rows))
	for y, row := range rows {
		if len(row) != g.width {
			return nil, errors.InvalidArgumentf("row %d has width %d, want %d", y, len(row), g.width)
		}
		for x, c := range row {
			switch c {
			case '.':
				g.set(x, y, Floor)
			case '#':
			default:
				return nil, errors.InvalidArgumentf("unknown tile %q at (%d,%d)", c, x, y)
			}
		}
	}
	return g, nil
}

// Width returns the number of columns
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows
func (g *Grid) Height() int {
	return g.height
}

// InBounds reports whether (x, y) lies inside the grid
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the tile at (x, y). Out-of-bounds cells read as Wall.
func (g *Grid) At(x, y int) Tile {
	if !g.InBounds(x, y) {
		return Wall
	}
	return g.tiles[y*g.width+x]
}

// IsWalkable reports whether (x, y) is an in-bounds floor tile
func (g *Grid) IsWalkable(x, y int) bool {
	return g.At(x, y) == Floor
}

func (g *Grid) set(x, y int, t Tile) {
	if g.InBounds(x, y) {
		g.tiles[y*g.width+x] = t
	}
}

// WallCount returns the number of wall tiles
func (g *Grid) WallCount() int {
	n := 0
	for _, t := range g.tiles {
		if t == Wall {
			n++
		}
	}
	return n
}

// FloorCount returns the number of floor tiles
func (g *Grid) FloorCount() int {
	return len(g.tiles) - g.WallCount()
}

// WallFraction returns walls / total cells
func (g *Grid) WallFraction() float64 {
	if len(g.tiles) == 0 {
		return 0
	}
	return float64(g.WallCount()) / float64(len(g.tiles))
}

// FirstFloor returns the first floor cell in column-major scan order
func (g *Grid) FirstFloor() (x, y int, ok bool) {
	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			if g.IsWalkable(x, y) {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}

// ReachableFrom counts the floor cells reachable from (x, y) moving in the
// eight compass directions. A wall or out-of-bounds start reaches nothing.
func (g *Grid) ReachableFrom(x, y int) int {
	if !g.IsWalkable(x, y) {
		return 0
	}
	seen := make([]bool, len(g.tiles))
	queue := []int{y*g.width + x}
	seen[queue[0]] = true
	count := 0
	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]
		count++
		cx, cy := idx%g.width, idx/g.width
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				nx, ny := cx+dx, cy+dy
				if !g.IsWalkable(nx, ny) {
					continue
				}
				n := ny*g.width + nx
				if !seen[n] {
					seen[n] = true
					queue = append(queue, n)
				}
			}
		}
	}
	return count
}

// Render draws the grid as rows of '#' and '.'
func (g *Grid) Render() string {
	var b strings.Builder
	b.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			b.WriteString(g.At(x, y).String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Fingerprint hashes the layout. Equal grids have equal fingerprints, so
// two seeds can be compared without diffing renders.
func (g *Grid) Fingerprint() uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(fmt.Sprintf("%dx%d:", g.width, g.height))
	buf := make([]byte, len(g.tiles))
	for i, t := range g.tiles {
		buf[i] = byte(t)
	}
	_, _ = d.Write(buf)
	return d.Sum64()
}

// countAround counts cells equal to t in the 3x3 window centered on (x, y),
// the center included. Out-of-bounds cells count as Wall.
func (g *Grid) countAround(x, y int, t Tile) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if g.At(x+dx, y+dy) == t {
				n++
			}
		}
	}
	return n
}
