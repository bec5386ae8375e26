package dungeon

// Rect is an axis-aligned room rectangle in tile coordinates
type Rect struct {
	X, Y, W, H int
}

// Center returns the integer center of the rectangle
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Clip returns the part of r that lies inside a width x height grid
func (r Rect) Clip(width, height int) Rect {
	x1, y1 := max(0, r.X), max(0, r.Y)
	x2, y2 := min(width, r.X+r.W), min(height, r.Y+r.H)
	if x2 < x1 {
		x2 = x1
	}
	if y2 < y1 {
		y2 = y1
	}
	return Rect{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}
}

// Contains reports whether (x, y) lies inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}
