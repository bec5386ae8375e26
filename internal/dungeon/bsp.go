package dungeon

import "github.com/KirkDiggler/rpg-dungeon/internal/pkg/random"

// roomInset is the gap kept between a leaf edge and its room on each side.
const roomInset = 2

// minRoomEdge is the smallest room edge a leaf can produce.
const minRoomEdge = 3

// bspNode is one region of the partition tree. Only leaves own a room.
type bspNode struct {
	x, y, w, h  int
	left, right *bspNode
	room        *Rect
}

func (n *bspNode) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// split partitions n recursively until a side drops below twice minSize.
// Wide regions favor vertical cuts and tall regions horizontal ones.
func (n *bspNode) split(rng *random.Source, minSize int) {
	if n.w < minSize*2 || n.h < minSize*2 {
		return
	}

	horizontal := rng.Float64() > float64(n.w)/float64(n.w+n.h)
	if horizontal {
		span := n.h - minSize*2
		if span < 1 {
			return
		}
		at := minSize + rng.IntN(span)
		n.left = &bspNode{x: n.x, y: n.y, w: n.w, h: at}
		n.right = &bspNode{x: n.x, y: n.y + at, w: n.w, h: n.h - at}
	} else {
		span := n.w - minSize*2
		if span < 1 {
			return
		}
		at := minSize + rng.IntN(span)
		n.left = &bspNode{x: n.x, y: n.y, w: at, h: n.h}
		n.right = &bspNode{x: n.x + at, y: n.y, w: n.w - at, h: n.h}
	}

	n.left.split(rng, minSize)
	n.right.split(rng, minSize)
}

// collectRooms places one centered room in every leaf, appending them in
// left-to-right tree order.
func (n *bspNode) collectRooms(rooms []Rect) []Rect {
	if !n.isLeaf() {
		if n.left != nil {
			rooms = n.left.collectRooms(rooms)
		}
		if n.right != nil {
			rooms = n.right.collectRooms(rooms)
		}
		return rooms
	}

	w := max(minRoomEdge, n.w-roomInset*2)
	h := max(minRoomEdge, n.h-roomInset*2)
	room := Rect{
		X: n.x + (n.w-w)/2,
		Y: n.y + (n.h-h)/2,
		W: w,
		H: h,
	}
	n.room = &room
	return append(rooms, room)
}
