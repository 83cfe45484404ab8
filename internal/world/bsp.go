package world

import (
	"rogue-engine/internal/dice"
	"rogue-engine/internal/geom"
)

// bspNode is a rectangle of the partition tree; leaves carve rooms.
type bspNode struct {
	y, x, h, w  int
	left, right *bspNode
}

func (n *bspNode) isLeaf() bool { return n.left == nil && n.right == nil }

// split recursively partitions n until each leaf is close to the minimum
// room size, following the teacher-era BSP generators' min-size/ratio split.
func split(n *bspNode, d *dice.Dice, minSize int) {
	if n.h <= minSize*2 && n.w <= minSize*2 {
		return
	}
	splitHoriz := n.w > n.h
	if n.w == n.h {
		splitHoriz = d.Chance(2, 1)
	}
	if splitHoriz {
		if n.w < minSize*2 {
			return
		}
		at := d.Roll(minSize, n.w-minSize)
		n.left = &bspNode{y: n.y, x: n.x, h: n.h, w: at}
		n.right = &bspNode{y: n.y, x: n.x + at, h: n.h, w: n.w - at}
	} else {
		if n.h < minSize*2 {
			return
		}
		at := d.Roll(minSize, n.h-minSize)
		n.left = &bspNode{y: n.y, x: n.x, h: at, w: n.w}
		n.right = &bspNode{y: n.y + at, x: n.x, h: n.h - at, w: n.w}
	}
	split(n.left, d, minSize)
	split(n.right, d, minSize)
}

// genState is the BSP listener's carried-over state between leaf visits,
// mirroring original_source's BspListener mutable last-room bookkeeping.
type genState struct {
	m          *Map
	d          *dice.Dice
	lastCenter geom.Vec2
	haveLast   bool
	firstRoom  bool
	spawnPlayer bool
	playerPos  geom.Vec2
}

func visit(n *bspNode, st *genState) {
	if !n.isLeaf() {
		if n.left != nil {
			visit(n.left, st)
		}
		if n.right != nil {
			visit(n.right, st)
		}
		return
	}

	// carve a room within the leaf, shrunk by at least one tile of margin
	maxW := min(n.w-2, RoomHorizontalMaxSize)
	maxH := min(n.h-2, RoomVerticalMaxSize)
	if maxW < 2 {
		maxW = 2
	}
	if maxH < 2 {
		maxH = 2
	}
	roomW := st.d.Roll(min(RoomMinSize, maxW), maxW)
	roomH := st.d.Roll(min(RoomMinSize, maxH), maxH)
	roomY := n.y + 1 + st.d.Roll(0, max(0, n.h-roomH-2))
	roomX := n.x + 1 + st.d.Roll(0, max(0, n.w-roomW-2))

	rect := Rect{Begin: geom.Vec2{Y: roomY, X: roomX}, End: geom.Vec2{Y: roomY + roomH - 1, X: roomX + roomW - 1}}
	diamond := st.d.Chance(2, 1)
	dig(st.m, rect, diamond)
	st.m.Rooms = append(st.m.Rooms, rect)

	center := rect.Center()

	if !st.firstRoom {
		st.firstRoom = true
		if st.spawnPlayer {
			st.playerPos = findWalkableIn(st.m, rect)
		}
	}

	if st.haveLast {
		digCorridor(st.m, st.d, st.lastCenter, center)
	}
	st.lastCenter = center
	st.haveLast = true
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// dig carves a room, either a filled rectangle or (50/50) a diamond shape
// inscribed within the rectangle, tapering toward the corners.
func dig(m *Map, r Rect, diamond bool) {
	h := r.End.Y - r.Begin.Y + 1
	w := r.End.X - r.Begin.X + 1
	cy := float64(h-1) / 2
	cx := float64(w-1) / 2
	radius := min(h, w) / 2
	for y := r.Begin.Y; y <= r.End.Y; y++ {
		for x := r.Begin.X; x <= r.End.X; x++ {
			if diamond {
				dy := float64(y-r.Begin.Y) - cy
				dx := float64(x-r.Begin.X) - cx
				taper := abs64(dy) + abs64(dx)
				if taper > float64(radius) {
					continue
				}
			}
			m.setKind(geom.Vec2{Y: y, X: x}, Floor)
		}
	}
}

func abs64(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// digCorridor connects two room centers with an L-shaped 1-tile corridor,
// choosing horizontal-first or vertical-first by coin flip.
func digCorridor(m *Map, d *dice.Dice, from, to geom.Vec2) {
	corner := geom.Vec2{Y: from.Y, X: to.X}
	if d.Chance(2, 1) {
		corner = geom.Vec2{Y: to.Y, X: from.X}
	}
	digLine(m, from, corner)
	digLine(m, corner, to)
}

func digLine(m *Map, from, to geom.Vec2) {
	y, x := from.Y, from.X
	stepY, stepX := sign(to.Y-y), sign(to.X-x)
	for {
		pos := geom.Vec2{Y: y, X: x}
		if m.At(pos).Kind == Wall {
			m.setKind(pos, Corridor)
		}
		if y == to.Y && x == to.X {
			break
		}
		if y != to.Y {
			y += stepY
		}
		if x != to.X {
			x += stepX
		}
	}
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}

func findWalkableIn(m *Map, r Rect) geom.Vec2 {
	for y := r.Begin.Y; y <= r.End.Y; y++ {
		for x := r.Begin.X; x <= r.End.X; x++ {
			pos := geom.Vec2{Y: y, X: x}
			if m.At(pos).Walkable() {
				return pos
			}
		}
	}
	return r.Center()
}

// GenOptions controls procedural generation per spec.md §4.1.
type GenOptions struct {
	Width, Height int
	Seed          int64
	SpawnActors   bool
}

// GenResult reports the positions generation decided on.
type GenResult struct {
	PlayerPos  geom.Vec2
	StairsPos  geom.Vec2
}

// Generate builds a fresh dungeon level: BSP rooms and corridors, door
// post-processing, water spawn, and stairs placement.
func Generate(opt GenOptions) (*Map, GenResult) {
	if opt.Width == 0 {
		opt.Width = DefaultWidth
	}
	if opt.Height == 0 {
		opt.Height = DefaultHeight
	}
	m := NewEmpty(opt.Width, opt.Height, opt.Seed)
	d := dice.New(opt.Seed)

	root := &bspNode{y: 0, x: 0, h: opt.Height, w: opt.Width}
	split(root, d, RoomMinSize)

	st := &genState{m: m, d: d, spawnPlayer: opt.SpawnActors}
	visit(root, st)

	postProcessDoors(m)
	spawnWater(m, d)

	res := GenResult{PlayerPos: st.playerPos}
	res.StairsPos = placeStairs(m, d, res.PlayerPos)
	return m, res
}

// placeStairs retries a random non-starting room until a walkable tile not
// equal to the player's own position is found.
func placeStairs(m *Map, d *dice.Dice, avoid geom.Vec2) geom.Vec2 {
	if len(m.Rooms) == 0 {
		return geom.Vec2{}
	}
	for attempt := 0; attempt < 200; attempt++ {
		first := 0
		if len(m.Rooms) > 1 {
			first = 1
		}
		room := m.Rooms[d.Roll(first, len(m.Rooms)-1)]
		pos := geom.Vec2{
			Y: d.Roll(room.Begin.Y, room.End.Y),
			X: d.Roll(room.Begin.X, room.End.X),
		}
		if m.At(pos).Walkable() && !pos.Equal(avoid) {
			return pos
		}
	}
	return findWalkableIn(m, m.Rooms[len(m.Rooms)-1])
}
