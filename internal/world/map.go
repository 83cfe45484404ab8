// Package world implements the tile grid: BSP dungeon generation, shadowcast
// field of view, and A* pathfinding, grounded on original_source/src/Map/Map.{h,cpp}.
package world

import (
	"rogue-engine/internal/geom"
)

const (
	DefaultWidth  = 120
	DefaultHeight = 80

	FOVRadius = 4

	RoomMinSize            = 6
	RoomHorizontalMaxSize  = 20
	RoomVerticalMaxSize    = 10
	MaxRoomItems           = 4
	MaxMonsters            = 6
	FinalDungeonLevel      = 10
	bspSplitRatio          = 1.5
	waterSpawnChancePct    = 5
)

// Rect is an inclusive begin/end room rectangle.
type Rect struct {
	Begin, End geom.Vec2
}

// Center returns the rectangle's integer midpoint.
func (r Rect) Center() geom.Vec2 {
	return geom.Vec2{Y: (r.Begin.Y + r.End.Y) / 2, X: (r.Begin.X + r.End.X) / 2}
}

// Contains reports whether pos lies within the rectangle's bounds.
func (r Rect) Contains(pos geom.Vec2) bool {
	return pos.Y >= r.Begin.Y && pos.Y <= r.End.Y && pos.X >= r.Begin.X && pos.X <= r.End.X
}

// Map owns the tile grid, the derived FOV bitmap, and the room list produced
// by generation.
type Map struct {
	Width, Height int
	Seed          int64

	tiles []Tile // row-major, len == Width*Height
	fov   []bool // parallel bitmap, recomputed each FOV pass

	Rooms []Rect
}

// NewEmpty allocates a map of the given size, all walls, no rooms.
func NewEmpty(width, height int, seed int64) *Map {
	m := &Map{Width: width, Height: height, Seed: seed}
	m.tiles = make([]Tile, width*height)
	m.fov = make([]bool, width*height)
	for i := range m.tiles {
		m.tiles[i] = Tile{Kind: Wall}
	}
	return m
}

// Tiles returns a copy of the row-major tile slice, for save serialization.
func (m *Map) Tiles() []Tile {
	return append([]Tile(nil), m.tiles...)
}

// Restore rebuilds a Map directly from saved tile/room data without running
// generation again, per spec.md §4.15 ("must not regenerate, as that would
// destroy topology"). The FOV bitmap starts empty; the caller must run
// ComputeFOV once from the restored player position to repopulate it.
func Restore(width, height int, seed int64, tiles []Tile, rooms []Rect) *Map {
	m := &Map{Width: width, Height: height, Seed: seed, Rooms: rooms}
	m.tiles = append([]Tile(nil), tiles...)
	m.fov = make([]bool, width*height)
	return m
}

func (m *Map) InBounds(pos geom.Vec2) bool {
	return pos.Y >= 0 && pos.Y < m.Height && pos.X >= 0 && pos.X < m.Width
}

func (m *Map) index(pos geom.Vec2) int {
	return pos.Y*m.Width + pos.X
}

// At returns the tile at pos. Out-of-bounds positions report a wall tile,
// matching spec.md §7's OUT_OF_BOUNDS "safe default" recovery rule.
func (m *Map) At(pos geom.Vec2) Tile {
	if !m.InBounds(pos) {
		return Tile{Kind: Wall}
	}
	return m.tiles[m.index(pos)]
}

func (m *Map) setKind(pos geom.Vec2, k Kind) {
	if !m.InBounds(pos) {
		return
	}
	m.tiles[m.index(pos)].Kind = k
}

// SetKind force-sets a tile's kind, bypassing door/water bookkeeping. Used by
// save restoration and by tests that need a hand-built map layout.
func (m *Map) SetKind(pos geom.Vec2, k Kind) {
	m.setKind(pos, k)
}

// IsWall reports whether pos is (or is out of bounds, hence) a wall.
func (m *Map) IsWall(pos geom.Vec2) bool {
	return m.At(pos).Kind == Wall
}

// CanWalk reports walkability, honoring whether the mover can swim.
func (m *Map) CanWalk(pos geom.Vec2, canSwim bool) bool {
	if !m.InBounds(pos) {
		return false
	}
	t := m.tiles[m.index(pos)]
	if canSwim {
		return t.WalkableBySwimmer()
	}
	return t.Walkable()
}

// OpenDoor converts a closed door at pos into an open one. Returns false if
// pos is not a closed door.
func (m *Map) OpenDoor(pos geom.Vec2) bool {
	if m.At(pos).Kind != ClosedDoor {
		return false
	}
	m.setKind(pos, OpenDoor)
	return true
}

// CloseDoor converts an open door at pos back into a closed one. Returns
// false if pos is not an open door.
func (m *Map) CloseDoor(pos geom.Vec2) bool {
	if m.At(pos).Kind != OpenDoor {
		return false
	}
	m.setKind(pos, ClosedDoor)
	return true
}

// IsExplored reports whether pos has ever been in FOV.
func (m *Map) IsExplored(pos geom.Vec2) bool {
	return m.At(pos).Explored
}

// IsInFOV reports whether pos is currently visible, per the bitmap computed
// by the last ComputeFOV call.
func (m *Map) IsInFOV(pos geom.Vec2) bool {
	if !m.InBounds(pos) {
		return false
	}
	return m.fov[m.index(pos)]
}

func (m *Map) markExplored(pos geom.Vec2) {
	if !m.InBounds(pos) {
		return
	}
	m.tiles[m.index(pos)].Explored = true
}
