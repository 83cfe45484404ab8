package world

import (
	"rogue-engine/internal/dice"
	"rogue-engine/internal/geom"
)

// RandomWalkableInRoom retries until it finds a walkable tile in room idx,
// skipping the given excluded positions (e.g. the stairs tile).
func (m *Map) RandomWalkableInRoom(d *dice.Dice, room Rect, exclude ...geom.Vec2) (geom.Vec2, bool) {
	for attempt := 0; attempt < 100; attempt++ {
		pos := geom.Vec2{
			Y: d.Roll(room.Begin.Y, room.End.Y),
			X: d.Roll(room.Begin.X, room.End.X),
		}
		if !m.At(pos).Walkable() {
			continue
		}
		excluded := false
		for _, e := range exclude {
			if pos.Equal(e) {
				excluded = true
				break
			}
		}
		if !excluded {
			return pos, true
		}
	}
	return geom.Vec2{}, false
}

// RandomRoom picks a uniformly random room, or false if the map has none.
func (m *Map) RandomRoom(d *dice.Dice) (Rect, bool) {
	if len(m.Rooms) == 0 {
		return Rect{}, false
	}
	return m.Rooms[d.Roll(0, len(m.Rooms)-1)], true
}
