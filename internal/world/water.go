package world

import (
	"rogue-engine/internal/dice"
	"rogue-engine/internal/geom"
)

// spawnWater rolls a water-spawn chance on every floor tile of every room,
// skipping any tile that would choke off an entrance per wouldBlockEntrance.
func spawnWater(m *Map, d *dice.Dice) {
	for _, room := range m.Rooms {
		for y := room.Begin.Y; y <= room.End.Y; y++ {
			for x := room.Begin.X; x <= room.End.X; x++ {
				pos := geom.Vec2{Y: y, X: x}
				if m.At(pos).Kind != Floor {
					continue
				}
				if !d.Chance(100/waterSpawnChancePct, 1) {
					continue
				}
				if wouldBlockEntrance(m, pos) {
					continue
				}
				m.setKind(pos, Water)
			}
		}
	}
}

// wouldBlockEntrance ports the verbatim 5-pattern entrance-blocking check
// from original_source/src/Map/Map.cpp:797-926 (would_water_block_entrance).
func wouldBlockEntrance(m *Map, pos geom.Vec2) bool {
	surround := [8]geom.Vec2{
		{Y: -1, X: -1}, {Y: -1, X: 0}, {Y: -1, X: 1},
		{Y: 0, X: -1}, {Y: 0, X: 1},
		{Y: 1, X: -1}, {Y: 1, X: 0}, {Y: 1, X: 1},
	}
	wallCount := 0
	for _, d := range surround {
		n := pos.Add(d)
		if !m.InBounds(n) {
			wallCount++ // out of bounds counts as a wall
			continue
		}
		if m.At(n).Kind == Wall {
			wallCount++
		}
	}

	// Pattern 1: a corner or edge position (high wall density) is safe.
	if wallCount >= 5 {
		return false
	}

	isWallOrOOB := func(p geom.Vec2) bool {
		return !m.InBounds(p) || m.At(p).Kind == Wall
	}

	// Pattern 2: a wall-floor-wall corridor, horizontal or vertical, would be
	// severed by flooding the middle tile.
	if isWallOrOOB(pos.Add(geom.Vec2{Y: 0, X: -1})) && isWallOrOOB(pos.Add(geom.Vec2{Y: 0, X: 1})) {
		return true
	}
	if isWallOrOOB(pos.Add(geom.Vec2{Y: -1, X: 0})) && isWallOrOOB(pos.Add(geom.Vec2{Y: 1, X: 0})) {
		return true
	}

	// Pattern 3: a tile orthogonally next to a door or corridor is the
	// doorway itself; flooding it would cut that entrance off.
	for _, d := range orthogonal {
		k := m.At(pos.Add(d)).Kind
		if k == ClosedDoor || k == OpenDoor || k == Corridor {
			return true
		}
	}

	adjacentWalls, adjacentFloors := 0, 0
	for _, d := range orthogonal {
		n := pos.Add(d)
		if !m.InBounds(n) {
			adjacentWalls++
			continue
		}
		switch m.At(n).Kind {
		case Wall:
			adjacentWalls++
		case Floor:
			adjacentFloors++
		}
	}

	// Pattern 4: exactly two (opposite) walls and two floors marks a likely
	// future door spot.
	if adjacentWalls == 2 && adjacentFloors == 2 {
		opposite := isWallOrOOB(pos.Add(geom.Vec2{Y: -1, X: 0})) && isWallOrOOB(pos.Add(geom.Vec2{Y: 1, X: 0})) ||
			isWallOrOOB(pos.Add(geom.Vec2{Y: 0, X: -1})) && isWallOrOOB(pos.Add(geom.Vec2{Y: 0, X: 1}))
		if opposite {
			return true
		}
	}

	// Pattern 5: room-perimeter tiles are where corridors usually connect, so
	// be cautious about flooding them.
	for _, room := range m.Rooms {
		if !room.Contains(pos) {
			continue
		}
		onEdge := pos.Y == room.Begin.Y || pos.Y == room.End.Y || pos.X == room.Begin.X || pos.X == room.End.X
		if onEdge && adjacentWalls >= 1 && adjacentFloors >= 1 {
			return true
		}
		break
	}

	return false
}
