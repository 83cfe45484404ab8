package world

import "rogue-engine/internal/geom"

// orthogonal neighbor offsets, N/S/E/W only.
var orthogonal = [4]geom.Vec2{{Y: -1, X: 0}, {Y: 1, X: 0}, {Y: 0, X: -1}, {Y: 0, X: 1}}

// isRoomTile and isWallTile classify a neighbor for the door pattern table
// below: water counts as both a room interior (floor-like) and a wall
// (non-corridor, blocking) tile, matching the isRoom/isWall lambdas in
// original_source/src/Map/Map.cpp's post_process_doors.
func isRoomTile(m *Map, pos geom.Vec2) bool {
	if !m.InBounds(pos) {
		return false
	}
	k := m.At(pos).Kind
	return k == Floor || k == Water
}

func isWallTile(m *Map, pos geom.Vec2) bool {
	if !m.InBounds(pos) {
		return false
	}
	k := m.At(pos).Kind
	return k == Wall || k == Water
}

func isCorridorTile(m *Map, pos geom.Vec2) bool {
	return m.InBounds(pos) && m.At(pos).Kind == Corridor
}

func isWaterTile(m *Map, pos geom.Vec2) bool {
	return m.InBounds(pos) && m.At(pos).Kind == Water
}

// postProcessDoors scans every corridor tile and promotes corridor/room
// interfaces to closed doors. This ports the verbatim rotational 3x3 pattern
// table from original_source/src/Map/Map.cpp:1566-1702 (post_process_doors):
// six exclude patterns (the base form plus three 90-degree rotations, a
// WRR/WCC/WWC variant, and a water variant) that must NOT become a door,
// three patterns that relocate the door one tile up or left, and a default
// that places the door on the corridor tile itself.
func postProcessDoors(m *Map) {
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			pos := geom.Vec2{Y: y, X: x}
			if m.At(pos).Kind != Corridor {
				continue
			}

			roomNeighbors, wallNeighbors := 0, 0
			for _, d := range orthogonal {
				n := pos.Add(d)
				if !m.InBounds(n) {
					continue
				}
				switch {
				case isRoomTile(m, n):
					roomNeighbors++
				case isWallTile(m, n):
					wallNeighbors++
				}
			}
			if roomNeighbors < 1 || wallNeighbors < 2 {
				continue
			}

			upLeft := pos.Add(geom.Vec2{Y: -1, X: -1})
			up := pos.Add(geom.Vec2{Y: -1, X: 0})
			upRight := pos.Add(geom.Vec2{Y: -1, X: 1})
			left := pos.Add(geom.Vec2{Y: 0, X: -1})
			right := pos.Add(geom.Vec2{Y: 0, X: 1})
			downLeft := pos.Add(geom.Vec2{Y: 1, X: -1})
			down := pos.Add(geom.Vec2{Y: 1, X: 0})
			downRight := pos.Add(geom.Vec2{Y: 1, X: 1})

			exclude := false
			// RRR/WCC/WWW
			if isRoomTile(m, upLeft) && isRoomTile(m, up) && isRoomTile(m, upRight) &&
				isWallTile(m, left) && isCorridorTile(m, right) &&
				isWallTile(m, downLeft) && isWallTile(m, down) && isWallTile(m, downRight) {
				exclude = true
			}
			// 90 degree rotation: WWR/CWR/CWR
			if isWallTile(m, upLeft) && isWallTile(m, up) && isRoomTile(m, upRight) &&
				isCorridorTile(m, left) && isRoomTile(m, right) &&
				isCorridorTile(m, downLeft) && isWallTile(m, down) && isRoomTile(m, downRight) {
				exclude = true
			}
			// 180 degree rotation: WWW/CCW/RRR
			if isWallTile(m, upLeft) && isWallTile(m, up) && isWallTile(m, upRight) &&
				isCorridorTile(m, left) && isWallTile(m, right) &&
				isRoomTile(m, downLeft) && isRoomTile(m, down) && isRoomTile(m, downRight) {
				exclude = true
			}
			// 270 degree rotation: RWC/RWC/RWW
			if isRoomTile(m, upLeft) && isWallTile(m, up) && isCorridorTile(m, upRight) &&
				isRoomTile(m, left) && isCorridorTile(m, right) &&
				isRoomTile(m, downLeft) && isWallTile(m, down) && isWallTile(m, downRight) {
				exclude = true
			}
			// WRR/WCC/WWC
			if isWallTile(m, upLeft) && isRoomTile(m, up) && isRoomTile(m, upRight) &&
				isWallTile(m, left) && isCorridorTile(m, right) &&
				isWallTile(m, downLeft) && isWallTile(m, down) && isCorridorTile(m, downRight) {
				exclude = true
			}
			// WRw/WCC/WWW (w = water)
			if isWallTile(m, upLeft) && isRoomTile(m, up) && isWaterTile(m, upRight) &&
				isWallTile(m, left) && isCorridorTile(m, right) &&
				isWallTile(m, downLeft) && isWallTile(m, down) && isWallTile(m, downRight) {
				exclude = true
			}
			if exclude {
				continue
			}

			// WCW/RDW/RWW: relocate the door one tile up.
			if isWallTile(m, upLeft) && isCorridorTile(m, up) && isWallTile(m, upRight) &&
				isRoomTile(m, left) && isWallTile(m, right) &&
				isRoomTile(m, downLeft) && isWallTile(m, down) && isWallTile(m, downRight) {
				m.setKind(up, ClosedDoor)
				continue
			}
			// W.w/CDW/WWW (. = water or corridor): relocate the door one tile up.
			if isWallTile(m, upLeft) &&
				(isWaterTile(m, up) || isCorridorTile(m, up)) && isWaterTile(m, upRight) &&
				isCorridorTile(m, left) && isWallTile(m, right) &&
				isWallTile(m, downLeft) && isWallTile(m, down) && isWallTile(m, downRight) {
				m.setKind(up, ClosedDoor)
				continue
			}
			// WRR/CCW/WWW: relocate the door one tile left.
			if isWallTile(m, upLeft) && isRoomTile(m, up) && isRoomTile(m, upRight) &&
				isCorridorTile(m, left) && isWallTile(m, right) &&
				isWallTile(m, downLeft) && isWallTile(m, down) && isWallTile(m, downRight) {
				m.setKind(left, ClosedDoor)
				continue
			}

			m.setKind(pos, ClosedDoor)
		}
	}
}
