package world

import "rogue-engine/internal/geom"

// octant multipliers (xx, xy, yx, yy) for the 8 octants of recursive
// symmetric shadowcasting.
var octantMult = [8][4]int{
	{1, 0, 0, -1},
	{0, 1, -1, 0},
	{0, -1, -1, 0},
	{1, 0, 0, 1},
	{-1, 0, 0, 1},
	{0, -1, 1, 0},
	{0, 1, 1, 0},
	{-1, 0, 0, -1},
}

// ComputeFOV recomputes the visibility bitmap from origin with the given
// radius using recursive symmetric shadowcasting, marking every visible tile
// explored (explored state is never cleared).
func (m *Map) ComputeFOV(origin geom.Vec2, radius int) {
	for i := range m.fov {
		m.fov[i] = false
	}
	m.setVisible(origin)
	for octant := 0; octant < 8; octant++ {
		mult := octantMult[octant]
		m.castLight(origin, 1, 1.0, 0.0, radius, mult[0], mult[1], mult[2], mult[3])
	}
}

func (m *Map) setVisible(pos geom.Vec2) {
	if !m.InBounds(pos) {
		return
	}
	m.fov[m.index(pos)] = true
	m.markExplored(pos)
}

func (m *Map) blockedAt(pos geom.Vec2) bool {
	return !m.At(pos).Transparent()
}

func (m *Map) castLight(origin geom.Vec2, row int, start, end float64, radius int, xx, xy, yx, yy int) {
	if start < end {
		return
	}
	radiusSq := radius * radius
	for j := row; j <= radius; j++ {
		dx, dy := -j-1, -j
		blocked := false
		var newStart float64
		for dx <= 0 {
			dx++
			mapX := origin.X + dx*xx + dy*xy
			mapY := origin.Y + dx*yx + dy*yy
			pos := geom.Vec2{Y: mapY, X: mapX}

			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)
			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			if dx*dx+dy*dy < radiusSq {
				m.setVisible(pos)
			}

			if blocked {
				if m.blockedAt(pos) {
					newStart = rSlope
					continue
				}
				blocked = false
				start = newStart
			} else if m.blockedAt(pos) && j < radius {
				blocked = true
				m.castLight(origin, j+1, start, lSlope, radius, xx, xy, yx, yy)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}
