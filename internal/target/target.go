// Package target implements spell/item target resolution: self, auto-nearest
// -visible, and tile-pick modes, grounded on spec.md §4.11's casting rules
// and reusing the world package's FOV bitmap for visibility checks.
package target

import (
	"rogue-engine/internal/entity"
	"rogue-engine/internal/geom"
	"rogue-engine/internal/world"
)

// Mode enumerates spec.md §4.11's three target-selection strategies.
type Mode int

const (
	ModeSelf Mode = iota
	ModeAutoNearestVisible
	ModeTilePick
)

// ErrMissingTarget reports that no valid target exists for the request, per
// spec.md §7's MISSING_TARGET error ("return failure; do not consume turn").
type ErrMissingTarget struct{}

func (ErrMissingTarget) Error() string { return "no valid target" }

// NearestVisible returns the closest living creature (by Chebyshev distance)
// that is currently in the map's FOV, excluding self. Ties break toward the
// earliest candidate in iteration order, matching the teacher's stable
// linear-scan selection style elsewhere in the pack.
func NearestVisible(self *entity.Creature, candidates []*entity.Creature, m *world.Map) (*entity.Creature, bool) {
	var best *entity.Creature
	bestDist := -1
	for _, c := range candidates {
		if c == self || c.IsDead() {
			continue
		}
		if !m.IsInFOV(c.Position) {
			continue
		}
		d := self.TileDistance(c.Position)
		if best == nil || d < bestDist {
			best = c
			bestDist = d
		}
	}
	return best, best != nil
}

// NNearestVisible returns up to n closest living visible creatures, nearest
// first, for multi-target spells like MAGIC_MISSILE (spec.md §4.11: "N
// missiles... each targets nearest living visible creature").
func NNearestVisible(self *entity.Creature, candidates []*entity.Creature, m *world.Map, n int) []*entity.Creature {
	pool := make([]*entity.Creature, 0, len(candidates))
	for _, c := range candidates {
		if c != self && !c.IsDead() && m.IsInFOV(c.Position) {
			pool = append(pool, c)
		}
	}
	var picked []*entity.Creature
	for len(picked) < n && len(pool) > 0 {
		bestIdx := 0
		bestDist := self.TileDistance(pool[0].Position)
		for i := 1; i < len(pool); i++ {
			d := self.TileDistance(pool[i].Position)
			if d < bestDist {
				bestIdx, bestDist = i, d
			}
		}
		picked = append(picked, pool[bestIdx])
		pool = append(pool[:bestIdx], pool[bestIdx+1:]...)
	}
	return picked
}

// ResolveTile validates a UI-supplied tile pick: it must be in bounds and
// currently in FOV. Used by spells with ModeTilePick targeting.
func ResolveTile(pos geom.Vec2, m *world.Map) (geom.Vec2, error) {
	if !m.InBounds(pos) || !m.IsInFOV(pos) {
		return geom.Vec2{}, ErrMissingTarget{}
	}
	return pos, nil
}

// CreatureAt finds the living creature occupying pos, if any.
func CreatureAt(pos geom.Vec2, candidates []*entity.Creature) (*entity.Creature, bool) {
	for _, c := range candidates {
		if !c.IsDead() && c.Position.Equal(pos) {
			return c, true
		}
	}
	return nil, false
}

// Resolve dispatches on mode, returning the resolved target creature (nil
// for a pure-tile target) and the resolved position.
func Resolve(mode Mode, self *entity.Creature, candidates []*entity.Creature, m *world.Map, tilePick geom.Vec2) (*entity.Creature, geom.Vec2, error) {
	switch mode {
	case ModeSelf:
		return self, self.Position, nil
	case ModeAutoNearestVisible:
		c, ok := NearestVisible(self, candidates, m)
		if !ok {
			return nil, geom.Vec2{}, ErrMissingTarget{}
		}
		return c, c.Position, nil
	case ModeTilePick:
		pos, err := ResolveTile(tilePick, m)
		if err != nil {
			return nil, geom.Vec2{}, err
		}
		c, _ := CreatureAt(pos, candidates)
		return c, pos, nil
	default:
		return nil, geom.Vec2{}, ErrMissingTarget{}
	}
}
