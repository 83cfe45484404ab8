package world

import "rogue-engine/internal/geom"

// Web is a spider-spun web object occupying a tile: it entangles whoever
// walks onto it and decays on its own after a number of turns, living
// alongside the map rather than replacing a tile kind outright so it can
// expire independently of the terrain underneath it. Grounded on the
// constants and class shape declared in original_source/src/Ai/AiSpider.h
// (AiWebSpinner) — only the header constants and method signatures survived
// the retrieval pass, not the method bodies, so the entangle/decay mechanics
// here are built to match that declared shape rather than ported verbatim.
type Web struct {
	Position  geom.Vec2
	Strength  int // turns required to break free once entangled (WEB_STRENGTH)
	TurnsLeft int // the web itself vanishes after this many turns
}

const (
	WebStrength      = 3   // WEB_STRENGTH
	WebTrapChancePct = 40  // WEB_TRAP_CHANCE
	WebCooldownTurns = 8   // WEB_COOLDOWN
	WebDecayTurns    = 40  // how long an unsprung web lingers before vanishing
	MaxWebsPerSpider = 5   // AiWebSpinner::MAX_WEBS
)
