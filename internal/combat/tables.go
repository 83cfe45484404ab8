package combat

// StrengthRow holds the melee hit/damage adjustments for one strength score.
type StrengthRow struct {
	HitAdj int
	DmgAdj int
}

// DexterityRow holds the missile-attack and defensive adjustments for one
// dexterity score.
type DexterityRow struct {
	MissileAttackAdj int
	DefensiveAdj     int
}

// strengthTable and dexterityTable are NOT retrievable from the pack (the
// original_source/src/Attributes/*.h files referenced throughout
// Destructible.cpp/Attacker.cpp were not present in the retrieval), so these
// are synthesized from standard AD&D 2nd-edition progressions and extended
// monotonically out to spec.md's 1-25 ability range. See DESIGN.md.
var strengthTable = buildStrengthTable()
var dexterityTable = buildDexterityTable()

func buildStrengthTable() [25]StrengthRow {
	var t [25]StrengthRow
	for i := 0; i < 25; i++ {
		score := i + 1
		switch {
		case score <= 5:
			t[i] = StrengthRow{HitAdj: -2, DmgAdj: -1}
		case score <= 7:
			t[i] = StrengthRow{HitAdj: -1, DmgAdj: -1}
		case score <= 15:
			t[i] = StrengthRow{HitAdj: 0, DmgAdj: 0}
		case score <= 16:
			t[i] = StrengthRow{HitAdj: 0, DmgAdj: 1}
		case score <= 17:
			t[i] = StrengthRow{HitAdj: 1, DmgAdj: 1}
		case score <= 18:
			t[i] = StrengthRow{HitAdj: 1, DmgAdj: 2}
		default:
			// extended range past the classic 18: keep climbing.
			extra := (score - 18) / 2
			t[i] = StrengthRow{HitAdj: 2 + extra, DmgAdj: 3 + extra}
		}
	}
	return t
}

func buildDexterityTable() [25]DexterityRow {
	var t [25]DexterityRow
	for i := 0; i < 25; i++ {
		score := i + 1
		switch {
		case score <= 5:
			t[i] = DexterityRow{MissileAttackAdj: -3, DefensiveAdj: 4}
		case score <= 8:
			t[i] = DexterityRow{MissileAttackAdj: -1, DefensiveAdj: 1}
		case score <= 14:
			t[i] = DexterityRow{MissileAttackAdj: 0, DefensiveAdj: 0}
		case score <= 15:
			t[i] = DexterityRow{MissileAttackAdj: 1, DefensiveAdj: -1}
		case score <= 16:
			t[i] = DexterityRow{MissileAttackAdj: 2, DefensiveAdj: -2}
		case score <= 17:
			t[i] = DexterityRow{MissileAttackAdj: 2, DefensiveAdj: -3}
		case score <= 18:
			t[i] = DexterityRow{MissileAttackAdj: 3, DefensiveAdj: -4}
		default:
			extra := (score - 18) / 2
			t[i] = DexterityRow{MissileAttackAdj: 3 + extra, DefensiveAdj: -4 - extra}
		}
	}
	return t
}

// StrengthAdjustment looks up the melee hit/damage row for a 1..25 score.
func StrengthAdjustment(score int) StrengthRow {
	return strengthTable[clampScore(score)-1]
}

// DexterityAdjustment looks up the missile/defensive row for a 1..25 score.
func DexterityAdjustment(score int) DexterityRow {
	return dexterityTable[clampScore(score)-1]
}

func clampScore(score int) int {
	if score < 1 {
		return 1
	}
	if score > 25 {
		return 25
	}
	return score
}
