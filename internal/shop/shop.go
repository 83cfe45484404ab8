// Package shop implements the shopkeeper trading component: shop type/
// quality markup tiers, inventory seeding, and buy/sell pricing, grounded on
// the teacher's ShopPricingRules in cmd/server/db/sqlite.go and spec.md §4.10.
package shop

import "rogue-engine/internal/entity"

// Type enumerates a shop's stocked item category, per spec.md §4.10.
type Type int

const (
	TypeWeapon Type = iota
	TypeArmor
	TypeGeneral
	TypePotion
	TypeScroll
	TypeGear
)

// Quality gates a shop's markup tier, per spec.md §4.10
// ("poor/avg/good/excellent -> 70/100/130/160% markup").
type Quality int

const (
	QualityPoor Quality = iota
	QualityAverage
	QualityGood
	QualityExcellent
)

// MarkupPct returns the buy-price multiplier percentage for a quality tier.
func (q Quality) MarkupPct() int {
	switch q {
	case QualityPoor:
		return 70
	case QualityAverage:
		return 100
	case QualityGood:
		return 130
	case QualityExcellent:
		return 160
	default:
		return 100
	}
}

// Shop is the trading component attached to a shopkeeper creature.
type Shop struct {
	Type      Type
	Quality   Quality
	Inventory *entity.Inventory
	SellbackPct int // percentage of item value paid when the player sells in
}

// New creates a shop with the given category/quality and a seeded inventory
// capacity, per spec.md §4.10 ("initial inventory seeded from
// category-appropriate items").
func New(t Type, q Quality, capacity int) *Shop {
	return &Shop{
		Type:        t,
		Quality:     q,
		Inventory:   entity.NewInventory(capacity),
		SellbackPct: defaultSellbackPct(q),
	}
}

// defaultSellbackPct is half the markup tier: a better-stocked shop also
// pays more when buying from the player, while staying below its markup,
// per the teacher's buy_pricing/sell_pricing split in ShopPricingRules.
func defaultSellbackPct(q Quality) int {
	return q.MarkupPct() / 2
}

// BuyPrice is what the player pays to buy item from this shop: its effective
// value scaled by the shop's markup percentage.
func (s *Shop) BuyPrice(item *entity.Item) int {
	return item.EffectiveValue() * s.Quality.MarkupPct() / 100
}

// SellPrice is what the shop pays the player for item.
func (s *Shop) SellPrice(item *entity.Item) int {
	return item.EffectiveValue() * s.SellbackPct / 100
}

// CategoryMatches reports whether item's class belongs to this shop's
// stocked category, used when seeding initial inventory or restricting
// trade-ins to matching goods.
func (s *Shop) CategoryMatches(item *entity.Item) bool {
	switch s.Type {
	case TypeWeapon:
		return item.Class == entity.ClassWeapon
	case TypeArmor:
		return item.Class == entity.ClassArmor || item.Class == entity.ClassShield ||
			item.Class == entity.ClassHelmet || item.Class == entity.ClassGauntlets ||
			item.Class == entity.ClassGirdle
	case TypePotion:
		return item.Class == entity.ClassPotion
	case TypeScroll:
		return item.Class == entity.ClassScroll
	case TypeGear:
		return item.Class == entity.ClassRing || item.Class == entity.ClassAmulet
	case TypeGeneral:
		return true
	default:
		return false
	}
}
