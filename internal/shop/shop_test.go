package shop

import (
	"testing"

	"rogue-engine/internal/entity"
)

func TestMarkupPctTiers(t *testing.T) {
	cases := []struct {
		q    Quality
		want int
	}{
		{QualityPoor, 70},
		{QualityAverage, 100},
		{QualityGood, 130},
		{QualityExcellent, 160},
	}
	for _, c := range cases {
		if got := c.q.MarkupPct(); got != c.want {
			t.Errorf("MarkupPct(%v) = %d, want %d", c.q, got, c.want)
		}
	}
}

func TestBuyPriceAppliesMarkup(t *testing.T) {
	s := New(TypeWeapon, QualityGood, 10)
	item := &entity.Item{Value: 100}
	if got := s.BuyPrice(item); got != 130 {
		t.Fatalf("BuyPrice = %d, want 130", got)
	}
}

func TestSellPriceIsBelowBuyPrice(t *testing.T) {
	s := New(TypeWeapon, QualityAverage, 10)
	item := &entity.Item{Value: 100}
	if s.SellPrice(item) >= s.BuyPrice(item) {
		t.Fatal("selling back should never pay more than buying costs")
	}
}

func TestCategoryMatches(t *testing.T) {
	armorShop := New(TypeArmor, QualityAverage, 10)
	if !armorShop.CategoryMatches(&entity.Item{Class: entity.ClassShield}) {
		t.Fatal("an armor shop should accept shields")
	}
	if armorShop.CategoryMatches(&entity.Item{Class: entity.ClassPotion}) {
		t.Fatal("an armor shop should not accept potions")
	}

	general := New(TypeGeneral, QualityAverage, 10)
	if !general.CategoryMatches(&entity.Item{Class: entity.ClassScroll}) {
		t.Fatal("a general shop should accept anything")
	}
}
