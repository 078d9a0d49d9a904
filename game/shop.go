package game

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"survivorslike/logger"
)

// shopSource tags modifiers bought in the shop
const shopSource = "Shop"

// weaponItemUpgrades is the number of upgrade steps applied to weapons sold in the shop
const weaponItemUpgrades = 3

// ShopItem is something the player can buy between or during waves
type ShopItem interface {
	Name() string
	Description() string
	Cost() int

	// Purchase applies the effect to the player and reports success. It does not touch gold.
	Purchase(p *Player) bool
}

// HealItem restores a fixed amount of health
type HealItem struct {
	name        string
	description string
	cost        int
	Amount      float64
}

func NewHealItem(name, description string, cost int, amount float64) *HealItem {
	return &HealItem{name: name, description: description, cost: cost, Amount: amount}
}

func (h *HealItem) Name() string { return h.name }
func (h *HealItem) Description() string { return h.description }
func (h *HealItem) Cost() int { return h.cost }

func (h *HealItem) Purchase(p *Player) bool {
	if p == nil || p.Dead {
		return false
	}
	p.Heal(h.Amount)
	return true
}

// StatUpgradeItem applies a permanent modifier
type StatUpgradeItem struct {
	name        string
	description string
	cost        int
	Stat        StatType
	Value       float64
}

func NewStatUpgradeItem(name, description string, cost int, stat StatType, value float64) *StatUpgradeItem {
	return &StatUpgradeItem{name: name, description: description, cost: cost, Stat: stat, Value: value}
}

func (s *StatUpgradeItem) Name() string { return s.name }
func (s *StatUpgradeItem) Description() string { return s.description }
func (s *StatUpgradeItem) Cost() int { return s.cost }

func (s *StatUpgradeItem) Purchase(p *Player) bool {
	if p == nil || p.Dead {
		return false
	}
	p.Stats.AddModifier(NewStatModifier(s.Stat, s.Value, shopSource))
	return true
}

// WeaponItem grants a new weapon, pre-upgraded
type WeaponItem struct {
	name        string
	description string
	cost        int
	Kind        WeaponKind
}

func NewWeaponItem(name, description string, cost int, kind WeaponKind) *WeaponItem {
	return &WeaponItem{name: name, description: description, cost: cost, Kind: kind}
}

func (w *WeaponItem) Name() string { return w.name }
func (w *WeaponItem) Description() string { return w.description }
func (w *WeaponItem) Cost() int { return w.cost }

func (w *WeaponItem) Purchase(p *Player) bool {
	if p == nil || p.Dead {
		return false
	}
	weapon, err := NewWeapon(w.Kind)
	if err != nil {
		logger.Log.WithError(err).WithField("item", w.name).Warn("Cannot grant weapon")
		return false
	}
	for i := 0; i < weaponItemUpgrades; i++ {
		weapon.Upgrade()
	}
	p.AddWeapon(weapon)
	return true
}

// Shop sells a fixed catalogue of items
type Shop struct {
	Items []ShopItem
}

// NewShop creates a shop with the given catalogue, or the default one when none is given
func NewShop(items ...ShopItem) *Shop {
	if len(items) == 0 {
		items = DefaultShopItems()
	}
	return &Shop{Items: items}
}

// Buy charges the player and applies the item. Gold is only deducted when the effect succeeds.
func (s *Shop) Buy(p *Player, item ShopItem) error {
	if p == nil || item == nil {
		return fmt.Errorf("buy: nil player or item: %w", ErrInvalidPurchase)
	}
	if p.Gold < item.Cost() {
		return fmt.Errorf("buy %q (cost %d, have %d): %w", item.Name(), item.Cost(), p.Gold, ErrInsufficientGold)
	}
	if !item.Purchase(p) {
		return fmt.Errorf("buy %q: %w", item.Name(), ErrUnsupportedVariant)
	}
	p.SpendGold(item.Cost())

	logger.Log.WithFields(logrus.Fields{
		"component": "shop",
		"item":      item.Name(),
		"cost":      item.Cost(),
		"gold_left": p.Gold,
	}).Info("Item purchased")
	return nil
}

// BuyIndex buys the i-th catalogue item
func (s *Shop) BuyIndex(p *Player, i int) error {
	if i < 0 || i >= len(s.Items) {
		return fmt.Errorf("shop slot %d: %w", i, ErrInvalidPurchase)
	}
	return s.Buy(p, s.Items[i])
}

// DefaultShopItems returns the standard catalogue
func DefaultShopItems() []ShopItem {
	return []ShopItem{
		NewHealItem("Medkit", "Restore 30 health", 10, 30),
		NewStatUpgradeItem("Vitality", "+10 max health", 15, StatMaxHealth, 10),
		NewStatUpgradeItem("Boots", "+20 speed", 15, StatSpeed, 20),
		NewStatUpgradeItem("Whetstone", "+3 damage", 20, StatDamage, 3),
		NewStatUpgradeItem("Trigger spring", "+10% attack speed", 20, StatAttackSpeed, 10),
		NewWeaponItem("Combat knife", "Melee weapon, level 4", 40, WeaponKindMelee),
		NewWeaponItem("Revolver", "Ranged weapon, level 4", 50, WeaponKindRanged),
	}
}
