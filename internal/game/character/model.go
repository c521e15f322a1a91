// Package character defines the candidate value evaluated by the optimizer
// and the reporting snapshot built from a winning candidate.
package character

import (
	"math"

	"github.com/cory-johannsen/gearopt/internal/game/affix"
	"github.com/cory-johannsen/gearopt/internal/game/attribute"
)

// UnsetCombinationID marks a Character that did not come from an enumerated
// combination.
const UnsetCombinationID uint32 = math.MaxUint32

// Character is one candidate build.
//
// Character is a plain value with no pointers so it can be copied between
// workers freely. BaseAttributes holds stats before gear and combination
// modifiers; Attributes holds the fully resolved stats and is written by the
// search engine, never by this package.
type Character struct {
	BaseAttributes attribute.Vector    `json:"base_attributes"`
	Attributes     attribute.Vector    `json:"attributes"`
	RankBy         attribute.Attribute `json:"rankby"`
	Gear           affix.Gear          `json:"gear"`
	CombinationID  uint32              `json:"combination_id"`
}

// New returns a Character ranked by rankby with zeroed attributes, every
// gear slot set to None, and an unset combination id.
//
// Precondition: rankby must be a declared Attribute.
func New(rankby attribute.Attribute) Character {
	return Character{
		RankBy:        rankby,
		CombinationID: UnsetCombinationID,
	}
}

// Clear zeroes both attribute vectors in place so the value can be reused
// for another candidate. Gear, RankBy and CombinationID are left as is.
func (c *Character) Clear() {
	c.BaseAttributes.Clear()
	c.Attributes.Clear()
}

// Score returns the resolved value of the ranking attribute.
func (c *Character) Score() float32 {
	return c.Attributes.Get(c.RankBy)
}

// IsInvalid reports whether c violates any threshold configured in s.
// Unset thresholds are skipped; a nil s configures none.
func (c *Character) IsInvalid(s *Settings) bool {
	if s == nil {
		return false
	}
	a := &c.Attributes
	return (s.MinBoonDuration != nil &&
		a.Get(attribute.BoonDuration) < *s.MinBoonDuration/100) ||
		(s.MinQuicknessDuration != nil &&
			a.Get(attribute.BoonDuration)+a.Get(attribute.QuicknessDuration) < *s.MinQuicknessDuration/100) ||
		(s.MinHealingPower != nil &&
			a.Get(attribute.HealingPower) < *s.MinHealingPower) ||
		(s.MinToughness != nil &&
			a.Get(attribute.Toughness) < *s.MinToughness) ||
		(s.MaxToughness != nil &&
			a.Get(attribute.Toughness) > *s.MaxToughness) ||
		(s.MinHealth != nil &&
			a.Get(attribute.Health) < *s.MinHealth) ||
		(s.MinCritChance != nil &&
			a.Get(attribute.CriticalChance) < *s.MinCritChance/100) ||
		(s.MinOutgoingHealing != nil &&
			a.Get(attribute.OutgoingHealing) < *s.MinOutgoingHealing/100)
}
