package affix

import (
	"errors"
	"fmt"
)

// ErrTooManyGear is returned when more affixes are given than there are slots.
var ErrTooManyGear = errors.New("too many gear entries")

// Slot identifies one equipment position.
type Slot uint8

const (
	Helm Slot = iota
	Shoulders
	Coat
	Gloves
	Leggings
	Boots
	Amulet
	Ring1
	Ring2
	Accessory1
	Accessory2
	Backpack
	Weapon1
	Weapon2

	// SlotCount is the number of equipment slots on a character.
	SlotCount
)

var slotNames = [SlotCount]string{
	Helm:       "Helm",
	Shoulders:  "Shoulders",
	Coat:       "Coat",
	Gloves:     "Gloves",
	Leggings:   "Leggings",
	Boots:      "Boots",
	Amulet:     "Amulet",
	Ring1:      "Ring1",
	Ring2:      "Ring2",
	Accessory1: "Accessory1",
	Accessory2: "Accessory2",
	Backpack:   "Backpack",
	Weapon1:    "Weapon1",
	Weapon2:    "Weapon2",
}

// String returns the slot name.
func (s Slot) String() string {
	if s >= SlotCount {
		return fmt.Sprintf("Slot(%d)", uint8(s))
	}
	return slotNames[s]
}

// Gear is the ordered affix selection across every equipment slot.
// The zero value has every slot set to None.
type Gear [SlotCount]Affix

// At returns the affix equipped in slot s.
func (g *Gear) At(s Slot) Affix {
	return g[s]
}

// Equip places a in slot s.
func (g *Gear) Equip(s Slot, a Affix) {
	g[s] = a
}

// Count returns how many slots hold a.
func (g *Gear) Count(a Affix) int {
	n := 0
	for _, x := range g {
		if x == a {
			n++
		}
	}
	return n
}

// ParseGear builds a Gear from affix names in slot order. Slots beyond
// len(names) stay None.
//
// Precondition: len(names) <= SlotCount.
// Postcondition: Returns the Gear, or an error naming the offending slot.
func ParseGear(names []string) (Gear, error) {
	var g Gear
	if len(names) > int(SlotCount) {
		return g, fmt.Errorf("%w: %d > %d", ErrTooManyGear, len(names), SlotCount)
	}
	for i, n := range names {
		a, err := Parse(n)
		if err != nil {
			return Gear{}, fmt.Errorf("slot %s: %w", Slot(i), err)
		}
		g[i] = a
	}
	return g, nil
}
