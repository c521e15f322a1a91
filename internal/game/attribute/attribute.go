// Package attribute defines the closed set of character statistics and the
// fixed-size vector indexed by them.
package attribute

import (
	"errors"
	"fmt"
)

// Attribute identifies one numeric character statistic.
//
// Invariant: every declared constant below AttributeCount is a valid Vector
// index; ordinals are stable and never reassigned.
type Attribute uint8

const (
	Power Attribute = iota
	Precision
	Toughness
	Vitality
	Ferocity
	ConditionDamage
	Expertise
	Concentration
	HealingPower
	AgonyResistance

	Armor
	Health
	CriticalChance
	CriticalDamage
	BoonDuration
	QuicknessDuration
	ConditionDuration
	BleedingDuration
	BurningDuration
	ConfusionDuration
	PoisonDuration
	TormentDuration
	OutgoingHealing

	EffectivePower
	EffectiveHealth
	EffectiveHealing
	Damage
	Survivability
	Healing

	PowerDPS
	Power2DPS
	BleedingDPS
	BurningDPS
	ConfusionDPS
	PoisonDPS
	TormentDPS
	FlatDPS

	// AttributeCount is the number of attributes and the length of a Vector.
	AttributeCount
)

// ErrUnknownAttribute is returned when a name does not match any Attribute.
var ErrUnknownAttribute = errors.New("unknown attribute")

var names = [AttributeCount]string{
	Power:             "Power",
	Precision:         "Precision",
	Toughness:         "Toughness",
	Vitality:          "Vitality",
	Ferocity:          "Ferocity",
	ConditionDamage:   "ConditionDamage",
	Expertise:         "Expertise",
	Concentration:     "Concentration",
	HealingPower:      "HealingPower",
	AgonyResistance:   "AgonyResistance",
	Armor:             "Armor",
	Health:            "Health",
	CriticalChance:    "CriticalChance",
	CriticalDamage:    "CriticalDamage",
	BoonDuration:      "BoonDuration",
	QuicknessDuration: "QuicknessDuration",
	ConditionDuration: "ConditionDuration",
	BleedingDuration:  "BleedingDuration",
	BurningDuration:   "BurningDuration",
	ConfusionDuration: "ConfusionDuration",
	PoisonDuration:    "PoisonDuration",
	TormentDuration:   "TormentDuration",
	OutgoingHealing:   "OutgoingHealing",
	EffectivePower:    "EffectivePower",
	EffectiveHealth:   "EffectiveHealth",
	EffectiveHealing:  "EffectiveHealing",
	Damage:            "Damage",
	Survivability:     "Survivability",
	Healing:           "Healing",
	PowerDPS:          "PowerDPS",
	Power2DPS:         "Power2DPS",
	BleedingDPS:       "BleedingDPS",
	BurningDPS:        "BurningDPS",
	ConfusionDPS:      "ConfusionDPS",
	PoisonDPS:         "PoisonDPS",
	TormentDPS:        "TormentDPS",
	FlatDPS:           "FlatDPS",
}

var byName = func() map[string]Attribute {
	m := make(map[string]Attribute, AttributeCount)
	for i, n := range names {
		m[n] = Attribute(i)
	}
	return m
}()

// Attributes returns every Attribute in ordinal order.
//
// Postcondition: len(result) == AttributeCount and result[i] == Attribute(i).
func Attributes() []Attribute {
	out := make([]Attribute, AttributeCount)
	for i := range out {
		out[i] = Attribute(i)
	}
	return out
}

// Valid reports whether a is a declared attribute.
func (a Attribute) Valid() bool {
	return a < AttributeCount
}

// String returns the attribute's identifier name, e.g. "ConditionDamage".
func (a Attribute) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Attribute(%d)", uint8(a))
	}
	return names[a]
}

// ParseAttribute returns the Attribute with the given identifier name.
//
// Postcondition: Returns a valid Attribute, or an error wrapping ErrUnknownAttribute.
func ParseAttribute(name string) (Attribute, error) {
	a, ok := byName[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownAttribute, name)
	}
	return a, nil
}

// MarshalText implements encoding.TextMarshaler.
func (a Attribute) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("marshalling attribute: ordinal %d out of range", uint8(a))
	}
	return []byte(names[a]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Attribute) UnmarshalText(text []byte) error {
	parsed, err := ParseAttribute(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
