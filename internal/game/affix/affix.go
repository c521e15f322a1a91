// Package affix defines gear modifiers and the fixed equipment slot layout.
package affix

import (
	"errors"
	"fmt"
)

// Affix identifies the stat prefix applied to one piece of gear.
// The zero value None means the slot carries no modifier.
type Affix uint8

const (
	None Affix = iota
	Berserker
	Assassin
	Harrier
	Commander
	Minstrel
	Magi
	Marauder
	Cleric
	Nomad
	Zealot
	Viper
	Sinister
	Grieving
	Seraph
	Marshal
	Giver
	Knight
	Trailblazer
	Plaguedoctor
	Carrion
	Rabid
	Dire
	Vigilant
	Valkyrie
	Sentinel
	Shaman
	Soldier
	Apothecary
	Wanderer
	Celestial
	Diviner
	Ritualist
	Dragon
	Bringer
	Cavalier
	Crusader
	Rampager
	Settler
	Captain

	// Count is the number of Affix values including None.
	Count
)

// ErrUnknownAffix is returned when a name does not match any Affix.
var ErrUnknownAffix = errors.New("unknown affix")

var names = [Count]string{
	None:         "None",
	Berserker:    "Berserker",
	Assassin:     "Assassin",
	Harrier:      "Harrier",
	Commander:    "Commander",
	Minstrel:     "Minstrel",
	Magi:         "Magi",
	Marauder:     "Marauder",
	Cleric:       "Cleric",
	Nomad:        "Nomad",
	Zealot:       "Zealot",
	Viper:        "Viper",
	Sinister:     "Sinister",
	Grieving:     "Grieving",
	Seraph:       "Seraph",
	Marshal:      "Marshal",
	Giver:        "Giver",
	Knight:       "Knight",
	Trailblazer:  "Trailblazer",
	Plaguedoctor: "Plaguedoctor",
	Carrion:      "Carrion",
	Rabid:        "Rabid",
	Dire:         "Dire",
	Vigilant:     "Vigilant",
	Valkyrie:     "Valkyrie",
	Sentinel:     "Sentinel",
	Shaman:       "Shaman",
	Soldier:      "Soldier",
	Apothecary:   "Apothecary",
	Wanderer:     "Wanderer",
	Celestial:    "Celestial",
	Diviner:      "Diviner",
	Ritualist:    "Ritualist",
	Dragon:       "Dragon",
	Bringer:      "Bringer",
	Cavalier:     "Cavalier",
	Crusader:     "Crusader",
	Rampager:     "Rampager",
	Settler:      "Settler",
	Captain:      "Captain",
}

var byName = func() map[string]Affix {
	m := make(map[string]Affix, Count)
	for i, n := range names {
		m[n] = Affix(i)
	}
	return m
}()

// Valid reports whether a is a declared affix.
func (a Affix) Valid() bool {
	return a < Count
}

// String returns the affix name; None renders as "None".
func (a Affix) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Affix(%d)", uint8(a))
	}
	return names[a]
}

// Parse returns the Affix with the given name. The empty string parses as None.
//
// Postcondition: Returns a valid Affix, or an error wrapping ErrUnknownAffix.
func Parse(name string) (Affix, error) {
	if name == "" {
		return None, nil
	}
	a, ok := byName[name]
	if !ok {
		return None, fmt.Errorf("%w: %q", ErrUnknownAffix, name)
	}
	return a, nil
}

// MarshalText implements encoding.TextMarshaler.
func (a Affix) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("marshalling affix: ordinal %d out of range", uint8(a))
	}
	return []byte(names[a]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Affix) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
