package character

import (
	"fmt"
	"math"
	"strings"
)

// Settings holds the optional candidate thresholds. A nil field is not
// configured and its check is skipped.
//
// Percentage-like thresholds (boon, quickness, crit, outgoing healing) are
// given in percent and compared against attribute values scaled to 1.0.
type Settings struct {
	MinBoonDuration      *float32 `mapstructure:"minBoonDuration" yaml:"minBoonDuration" json:"minBoonDuration,omitempty"`
	MinQuicknessDuration *float32 `mapstructure:"minQuicknessDuration" yaml:"minQuicknessDuration" json:"minQuicknessDuration,omitempty"`
	MinHealingPower      *float32 `mapstructure:"minHealingPower" yaml:"minHealingPower" json:"minHealingPower,omitempty"`
	MinToughness         *float32 `mapstructure:"minToughness" yaml:"minToughness" json:"minToughness,omitempty"`
	MaxToughness         *float32 `mapstructure:"maxToughness" yaml:"maxToughness" json:"maxToughness,omitempty"`
	MinHealth            *float32 `mapstructure:"minHealth" yaml:"minHealth" json:"minHealth,omitempty"`
	MinCritChance        *float32 `mapstructure:"minCritChance" yaml:"minCritChance" json:"minCritChance,omitempty"`
	MinOutgoingHealing   *float32 `mapstructure:"minOutgoingHealing" yaml:"minOutgoingHealing" json:"minOutgoingHealing,omitempty"`
}

// Threshold returns a pointer to v for populating Settings fields.
func Threshold(v float32) *float32 {
	return &v
}

// Validate checks that every configured threshold is finite and non-negative
// and that the toughness bounds do not cross.
//
// Postcondition: Returns nil if s is usable, or one error listing all violations.
func (s Settings) Validate() error {
	var errs []string
	for _, f := range []struct {
		name string
		v    *float32
	}{
		{"minBoonDuration", s.MinBoonDuration},
		{"minQuicknessDuration", s.MinQuicknessDuration},
		{"minHealingPower", s.MinHealingPower},
		{"minToughness", s.MinToughness},
		{"maxToughness", s.MaxToughness},
		{"minHealth", s.MinHealth},
		{"minCritChance", s.MinCritChance},
		{"minOutgoingHealing", s.MinOutgoingHealing},
	} {
		if f.v == nil {
			continue
		}
		x := float64(*f.v)
		if math.IsNaN(x) || math.IsInf(x, 0) {
			errs = append(errs, fmt.Sprintf("settings.%s must be finite, got %v", f.name, *f.v))
			continue
		}
		if x < 0 {
			errs = append(errs, fmt.Sprintf("settings.%s must be >= 0, got %v", f.name, *f.v))
		}
	}
	if s.MinToughness != nil && s.MaxToughness != nil && *s.MinToughness > *s.MaxToughness {
		errs = append(errs, fmt.Sprintf("settings.minToughness (%v) must not exceed settings.maxToughness (%v)",
			*s.MinToughness, *s.MaxToughness))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}
