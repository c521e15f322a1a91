package character

import (
	"github.com/cory-johannsen/gearopt/internal/game/affix"
	"github.com/cory-johannsen/gearopt/internal/game/attribute"
)

// GearStatCount is the length of ResultCharacter.GearStats.
const GearStatCount = 10

// CoefficientDetails is a linear damage coefficient for one damage type.
type CoefficientDetails struct {
	Slope     float32 `json:"slope"`
	Intercept float32 `json:"intercept"`
}

// CoefficientHelper holds one coefficient per damage category.
type CoefficientHelper struct {
	Bleeding  CoefficientDetails `json:"Bleeding"`
	Burning   CoefficientDetails `json:"Burning"`
	Confusion CoefficientDetails `json:"Confusion"`
	Poison    CoefficientDetails `json:"Poison"`
	Power     CoefficientDetails `json:"Power"`
	Power2    CoefficientDetails `json:"Power2"`
	Torment   CoefficientDetails `json:"Torment"`
}

// Results is the computed breakdown attached to a reported candidate.
// Every field is zero until the scoring layer fills it in, except Value.
type Results struct {
	CoefficientHelper           CoefficientHelper `json:"coefficientHelper"`
	DamageBreakdown             [7]float32        `json:"damageBreakdown"`
	EffectiveDamageDistribution [7]float32        `json:"effectiveDamageDistribution"`
	EffectiveNegativeValues     [5]float32        `json:"effectiveNegativeValues"`
	EffectivePositiveValues     [5]float32        `json:"effectivePositiveValues"`
	Value                       float32           `json:"value"`
}

// ResultCharacter is the reporting snapshot of a selected candidate. It owns
// copies of everything it holds and shares nothing with its source.
type ResultCharacter struct {
	BaseAttributes attribute.Vector       `json:"base_attributes"`
	Attributes     attribute.Vector       `json:"attributes"`
	Gear           affix.Gear             `json:"gear"`
	GearStats      [GearStatCount]float32 `json:"gear_stats"`
	CombinationID  uint32                 `json:"combination_id"`
	Results        Results                `json:"results"`
}

// NewResultCharacter snapshots c. Results.Value is set to c.Score(); the
// remaining breakdown and GearStats start at zero.
//
// Postcondition: The returned value does not alias c.
func NewResultCharacter(c *Character) ResultCharacter {
	return ResultCharacter{
		BaseAttributes: c.BaseAttributes,
		Attributes:     c.Attributes,
		Gear:           c.Gear,
		CombinationID:  c.CombinationID,
		Results:        Results{Value: c.Score()},
	}
}

// ToCharacter rebuilds a Character from the snapshot. The snapshot does not
// keep the original ranking attribute, so RankBy is always Power.
func (r *ResultCharacter) ToCharacter() Character {
	return r.ToCharacterRankedBy(attribute.Power)
}

// ToCharacterRankedBy rebuilds a Character ranked by rankby.
//
// Precondition: rankby must be a declared Attribute.
func (r *ResultCharacter) ToCharacterRankedBy(rankby attribute.Attribute) Character {
	return Character{
		BaseAttributes: r.BaseAttributes,
		Attributes:     r.Attributes,
		RankBy:         rankby,
		Gear:           r.Gear,
		CombinationID:  r.CombinationID,
	}
}
