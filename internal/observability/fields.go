package observability

import (
	"go.uber.org/zap"

	"github.com/cory-johannsen/gearopt/internal/game/character"
)

// CandidateFields returns the standard log fields identifying a candidate.
//
// Precondition: c must be non-nil.
func CandidateFields(c *character.Character) []zap.Field {
	return []zap.Field{
		zap.Uint32("combination_id", c.CombinationID),
		zap.Stringer("rankby", c.RankBy),
		zap.Float32("score", c.Score()),
		zap.Stringers("gear", c.Gear[:]),
	}
}
