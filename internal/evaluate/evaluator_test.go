package evaluate_test

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/gearopt/internal/evaluate"
	"github.com/cory-johannsen/gearopt/internal/game/attribute"
	"github.com/cory-johannsen/gearopt/internal/game/character"
)

func candidate(id uint32, damage, toughness float32) character.Character {
	c := character.New(attribute.Damage)
	c.CombinationID = id
	c.Attributes.Set(attribute.Damage, damage)
	c.Attributes.Set(attribute.Toughness, toughness)
	return c
}

func TestTopK_KeepsBest(t *testing.T) {
	k := evaluate.NewTopK(3)
	for i, score := range []float32{5, 1, 9, 3, 7, 2} {
		c := candidate(uint32(i), score, 0)
		k.Offer(&c)
	}
	require.Equal(t, 3, k.Len())

	got := k.Sorted()
	scores := make([]float32, len(got))
	for i := range got {
		scores[i] = got[i].Score()
	}
	assert.Equal(t, []float32{9, 7, 5}, scores)
}

func TestTopK_TiesPreferLowerCombination(t *testing.T) {
	k := evaluate.NewTopK(2)
	for _, id := range []uint32{8, 3, 5} {
		c := candidate(id, 100, 0)
		k.Offer(&c)
	}
	got := k.Sorted()
	require.Len(t, got, 2)
	assert.Equal(t, uint32(3), got[0].CombinationID)
	assert.Equal(t, uint32(5), got[1].CombinationID)
}

func TestTopK_OfferCopies(t *testing.T) {
	k := evaluate.NewTopK(1)
	c := candidate(1, 10, 0)
	require.True(t, k.Offer(&c))
	c.Attributes.Set(attribute.Damage, 0)
	assert.Equal(t, float32(10), k.Sorted()[0].Score())
}

func TestTopK_Merge(t *testing.T) {
	a, b := evaluate.NewTopK(2), evaluate.NewTopK(2)
	for i, s := range []float32{1, 4} {
		c := candidate(uint32(i), s, 0)
		a.Offer(&c)
	}
	for i, s := range []float32{3, 2} {
		c := candidate(uint32(10+i), s, 0)
		b.Offer(&c)
	}
	a.Merge(b)
	got := a.Sorted()
	require.Len(t, got, 2)
	assert.Equal(t, float32(4), got[0].Score())
	assert.Equal(t, float32(3), got[1].Score())
}

func TestNewEvaluator_RejectsBadArgs(t *testing.T) {
	logger := zaptest.NewLogger(t)
	_, err := evaluate.NewEvaluator(character.Settings{}, 0, 1, logger)
	assert.Error(t, err)
	_, err = evaluate.NewEvaluator(character.Settings{}, 1, 0, logger)
	assert.Error(t, err)
	_, err = evaluate.NewEvaluator(character.Settings{}, 1, 1, nil)
	assert.Error(t, err)
}

func TestEvaluateAll_FiltersAndRanks(t *testing.T) {
	settings := character.Settings{MinToughness: character.Threshold(1000)}
	e, err := evaluate.NewEvaluator(settings, 3, 2, zaptest.NewLogger(t))
	require.NoError(t, err)

	cs := []character.Character{
		candidate(0, 500, 1200),
		candidate(1, 900, 800), // too squishy
		candidate(2, 700, 1000),
		candidate(3, 600, 1500),
		candidate(4, float32(math.NaN()), 2000),
	}
	sum, err := e.EvaluateAll(context.Background(), cs)
	require.NoError(t, err)

	assert.Equal(t, int64(5), sum.Evaluated)
	assert.Equal(t, int64(2), sum.Invalid)
	require.Len(t, sum.Results, 2)
	assert.Equal(t, uint32(2), sum.Results[0].CombinationID)
	assert.Equal(t, float32(700), sum.Results[0].Results.Value)
	assert.Equal(t, uint32(3), sum.Results[1].CombinationID)
}

func TestEvaluateAll_DropsNonFiniteValues(t *testing.T) {
	e, err := evaluate.NewEvaluator(character.Settings{}, 2, 5, zaptest.NewLogger(t))
	require.NoError(t, err)

	infHealth := candidate(1, 50, 0)
	infHealth.Attributes.Set(attribute.Health, float32(math.Inf(1)))
	infScore := candidate(2, float32(math.Inf(1)), 0)
	nanBase := candidate(3, 75, 0)
	nanBase.BaseAttributes.Set(attribute.Power, float32(math.NaN()))

	sum, err := e.EvaluateAll(context.Background(),
		[]character.Character{candidate(0, 100, 0), infHealth, infScore, nanBase})
	require.NoError(t, err)
	assert.Equal(t, int64(4), sum.Evaluated)
	assert.Equal(t, int64(3), sum.Invalid)
	require.Len(t, sum.Results, 1)
	assert.Equal(t, uint32(0), sum.Results[0].CombinationID)

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(sum.Results))
}

func TestEvaluateAll_Empty(t *testing.T) {
	e, err := evaluate.NewEvaluator(character.Settings{}, 2, 5, zaptest.NewLogger(t))
	require.NoError(t, err)
	sum, err := e.EvaluateAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, sum.Evaluated)
	assert.Empty(t, sum.Results)
}

func TestRun_CancelledContext(t *testing.T) {
	e, err := evaluate.NewEvaluator(character.Settings{}, 2, 5, zaptest.NewLogger(t))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	in := make(chan character.Character) // never closed
	_, err = e.Run(ctx, in)
	require.ErrorIs(t, err, context.Canceled)
}

func TestEvaluateAll_CancelledContext(t *testing.T) {
	e, err := evaluate.NewEvaluator(character.Settings{}, 2, 5, zaptest.NewLogger(t))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = e.EvaluateAll(ctx, []character.Character{candidate(0, 1, 0)})
	require.ErrorIs(t, err, context.Canceled)
}

// Property: the concurrent result equals a sequential filter, sort and truncate.
func TestEvaluateAll_MatchesSequential(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(0, 200).Draw(rt, "n")
		workers := rapid.IntRange(1, 8).Draw(rt, "workers")
		topK := rapid.IntRange(1, 20).Draw(rt, "topK")
		minTough := rapid.Float32Range(0, 1000).Draw(rt, "minToughness")

		cs := make([]character.Character, n)
		for i := range cs {
			cs[i] = candidate(uint32(i),
				float32(rapid.IntRange(0, 50).Draw(rt, "damage")),
				rapid.Float32Range(0, 2000).Draw(rt, "toughness"))
		}
		settings := character.Settings{MinToughness: character.Threshold(minTough)}

		e, err := evaluate.NewEvaluator(settings, workers, topK, zaptest.NewLogger(t))
		if err != nil {
			rt.Fatal(err)
		}
		sum, err := e.EvaluateAll(context.Background(), cs)
		if err != nil {
			rt.Fatal(err)
		}

		var valid []character.Character
		for i := range cs {
			if !cs[i].IsInvalid(&settings) {
				valid = append(valid, cs[i])
			}
		}
		slices.SortFunc(valid, func(a, b character.Character) int {
			if a.Score() != b.Score() {
				if a.Score() > b.Score() {
					return -1
				}
				return 1
			}
			return int(a.CombinationID) - int(b.CombinationID)
		})
		if len(valid) > topK {
			valid = valid[:topK]
		}

		if sum.Evaluated != int64(n) || sum.Invalid != int64(n-countValid(cs, &settings)) {
			rt.Fatalf("counts evaluated=%d invalid=%d", sum.Evaluated, sum.Invalid)
		}
		if len(sum.Results) != len(valid) {
			rt.Fatalf("got %d results, want %d", len(sum.Results), len(valid))
		}
		for i := range valid {
			if sum.Results[i].CombinationID != valid[i].CombinationID {
				rt.Fatalf("result %d: combination %d, want %d", i, sum.Results[i].CombinationID, valid[i].CombinationID)
			}
		}
	})
}

func countValid(cs []character.Character, s *character.Settings) int {
	n := 0
	for i := range cs {
		if !cs[i].IsInvalid(s) {
			n++
		}
	}
	return n
}
