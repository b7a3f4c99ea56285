package usecase

import (
	"math"
	"testing"

	"github.com/google/uuid"

	"adserve/internal/core/domain"
)

func candidate(groups, flags int, priceCents int64) domain.MatchResult {
	return domain.MatchResult{
		Content: domain.Content{
			ID:         uuid.New(),
			PriceCents: priceCents,
		},
		GroupMatches: groups,
		FlagMatches:  flags,
	}
}

func TestSelectWinnerEmptyPool(t *testing.T) {
	if w := selectWinner(nil); w != nil {
		t.Fatalf("expected no winner for empty pool, got %v", w)
	}
}

func TestSelectWinnerSingleCandidate(t *testing.T) {
	c := candidate(1, 1, 100)
	w := selectWinner([]domain.MatchResult{c})
	if w == nil || w.Content.ID != c.Content.ID {
		t.Fatalf("single candidate must always win")
	}
}

// TestPairwiseSelectionLaw verifies the two-candidate contract: A is
// preferred over B with probability weight(A)/(weight(A)+weight(B)),
// quantized to whole percent. Weights 300 and 100 put the exact split at
// 75/25, so truncation does not bias the expectation.
func TestPairwiseSelectionLaw(t *testing.T) {
	const draws = 100_000
	a := candidate(1, 1, 300)
	b := candidate(1, 1, 100)

	for name, pool := range map[string][]domain.MatchResult{
		"a_first": {a, b},
		"b_first": {b, a},
	} {
		wins := 0
		for i := 0; i < draws; i++ {
			if selectWinner(pool).Content.ID == b.Content.ID {
				wins++
			}
		}
		got := float64(wins) / draws
		if math.Abs(got-0.25) > 0.01 {
			t.Errorf("%s: B won %.4f of draws, want 0.25 ± 0.01", name, got)
		}
	}
}

// TestZeroWeightPoolUniform: when every candidate weighs zero the auction
// degenerates into a uniform draw, so zero-weight content still wins when
// compared only against its zero-weight peers.
func TestZeroWeightPoolUniform(t *testing.T) {
	const draws = 40_000
	pool := []domain.MatchResult{
		candidate(0, 0, 100),
		candidate(0, 0, 200),
		candidate(0, 0, 0),
		candidate(1, 2, 0),
	}
	counts := make(map[uuid.UUID]int, len(pool))
	for i := 0; i < draws; i++ {
		counts[selectWinner(pool).Content.ID]++
	}
	for _, c := range pool {
		got := float64(counts[c.Content.ID]) / draws
		if math.Abs(got-0.25) > 0.02 {
			t.Errorf("candidate won %.4f of draws, want 0.25 ± 0.02", got)
		}
	}
}

// TestZeroWeightNeverBeatsPositive: against a positive weight, a
// zero-weight candidate's percentage truncates to zero and it never wins.
func TestZeroWeightNeverBeatsPositive(t *testing.T) {
	const draws = 10_000
	zero := candidate(0, 0, 500)
	pos := candidate(2, 3, 4)

	for name, pool := range map[string][]domain.MatchResult{
		"zero_first": {zero, pos},
		"zero_last":  {pos, zero},
	} {
		for i := 0; i < draws; i++ {
			if selectWinner(pool).Content.ID == zero.Content.ID {
				t.Fatalf("%s: zero-weight candidate beat a positive weight", name)
			}
		}
	}
}

// TestWeightRatioConvergence checks the long-run frequency for a larger
// gap: weights 900 vs 100 must converge near 90/10.
func TestWeightRatioConvergence(t *testing.T) {
	const draws = 100_000
	heavy := candidate(3, 3, 100)
	light := candidate(1, 1, 100)

	wins := 0
	for i := 0; i < draws; i++ {
		if selectWinner([]domain.MatchResult{heavy, light}).Content.ID == heavy.Content.ID {
			wins++
		}
	}
	got := float64(wins) / draws
	if math.Abs(got-0.9) > 0.01 {
		t.Errorf("heavy candidate won %.4f of draws, want 0.90 ± 0.01", got)
	}
}
