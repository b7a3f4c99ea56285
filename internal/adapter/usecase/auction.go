package usecase

import (
	"math/rand/v2"

	"adserve/internal/core/domain"
)

// selectWinner runs the weighted auction over scored candidates and returns
// the winner, or nil for an empty pool. Candidates are folded through a
// weighted reservoir: the running winner is displaced by candidate i with
// probability pct/100, where pct is the integer percentage of i's weight in
// the total weight seen so far. For two candidates this reproduces the
// pairwise law P(A over B) = weight(A)·100/(weight(A)+weight(B)) truncated
// to whole percent, with a single roll in [1,100]. A pool whose weights are
// all zero falls back to a uniform reservoir, so zero-weight content still
// wins against its peers, while against any positive weight its chance
// truncates to zero.
//
// Draws come from the process-wide math/rand/v2 source, which is runtime
// seeded; selection is intentionally not reproducible run to run.
func selectWinner(candidates []domain.MatchResult) *domain.MatchResult {
	var (
		winner *domain.MatchResult
		total  int64
	)
	for i := range candidates {
		w := candidates[i].Weight()
		total += w
		switch {
		case winner == nil:
			winner = &candidates[i]
		case total == 0:
			if rand.IntN(i+1) == 0 {
				winner = &candidates[i]
			}
		default:
			pct := w * 100 / total
			if int64(rand.IntN(100))+1 <= pct {
				winner = &candidates[i]
			}
		}
	}
	return winner
}

// pickUniform selects uniformly among active content, the fallback when no
// targeted candidate exists and the whole of the untargeted path.
func pickUniform(active []domain.Content) *domain.Content {
	if len(active) == 0 {
		return nil
	}
	return &active[rand.IntN(len(active))]
}
