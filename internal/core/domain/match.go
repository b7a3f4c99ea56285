package domain

// MatchResult is the outcome of scoring one content against a request
// context. GroupMatches counts the categories the request explicitly
// restricted and the content overlapped; FlagMatches counts the individual
// overlapping tags across those categories. Together with the price they
// quantify how specific and how valuable a candidate is.
type MatchResult struct {
	Content      Content
	GroupMatches int
	FlagMatches  int
}

// Weight is the auction weight of the candidate. A fully unrestricted
// request yields weight zero for every candidate, which degenerates the
// auction into a uniform draw.
func (m MatchResult) Weight() int64 {
	return int64(m.GroupMatches) * int64(m.FlagMatches) * m.Content.PriceCents
}

// Match scores a content's audience against a request context. All four
// categories must intersect for the content to be a candidate; a category
// the request left empty intersects everything. There is no partial credit:
// one restricted category without overlap rejects the content outright.
func Match(req TargetContext, c Content) (MatchResult, bool) {
	res := MatchResult{Content: c}
	if !matchCategory(req.Ages, c.Audience.Ages, &res) {
		return MatchResult{}, false
	}
	if !matchCategory(req.Genders, c.Audience.Genders, &res) {
		return MatchResult{}, false
	}
	if !matchCategory(req.MaritalStatuses, c.Audience.MaritalStatuses, &res) {
		return MatchResult{}, false
	}
	if !matchCategory(req.Purposes, c.Audience.Purposes, &res) {
		return MatchResult{}, false
	}
	return res, true
}

func matchCategory[T comparable](requested, declared []T, res *MatchResult) bool {
	if len(requested) == 0 {
		// unrestricted category: intersects, contributes nothing
		return true
	}
	n := overlap(requested, declared)
	if n == 0 {
		return false
	}
	res.GroupMatches++
	res.FlagMatches += n
	return true
}
