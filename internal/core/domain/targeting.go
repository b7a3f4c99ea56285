package domain

import "slices"

// Audience category tags. A stored content declares at least one tag per
// category; an incoming request may leave a category empty, which means
// "no restriction" for that category.

type AgeGroup string

const (
	AgeUnder20 AgeGroup = "under_20"
	Age20s     AgeGroup = "20_29"
	Age30s     AgeGroup = "30_39"
	Age40s     AgeGroup = "40_49"
	Age50Plus  AgeGroup = "50_plus"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

type MaritalStatus string

const (
	MaritalSingle   MaritalStatus = "single"
	MaritalMarried  MaritalStatus = "married"
	MaritalDivorced MaritalStatus = "divorced"
	MaritalWidowed  MaritalStatus = "widowed"
)

type PurposeOfUse string

const (
	PurposePrivate   PurposeOfUse = "private"
	PurposeBusiness  PurposeOfUse = "business"
	PurposeEducation PurposeOfUse = "education"
)

// TargetContext describes who a content is aimed at, or who a request is
// made on behalf of. The four categories are independent sets of tags.
type TargetContext struct {
	Ages            []AgeGroup      `json:"ages"`
	Genders         []Gender        `json:"genders"`
	MaritalStatuses []MaritalStatus `json:"marital_statuses"`
	Purposes        []PurposeOfUse  `json:"purposes"`
}

// Unrestricted reports whether every category is empty, i.e. the context
// places no restriction at all on the audience.
func (t TargetContext) Unrestricted() bool {
	return len(t.Ages) == 0 && len(t.Genders) == 0 &&
		len(t.MaritalStatuses) == 0 && len(t.Purposes) == 0
}

// ValidateAudience checks the invariants of a stored content context: every
// category must carry at least one known tag. Request-side contexts are not
// validated this way; unknown tags there simply never intersect anything.
func (t TargetContext) ValidateAudience() error {
	if len(t.Ages) == 0 || len(t.Genders) == 0 ||
		len(t.MaritalStatuses) == 0 || len(t.Purposes) == 0 {
		return ErrEmptyAudienceCategory
	}
	for _, a := range t.Ages {
		if !slices.Contains(ageGroups, a) {
			return ErrUnknownAudienceTag
		}
	}
	for _, g := range t.Genders {
		if !slices.Contains(genders, g) {
			return ErrUnknownAudienceTag
		}
	}
	for _, m := range t.MaritalStatuses {
		if !slices.Contains(maritalStatuses, m) {
			return ErrUnknownAudienceTag
		}
	}
	for _, p := range t.Purposes {
		if !slices.Contains(purposes, p) {
			return ErrUnknownAudienceTag
		}
	}
	return nil
}

var (
	ageGroups       = []AgeGroup{AgeUnder20, Age20s, Age30s, Age40s, Age50Plus}
	genders         = []Gender{GenderMale, GenderFemale, GenderOther}
	maritalStatuses = []MaritalStatus{MaritalSingle, MaritalMarried, MaritalDivorced, MaritalWidowed}
	purposes        = []PurposeOfUse{PurposePrivate, PurposeBusiness, PurposeEducation}
)

// overlap counts how many requested tags appear in the declared set.
func overlap[T comparable](requested, declared []T) int {
	n := 0
	for _, v := range requested {
		if slices.Contains(declared, v) {
			n++
		}
	}
	return n
}
