package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleContent(audience TargetContext) Content {
	c, err := NewContent(NewCampaign("c").ID, FormatLeaderboard, audience, 4, 10, Payload{
		Kind: PayloadText, Text: "hello",
	})
	if err != nil {
		panic(err)
	}
	return c
}

func TestMatchRejectsDisjointCategory(t *testing.T) {
	content := sampleContent(TargetContext{
		Ages:            []AgeGroup{Age20s},
		Genders:         []Gender{GenderFemale},
		MaritalStatuses: []MaritalStatus{MaritalSingle},
		Purposes:        []PurposeOfUse{PurposePrivate},
	})

	// gender restricted to a set the content does not declare
	req := TargetContext{
		Ages:    []AgeGroup{Age20s},
		Genders: []Gender{GenderMale},
	}
	_, ok := Match(req, content)
	assert.False(t, ok, "one disjoint restricted category must reject the content outright")
}

func TestMatchCountsGroupsAndFlags(t *testing.T) {
	content := sampleContent(TargetContext{
		Ages:            []AgeGroup{Age20s, Age30s},
		Genders:         []Gender{GenderFemale},
		MaritalStatuses: []MaritalStatus{MaritalSingle},
		Purposes:        []PurposeOfUse{PurposePrivate},
	})

	req := TargetContext{
		Ages:    []AgeGroup{Age20s, Age30s, Age40s},
		Genders: []Gender{GenderFemale, GenderOther},
	}
	m, ok := Match(req, content)
	require.True(t, ok)
	assert.Equal(t, 2, m.GroupMatches, "two restricted categories overlap")
	assert.Equal(t, 3, m.FlagMatches, "two age tags plus one gender tag overlap")
	assert.Equal(t, int64(2*3*4), m.Weight())
}

func TestMatchUnrestrictedRequest(t *testing.T) {
	content := sampleContent(TargetContext{
		Ages:            []AgeGroup{Age50Plus},
		Genders:         []Gender{GenderMale},
		MaritalStatuses: []MaritalStatus{MaritalWidowed},
		Purposes:        []PurposeOfUse{PurposeBusiness},
	})

	m, ok := Match(TargetContext{}, content)
	require.True(t, ok, "an unrestricted request matches every content")
	assert.Zero(t, m.GroupMatches)
	assert.Zero(t, m.FlagMatches)
	assert.Zero(t, m.Weight())
}

func TestUnrestricted(t *testing.T) {
	assert.True(t, TargetContext{}.Unrestricted())
	assert.False(t, TargetContext{Genders: []Gender{GenderOther}}.Unrestricted())
}
