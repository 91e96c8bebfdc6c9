package domain_test

import (
	"encoding/json"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/backend/internal/domain"
)

func TestParseInterest(t *testing.T) {
	cases := []struct {
		in   string
		want domain.Interest
	}{
		{"history", domain.InterestHistory},
		{"History", domain.InterestHistory},
		{"  ADVENTURE ", domain.InterestAdventure},
		{"Wildlife", domain.InterestWildlife},
	}
	for _, tc := range cases {
		got, err := domain.ParseInterest(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got)
	}
}

func TestParseInterest_Unknown(t *testing.T) {
	_, err := domain.ParseInterest("skydiving")

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.ErrorContains(t, err, "skydiving")
}

func TestInterests_VocabularyIsSorted(t *testing.T) {
	all := domain.Interests()

	require.Len(t, all, 8)
	assert.True(t, slices.IsSorted(all))
	for _, i := range all {
		assert.True(t, i.Valid())
		assert.NotEqual(t, string(i), i.Label(), "label should be title-cased")
	}
}

func TestInterestSet_HasAndSlugs(t *testing.T) {
	s := domain.NewInterestSet(domain.InterestFood, domain.InterestCulture, domain.InterestFood)

	assert.True(t, s.Has(domain.InterestFood))
	assert.False(t, s.Has(domain.InterestHistory))
	assert.Equal(t, []string{"culture", "food"}, s.Slugs())
}

func TestInterestSet_ZeroValueLookup(t *testing.T) {
	var s domain.InterestSet

	assert.False(t, s.Has(domain.InterestAdventure))
	assert.Empty(t, s.Slugs())
}

func TestInterestSet_JSON(t *testing.T) {
	var s domain.InterestSet
	require.NoError(t, json.Unmarshal([]byte(`["History","adventure"]`), &s))

	assert.True(t, s.Has(domain.InterestHistory))
	assert.True(t, s.Has(domain.InterestAdventure))

	b, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `["adventure","history"]`, string(b))
}

func TestInterestSet_JSON_UnknownLabel(t *testing.T) {
	var s domain.InterestSet
	err := json.Unmarshal([]byte(`["History","Karaoke"]`), &s)

	assert.ErrorIs(t, err, domain.ErrValidation)
}
