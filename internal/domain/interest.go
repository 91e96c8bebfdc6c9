package domain

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// Interest is one category from the closed vocabulary a traveller can pick
// to steer itinerary content. The underlying string is the lowercase slug
// used in JSON and in the database.
type Interest string

const (
	InterestAdventure  Interest = "adventure"
	InterestCulture    Interest = "culture"
	InterestFood       Interest = "food"
	InterestHistory    Interest = "history"
	InterestNature     Interest = "nature"
	InterestRelaxation Interest = "relaxation"
	InterestShopping   Interest = "shopping"
	InterestWildlife   Interest = "wildlife"
)

// interestLabels maps each known interest to its display label.
var interestLabels = map[Interest]string{
	InterestAdventure:  "Adventure",
	InterestCulture:    "Culture",
	InterestFood:       "Food",
	InterestHistory:    "History",
	InterestNature:     "Nature",
	InterestRelaxation: "Relaxation",
	InterestShopping:   "Shopping",
	InterestWildlife:   "Wildlife",
}

// Interests returns the full vocabulary ordered by slug.
func Interests() []Interest {
	out := make([]Interest, 0, len(interestLabels))
	for i := range interestLabels {
		out = append(out, i)
	}
	slices.Sort(out)
	return out
}

// ParseInterest resolves a slug or display label ("history", "History",
// " HISTORY ") to a known Interest.
// Returns an error wrapping ErrValidation for anything outside the vocabulary.
func ParseInterest(s string) (Interest, error) {
	i := Interest(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := interestLabels[i]; !ok {
		return "", fmt.Errorf("%w: unknown interest %q", ErrValidation, s)
	}
	return i, nil
}

// Label returns the human-readable name, e.g. "History".
func (i Interest) Label() string {
	if l, ok := interestLabels[i]; ok {
		return l
	}
	return string(i)
}

// Valid reports whether i belongs to the vocabulary.
func (i Interest) Valid() bool {
	_, ok := interestLabels[i]
	return ok
}

// InterestSet is an unordered set of interests.
// The zero value is an empty set ready to use for lookups.
type InterestSet map[Interest]struct{}

// NewInterestSet builds a set from the given interests. Duplicates collapse.
func NewInterestSet(interests ...Interest) InterestSet {
	s := make(InterestSet, len(interests))
	for _, i := range interests {
		s[i] = struct{}{}
	}
	return s
}

// ParseInterestSet resolves every label in labels, failing on the first
// unknown one.
func ParseInterestSet(labels []string) (InterestSet, error) {
	s := make(InterestSet, len(labels))
	for _, l := range labels {
		i, err := ParseInterest(l)
		if err != nil {
			return nil, err
		}
		s[i] = struct{}{}
	}
	return s, nil
}

// Has reports whether i is in the set.
func (s InterestSet) Has(i Interest) bool {
	_, ok := s[i]
	return ok
}

// Slice returns the members ordered by slug so output is stable.
func (s InterestSet) Slice() []Interest {
	out := make([]Interest, 0, len(s))
	for i := range s {
		out = append(out, i)
	}
	slices.Sort(out)
	return out
}

// Slugs returns the members as sorted strings, the form stored in Postgres.
func (s InterestSet) Slugs() []string {
	out := make([]string, 0, len(s))
	for _, i := range s.Slice() {
		out = append(out, string(i))
	}
	return out
}

// MarshalJSON encodes the set as a sorted array of slugs.
func (s InterestSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Slugs())
}

// UnmarshalJSON accepts an array of slugs or labels.
func (s *InterestSet) UnmarshalJSON(b []byte) error {
	var labels []string
	if err := json.Unmarshal(b, &labels); err != nil {
		return err
	}
	set, err := ParseInterestSet(labels)
	if err != nil {
		return err
	}
	*s = set
	return nil
}
