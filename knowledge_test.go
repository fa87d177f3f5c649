package grammatik

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPronominalAdverbEmbedding(t *testing.T) {
	tests := []struct {
		adverb, prep string
	}{
		{"damit", "mit"},
		{"darauf", "auf"},
		{"woran", "an"},
		{"worüber", "über"},
		{"dazu", "zu"},
	}
	for _, tt := range tests {
		got, ok := pronominalAdverbs[tt.adverb]
		assert.True(t, ok, "%s missing", tt.adverb)
		assert.Equal(t, tt.prep, got)
	}
}

func TestDaIsNotASeparablePrefix(t *testing.T) {
	// "da" only occurs fused inside pronominal adverbs; treating it as a
	// prefix would shadow damit/daran/etc.
	assert.False(t, separablePrefixes["da"])
}

func TestPronominalAdverbsAreNeverPrefixes(t *testing.T) {
	for adv := range pronominalAdverbs {
		assert.False(t, separablePrefixes[adv], "%s must not be a prefix", adv)
	}
}

func TestTwoWayPrepositionsShareCompoundLabel(t *testing.T) {
	for _, p := range []string{"an", "auf", "hinter", "in", "neben", "über", "unter", "vor", "zwischen"} {
		assert.Equal(t, CaseAccusativeDative, prepositionCases[p], p)
	}
}

func TestMorphCaseNames(t *testing.T) {
	assert.Equal(t, CaseNominative, morphCaseNames["Nom"])
	assert.Equal(t, CaseAccusative, morphCaseNames["Acc"])
	assert.Equal(t, CaseDative, morphCaseNames["Dat"])
	assert.Equal(t, CaseGenitive, morphCaseNames["Gen"])
	_, ok := morphCaseNames["Voc"]
	assert.False(t, ok)
}

func TestReflexiveDictionaryKeysCarrySichPrefix(t *testing.T) {
	for lemma := range verbPrepositions {
		if strings.HasPrefix(lemma, "sich ") {
			assert.Greater(t, len(lemma), len("sich "))
		}
	}
	// Spot checks: inherently reflexive verbs are keyed with the prefix,
	// plain verbs without it.
	_, ok := verbPrepositions["sich interessieren"]
	assert.True(t, ok)
	_, ok = verbPrepositions["interessieren"]
	assert.False(t, ok)
	_, ok = verbPrepositions["warten"]
	assert.True(t, ok)
}

func TestExpectedPrepositionsAreLowercase(t *testing.T) {
	for lemma, entries := range verbPrepositions {
		for _, e := range entries {
			assert.Equal(t, strings.ToLower(e.Prep), e.Prep,
				"%s: preposition %q not lowercase", lemma, e.Prep)
			assert.NotEqual(t, Case(""), e.Case, "%s: empty case for %q", lemma, e.Prep)
		}
	}
}
