package grammatik

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectSeparableVerbsPrimaryScan(t *testing.T) {
	doc := aufstehenDoc(t)
	pairs := detectSeparableVerbs(doc, nil)

	require.Len(t, pairs, 1)
	assert.Equal(t, 1, pairs[0].Verb)
	assert.Equal(t, 5, pairs[0].Particle)
	assert.Equal(t, "aufstehen", pairs[0].Lemma)
}

func TestDetectSeparableVerbsExclusion(t *testing.T) {
	doc := aufstehenDoc(t)
	pairs := detectSeparableVerbs(doc, map[int]bool{5: true})
	assert.Empty(t, pairs)
}

func TestDetectSeparableVerbsSecondaryScan(t *testing.T) {
	// The parser mislabelled the particle as a plain adverb with no svp
	// edge; the secondary scan pairs it with the nearest verb.
	doc := buildDoc(t, "Er kommt heute mit.", []tok{
		{text: "Er", pos: POSPronoun, lemma: "er", dep: "sb", head: 1},
		{text: "kommt", pos: POSVerb, lemma: "kommen", dep: "ROOT", head: 1},
		{text: "heute", pos: POSAdverb, lemma: "heute", dep: "mo", head: 1},
		{text: "mit", pos: POSAdverb, lemma: "mit", dep: "mo", head: 1},
		{text: ".", pos: POSPunctuation, lemma: ".", dep: "punct", head: 1},
	})
	pairs := detectSeparableVerbs(doc, nil)

	require.Len(t, pairs, 1)
	assert.Equal(t, 1, pairs[0].Verb)
	assert.Equal(t, 3, pairs[0].Particle)
	assert.Equal(t, "mitkommen", pairs[0].Lemma)
}

func TestSecondaryScanRejectsNounPhrase(t *testing.T) {
	// "auf das Haus" is a preposition governing a noun phrase; the
	// following determiner blocks the particle reading.
	doc := buildDoc(t, "Er klettert auf das Dach.", []tok{
		{text: "Er", pos: POSPronoun, lemma: "er", dep: "sb", head: 1},
		{text: "klettert", pos: POSVerb, lemma: "klettern", dep: "ROOT", head: 1},
		{text: "auf", pos: POSAdposition, lemma: "auf", dep: "mo", head: 1},
		{text: "das", pos: POSDeterminer, lemma: "der", dep: "nk", head: 4},
		{text: "Dach", pos: POSNoun, lemma: "Dach", dep: "nk", head: 2},
		{text: ".", pos: POSPunctuation, lemma: ".", dep: "punct", head: 1},
	})
	pairs := detectSeparableVerbs(doc, nil)
	assert.Empty(t, pairs)
}

func TestSecondaryScanSkipsPronominalAdverbs(t *testing.T) {
	doc := beginnenDoc(t)
	pairs := detectSeparableVerbs(doc, nil)
	assert.Empty(t, pairs)
}

func TestSecondaryScanNoDuplicateOfPrimary(t *testing.T) {
	// "auf" carries both the svp edge and an ADP tag; only one pair may
	// be recorded.
	doc := aufstehenDoc(t)
	pairs := detectSeparableVerbs(doc, nil)
	require.Len(t, pairs, 1)
}

func TestClosestVerbTieGoesToLowerIndex(t *testing.T) {
	// Two verbs at distance 1 from the particle; the left one wins.
	doc := buildDoc(t, "kommt los geht", []tok{
		{text: "kommt", pos: POSVerb, lemma: "kommen", dep: "ROOT", head: 0},
		{text: "los", pos: POSAdverb, lemma: "los", dep: "mo", head: 0},
		{text: "geht", pos: POSVerb, lemma: "gehen", dep: "cj", head: 0},
	})
	pairs := detectSeparableVerbs(doc, nil)

	require.Len(t, pairs, 1)
	assert.Equal(t, 0, pairs[0].Verb)
	assert.Equal(t, "loskommen", pairs[0].Lemma)
}

func TestSeparableSearchStaysInSentence(t *testing.T) {
	// The only verb lives in the previous sentence; no pair is formed.
	doc := buildDoc(t, "Er kommt. Nur weiter.", []tok{
		{text: "Er", pos: POSPronoun, lemma: "er", dep: "sb", head: 1, sent: 0},
		{text: "kommt", pos: POSVerb, lemma: "kommen", dep: "ROOT", head: 1, sent: 0},
		{text: ".", pos: POSPunctuation, lemma: ".", dep: "punct", head: 1, sent: 0},
		{text: "Nur", pos: POSAdverb, lemma: "nur", dep: "mo", head: 4, sent: 1},
		{text: "weiter", pos: POSAdverb, lemma: "weiter", dep: "ROOT", head: 4, sent: 1},
		{text: ".", pos: POSPunctuation, lemma: ".", dep: "punct", head: 4, sent: 1},
	})
	pairs := detectSeparableVerbs(doc, nil)
	assert.Empty(t, pairs)
}

func TestDetectReflexiveVerbsViaHead(t *testing.T) {
	doc := interessierenDoc(t)
	pairs := detectReflexiveVerbs(doc)

	require.Len(t, pairs, 1)
	assert.Equal(t, 1, pairs[0].Verb)
	assert.Equal(t, 2, pairs[0].Pronoun)
	assert.Equal(t, "sich interessieren", pairs[0].Lemma)
}

func TestDetectReflexiveVerbsClosestVerbFallback(t *testing.T) {
	// The pronoun hangs off a noun; the nearest VERB/AUX is chosen.
	doc := buildDoc(t, "Die Kinder freuen sich sehr.", []tok{
		{text: "Die", pos: POSDeterminer, lemma: "der", dep: "nk", head: 1},
		{text: "Kinder", pos: POSNoun, lemma: "Kind", dep: "sb", head: 2},
		{text: "freuen", pos: POSVerb, lemma: "freuen", dep: "ROOT", head: 2},
		{text: "sich", pos: POSPronoun, lemma: "sich", dep: "nk", head: 1},
		{text: "sehr", pos: POSAdverb, lemma: "sehr", dep: "mo", head: 2},
		{text: ".", pos: POSPunctuation, lemma: ".", dep: "punct", head: 2},
	})
	pairs := detectReflexiveVerbs(doc)

	require.Len(t, pairs, 1)
	assert.Equal(t, 2, pairs[0].Verb)
	assert.Equal(t, "sich freuen", pairs[0].Lemma)
}

func TestReflexiveLemmaAlwaysUsesSich(t *testing.T) {
	// "mich" occurs, but the canonical form still says "sich".
	doc := buildDoc(t, "Ich freue mich.", []tok{
		{text: "Ich", pos: POSPronoun, lemma: "ich", dep: "sb", head: 1},
		{text: "freue", pos: POSVerb, lemma: "freuen", dep: "ROOT", head: 1},
		{text: "mich", pos: POSPronoun, lemma: "mich", dep: "obj", head: 1},
		{text: ".", pos: POSPunctuation, lemma: ".", dep: "punct", head: 1},
	})
	pairs := detectReflexiveVerbs(doc)

	require.Len(t, pairs, 1)
	assert.Equal(t, "sich freuen", pairs[0].Lemma)
}

func TestConstructInfinitive(t *testing.T) {
	tests := []struct {
		particle, lemma, want string
	}{
		{"auf", "stehen", "aufstehen"},
		{"Auf", "stehen", "aufstehen"},
		{"zurück", "kommen", "zurückkommen"},
		{"fest", "legen", "festlegen"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, constructInfinitive(tt.particle, tt.lemma))
	}
}
