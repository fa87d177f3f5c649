package grammatik

import "strings"

// SeparablePair links a finite verb with its detached separable particle.
type SeparablePair struct {
	// Verb and Particle are token indices.
	Verb     int
	Particle int
	// Lemma is the reconstructed infinitive, e.g. "aufstehen" for
	// "steht ... auf".
	Lemma string
}

// ReflexivePair links a verb with the reflexive pronoun it governs.
type ReflexivePair struct {
	// Verb and Pronoun are token indices.
	Verb    int
	Pronoun int
	// Lemma is the canonical reflexive infinitive, always rendered with
	// "sich" regardless of the pronoun that actually occurred.
	Lemma string
}

// detectSeparableVerbs finds verb/particle pairs in doc. Tokens whose index
// is in exclude were already claimed as verb-linked prepositions by the
// exclusion pass and are never considered.
//
// Two scans run in order. The primary scan trusts the parser: any token the
// parser labelled as a separable particle is paired with its dependency
// head. The secondary scan catches particles the parser mislabelled as
// plain adpositions or adverbs, pairing them with the nearest verb unless
// they govern a following noun phrase.
func detectSeparableVerbs(doc *Document, exclude map[int]bool) []SeparablePair {
	var pairs []SeparablePair

	for _, tok := range doc.Tokens {
		if exclude[tok.Index] {
			continue
		}
		if tok.Dep != DepSeparableParticle {
			continue
		}
		lower := strings.ToLower(tok.Text)
		if _, ok := pronominalAdverbs[lower]; ok {
			continue
		}
		if !separablePrefixes[lower] {
			continue
		}
		verb := doc.HeadOf(tok)
		pairs = append(pairs, SeparablePair{
			Verb:     verb.Index,
			Particle: tok.Index,
			Lemma:    constructInfinitive(tok.Text, verb.Lemma),
		})
	}

	for _, tok := range doc.Tokens {
		if exclude[tok.Index] {
			continue
		}
		lower := strings.ToLower(tok.Text)
		if _, ok := pronominalAdverbs[lower]; ok {
			continue
		}
		if tok.POS != POSAdposition && tok.POS != POSAdverb {
			continue
		}
		if !separablePrefixes[lower] {
			continue
		}
		verb, ok := findPairedVerb(doc, tok)
		if !ok || alreadyPaired(pairs, verb.Index, tok.Index) {
			continue
		}
		pairs = append(pairs, SeparablePair{
			Verb:     verb.Index,
			Particle: tok.Index,
			Lemma:    constructInfinitive(tok.Text, verb.Lemma),
		})
	}

	return pairs
}

// detectReflexiveVerbs finds verb/pronoun pairs for every reflexive pronoun
// in doc. The pronoun's dependency head is used when it is verbal; otherwise
// the nearest VERB/AUX in the sentence is chosen.
func detectReflexiveVerbs(doc *Document) []ReflexivePair {
	var pairs []ReflexivePair

	for _, tok := range doc.Tokens {
		if tok.POS != POSPronoun || !reflexivePronouns[strings.ToLower(tok.Text)] {
			continue
		}
		verb, ok := doc.HeadOf(tok), true
		if !verb.POS.isVerbal() {
			verb, ok = doc.closestVerbal(tok)
		}
		if !ok {
			continue
		}
		pairs = append(pairs, ReflexivePair{
			Verb:    verb.Index,
			Pronoun: tok.Index,
			Lemma:   "sich " + verb.Lemma,
		})
	}

	return pairs
}

// findPairedVerb locates the verb a mislabelled particle belongs to.
// A candidate immediately followed by a determiner, pronoun or noun is a
// genuine preposition governing a noun phrase ("auf das Haus") and is
// rejected. Otherwise the nearest VERB/AUX in the sentence wins, ties going
// to the lower index.
func findPairedVerb(doc *Document, particle Token) (Token, bool) {
	if particle.Index+1 < len(doc.Tokens) {
		switch doc.Tokens[particle.Index+1].POS {
		case POSDeterminer, POSPronoun, POSNoun, POSProperNoun:
			return Token{}, false
		}
	}
	return doc.closestVerbal(particle)
}

// constructInfinitive rebuilds the infinitive of a separable verb by
// concatenating the lowercased particle with the verb lemma. The lemma is
// assumed to already be an infinitive; no orthographic adjustment is made.
func constructInfinitive(particle, verbLemma string) string {
	return strings.ToLower(particle) + verbLemma
}

// alreadyPaired reports whether the exact (verb, particle) pair was already
// recorded.
func alreadyPaired(pairs []SeparablePair, verb, particle int) bool {
	for _, p := range pairs {
		if p.Verb == verb && p.Particle == particle {
			return true
		}
	}
	return false
}
