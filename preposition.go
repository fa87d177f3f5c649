package grammatik

import "strings"

// PrepositionLink records a preposition acting as an argument of a verb,
// together with the grammatical case it governs in that combination.
type PrepositionLink struct {
	// Verb and Prep are token indices. For a pronominal adverb Prep is the
	// adverb token itself ("damit"), not the preposition it embeds.
	Verb int
	Prep int
	// Text is the surface form of the linked token.
	Text string
	// Case is the governed case, CaseUnknown when no rule applies.
	Case Case
}

// pronominalAdverbMaxDistance bounds how far a pronominal adverb may sit
// from its verb and still count as connected.
const pronominalAdverbMaxDistance = 4

// headHops is how many dependency-head steps the connectivity test walks.
const headHops = 3

// detectVerbPrepositions finds every preposition in the verb's sentence that
// functions as an argument of the verb, and infers the case it governs.
// verbLemma is the effective lemma used for dictionary lookups; the caller
// passes the corrected separable/reflexive infinitive when one is known.
//
// When the dictionary has an entry for verbLemma, the entry acts as a
// whitelist: candidate prepositions outside the expected list are dropped as
// adjuncts. Verbs without an entry are evaluated purely syntactically, so
// the detector generalizes beyond the static table.
func detectVerbPrepositions(doc *Document, verb Token, verbLemma string) []PrepositionLink {
	expected := verbPrepositions[verbLemma]

	var links []PrepositionLink
	for _, tok := range doc.SentenceOf(verb) {
		prep := candidatePreposition(tok)
		if prep == "" {
			continue
		}
		if len(expected) > 0 && !expectsPreposition(expected, prep) {
			continue
		}
		if !prepConnectedToVerb(doc, tok, verb) {
			continue
		}
		links = append(links, PrepositionLink{
			Verb: verb.Index,
			Prep: tok.Index,
			Text: tok.Text,
			Case: determineCase(doc, prep, expected, tok),
		})
	}
	return links
}

// candidatePreposition returns the preposition a token stands for: its own
// lowercased text for an adposition, the embedded preposition for a
// pronominal adverb, or "" when the token is neither.
func candidatePreposition(tok Token) string {
	lower := strings.ToLower(tok.Text)
	if tok.POS == POSAdposition {
		return lower
	}
	if tok.POS == POSAdverb {
		if embedded, ok := pronominalAdverbs[lower]; ok {
			return embedded
		}
	}
	return ""
}

// expectsPreposition reports whether prep occurs in the verb's expected list.
func expectsPreposition(expected []prepCase, prep string) bool {
	for _, e := range expected {
		if e.Prep == prep {
			return true
		}
	}
	return false
}

// prepConnectedToVerb decides whether a preposition is a true argument of
// the verb rather than an optional adjunct. It accepts when any of:
//
//  1. walking up to three head hops from a child of the preposition (its
//     prepositional object) reaches the verb, the reaching token carries an
//     argument label, and the preposition itself is labelled "case" or
//     tagged ADP;
//  2. the preposition attaches to the verb directly with an argument label;
//  3. the token is a pronominal adverb within four tokens of the verb, with
//     no other VERB/AUX between them, and up to three head hops reach the
//     verb.
//
// Any other configuration is an adjunct and is rejected.
func prepConnectedToVerb(doc *Document, prep, verb Token) bool {
	if prep.Sent != verb.Sent {
		return false
	}
	return objectReachesVerb(doc, prep, verb) ||
		directArgument(prep, verb) ||
		pronominalAdverbNearVerb(doc, prep, verb)
}

// objectReachesVerb walks from each child of the preposition up the
// dependency tree looking for the verb.
func objectReachesVerb(doc *Document, prep, verb Token) bool {
	for _, child := range doc.children(prep) {
		current := child
		for hop := 0; hop < headHops; hop++ {
			if current.Head == verb.Index {
				if argumentDeps[current.Dep] &&
					(prep.Dep == DepCaseMarker || prep.POS == POSAdposition) {
					return true
				}
				break
			}
			if current.IsRoot() {
				break
			}
			current = doc.HeadOf(current)
		}
	}
	return false
}

// directArgument reports whether the preposition attaches to the verb itself
// under an argument label. Some parsers connect prepositions this way.
func directArgument(prep, verb Token) bool {
	return prep.Head == verb.Index && directArgumentDeps[prep.Dep]
}

// pronominalAdverbNearVerb applies the proximity heuristic for pronominal
// adverbs, which parsers attach inconsistently.
func pronominalAdverbNearVerb(doc *Document, prep, verb Token) bool {
	if _, ok := pronominalAdverbs[strings.ToLower(prep.Text)]; !ok {
		return false
	}
	if indexDistance(prep, verb) > pronominalAdverbMaxDistance {
		return false
	}
	lo, hi := prep.Index, verb.Index
	if lo > hi {
		lo, hi = hi, lo
	}
	for i := lo; i < hi; i++ {
		t := doc.Tokens[i]
		if t.POS.isVerbal() && t.Index != verb.Index {
			return false
		}
	}
	current := prep
	for hop := 0; hop < headHops; hop++ {
		if current.Head == verb.Index {
			return true
		}
		if current.IsRoot() {
			return false
		}
		current = doc.HeadOf(current)
	}
	return false
}

// determineCase resolves the case governed by prep in this verb context,
// trying in order: the morphological case of the prepositional object, the
// verb's expected-preposition list, the general fallback table.
func determineCase(doc *Document, prep string, expected []prepCase, prepTok Token) Case {
	if c, ok := caseFromObject(doc, prepTok); ok {
		return c
	}
	for _, e := range expected {
		if e.Prep == prep {
			return e.Case
		}
	}
	if c, ok := prepositionCases[prep]; ok {
		return c
	}
	return CaseUnknown
}

// caseFromObject inspects the preposition's dependents for an explicit
// morphological case feature. Explicit morphology wins over the dictionary.
func caseFromObject(doc *Document, prepTok Token) (Case, bool) {
	for _, child := range doc.children(prepTok) {
		if child.CaseFeat == "" {
			continue
		}
		if c, ok := morphCaseNames[child.CaseFeat]; ok {
			return c, true
		}
	}
	return "", false
}
