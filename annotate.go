// Package grammatik annotates dependency-parsed German text with resolved
// multi-token grammatical relations: separable verb/particle pairs
// ("steht ... auf" → "aufstehen"), reflexive verb/pronoun pairs
// ("freut sich" → "sich freuen"), and verb-preposition argument structures
// with the case they govern ("wartet auf" + Accusative).
//
// The engine consumes an already-parsed Document and is purely functional:
// it holds no state between calls, performs no I/O, and independent
// documents may be annotated in parallel.
package grammatik

// VerbPreposition is one preposition detected as an argument of a verb,
// reported on the verb's annotation.
type VerbPreposition struct {
	// Text is the surface form of the linked token (may be a pronominal
	// adverb such as "damit").
	Text string `json:"text"`
	// Case is the governed case label.
	Case Case `json:"case"`
	// Position is the character offset of the linked token.
	Position int `json:"position"`
}

// TokenAnnotation is the engine's output for a single input token. Character
// spans and ordering mirror the input exactly.
type TokenAnnotation struct {
	Text  string `json:"text"`
	POS   POS    `json:"pos"`
	Lemma string `json:"lemma"`
	Start int    `json:"start"`
	End   int    `json:"end"`

	// IsSeparable marks both halves of a separable verb; the particle half
	// is additionally rewritten to the VERB_PARTICLE tag.
	IsSeparable bool `json:"is_separable"`
	// SeparableParts lists the surface forms making up the pair(s) this
	// token belongs to, verb first.
	SeparableParts []string `json:"separable_parts,omitempty"`
	// PairedWith holds the character offsets of every grammatically related
	// counterpart token, deduplicated.
	PairedWith []int `json:"paired_with,omitempty"`
	// IsReflexive marks both halves of a reflexive verb/pronoun pair.
	IsReflexive bool `json:"is_reflexive"`
	// VerbPrepositions lists the prepositions linked to this token when it
	// is a verb.
	VerbPrepositions []VerbPreposition `json:"verb_prepositions,omitempty"`
	// LinkedVerb is the character offset of the governing verb when this
	// token is itself a linked preposition.
	LinkedVerb *int `json:"linked_verb,omitempty"`
	// GovernsCase is the case this token governs when it is a linked
	// preposition.
	GovernsCase Case `json:"governs_case,omitempty"`
}

// prepBackLink records, for a linked preposition token, the governing verb's
// character offset and the governed case.
type prepBackLink struct {
	verbPos int
	cas     Case
}

// Annotate runs the full relation-linking pipeline over doc and returns one
// annotation per input token, in input order.
//
// Five phases run in a fixed order, each consuming the previous phase's
// output:
//
//  1. an exclusion pass detects verb-linked prepositions using raw lemmas,
//     so the particle detector cannot misread them as separable particles;
//  2. the separable pass with those exclusions applied;
//  3. the reflexive pass;
//  4. lemma reconciliation, recording the corrected infinitive per verb;
//  5. the final verb-preposition pass with corrected lemmas, whose links are
//     the ones surfaced in the output.
func Annotate(doc *Document) []TokenAnnotation {
	excluded := excludedPrepositions(doc)
	separable := detectSeparableVerbs(doc, excluded)
	reflexive := detectReflexiveVerbs(doc)
	infinitives := reconcileLemmas(separable, reflexive)
	verbPreps, prepVerbs := finalPrepositionPass(doc, infinitives)

	annotations := make([]TokenAnnotation, 0, len(doc.Tokens))
	for _, tok := range doc.Tokens {
		annotations = append(annotations,
			assemble(doc, tok, separable, reflexive, verbPreps, prepVerbs))
	}
	return annotations
}

// excludedPrepositions runs the preposition detector with raw lemmas and
// collects the token indices of every matched preposition.
func excludedPrepositions(doc *Document) map[int]bool {
	excluded := make(map[int]bool)
	for _, tok := range doc.Tokens {
		if !tok.POS.isVerbal() {
			continue
		}
		for _, link := range detectVerbPrepositions(doc, tok, tok.Lemma) {
			excluded[link.Prep] = true
		}
	}
	return excluded
}

// reconcileLemmas maps each verb index owning a pair to its corrected
// infinitive. When a verb owns both a separable and a reflexive pair, the
// reflexive form built from the raw verb lemma wins here: that is the
// dictionary key the final pass needs. The combined display lemma is
// composed later, during assembly.
func reconcileLemmas(separable []SeparablePair, reflexive []ReflexivePair) map[int]string {
	infinitives := make(map[int]string, len(separable)+len(reflexive))
	for _, p := range separable {
		infinitives[p.Verb] = p.Lemma
	}
	for _, p := range reflexive {
		infinitives[p.Verb] = p.Lemma
	}
	return infinitives
}

// finalPrepositionPass re-runs the preposition detector with corrected
// lemmas and indexes the links both ways: verb index → links, and
// preposition index → governing verb back-link.
func finalPrepositionPass(doc *Document, infinitives map[int]string) (map[int][]PrepositionLink, map[int]prepBackLink) {
	verbPreps := make(map[int][]PrepositionLink)
	prepVerbs := make(map[int]prepBackLink)

	for _, tok := range doc.Tokens {
		if !tok.POS.isVerbal() {
			continue
		}
		lemma := tok.Lemma
		if inf, ok := infinitives[tok.Index]; ok {
			lemma = inf
		}
		links := detectVerbPrepositions(doc, tok, lemma)
		if len(links) == 0 {
			continue
		}
		verbPreps[tok.Index] = links
		for _, link := range links {
			prepVerbs[link.Prep] = prepBackLink{verbPos: tok.Start, cas: link.Case}
		}
	}
	return verbPreps, prepVerbs
}

// assemble composes the final annotation for one token from the phase
// outputs.
func assemble(doc *Document, tok Token, separable []SeparablePair, reflexive []ReflexivePair,
	verbPreps map[int][]PrepositionLink, prepVerbs map[int]prepBackLink) TokenAnnotation {

	ann := TokenAnnotation{
		Text:  tok.Text,
		POS:   tok.POS,
		Lemma: tok.Lemma,
		Start: tok.Start,
		End:   tok.End,
	}

	var paired []int

	sep, isParticle, sepFound := separableInfo(tok, separable)
	if sepFound {
		ann.IsSeparable = true
		if isParticle {
			ann.POS = POSVerbParticle
		}
		ann.Lemma = sep.Lemma
		verbTok, particleTok := doc.Tokens[sep.Verb], doc.Tokens[sep.Particle]
		ann.SeparableParts = []string{verbTok.Text, particleTok.Text}
		if isParticle {
			paired = append(paired, verbTok.Start)
		} else {
			paired = append(paired, particleTok.Start)
		}
	}

	refl, isPronoun, reflFound := reflexiveInfo(tok, reflexive)
	if reflFound {
		ann.IsReflexive = true
		if sepFound {
			// Both relations on one verb: the display lemma composes the
			// reflexive marker with the separable infinitive.
			ann.Lemma = "sich " + sep.Lemma
		} else {
			ann.Lemma = refl.Lemma
		}
		verbTok, pronounTok := doc.Tokens[refl.Verb], doc.Tokens[refl.Pronoun]
		ann.SeparableParts = appendUnique(ann.SeparableParts, verbTok.Text, pronounTok.Text)
		if isPronoun {
			paired = append(paired, verbTok.Start)
		} else {
			paired = append(paired, pronounTok.Start)
		}
	}

	if links, ok := verbPreps[tok.Index]; ok {
		ann.VerbPrepositions = make([]VerbPreposition, 0, len(links))
		for _, link := range links {
			prepTok := doc.Tokens[link.Prep]
			ann.VerbPrepositions = append(ann.VerbPrepositions, VerbPreposition{
				Text:     link.Text,
				Case:     link.Case,
				Position: prepTok.Start,
			})
			paired = append(paired, prepTok.Start)
		}
	}

	if back, ok := prepVerbs[tok.Index]; ok {
		verbPos := back.verbPos
		ann.LinkedVerb = &verbPos
		ann.GovernsCase = back.cas
		paired = append(paired, back.verbPos)
	}

	ann.PairedWith = dedupeInts(paired)
	return ann
}

// separableInfo looks up tok's membership in the separable pair list,
// reporting whether tok is the particle half. The first matching pair wins.
func separableInfo(tok Token, pairs []SeparablePair) (SeparablePair, bool, bool) {
	for _, p := range pairs {
		switch tok.Index {
		case p.Verb:
			return p, false, true
		case p.Particle:
			return p, true, true
		}
	}
	return SeparablePair{}, false, false
}

// reflexiveInfo looks up tok's membership in the reflexive pair list,
// reporting whether tok is the pronoun half.
func reflexiveInfo(tok Token, pairs []ReflexivePair) (ReflexivePair, bool, bool) {
	for _, p := range pairs {
		switch tok.Index {
		case p.Verb:
			return p, false, true
		case p.Pronoun:
			return p, true, true
		}
	}
	return ReflexivePair{}, false, false
}

// appendUnique appends each value to parts unless already present.
func appendUnique(parts []string, values ...string) []string {
	for _, v := range values {
		seen := false
		for _, p := range parts {
			if p == v {
				seen = true
				break
			}
		}
		if !seen {
			parts = append(parts, v)
		}
	}
	return parts
}

// dedupeInts removes duplicates preserving first-occurrence order. An empty
// result is returned as nil (no pairings).
func dedupeInts(values []int) []int {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[int]bool, len(values))
	out := values[:0]
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
