package grammatik

import "fmt"

// POS is a coarse part-of-speech tag as produced by the dependency parser
// (Universal POS tagset), plus the synthetic VERB_PARTICLE tag assigned by
// the engine to the detached particle of a separable verb.
type POS string

const (
	POSNoun         POS = "NOUN"
	POSVerb         POS = "VERB"
	POSAux          POS = "AUX"
	POSAdjective    POS = "ADJ"
	POSAdverb       POS = "ADV"
	POSDeterminer   POS = "DET"
	POSPronoun      POS = "PRON"
	POSAdposition   POS = "ADP"
	POSConjunction  POS = "CONJ"
	POSCConjunction POS = "CCONJ"
	POSSConjunction POS = "SCONJ"
	POSNumeral      POS = "NUM"
	POSProperNoun   POS = "PROPN"
	POSParticle     POS = "PART"
	POSInterjection POS = "INTJ"
	POSPunctuation  POS = "PUNCT"
	POSOther        POS = "X"

	// POSVerbParticle is assigned by the engine to the particle half of a
	// detected separable verb. It never appears in parser input.
	POSVerbParticle POS = "VERB_PARTICLE"
)

// isVerbal reports whether p is a finite-verb tag (full verb or auxiliary).
func (p POS) isVerbal() bool {
	return p == POSVerb || p == POSAux
}

// Case is a German grammatical case label. Two-way prepositions that govern
// either the accusative or the dative carry the compound label
// CaseAccusativeDative when the context does not disambiguate them.
type Case string

const (
	CaseNominative       Case = "Nominative"
	CaseAccusative       Case = "Accusative"
	CaseDative           Case = "Dative"
	CaseGenitive         Case = "Genitive"
	CaseAccusativeDative Case = "Accusative/Dative"
	CaseUnknown          Case = "Unknown"
)

// Dependency labels the engine keys decisions on. The Dep field of a Token
// is an open string (label inventories differ between parsers); these are
// the values with engine-level meaning.
const (
	DepSeparableParticle = "svp"  // separable verb particle
	DepCaseMarker        = "case" // adposition marking its noun's case
)

// argumentDeps are the dependency labels that mark a phrase as part of a
// verb's argument structure rather than a free adjunct. The set spans the
// TIGER (op, oa, mo) and UD (obl, obj) inventories so the connectivity test
// is independent of which parser produced the tree.
var argumentDeps = map[string]bool{
	"op":  true,
	"oa":  true,
	"obl": true,
	"obj": true,
	"mo":  true,
}

// directArgumentDeps are the labels accepted when a preposition attaches to
// the verb directly. "mo" is deliberately absent: a directly attached "mo"
// preposition is a plain modifier.
var directArgumentDeps = map[string]bool{
	"op":  true,
	"obl": true,
	"obj": true,
	"oa":  true,
}

// Token is one token of an externally parsed document. Tokens are supplied
// by the dependency parser and never mutated by the engine.
type Token struct {
	// Index is the sequential 0-based token index within the document.
	Index int
	// Text is the surface form.
	Text string
	// Start and End delimit the character span [Start, End) in the input text.
	Start int
	End   int
	// POS is the coarse part-of-speech tag.
	POS POS
	// Lemma is the base form (infinitive for verbs).
	Lemma string
	// Dep is the dependency label of the edge to Head.
	Dep string
	// Head is the token index of the dependency head; equal to Index at the root.
	Head int
	// CaseFeat is the morphological case code ("Nom", "Acc", "Dat", "Gen")
	// when the parser attached one to a nominal token, else empty.
	CaseFeat string
	// Sent is the id of the sentence the token belongs to.
	Sent int
}

// IsRoot reports whether the token is the root of its dependency tree.
func (t Token) IsRoot() bool {
	return t.Head == t.Index
}

// Document is a parsed text: an ordered token sequence partitioned into
// sentences by the Sent id. A Document is read-only input to the engine.
type Document struct {
	Tokens []Token
}

// HeadOf returns the dependency head of t. A head index outside the document
// is a violation of the input contract and panics.
func (d *Document) HeadOf(t Token) Token {
	if t.Head < 0 || t.Head >= len(d.Tokens) {
		panic(fmt.Sprintf("grammatik: token %d (%q) has head index %d outside document of %d tokens",
			t.Index, t.Text, t.Head, len(d.Tokens)))
	}
	return d.Tokens[t.Head]
}

// SentenceOf returns the maximal contiguous run of tokens sharing t's
// sentence id. Sentence locality is a hard boundary for all relation search.
func (d *Document) SentenceOf(t Token) []Token {
	lo := t.Index
	for lo > 0 && d.Tokens[lo-1].Sent == t.Sent {
		lo--
	}
	hi := t.Index + 1
	for hi < len(d.Tokens) && d.Tokens[hi].Sent == t.Sent {
		hi++
	}
	return d.Tokens[lo:hi]
}

// children returns the tokens whose dependency head is t (excluding t itself).
func (d *Document) children(t Token) []Token {
	var out []Token
	for _, c := range d.Tokens {
		if c.Head == t.Index && c.Index != t.Index {
			out = append(out, c)
		}
	}
	return out
}

// closestVerbal returns the VERB/AUX token in t's sentence nearest to t by
// index distance, and whether one exists. On equal distance the lower index
// wins: the comparator only replaces the current best on a strictly smaller
// distance while scanning left to right.
func (d *Document) closestVerbal(t Token) (Token, bool) {
	var best Token
	bestDist := -1
	for _, cand := range d.SentenceOf(t) {
		if !cand.POS.isVerbal() || cand.Index == t.Index {
			continue
		}
		dist := cand.Index - t.Index
		if dist < 0 {
			dist = -dist
		}
		if bestDist < 0 || dist < bestDist {
			best = cand
			bestDist = dist
		}
	}
	return best, bestDist >= 0
}

// indexDistance is the absolute index distance between two tokens.
func indexDistance(a, b Token) int {
	if a.Index > b.Index {
		return a.Index - b.Index
	}
	return b.Index - a.Index
}
