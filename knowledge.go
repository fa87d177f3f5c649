package grammatik

// This file holds the static knowledge base: read-only tables consulted by
// the detectors. All lookups are exact-match on lowercased surface text.

// pronominalAdverbs maps a German pronominal adverb (da-/dar- and wo-/wor-
// compounds) to the preposition it embeds. These forms must never be treated
// as separable prefixes; the verb-preposition detector owns them.
var pronominalAdverbs = map[string]string{
	"daran":    "an",
	"darauf":   "auf",
	"daraus":   "aus",
	"darin":    "in",
	"damit":    "mit",
	"danach":   "nach",
	"davon":    "von",
	"davor":    "vor",
	"dazu":     "zu",
	"darüber":  "über",
	"darunter": "unter",
	"dagegen":  "gegen",
	"dafür":    "für",
	"dabei":    "bei",
	// wo- forms (interrogative/relative)
	"woran":    "an",
	"worauf":   "auf",
	"woraus":   "aus",
	"worin":    "in",
	"womit":    "mit",
	"wonach":   "nach",
	"wovon":    "von",
	"wovor":    "vor",
	"wozu":     "zu",
	"worüber":  "über",
	"worunter": "unter",
	"wogegen":  "gegen",
	"wofür":    "für",
	"wobei":    "bei",
}

// separablePrefixes is the fixed list of particles that can detach from a
// separable verb. "da" is absent on purpose: it only occurs fused inside the
// pronominal adverbs above.
var separablePrefixes = map[string]bool{
	"ab": true, "an": true, "auf": true, "aus": true, "bei": true,
	"ein": true, "mit": true, "nach": true, "vor": true, "zu": true,
	"zurück": true, "weg": true, "her": true, "hin": true,
	"empor": true, "entgegen": true, "entlang": true, "fort": true,
	"gegenüber": true, "heim": true, "herab": true, "heran": true,
	"herauf": true, "heraus": true, "herbei": true, "herein": true,
	"herüber": true, "herum": true, "herunter": true, "hervor": true,
	"hinab": true, "hinauf": true, "hinaus": true, "hinein": true,
	"hinüber": true, "hinunter": true, "los": true, "nieder": true,
	"voran": true, "voraus": true, "vorbei": true, "vorüber": true,
	"weiter": true, "zusammen": true,
	"fest": true, // festlegen, feststellen, festhalten, festnehmen
}

// reflexivePronouns are the German reflexive pronoun surface forms.
var reflexivePronouns = map[string]bool{
	"sich": true, "mich": true, "dich": true, "uns": true,
	"euch": true, "mir": true, "dir": true,
}

// prepCase pairs an expected preposition with the case it governs for a
// particular verb.
type prepCase struct {
	Prep string
	Case Case
}

// verbPrepositions maps a verb infinitive to the prepositions it selects and
// the case each governs. Inherently reflexive verbs are keyed with a
// "sich " prefix. When a verb has an entry the list acts as a whitelist;
// verbs without an entry are evaluated purely syntactically.
var verbPrepositions = map[string][]prepCase{
	// A
	"achten":        {{"auf", CaseAccusative}},
	"anfangen":      {{"mit", CaseDative}},
	"ankommen":      {{"auf", CaseAccusative}, {"in", CaseDative}},
	"antworten":     {{"auf", CaseAccusative}},
	"arbeiten":      {{"an", CaseDative}, {"bei", CaseDative}, {"für", CaseAccusative}},
	"sich ärgern":   {{"über", CaseAccusative}},
	"aufhören":      {{"mit", CaseDative}},
	"aufpassen":     {{"auf", CaseAccusative}},
	"sich aufregen": {{"über", CaseAccusative}},

	// B
	"sich bedanken":      {{"bei", CaseDative}, {"für", CaseAccusative}},
	"sich beeilen":       {{"mit", CaseDative}},
	"beginnen":           {{"mit", CaseDative}},
	"beitragen":          {{"zu", CaseDative}},
	"sich beklagen":      {{"über", CaseAccusative}, {"bei", CaseDative}},
	"sich bemühen":       {{"um", CaseAccusative}},
	"berichten":          {{"über", CaseAccusative}, {"von", CaseDative}},
	"sich beschäftigen":  {{"mit", CaseDative}},
	"sich beschweren":    {{"über", CaseAccusative}, {"bei", CaseDative}},
	"bestehen":           {{"aus", CaseDative}, {"auf", CaseDative}},
	"sich bewerben":      {{"um", CaseAccusative}, {"bei", CaseDative}},
	"sich beziehen":      {{"auf", CaseAccusative}},
	"bitten":             {{"um", CaseAccusative}},

	// D
	"danken":      {{"für", CaseAccusative}},
	"denken":      {{"an", CaseAccusative}, {"über", CaseAccusative}},
	"diskutieren": {{"über", CaseAccusative}},

	// E
	"sich eignen":        {{"für", CaseAccusative}},
	"sich entscheiden":   {{"für", CaseAccusative}, {"gegen", CaseAccusative}},
	"sich entschuldigen": {{"bei", CaseDative}, {"für", CaseAccusative}},
	"sich erinnern":      {{"an", CaseAccusative}},
	"sich erkundigen":    {{"nach", CaseDative}},
	"erzählen":           {{"von", CaseDative}, {"über", CaseAccusative}},

	// F
	"fragen":        {{"nach", CaseDative}},
	"sich freuen":   {{"auf", CaseAccusative}, {"über", CaseAccusative}},
	"sich fürchten": {{"vor", CaseDative}},

	// G
	"gehören":       {{"zu", CaseDative}},
	"sich gewöhnen": {{"an", CaseAccusative}},
	"glauben":       {{"an", CaseAccusative}},
	"gratulieren":   {{"zu", CaseDative}},

	// H
	"halten":       {{"für", CaseAccusative}, {"von", CaseDative}},
	"sich handeln": {{"um", CaseAccusative}},
	"helfen":       {{"bei", CaseDative}},
	"hoffen":       {{"auf", CaseAccusative}},

	// I
	"sich interessieren": {{"für", CaseAccusative}},
	"sich irren":         {{"in", CaseDative}},

	// K
	"kämpfen":             {{"für", CaseAccusative}, {"gegen", CaseAccusative}, {"um", CaseAccusative}},
	"sich konzentrieren":  {{"auf", CaseAccusative}},
	"sich kümmern":        {{"um", CaseAccusative}},

	// L
	"lachen": {{"über", CaseAccusative}},
	"leiden": {{"an", CaseDative}, {"unter", CaseDative}},

	// N
	"nachdenken": {{"über", CaseAccusative}},

	// R
	"rechnen": {{"mit", CaseDative}},
	"reden":   {{"über", CaseAccusative}, {"von", CaseDative}, {"mit", CaseDative}},

	// S
	"sich schämen": {{"für", CaseAccusative}},
	"schreiben":    {{"an", CaseAccusative}, {"über", CaseAccusative}},
	"sich sehnen":  {{"nach", CaseDative}},
	"sorgen":       {{"für", CaseAccusative}},
	"sich sorgen":  {{"um", CaseAccusative}},
	"sprechen":     {{"über", CaseAccusative}, {"von", CaseDative}, {"mit", CaseDative}},
	"sterben":      {{"an", CaseDative}},
	"suchen":       {{"nach", CaseDative}},

	// T
	"teilnehmen":   {{"an", CaseDative}},
	"sich treffen": {{"mit", CaseDative}},
	"träumen":      {{"von", CaseDative}},

	// U
	"sich unterhalten": {{"über", CaseAccusative}, {"mit", CaseDative}},

	// V
	"sich verabschieden": {{"von", CaseDative}},
	"sich verlassen":     {{"auf", CaseAccusative}},
	"sich verlieben":     {{"in", CaseAccusative}},
	"verzichten":         {{"auf", CaseAccusative}},
	"sich vorbereiten":   {{"auf", CaseAccusative}},

	// W
	"warten":      {{"auf", CaseAccusative}},
	"sich wenden": {{"an", CaseAccusative}},
	"sich wundern": {{"über", CaseAccusative}},

	// Z
	"zweifeln": {{"an", CaseDative}},
}

// prepositionCases is the general preposition → case fallback, used when a
// preposition is linked to a verb that has no dictionary entry for it.
// Two-way prepositions (Wechselpräpositionen) map to the compound label.
var prepositionCases = map[string]Case{
	// two-way
	"an":       CaseAccusativeDative,
	"auf":      CaseAccusativeDative,
	"hinter":   CaseAccusativeDative,
	"in":       CaseAccusativeDative,
	"neben":    CaseAccusativeDative,
	"über":     CaseAccusativeDative,
	"unter":    CaseAccusativeDative,
	"vor":      CaseAccusativeDative,
	"zwischen": CaseAccusativeDative,

	// accusative
	"bis":   CaseAccusative,
	"durch": CaseAccusative,
	"für":   CaseAccusative,
	"gegen": CaseAccusative,
	"ohne":  CaseAccusative,
	"um":    CaseAccusative,

	// dative
	"aus":  CaseDative,
	"bei":  CaseDative,
	"mit":  CaseDative,
	"nach": CaseDative,
	"seit": CaseDative,
	"von":  CaseDative,
	"zu":   CaseDative,

	// genitive
	"während": CaseGenitive,
	"wegen":   CaseGenitive,
	"trotz":   CaseGenitive,
	"statt":   CaseGenitive,
	"anstatt": CaseGenitive,
}

// morphCaseNames maps the parser's morphological case codes to case labels.
var morphCaseNames = map[string]Case{
	"Nom": CaseNominative,
	"Acc": CaseAccusative,
	"Dat": CaseDative,
	"Gen": CaseGenitive,
}
