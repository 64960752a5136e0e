package sentiment

// housingLexicon maps individual tokens to signed sentiment weights
// in the affordable-housing domain. Bilingual (English/Malay).
// Zero-weight entries are factual terms that count as matches without
// moving the score.
var housingLexicon = map[string]float64{
	// Positive indicators
	"affordable": 2.0, "approved": 2.0, "successful": 1.5, "good": 1.0,
	"excellent": 2.0, "satisfied": 1.5, "happy": 1.5, "convenient": 1.0,
	"easy": 1.0, "fast": 1.0, "helpful": 1.0, "mampu": 1.5, "berjaya": 2.0,

	// Negative indicators
	"expensive": -2.0, "rejected": -2.5, "difficult": -1.5, "slow": -1.0,
	"complicated": -1.5, "unfair": -2.0, "disappointed": -2.0, "mahal": -2.0,
	"susah": -1.5, "lambat": -1.0, "ditolak": -2.5,

	// Neutral/factual
	"application": 0.0, "process": 0.0, "requirement": 0.0, "status": 0.0,
	"permohonan": 0.0, "syarat": 0.0,
}

// housingTerms is the vocabulary used for the housing-relevance score.
var housingTerms = map[string]struct{}{
	"house": {}, "home": {}, "property": {}, "housing": {},
	"apartment": {}, "condo": {}, "rumah": {}, "hartanah": {},
	"pr1ma": {}, "affordable": {}, "loan": {}, "mortgage": {},
	"rent": {}, "buy": {}, "purchase": {}, "development": {},
	"project": {},
}

// regions lists Malaysian states and territories in matching priority
// order: longer, more specific names first so "kuala lumpur" wins over
// its constituents, then alphabetical. Matching is literal substring;
// the two-letter alias "kl" additionally requires word boundaries.
var regions = []string{
	"negeri sembilan",
	"kuala lumpur",
	"terengganu",
	"putrajaya",
	"kelantan",
	"selangor",
	"sarawak",
	"labuan",
	"melaka",
	"pahang",
	"penang",
	"perlis",
	"johor",
	"kedah",
	"perak",
	"sabah",
	"kl",
}

// program holds one housing program and the name variants it is
// known by in user text.
type program struct {
	id       string
	variants []string
}

// programs lists Malaysian affordable-housing programs in matching
// priority order. Order matters: "pprt" must be probed before "ppr".
var programs = []program{
	{"pr1ma", []string{"pr1ma", "1malaysia", "prima"}},
	{"rumah-selangorku", []string{"rumah selangorku", "selangorku", "rsku"}},
	{"my-first-home", []string{"my first home", "myfirst", "rumah pertama"}},
	{"pprt", []string{"pprt", "program perumahan rakyat"}},
	{"ppr", []string{"ppr", "program perumahan awam"}},
	{"rumawip", []string{"rumawip", "kuala lumpur city hall"}},
	{"rent-to-own", []string{"rent to own", "sewa beli"}},
	{"social-housing", []string{"social housing", "rumah awam"}},
}
