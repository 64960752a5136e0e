package sentiment

// patternEntry carries the prior polarity and subjectivity of one
// word, both on the scales the pattern scorer reports: polarity in
// [-1,1], subjectivity in [0,1].
type patternEntry struct {
	polarity     float64
	subjectivity float64
}

// patternLexicon is a curated general-purpose polarity/subjectivity
// lexicon covering the English and Malay vocabulary common in short
// housing posts. It carries no domain weighting; that belongs to
// housingLexicon.
var patternLexicon = map[string]patternEntry{
	// English, positive
	"good":        {0.70, 0.60},
	"great":       {0.80, 0.75},
	"excellent":   {1.00, 1.00},
	"amazing":     {0.60, 0.90},
	"wonderful":   {1.00, 1.00},
	"awesome":     {1.00, 1.00},
	"perfect":     {1.00, 1.00},
	"nice":        {0.60, 1.00},
	"best":        {1.00, 0.30},
	"better":      {0.50, 0.50},
	"happy":       {0.80, 1.00},
	"glad":        {0.50, 1.00},
	"satisfied":   {0.50, 1.00},
	"grateful":    {0.60, 0.80},
	"love":        {0.50, 0.60},
	"like":        {0.30, 0.40},
	"easy":        {0.43, 0.83},
	"fast":        {0.20, 0.60},
	"quick":       {0.33, 0.50},
	"smooth":      {0.40, 0.60},
	"helpful":     {0.40, 0.50},
	"convenient":  {0.40, 0.70},
	"efficient":   {0.50, 0.60},
	"affordable":  {0.40, 0.60},
	"approved":    {0.40, 0.50},
	"successful":  {0.75, 0.95},
	"recommended": {0.40, 0.50},
	"fair":        {0.50, 0.70},
	"clean":       {0.37, 0.55},
	"safe":        {0.50, 0.50},

	// English, negative
	"bad":          {-0.70, 0.67},
	"terrible":     {-1.00, 1.00},
	"awful":        {-1.00, 1.00},
	"horrible":     {-1.00, 1.00},
	"worst":        {-1.00, 1.00},
	"poor":         {-0.40, 0.60},
	"hate":         {-0.80, 0.90},
	"angry":        {-0.50, 1.00},
	"sad":          {-0.50, 1.00},
	"upset":        {-0.50, 0.80},
	"frustrated":   {-0.60, 0.80},
	"disappointed": {-0.75, 0.75},
	"rejected":     {-0.60, 0.60},
	"unfair":       {-0.80, 0.90},
	"slow":         {-0.30, 0.40},
	"late":         {-0.30, 0.60},
	"delayed":      {-0.30, 0.40},
	"expensive":    {-0.50, 0.70},
	"difficult":    {-0.50, 0.80},
	"hard":         {-0.29, 0.54},
	"complicated":  {-0.50, 0.70},
	"confusing":    {-0.50, 0.80},
	"stressful":    {-0.60, 0.80},
	"broken":       {-0.40, 0.50},
	"useless":      {-0.50, 0.60},
	"dirty":        {-0.60, 0.80},
	"crowded":      {-0.30, 0.50},

	// Malay, positive
	"bagus":   {0.70, 0.60},
	"baik":    {0.60, 0.60},
	"cantik":  {0.70, 0.80},
	"senang":  {0.50, 0.70},
	"mampu":   {0.40, 0.50},
	"berjaya": {0.80, 0.90},
	"puas":    {0.60, 0.80},
	"gembira": {0.80, 1.00},
	"selesa":  {0.50, 0.70},
	"murah":   {0.40, 0.60},

	// Malay, negative
	"mahal":   {-0.50, 0.70},
	"susah":   {-0.50, 0.70},
	"lambat":  {-0.30, 0.50},
	"teruk":   {-0.80, 0.90},
	"ditolak": {-0.60, 0.60},
	"kecewa":  {-0.70, 0.80},
	"marah":   {-0.60, 0.90},
	"buruk":   {-0.70, 0.80},
	"sempit":  {-0.30, 0.50},
}

// patternIntensifiers scale the polarity and subjectivity of the word
// they precede. Values above 1 amplify, below 1 diminish.
var patternIntensifiers = map[string]float64{
	"very":       1.30,
	"really":     1.30,
	"extremely":  1.50,
	"absolutely": 1.40,
	"highly":     1.40,
	"quite":      1.10,
	"so":         1.20,
	"too":        1.20,
	"slightly":   0.70,
	"somewhat":   0.80,
	"fairly":     0.90,
	"sangat":     1.30,
	"amat":       1.30,
	"terlalu":    1.20,
	"agak":       0.80,
}

// patternNegators flip and dampen the polarity of a following word.
// The contraction stems ("don", "isn") are what the normalizer leaves
// behind once apostrophes are stripped.
var patternNegators = map[string]struct{}{
	"not": {}, "no": {}, "never": {}, "none": {}, "cannot": {},
	"cant": {}, "dont": {}, "don": {}, "doesnt": {}, "doesn": {},
	"didnt": {}, "didn": {}, "isnt": {}, "isn": {}, "wasnt": {},
	"wasn": {}, "wouldnt": {}, "wouldn": {}, "couldnt": {},
	"couldn": {}, "shouldnt": {}, "shouldn": {}, "aren": {},
	"tidak": {}, "tak": {}, "bukan": {}, "jangan": {}, "belum": {},
}
