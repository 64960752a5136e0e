package sentiment

import (
	"sort"
	"strings"
	"unicode"

	snowballeng "github.com/kljensen/snowball/english"

	"github.com/nasyasolleh/home-watch/internal/textprep"
)

// wordcloudStopwords are dropped from word clouds on top of the
// shared stopword set: generic housing-discussion vocabulary that
// would otherwise dominate every cloud.
var wordcloudStopwords = []string{
	"housing", "house", "home", "property", "malaysia", "malaysian",
	"government", "scheme", "program", "programme", "policy", "policies",
	"affordable", "low", "cost", "income", "price", "prices",
	"rm", "ringgit", "thousand", "million", "billion",
	"people", "person", "individual", "citizen", "citizens",
	"country", "nation", "national", "state", "federal",
	"would", "could", "should", "will", "shall", "may", "might",
	"one", "two", "three", "many", "much", "more", "most",
	"also", "even", "still", "yet", "however", "therefore",
	"said", "says", "according", "reported", "stated",
}

// wordcloudBoostTerms mark housing-specific stems whose frequencies
// get a 1.5x boost so they surface in the cloud. Matching is by
// substring against the stemmed word.
var wordcloudBoostTerms = []string{
	"pr1ma", "rumawip", "pprt", "ppr", "mydeposit", "myfirst",
	"develop", "construct", "build", "project", "unit",
	"owner", "buyer", "purchase", "rent", "rental",
	"loan", "mortgage", "financ", "fund", "subsidi",
	"eligibl", "criteria", "qualifi", "applic",
	"kuala", "lumpur", "selangor", "johor", "penang",
	"perak", "sabah", "sarawak", "kedah", "negeri",
}

// minWordcloudTokenLength drops short filler tokens from clouds.
const minWordcloudTokenLength = 4

// WordcloudFrequencies builds word-frequency data for word-cloud
// rendering from an arbitrary text corpus. Tokens are lower-cased,
// filtered to alphabetic-only words of at least four letters outside
// the stopword sets, stemmed, counted, and cut to the maxWords most
// frequent stems (frequency descending, then lexicographic for
// determinism). Housing-specific stems get a 1.5x frequency boost.
func (a *Analyzer) WordcloudFrequencies(texts []string, maxWords int) map[string]int {
	if maxWords <= 0 {
		maxWords = 100
	}

	counts := make(map[string]int)
	for _, tok := range textprep.Tokenize(strings.ToLower(strings.Join(texts, " "))) {
		if len(tok) < minWordcloudTokenLength || !isAlphabetic(tok) {
			continue
		}
		if _, ok := a.stopwords[tok]; ok {
			continue
		}
		if _, ok := a.wordcloudStopwords[tok]; ok {
			continue
		}

		counts[snowballeng.Stem(tok, false)]++
	}

	stems := make([]string, 0, len(counts))
	for stem := range counts {
		stems = append(stems, stem)
	}
	sort.Slice(stems, func(i, j int) bool {
		if counts[stems[i]] != counts[stems[j]] {
			return counts[stems[i]] > counts[stems[j]]
		}
		return stems[i] < stems[j]
	})

	if len(stems) > maxWords {
		stems = stems[:maxWords]
	}

	top := make(map[string]int, len(stems))
	for _, stem := range stems {
		freq := counts[stem]
		for _, term := range wordcloudBoostTerms {
			if strings.Contains(stem, term) {
				freq = int(float64(freq) * 1.5)
				break
			}
		}
		top[stem] = freq
	}

	return top
}

func isAlphabetic(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
