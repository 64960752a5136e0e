package sentiment

import "strings"

// maxKeywords caps the extracted keyword list.
const maxKeywords = 10

// extractKeywords returns up to maxKeywords tokens, skipping
// stopwords and tokens of length <= 2. Ordering is first occurrence
// in the token stream, duplicates removed.
func (a *Analyzer) extractKeywords(tokens []string) []string {
	keywords := make([]string, 0, maxKeywords)
	seen := make(map[string]struct{}, len(tokens))

	for _, tok := range tokens {
		if len(tok) <= 2 {
			continue
		}
		if _, ok := a.stopwords[tok]; ok {
			continue
		}
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}

		keywords = append(keywords, tok)
		if len(keywords) == maxKeywords {
			break
		}
	}

	return keywords
}

// housingRelevance scores how on-topic the text is, in [0,1].
// Distinct housing-vocabulary tokens count once, keywords that are
// also domain-lexicon entries count double, and the ratio over the
// distinct token count is scaled by 5 and capped at 1.
func (a *Analyzer) housingRelevance(tokens []string, keywords []string) float64 {
	distinct := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		distinct[tok] = struct{}{}
	}
	if len(distinct) == 0 {
		return 0.0
	}

	housingWords := 0
	for tok := range distinct {
		if _, ok := housingTerms[tok]; ok {
			housingWords++
		}
	}

	keywordHits := 0
	for _, kw := range keywords {
		if _, ok := a.housingLexicon[kw]; ok {
			keywordHits++
		}
	}

	relevance := float64(housingWords+2*keywordHits) / float64(len(distinct)) * 5
	return clamp(relevance, 0, 1)
}

// extractRegion returns the first region whose name appears literally
// in the normalized text, probing the fixed priority order of the
// regions table. The short alias "kl" only matches as a whole word.
// Returns "" when no region is mentioned.
func (a *Analyzer) extractRegion(text string) string {
	for _, region := range regions {
		if len(region) <= 2 {
			if containsWord(text, region) {
				return region
			}
			continue
		}
		if strings.Contains(text, region) {
			return region
		}
	}
	return ""
}

// extractProgram returns the id of the first program any of whose
// name variants appears literally in the text, or "".
func (a *Analyzer) extractProgram(text string) string {
	for _, p := range programs {
		for _, variant := range p.variants {
			if strings.Contains(text, variant) {
				return p.id
			}
		}
	}
	return ""
}

// containsWord reports whether word appears in text with non-word
// characters (or string boundaries) on both sides.
func containsWord(text, word string) bool {
	for start := 0; ; {
		i := strings.Index(text[start:], word)
		if i < 0 {
			return false
		}
		i += start

		before := i == 0 || !isWordByte(text[i-1])
		end := i + len(word)
		after := end == len(text) || !isWordByte(text[end])
		if before && after {
			return true
		}
		start = i + 1
	}
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}
