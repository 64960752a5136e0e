package textprep

// englishStopwords is the standard English stopword list used for
// keyword extraction and word-cloud filtering.
var englishStopwords = []string{
	"i", "me", "my", "myself", "we", "our", "ours", "ourselves", "you",
	"your", "yours", "yourself", "yourselves", "he", "him", "his",
	"himself", "she", "her", "hers", "herself", "it", "its", "itself",
	"they", "them", "their", "theirs", "themselves", "what", "which",
	"who", "whom", "this", "that", "these", "those", "am", "is", "are",
	"was", "were", "be", "been", "being", "have", "has", "had", "having",
	"do", "does", "did", "doing", "a", "an", "the", "and", "but", "if",
	"or", "because", "as", "until", "while", "of", "at", "by", "for",
	"with", "about", "against", "between", "into", "through", "during",
	"before", "after", "above", "below", "to", "from", "up", "down",
	"in", "out", "on", "off", "over", "under", "again", "further",
	"then", "once", "here", "there", "when", "where", "why", "how",
	"all", "any", "both", "each", "few", "more", "most", "other",
	"some", "such", "no", "nor", "not", "only", "own", "same", "so",
	"than", "too", "very", "s", "t", "can", "will", "just", "don",
	"should", "now", "d", "ll", "m", "o", "re", "ve", "y", "ain",
	"aren", "couldn", "didn", "doesn", "hadn", "hasn", "haven", "isn",
	"ma", "mightn", "mustn", "needn", "shan", "shouldn", "wasn",
	"weren", "won", "wouldn",
}

// malayStopwords covers the high-frequency Malay function words seen
// in bilingual housing posts.
var malayStopwords = []string{
	"yang", "dan", "di", "ke", "dari", "untuk", "dengan", "pada",
	"adalah", "akan", "atau", "juga", "tidak", "ada", "sebagai",
	"dalam", "oleh", "ini", "itu", "mereka", "kami", "kita",
}

// Stopwords returns the combined English+Malay stopword set. The
// returned map is freshly built; callers treat it as read-only.
func Stopwords() map[string]struct{} {
	set := make(map[string]struct{}, len(englishStopwords)+len(malayStopwords))
	for _, w := range englishStopwords {
		set[w] = struct{}{}
	}
	for _, w := range malayStopwords {
		set[w] = struct{}{}
	}
	return set
}
