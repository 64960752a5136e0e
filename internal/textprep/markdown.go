package textprep

import (
	"regexp"
	"strings"

	"github.com/russross/blackfriday/v2"
)

var (
	mdLinkPattern = regexp.MustCompile(`\[(.*?)\]\((https?://[^\s)]+)\)`)
	bareURLs      = regexp.MustCompile(`https?://\S+|www\.\S+`)
	htmlTags      = regexp.MustCompile(`<[^>]+>`)
)

// RemoveLinks strips markdown links (keeping the anchor text) and
// bare URLs from input.
func RemoveLinks(input string) string {
	input = mdLinkPattern.ReplaceAllString(input, "$1")
	return bareURLs.ReplaceAllString(input, "")
}

// StripMarkdown renders markdown to HTML and flattens it to plain
// text. News and social collectors run this before Analyze so that
// formatting noise never reaches the scoring models.
func StripMarkdown(input string) string {
	output := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	plain := htmlTags.ReplaceAllString(string(output), " ")
	plain = strings.Join(strings.Fields(plain), " ")

	return RemoveLinks(plain)
}
