package sentiment

import "github.com/abadojack/whatlanggo"

// detectLanguage returns the ISO 639-1 code of the text's language,
// or "" when detection is not reliable. Short posts frequently mix
// English and Malay, so unreliable detections are dropped rather
// than guessed.
func detectLanguage(text string) string {
	if text == "" {
		return ""
	}

	info := whatlanggo.Detect(text)
	if !info.IsReliable() {
		return ""
	}
	return info.Lang.Iso6391()
}
