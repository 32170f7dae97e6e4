package textfold

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// circumflexes maps circumflexed vowels to their plain form. Applied after
// lowering, so only the lowercase forms are needed.
var circumflexes = strings.NewReplacer(
	"â", "a",
	"î", "i",
	"û", "u",
)

// PostFixes rewrites whole folded values that the Turkish rules get wrong for
// this dataset. Keys are compared after folding.
var PostFixes = map[string]string{
	"ıstanbul": "istanbul",
	"ızmir":    "izmir",
}

// FoldLower trims text and lowercases it using Turkish rules.
// Circumflexes are removed and PostFixes applied. The result is stable:
// FoldLower(FoldLower(x)) == FoldLower(x).
func FoldLower(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	// Composing first makes "I" + U+0307 behave like "İ".
	text = norm.NFC.String(text)
	text = cases.Lower(language.Turkish).String(text)
	text = circumflexes.Replace(text)

	if fixed, ok := PostFixes[text]; ok {
		return fixed
	}
	return text
}

// FoldUpper uppercases text using Turkish rules (i -> İ, ı -> I).
// Only used for display.
func FoldUpper(text string) string {
	if text == "" {
		return ""
	}
	return cases.Upper(language.Turkish).String(text)
}

// FoldTitle title-cases every word of text using Turkish rules.
func FoldTitle(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.Turkish).String(text)
}
