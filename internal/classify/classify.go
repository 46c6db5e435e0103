package classify

import (
	"regexp"
	"strings"
)

// Category is the topical bucket attached to every article.
type Category string

const (
	CategoryMergers   Category = "MergersAcquisitions"
	CategoryMajorLoss Category = "MajorLoss"
	CategoryGeneral   Category = "General"
)

// Known reports true for the category values the API recognizes.
func Known(value string) bool {
	switch Category(value) {
	case CategoryMergers, CategoryMajorLoss, CategoryGeneral:
		return true
	}
	return false
}

var mergerKeywords = []string{
	"merger", "acquisition", "takeover", "agrees", "buy", "sold", "buying",
	"stake", "m&a",
}

var lossKeywords = []string{
	"loss", "catastrophe", "hurricane", "wildfire", "flood", "cyber",
	"earthquake", "typhoon", "storm", "disaster", "claims", "insured loss",
	"nat cat",
}

// Patterns are compiled once; matching runs on every article of every request.
var (
	mergerPattern = compileKeywords(mergerKeywords)
	lossPattern   = compileKeywords(lossKeywords)
)

// compileKeywords builds a single whole-word alternation for a keyword set.
func compileKeywords(keywords []string) *regexp.Regexp {
	quoted := make([]string, len(keywords))
	for i, k := range keywords {
		quoted[i] = regexp.QuoteMeta(k)
	}
	return regexp.MustCompile(`\b(?:` + strings.Join(quoted, "|") + `)\b`)
}

// Classify maps article text (title plus summary) to exactly one category.
// A deal mentioned alongside a catastrophe still counts as a deal: M&A
// keywords take precedence over loss keywords, which is a business rule,
// not an accident of ordering.
func Classify(text string) Category {
	text = strings.ToLower(text)

	if mergerPattern.MatchString(text) {
		return CategoryMergers
	}
	if lossPattern.MatchString(text) {
		return CategoryMajorLoss
	}
	return CategoryGeneral
}
