package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const maxSnippetLen = 600

// Snippet turns an RSS description (often HTML) into a plain-text summary.
// Falls back to the raw input when the markup can't be parsed.
func Snippet(html string) string {
	if strings.TrimSpace(html) == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return cleanText(html)
	}

	// Drop elements that never carry article text
	doc.Find("script, style, iframe, img, figure").Remove()

	return cleanText(doc.Text())
}

// cleanText collapses whitespace and bounds length, keeping whole words.
func cleanText(s string) string {
	out := strings.Join(strings.Fields(s), " ")

	if len(out) > maxSnippetLen {
		cut := strings.LastIndex(out[:maxSnippetLen], " ")
		if cut <= 0 {
			cut = maxSnippetLen
		}
		out = strings.TrimSpace(out[:cut]) + "…"
	}

	return out
}
