package news

import (
	"crypto/sha1"
	"encoding/hex"
	"sort"
	"strings"
	"time"

	"renews/internal/classify"
	"renews/internal/geo"
)

// Article is the normalized item served to clients.
type Article struct {
	ID       string            `json:"id"`
	Title    string            `json:"title"`
	Link     string            `json:"link"`
	PubDate  string            `json:"pubDate"`
	Content  string            `json:"content"`
	Source   string            `json:"source"`
	Category classify.Category `json:"category"`
	Location *geo.Location     `json:"location"`
}

// dedupPrefixLen bounds the normalized-title key. Truncation is deliberate
// fuzzy matching: syndicated reposts often differ only in a trailing
// "- report" or source suffix.
const dedupPrefixLen = 60

func dedupKey(title string) string {
	key := strings.TrimSpace(strings.ToLower(title))
	runes := []rune(key)
	if len(runes) > dedupPrefixLen {
		key = string(runes[:dedupPrefixLen])
	}
	return key
}

// makeID derives a stable article id from the dedup key, so the same story
// keeps the same id across requests.
func makeID(key string) string {
	h := sha1.Sum([]byte(key))
	return hex.EncodeToString(h[:])[:12]
}

// Deduplicate drops articles whose normalized titles collide, keeping the
// first occurrence, and assigns each survivor its id.
func Deduplicate(articles []Article) []Article {
	seen := make(map[string]struct{}, len(articles))
	out := make([]Article, 0, len(articles))

	for _, a := range articles {
		key := dedupKey(a.Title)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		a.ID = makeID(key)
		out = append(out, a)
	}

	return out
}

// Query holds the optional client filters plus the result cap.
type Query struct {
	Category   string
	TitleQuery string
	Limit      int
}

// pubDateLayouts is the chain tried when parsing feed timestamps. RSS dates
// in the wild are mostly RFC1123-shaped but rarely consistent.
var pubDateLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	time.RFC3339,
	time.RFC822Z,
	time.RFC822,
}

// parsePubDate parses a feed-native timestamp. Unparseable input yields the
// zero time, which sorts as the oldest possible value.
func parsePubDate(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	for _, layout := range pubDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}

// Apply filters by category and title substring, sorts newest first and
// caps the result. Both filters are optional and conjunctive; an unknown
// category value simply matches nothing.
func Apply(articles []Article, q Query) []Article {
	out := articles

	if q.Category != "" {
		filtered := make([]Article, 0, len(out))
		for _, a := range out {
			if string(a.Category) == q.Category {
				filtered = append(filtered, a)
			}
		}
		out = filtered
	}

	if q.TitleQuery != "" {
		needle := strings.ToLower(q.TitleQuery)
		filtered := make([]Article, 0, len(out))
		for _, a := range out {
			if strings.Contains(strings.ToLower(a.Title), needle) {
				filtered = append(filtered, a)
			}
		}
		out = filtered
	}

	sort.Slice(out, func(i, j int) bool {
		ti, tj := parsePubDate(out[i].PubDate), parsePubDate(out[j].PubDate)
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return out[i].Title < out[j].Title // stable order for equal timestamps
	})

	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}

	return out
}
