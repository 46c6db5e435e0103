package geo

import (
	"regexp"
	"strings"
)

// Location is a resolved place with display name and coordinates.
type Location struct {
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	Name string  `json:"name"`
}

// Entry maps a lowercase place name to its coordinates.
type Entry struct {
	Key string
	Lat float64
	Lng float64
}

// Gazetteer is an ordered place-name lookup table. Entry order is priority
// order: when a text mentions several known places, the earliest declared
// entry wins.
type Gazetteer struct {
	entries  []Entry
	patterns []*regexp.Regexp
}

func New(entries []Entry) *Gazetteer {
	g := &Gazetteer{
		entries:  entries,
		patterns: make([]*regexp.Regexp, len(entries)),
	}
	for i, e := range entries {
		g.patterns[i] = compileKey(strings.ToLower(e.Key))
	}
	return g
}

// compileKey builds a whole-word pattern, so a key like "us" can't match
// inside "virus". Keys edged by punctuation ("u.k.", "u.s.") get explicit
// non-word guards because \b never fires between two non-word characters.
func compileKey(key string) *regexp.Regexp {
	prefix, suffix := `\b`, `\b`
	if !isWordChar(key[0]) {
		prefix = `(?:^|\W)`
	}
	if !isWordChar(key[len(key)-1]) {
		suffix = `(?:\W|$)`
	}
	return regexp.MustCompile(prefix + regexp.QuoteMeta(key) + suffix)
}

func isWordChar(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}

// Resolve tries each text in order and returns the first matching entry,
// or nil when no text mentions a known place.
func (g *Gazetteer) Resolve(texts ...string) *Location {
	for _, text := range texts {
		if text == "" {
			continue
		}
		lower := strings.ToLower(text)
		for i, p := range g.patterns {
			if p.MatchString(lower) {
				e := g.entries[i]
				return &Location{
					Lat:  e.Lat,
					Lng:  e.Lng,
					Name: displayName(e.Key),
				}
			}
		}
	}
	return nil
}

func displayName(key string) string {
	if key == "" {
		return ""
	}
	return strings.ToUpper(key[:1]) + key[1:]
}

// Default is the hand-curated table of insurance and reinsurance hubs plus
// the regions that dominate catastrophe coverage.
func Default() *Gazetteer {
	return New([]Entry{
		{"bermuda", 32.3078, -64.7505},
		{"london", 51.5074, -0.1278},
		{"uk", 54.5, -4.0},
		{"u.k.", 54.5, -4.0},
		{"united kingdom", 54.5, -4.0},
		{"lloyd's", 51.5130, -0.0822},
		{"new york", 40.7128, -74.0060},
		{"nyc", 40.7128, -74.0060},
		{"florida", 27.6648, -81.5158},
		{"california", 36.7783, -119.4179},
		{"texas", 31.9686, -99.9018},
		{"louisiana", 30.9843, -91.9623},
		{"zurich", 47.3769, 8.5417},
		{"swiss", 46.8182, 8.2275},
		{"munich", 48.1351, 11.5820},
		{"hannover", 52.3759, 9.7320},
		{"paris", 48.8566, 2.3522},
		{"singapore", 1.3521, 103.8198},
		{"hong kong", 22.3193, 114.1694},
		{"tokyo", 35.6762, 139.6503},
		{"japan", 36.2048, 138.2529},
		{"australia", -25.2744, 133.7751},
		{"sydney", -33.8688, 151.2093},
		{"canada", 56.1304, -106.3468},
		{"germany", 51.1657, 10.4515},
		{"france", 46.2276, 2.2137},
		{"italy", 41.8719, 12.5674},
		{"spain", 40.4637, -3.7492},
		{"china", 35.8617, 104.1954},
		{"india", 20.5937, 78.9629},
		{"dubai", 25.2048, 55.2708},
		{"uae", 23.4241, 53.8478},
		{"usa", 37.0902, -95.7129},
		{"u.s.", 37.0902, -95.7129},
		{"us", 37.0902, -95.7129},
		{"america", 37.0902, -95.7129},
		{"caribbean", 15.3275, -61.3726},
		{"vietnam", 14.0583, 108.2772},
		{"jamaica", 18.1096, -77.2975},
		{"basel", 47.5596, 7.5886},
		{"seattle", 47.6062, -122.3321},
	})
}
