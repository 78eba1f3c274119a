package extract

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"StylistAI/app/dal/session"
)

const LatestTerm = "latest"

// Signals is the structured reading of one message. It lives for one request.
type Signals struct {
	SearchTerm     string
	Category       string
	AlternateTerms []string
	MaxPrice       *float64
	Colors         []string
	Raw            string
	Size           string
	Occasions      []string
	Style          string
	Season         string
}

func (s Signals) HasMaxPrice() bool {
	return s.MaxPrice != nil
}

// pricePatterns are tried in order; the first hit wins even when a later
// pattern would also match.
var pricePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:under|below|less than|within|upto|up to|max|maximum)\s*(?:₹|rs\.?|inr)?\s*(\d+(?:\.\d+)?)(?:\s*k\b)?`),
	regexp.MustCompile(`(?:₹|\brs\.?|\binr)\s*(\d+(?:\.\d+)?)(?:\s*k\b)?`),
	regexp.MustCompile(`budget\s*(?:(?:of|is|around|about|:)\s*)*(?:₹|rs\.?|inr)?\s*(\d+(?:\.\d+)?)(?:\s*k\b)?`),
	regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:rupees|inr|rs)\b`),
}

var (
	digitGroups = regexp.MustCompile(`(\d),(\d)`)
	sizePattern = regexp.MustCompile(`(?:^|[\s,(/])(xxl|xl|s|m|l|small|medium|large)(?:$|[\s,.!?)/])`)
	wordPattern = regexp.MustCompile(`[a-z0-9][a-z0-9-]*`)
)

// categoryPatterns match whole words only, so "laptop" is not a top.
var categoryPatterns = compileCategoryPatterns()

func compileCategoryPatterns() []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(categoryTable))
	for _, entry := range categoryTable {
		quoted := make([]string, 0, len(entry.Terms))
		for _, t := range entry.Terms {
			quoted = append(quoted, regexp.QuoteMeta(t))
		}
		out = append(out, regexp.MustCompile(`\b(?:`+strings.Join(quoted, "|")+`)\b`))
	}
	return out
}

var sizeNames = map[string]string{
	"small":  "S",
	"medium": "M",
	"large":  "L",
}

// Extract never fails; anything it cannot read stays empty.
func Extract(text string) (Signals, session.Preferences) {
	lower := strings.ToLower(strings.TrimSpace(text))
	signals := Signals{Raw: text}

	signals.MaxPrice = ExtractPrice(lower)
	signals.Category, signals.SearchTerm, signals.AlternateTerms = extractCategory(lower)
	if signals.SearchTerm == "" {
		if containsAny(lower, latestKeywords) {
			signals.SearchTerm = LatestTerm
		} else {
			signals.SearchTerm = fallbackTerm(lower)
		}
	}
	signals.Colors = ExtractColors(lower)
	signals.Size = ExtractSize(lower)
	signals.Occasions = matchAll(lower, occasionKeywords)
	signals.Style = matchFirst(lower, styleKeywords)
	signals.Season = matchFirst(lower, seasonKeywords)

	update := session.Preferences{
		Size:      signals.Size,
		Style:     signals.Style,
		Budget:    signals.MaxPrice,
		Colors:    signals.Colors,
		Occasions: signals.Occasions,
	}
	if signals.SearchTerm != LatestTerm {
		update.LastSearch = signals.SearchTerm
	}
	return signals, update
}

// ExtractPrice returns the single price ceiling in text, or nil.
func ExtractPrice(lower string) *float64 {
	lower = digitGroups.ReplaceAllString(lower, "$1$2")
	for _, pattern := range pricePatterns {
		m := pattern.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		value, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return nil
		}
		// values under 100 are read as thousands
		if strings.Contains(m[0], "k") || value < 100 {
			value *= 1000
		}
		return &value
	}
	return nil
}

// HasPricePattern reports whether any price pattern matches.
func HasPricePattern(lower string) bool {
	for _, pattern := range pricePatterns {
		if pattern.MatchString(lower) {
			return true
		}
	}
	return false
}

func ExtractColors(lower string) []string {
	return matchAll(lower, colorPalette)
}

func ExtractSize(lower string) string {
	m := sizePattern.FindStringSubmatch(lower)
	if m == nil {
		return ""
	}
	if name, ok := sizeNames[m[1]]; ok {
		return name
	}
	return strings.ToUpper(m[1])
}

// MatchesCategory reports whether any garment term appears in text.
func MatchesCategory(lower string) bool {
	category, _, _ := extractCategory(lower)
	return category != ""
}

func extractCategory(lower string) (category, term string, alternates []string) {
	for i, entry := range categoryTable {
		if !categoryPatterns[i].MatchString(lower) {
			continue
		}
		alternates = make([]string, 0, len(entry.Terms))
		for _, t := range entry.Terms {
			if t != entry.Category {
				alternates = append(alternates, t)
			}
		}
		return entry.Category, entry.Category, alternates
	}
	return "", "", nil
}

func fallbackTerm(lower string) string {
	best := ""
	for _, word := range wordPattern.FindAllString(lower, -1) {
		word = strings.Trim(word, "-")
		if len(word) <= 3 || isNumeric(word) {
			continue
		}
		if _, stop := stopWords[word]; stop {
			continue
		}
		if len(word) > len(best) {
			best = word
		}
	}
	return best
}

// isNumeric covers plain amounts and the "2k" shorthand.
func isNumeric(word string) bool {
	digits := 0
	for _, r := range strings.TrimSuffix(word, "k") {
		if !unicode.IsDigit(r) {
			return false
		}
		digits++
	}
	return digits > 0
}

func containsAny(lower string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(lower, t) {
			return true
		}
	}
	return false
}

func matchAll(lower string, terms []string) []string {
	out := make([]string, 0)
	for _, t := range terms {
		if strings.Contains(lower, t) {
			out = append(out, t)
		}
	}
	return out
}

func matchFirst(lower string, terms []string) string {
	for _, t := range terms {
		if strings.Contains(lower, t) {
			return t
		}
	}
	return ""
}
