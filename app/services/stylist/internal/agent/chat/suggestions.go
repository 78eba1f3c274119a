package chat

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"time"

	"StylistAI/app/dal/product"
)

var styleVocabulary = []string{"casual", "formal", "party", "ethnic", "sporty", "vintage", "boho", "minimalist", "classic"}

// dynamicSuggestions derives chips from the categories, styles and mean price
// of the found products, plus one seasonal chip.
func dynamicSuggestions(products []*product.Products, now time.Time, rng *rand.Rand) []string {
	var (
		categories []string
		styles     []string
		seen       = make(map[string]struct{})
		total      float64
		priced     int
	)

	for _, p := range products {
		if p == nil {
			continue
		}
		if cat := strings.ToLower(strings.TrimSpace(p.Category)); cat != "" {
			if _, ok := seen["c:"+cat]; !ok {
				seen["c:"+cat] = struct{}{}
				categories = append(categories, cat)
			}
		}
		text := strings.ToLower(p.Title + " " + p.Description)
		for _, style := range styleVocabulary {
			if !strings.Contains(text, style) {
				continue
			}
			if _, ok := seen["s:"+style]; !ok {
				seen["s:"+style] = struct{}{}
				styles = append(styles, style)
			}
		}
		total += p.Price
		priced++
	}

	out := make([]string, 0, len(categories)*(len(styles)+1)+3)
	for _, cat := range categories {
		if len(styles) == 0 {
			out = append(out, fmt.Sprintf("More %s", cat))
			continue
		}
		for _, style := range styles {
			out = append(out, fmt.Sprintf("Show %s %s", style, cat))
		}
	}

	if priced > 0 {
		mean := math.Round(total / float64(priced))
		if mean > 0 {
			out = append(out,
				fmt.Sprintf("Similar picks under ₹%.0f", mean),
				fmt.Sprintf("Premium picks above ₹%.0f", mean),
			)
		}
	}

	out = append(out, fmt.Sprintf("Show me %s essentials", season(now)))

	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out
}

// season: April through September is summer.
func season(t time.Time) string {
	if m := t.Month(); m >= time.April && m <= time.September {
		return "summer"
	}
	return "winter"
}
