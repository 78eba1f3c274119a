package outfit

import "strings"

const defaultOccasion = "casual"

// Rule decides which products suit an occasion. PriceMultiplier is carried
// with the rule but the budget check does not apply it.
type Rule struct {
	Allowed         []string
	Avoid           []string
	PriceMultiplier float64
}

var occasionRules = map[string]Rule{
	"casual": {
		Allowed:         []string{"t-shirt", "shirt", "jeans", "shorts", "sneakers", "shoes", "hoodie", "top", "dress", "skirt", "jacket", "sunglasses", "watch", "bag", "casual"},
		Avoid:           []string{"formal", "suit", "blazer", "gown", "tuxedo"},
		PriceMultiplier: 1.0,
	},
	"formal": {
		Allowed:         []string{"shirt", "trousers", "pants", "suit", "blazer", "tie", "shoes", "watch", "belt", "formal", "dress"},
		Avoid:           []string{"t-shirt", "shorts", "hoodie", "flip", "sneakers", "gym"},
		PriceMultiplier: 1.5,
	},
	"party": {
		Allowed:         []string{"dress", "top", "skirt", "jeans", "heels", "shoes", "jacket", "jewellery", "clutch", "bag", "party", "shirt"},
		Avoid:           []string{"gym", "track", "sportswear", "office"},
		PriceMultiplier: 1.3,
	},
	"office": {
		Allowed:         []string{"shirt", "trousers", "pants", "blazer", "shoes", "watch", "bag", "skirt", "kurta", "formal"},
		Avoid:           []string{"shorts", "hoodie", "party", "gym", "flip"},
		PriceMultiplier: 1.2,
	},
	"wedding": {
		Allowed:         []string{"saree", "kurta", "lehenga", "sherwani", "suit", "jewellery", "dress", "shoes", "ethnic", "bag"},
		Avoid:           []string{"shorts", "t-shirt", "hoodie", "gym", "jeans"},
		PriceMultiplier: 2.0,
	},
	"gym": {
		Allowed:         []string{"gym", "sports", "sportswear", "track", "shorts", "t-shirt", "sneakers", "athletic", "running", "leggings", "workout"},
		Avoid:           []string{"formal", "suit", "silk", "heels", "jewellery"},
		PriceMultiplier: 0.8,
	},
	"date": {
		Allowed:         []string{"dress", "shirt", "jeans", "top", "skirt", "shoes", "watch", "jewellery", "jacket"},
		Avoid:           []string{"gym", "track", "hoodie"},
		PriceMultiplier: 1.2,
	},
	"beach": {
		Allowed:         []string{"shorts", "t-shirt", "swim", "sunglasses", "sandals", "hat", "dress", "top", "linen"},
		Avoid:           []string{"formal", "suit", "boots", "sweater", "jacket"},
		PriceMultiplier: 0.9,
	},
}

// RuleFor returns the rule for occasion and the occasion it resolved to.
// Unknown occasions use the casual rule.
func RuleFor(occasion string) (string, Rule) {
	key := strings.ToLower(strings.TrimSpace(occasion))
	if rule, ok := occasionRules[key]; ok {
		return key, rule
	}
	return defaultOccasion, occasionRules[defaultOccasion]
}

func (r Rule) matches(text string) bool {
	allowed := false
	for _, kw := range r.Allowed {
		if strings.Contains(text, kw) {
			allowed = true
			break
		}
	}
	if !allowed {
		return false
	}
	for _, kw := range r.Avoid {
		if strings.Contains(text, kw) {
			return false
		}
	}
	return true
}
