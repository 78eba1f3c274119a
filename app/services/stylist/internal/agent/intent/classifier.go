package intent

import (
	"regexp"
	"strings"

	"StylistAI/app/services/stylist/internal/agent/extract"
)

var greetingTokens = []string{
	"hi", "hello", "hey", "hiya", "howdy", "greetings", "namaste", "hola",
	"good morning", "good afternoon", "good evening",
}

var (
	sizeCue     = regexp.MustCompile(`\b(size|sizes|sizing|fit|fits|fitting)\b`)
	budgetCue   = regexp.MustCompile(`\b(budget|afford|affordable|spend|spending)\b`)
	occasionCue = regexp.MustCompile(`\b(occasion|event)\b|\bfor (?:a |an |the |my )?(?:casual|formal|party|office|wedding|date|gym|workout|festive|festival|beach|vacation|interview|brunch)\b`)
	styleCue    = regexp.MustCompile(`\b(style|styles|styling|aesthetic|vibe)\b|\bi (?:like|love|prefer) (?:a |an )?(?:casual|formal|ethnic|western|boho|minimalist|vintage|streetwear|sporty|elegant|trendy|classic|chic|bohemian)\b`)
	colorCue    = regexp.MustCompile(`\b(colou?r|colou?rs|shade)\b|\bi (?:like|love|prefer) (?:red|blue|green|black|white|yellow|pink|purple|orange|brown|grey|gray|navy|beige|maroon|olive|teal|gold|silver|cream|khaki|lavender)\b`)
	productCue  = regexp.MustCompile(`\b(show|find|search|looking for|look for|buy|shop|need|want|recommend|suggest|get me|browse|latest|new arrivals?|trending)\b`)
)

// Classify maps text to one intent. Checks run in a fixed order and the first
// hit wins, so "casual budget" lands on budget_preference before occasion is
// even looked at. This is a coarse heuristic, not a learned priority.
func Classify(text string) Intent {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return IntentGeneralConversation
	}

	switch {
	case IsGreeting(lower):
		return IntentGreeting
	case sizeCue.MatchString(lower):
		return IntentSizePreference
	case budgetCue.MatchString(lower):
		return IntentBudgetPreference
	case occasionCue.MatchString(lower):
		return IntentOccasionPreference
	case styleCue.MatchString(lower):
		return IntentStylePreference
	case colorCue.MatchString(lower):
		return IntentColorPreference
	case IsProductQuery(lower):
		return IntentProductSearch
	default:
		return IntentGeneralConversation
	}
}

// IsGreeting is a prefix test: "hi there" greets, "oh hi" does not.
func IsGreeting(text string) bool {
	lower := strings.ToLower(strings.TrimSpace(text))
	for _, token := range greetingTokens {
		if strings.HasPrefix(lower, token) {
			return true
		}
	}
	return false
}

// IsProductQuery reports a product keyword, a garment term or a price pattern.
func IsProductQuery(text string) bool {
	lower := strings.ToLower(strings.TrimSpace(text))
	return productCue.MatchString(lower) ||
		extract.MatchesCategory(lower) ||
		extract.HasPricePattern(lower)
}
