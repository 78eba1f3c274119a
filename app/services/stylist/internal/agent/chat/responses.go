package chat

import (
	"regexp"

	"StylistAI/app/services/stylist/internal/agent/extract"
	"StylistAI/app/services/stylist/internal/agent/intent"
)

const (
	refusalText  = "I'm your fashion stylist, so I can only help with clothing and accessories. Shall I find you something to wear instead?"
	fallbackText = "Sorry, I'm having trouble with that right now. Please try again in a moment."
)

// Each variant takes the time-of-day salutation.
var greetingVariants = []string{
	"%s! I'm your personal stylist. What are you shopping for today?",
	"%s! Ready to find something you'll love wearing?",
	"%s! Tell me the look you have in mind and I'll pull some options.",
	"%s! Looking for something new for your wardrobe?",
}

var greetingFollowUps = []string{
	"What occasion are you shopping for?",
	"Do you have a budget in mind?",
	"Any favourite colours?",
}

var baseSuggestions = []string{
	"Show me the latest arrivals",
	"Casual t-shirts under ₹1000",
	"Party wear for tonight",
	"Formal shirts for office",
}

var intentFollowUps = map[intent.Intent][]string{
	intent.IntentProductSearch: {
		"Would you like these in a specific colour?",
		"Should I keep it within a budget?",
		"Want me to build a full outfit around one of these?",
	},
	intent.IntentSizePreference: {
		"Noted your size. What are you shopping for?",
		"Do you prefer a relaxed or a slim fit?",
	},
	intent.IntentBudgetPreference: {
		"Got your budget. Which category should I look in?",
		"Is this budget for a single piece or a full outfit?",
	},
	intent.IntentOccasionPreference: {
		"Should I put together a complete outfit for it?",
		"Do you want something dressy or relaxed?",
		"Any colours you want to wear?",
	},
	intent.IntentStylePreference: {
		"Want to see the latest pieces in that style?",
		"Which occasion is this look for?",
	},
	intent.IntentColorPreference: {
		"Which category should I look at in that colour?",
		"Should I pair it with neutral basics?",
	},
	intent.IntentGeneralConversation: {
		"Are you shopping for a particular occasion?",
		"Would you like to see what's trending?",
		"Shall I suggest an outfit?",
	},
}

var (
	fashionMention = regexp.MustCompile(`\b(fashion|style|styles|styling|cloth|clothes|clothing|wear|wearing|outfit|outfits|dress|look)\b`)
	offTopicTerms  = regexp.MustCompile(`\b(electronics?|furniture|laptops?|phones?|mobiles?|smartphones?|tablets?|tv|television|headphones?|earphones?|cameras?|sofas?|tables?|chairs?|beds?|fridge|refrigerators?|washing machine|appliances?|groceries|grocery|books?|toys?|kitchen|cars?|bikes?)\b`)
)

// isOffTopic holds when nothing in the message looks like clothing and at
// least one term names a different department.
func isOffTopic(lower string) bool {
	if extract.MatchesCategory(lower) || fashionMention.MatchString(lower) {
		return false
	}
	return offTopicTerms.MatchString(lower)
}

func mentionsFashion(lower string) bool {
	return fashionMention.MatchString(lower)
}

func defaultSuggestions() []string {
	return append([]string(nil), baseSuggestions...)
}

func followUpsFor(kind intent.Intent) []string {
	questions := intentFollowUps[kind]
	if len(questions) > maxFollowUps {
		questions = questions[:maxFollowUps]
	}
	return append([]string(nil), questions...)
}
