package intent

type Intent string

const (
	IntentGreeting            Intent = "greeting"
	IntentSizePreference      Intent = "size_preference"
	IntentBudgetPreference    Intent = "budget_preference"
	IntentOccasionPreference  Intent = "occasion_preference"
	IntentStylePreference     Intent = "style_preference"
	IntentColorPreference     Intent = "color_preference"
	IntentProductSearch       Intent = "product_search"
	IntentGeneralConversation Intent = "general_conversation"
)

func (i Intent) String() string {
	return string(i)
}

// IsPreference reports whether the intent records a shopper preference.
func (i Intent) IsPreference() bool {
	switch i {
	case IntentSizePreference, IntentBudgetPreference, IntentOccasionPreference,
		IntentStylePreference, IntentColorPreference:
		return true
	default:
		return false
	}
}
