package domain

type Intent string

const (
	IntentNone     Intent = "none"
	IntentGreeting Intent = "greeting"
	IntentGoodbye  Intent = "goodbye"
	IntentThanks   Intent = "thanks"
)

// ShortCircuits reports whether the intent bypasses the similarity pipeline.
func (i Intent) ShortCircuits() bool {
	return i == IntentGreeting || i == IntentGoodbye || i == IntentThanks
}
