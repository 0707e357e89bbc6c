package intent

import (
	"chat-bot/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetector_Detect(t *testing.T) {
	req := require.New(t)
	detector, err := NewDefaultDetector()
	req.NoError(err)

	tests := []struct {
		name     string
		input    string
		expected domain.Intent
	}{
		{"Single greeting word", "Hi", domain.IntentGreeting},
		{"Greeting with punctuation", "hello!!", domain.IntentGreeting},
		{"Multi-word greeting", "Good morning", domain.IntentGreeting},
		{"Multi-word greeting words apart", "morning, good sir", domain.IntentGreeting},
		{"Greeting wins over thanks", "hi thanks", domain.IntentGreeting},
		{"Greeting wins over goodbye", "hey bye", domain.IntentGreeting},
		{"Goodbye word", "Goodbye!", domain.IntentGoodbye},
		{"Exit is a goodbye", "exit", domain.IntentGoodbye},
		{"Multi-word goodbye", "see you later", domain.IntentGoodbye},
		{"Goodbye wins over thanks", "thanks, bye", domain.IntentGoodbye},
		{"Thanks phrase", "thank you", domain.IntentThanks},
		{"Thanks abbreviation", "thx a lot", domain.IntentThanks},
		{"Apostrophes do not hide words", "Thanks, that's great", domain.IntentThanks},
		{"No substring match for single words", "this is history", domain.IntentNone},
		{"No substring match inside words", "they were thankful", domain.IntentNone},
		{"Substring fallback for phrases", "i'll see your code", domain.IntentGoodbye},
		{"Content question", "what is ai", domain.IntentNone},
		{"Empty input", "", domain.IntentNone},
		{"Whitespace input", "   ", domain.IntentNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req.Equal(tt.expected, detector.Detect(tt.input), "input=%q", tt.input)
		})
	}
}

func TestDetector_CustomTriggers(t *testing.T) {
	req := require.New(t)

	// Given custom lists with noisy spacing and an empty phrase
	detector, err := NewDetector(
		Triggers{Intent: domain.IntentGreeting, Phrases: []string{"  Good   Day ", "", "yo"}},
		Triggers{Intent: domain.IntentThanks, Phrases: []string{"cheers"}},
	)
	req.NoError(err)

	req.Equal(domain.IntentGreeting, detector.Detect("a good day to you"))
	req.Equal(domain.IntentGreeting, detector.Detect("YO"))
	req.Equal(domain.IntentThanks, detector.Detect("cheers mate"))
	req.Equal(domain.IntentNone, detector.Detect("hello"))
}

func TestDetector_NoMultiWordTriggers(t *testing.T) {
	req := require.New(t)
	detector, err := NewDetector(Triggers{Intent: domain.IntentThanks, Phrases: []string{"thanks"}})
	req.NoError(err)
	req.Nil(detector.matcher)
	req.Equal(domain.IntentThanks, detector.Detect("Thanks!"))
	req.Equal(domain.IntentNone, detector.Detect("good morning"))
}
