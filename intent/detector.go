package intent

import (
	"chat-bot/domain"
	"regexp"
	"strings"

	goahocorasick "github.com/anknown/ahocorasick"
	"github.com/samber/lo"
)

var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

var (
	DefaultGreetings = []string{"hi", "hello", "hey", "good morning", "good afternoon", "good evening"}
	DefaultGoodbyes  = []string{"bye", "goodbye", "see you", "exit", "quit", "farewell"}
	DefaultThanks    = []string{"thanks", "thank you", "thx", "thank", "appreciate"}
)

// Triggers lists the phrases announcing an intent, in matching order.
type Triggers struct {
	Intent  domain.Intent
	Phrases []string
}

type phrase struct {
	text  string
	words []string
}

type category struct {
	intent  domain.Intent
	phrases []phrase
}

// Detector classifies raw text into a closed set of conversational intents.
// Categories are checked in the order given to NewDetector; the first match wins.
type Detector struct {
	categories []category
	matcher    *goahocorasick.Machine
}

// NewDetector normalizes the trigger phrases and builds an Aho-Corasick automaton
// over the multi-word ones, used for the contiguous substring fallback.
func NewDetector(triggers ...Triggers) (*Detector, error) {
	d := &Detector{}
	var multiWord []string
	for _, t := range triggers {
		c := category{intent: t.Intent}
		for _, raw := range t.Phrases {
			words := strings.Fields(strings.ToLower(raw))
			if len(words) == 0 {
				continue
			}
			p := phrase{text: strings.Join(words, " "), words: words}
			c.phrases = append(c.phrases, p)
			if len(words) > 1 {
				multiWord = append(multiWord, p.text)
			}
		}
		d.categories = append(d.categories, c)
	}

	multiWord = lo.Uniq(multiWord)
	if len(multiWord) == 0 {
		return d, nil
	}
	patterns := lo.Map(multiWord, func(p string, _ int) []rune { return []rune(p) })
	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	d.matcher = m
	return d, nil
}

// NewDefaultDetector checks greetings, then goodbyes, then thanks.
func NewDefaultDetector() (*Detector, error) {
	return NewDetector(
		Triggers{Intent: domain.IntentGreeting, Phrases: DefaultGreetings},
		Triggers{Intent: domain.IntentGoodbye, Phrases: DefaultGoodbyes},
		Triggers{Intent: domain.IntentThanks, Phrases: DefaultThanks},
	)
}

// Detect returns the intent of text or domain.IntentNone.
// A single-word trigger must appear as a whole word ("hi" never matches "history").
// A multi-word trigger matches when all its words are present anywhere,
// or when the phrase appears verbatim in the lowercased text.
func (d *Detector) Detect(text string) domain.Intent {
	t := strings.ToLower(strings.TrimSpace(text))
	if t == "" {
		return domain.IntentNone
	}

	words := make(map[string]struct{})
	for _, w := range wordPattern.FindAllString(t, -1) {
		words[w] = struct{}{}
	}
	substrings := d.substrings(t)

	for _, c := range d.categories {
		for _, p := range c.phrases {
			if p.matches(words, substrings) {
				return c.intent
			}
		}
	}
	return domain.IntentNone
}

func (d *Detector) substrings(text string) map[string]struct{} {
	found := make(map[string]struct{})
	if d.matcher == nil {
		return found
	}
	for _, term := range d.matcher.MultiPatternSearch([]rune(text), false) {
		found[string(term.Word)] = struct{}{}
	}
	return found
}

func (p phrase) matches(words, substrings map[string]struct{}) bool {
	if len(p.words) == 1 {
		_, ok := words[p.text]
		return ok
	}
	allPresent := lo.EveryBy(p.words, func(w string) bool {
		_, ok := words[w]
		return ok
	})
	if allPresent {
		return true
	}
	_, ok := substrings[p.text]
	return ok
}
