package session

import (
	"fmt"
	"slices"
	"strings"

	"jokebot/internal/jokes"
	"jokebot/internal/services"
)

// Choice is the user's last menu selection.
type Choice string

const (
	ChoiceNext     Choice = "next"
	ChoiceCategory Choice = "category"
	ChoiceQuit     Choice = "quit"
)

// DefaultLanguage is the language code used when none is configured.
const DefaultLanguage = "en"

var menuKeys = map[string]Choice{
	"n": ChoiceNext,
	"c": ChoiceCategory,
	"q": ChoiceQuit,
}

// ParseChoice maps raw menu input to a Choice. Input is trimmed and
// lower-cased; only "n", "c", and "q" are accepted.
func ParseChoice(input string) (Choice, bool) {
	choice, ok := menuKeys[strings.ToLower(strings.TrimSpace(input))]
	return choice, ok
}

// State is the mutable session record owned by the workflow engine.
type State struct {
	// Jokes is append-only and in chronological order.
	Jokes    []*jokes.Joke
	Choice   Choice
	Category string
	Language string
	Quit     bool
}

// Default returns the initial state of a fresh session.
func Default() State {
	return New(DefaultLanguage, jokes.CategoryNeutral)
}

// New returns an initial state for the language and starting category.
func New(language, category string) State {
	if strings.TrimSpace(language) == "" {
		language = DefaultLanguage
	}
	if strings.TrimSpace(category) == "" {
		category = jokes.CategoryNeutral
	}
	return State{
		Choice:   ChoiceNext,
		Category: category,
		Language: language,
	}
}

// Validate reports whether the state satisfies the session invariants.
func (s State) Validate() error {
	if !jokes.IsSelectable(s.Category) {
		return services.Wrap(services.ErrValidation, "session", "validate",
			fmt.Sprintf("unknown category %q", s.Category), nil)
	}
	if strings.TrimSpace(s.Language) == "" {
		return services.Wrap(services.ErrValidation, "session", "validate", "language is required", nil)
	}
	for i, joke := range s.Jokes {
		if joke == nil || !jokes.IsConcrete(joke.Category) {
			return services.Wrap(services.ErrValidation, "session", "validate",
				fmt.Sprintf("joke %d has no concrete category", i+1), nil)
		}
	}
	return nil
}

// Last returns the most recently appended joke, or nil when there is none.
func (s State) Last() *jokes.Joke {
	if len(s.Jokes) == 0 {
		return nil
	}
	return s.Jokes[len(s.Jokes)-1]
}

// Approved counts approved jokes in the history.
func (s State) Approved() int {
	count := 0
	for _, joke := range s.Jokes {
		if joke != nil && joke.Approved {
			count++
		}
	}
	return count
}

// Apply merges a step's partial update into the state. Jokes are appended
// unless the same record is already in the history; scalar fields replace.
func (s *State) Apply(u Update) {
	for _, joke := range u.Jokes {
		if joke == nil || slices.Contains(s.Jokes, joke) {
			continue
		}
		s.Jokes = append(s.Jokes, joke)
	}
	if u.Choice != nil {
		s.Choice = *u.Choice
	}
	if u.Category != nil {
		s.Category = *u.Category
	}
	if u.Quit != nil {
		s.Quit = *u.Quit
	}
}
