package jokes

import "unicode/utf8"

// Joke is one generated joke plus the critic's verdict.
type Joke struct {
	Text     string
	Category string
	Approved bool
}

// New creates an unreviewed joke.
func New(text, category string) *Joke {
	return &Joke{Text: text, Category: category}
}

// Length returns the character count of the joke text.
func (j *Joke) Length() int {
	if j == nil {
		return 0
	}
	return utf8.RuneCountInString(j.Text)
}

// Review records the critic's verdict. Approval is sticky: once approved a
// joke is never rejected again.
func (j *Joke) Review(approved bool) {
	if j == nil || !approved {
		return
	}
	j.Approved = true
}

// Verdict returns the summary marker for the joke.
func (j *Joke) Verdict() string {
	if j != nil && j.Approved {
		return "✅ Approved"
	}
	return "❌ Rejected"
}
