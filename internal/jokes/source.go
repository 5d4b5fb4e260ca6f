package jokes

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"

	"jokebot/internal/services"
)

// Source supplies joke text for a language and concrete category.
type Source interface {
	Fetch(ctx context.Context, language, category string) (string, error)
}

// SourceFunc adapts a plain function to the Source interface.
type SourceFunc func(ctx context.Context, language, category string) (string, error)

// Fetch calls f.
func (f SourceFunc) Fetch(ctx context.Context, language, category string) (string, error) {
	return f(ctx, language, category)
}

// Builtin serves jokes from the embedded corpus.
type Builtin struct {
	mu     sync.Mutex
	rng    *rand.Rand
	corpus map[string]map[string][]string
}

// NewBuiltin returns a Builtin source drawing from rng. A nil rng uses the
// process-wide random source.
func NewBuiltin(rng *rand.Rand) *Builtin {
	return &Builtin{rng: rng, corpus: builtinCorpus}
}

// Fetch returns a random joke for the language and category.
func (b *Builtin) Fetch(ctx context.Context, language, category string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	byCategory, ok := b.corpus[language]
	if !ok {
		return "", services.Wrap(services.ErrNotFound, "joke source", "fetch",
			fmt.Sprintf("no jokes available for language %q", language), nil)
	}
	entries := byCategory[category]
	if len(entries) == 0 {
		return "", services.Wrap(services.ErrNotFound, "joke source", "fetch",
			fmt.Sprintf("no %q jokes available for language %q", category, language), nil)
	}
	return entries[b.intN(len(entries))], nil
}

// Languages lists the language codes the corpus covers.
func (b *Builtin) Languages() []string {
	out := make([]string, 0, len(b.corpus))
	for _, lang := range corpusLanguages {
		if _, ok := b.corpus[lang]; ok {
			out = append(out, lang)
		}
	}
	return out
}

// Count returns how many jokes exist for the language and category.
func (b *Builtin) Count(language, category string) int {
	return len(b.corpus[language][category])
}

func (b *Builtin) intN(n int) int {
	if b.rng == nil {
		return rand.IntN(n)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.rng.IntN(n)
}
