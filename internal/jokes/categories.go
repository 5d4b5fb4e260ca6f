package jokes

import (
	"math/rand/v2"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	CategoryNeutral = "neutral"
	CategoryChuck   = "chuck"
	// CategoryAll is a sentinel resolved to a random concrete category at
	// generation time. It is never stored on a Joke.
	CategoryAll = "all"
)

var (
	concreteCategories   = []string{CategoryNeutral, CategoryChuck}
	selectableCategories = []string{CategoryNeutral, CategoryChuck, CategoryAll}
)

// Categories returns the concrete categories in display order.
func Categories() []string {
	return slices.Clone(concreteCategories)
}

// Selectable returns the categories offered by the category prompt, indexed
// in the order they are presented.
func Selectable() []string {
	return slices.Clone(selectableCategories)
}

// IsConcrete reports whether category names a real joke category.
func IsConcrete(category string) bool {
	return slices.Contains(concreteCategories, category)
}

// IsSelectable reports whether category is a concrete category or the sentinel.
func IsSelectable(category string) bool {
	return slices.Contains(selectableCategories, category)
}

// Resolve maps the "all" sentinel to a uniformly chosen concrete category.
// Any other value is returned unchanged.
func Resolve(category string, rng *rand.Rand) string {
	if category != CategoryAll {
		return category
	}
	if rng == nil {
		return concreteCategories[rand.IntN(len(concreteCategories))]
	}
	return concreteCategories[rng.IntN(len(concreteCategories))]
}

// Label renders a category for human-facing tables.
func Label(category string) string {
	category = strings.TrimSpace(category)
	if category == "" {
		return ""
	}
	return cases.Title(language.English).String(category)
}

// NormalizeLanguage canonicalizes a BCP 47 language tag to its base language
// code ("EN-us" becomes "en").
func NormalizeLanguage(code string) (string, error) {
	tag, err := language.Parse(strings.TrimSpace(code))
	if err != nil {
		return "", err
	}
	base, _ := tag.Base()
	return base.String(), nil
}
