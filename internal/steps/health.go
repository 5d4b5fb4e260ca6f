package steps

import (
	"context"
	"fmt"
	"strings"

	"jokebot/internal/jokes"
	"jokebot/internal/stage"
)

// CheckSource probes src once per concrete category for language and reports
// which categories the writer can serve.
func CheckSource(ctx context.Context, src jokes.Source, language string) []stage.Health {
	categories := jokes.Categories()
	results := make([]stage.Health, 0, len(categories))
	for _, category := range categories {
		name := fmt.Sprintf("%s/%s", language, category)
		if src == nil {
			results = append(results, stage.Unhealthy(name, "no joke source configured"))
			continue
		}
		text, err := src.Fetch(ctx, language, category)
		switch {
		case err != nil:
			results = append(results, stage.Unhealthy(name, err.Error()))
		case strings.TrimSpace(text) == "":
			results = append(results, stage.Unhealthy(name, "source returned an empty joke"))
		default:
			results = append(results, stage.Healthy(name))
		}
	}
	return results
}
