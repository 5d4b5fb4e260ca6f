package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"jokebot/internal/services"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, formatError(err))
		}
		os.Exit(1)
	}
}

func formatError(err error) string {
	details := services.Details(err)
	if details.Kind == "unknown" {
		return details.Message
	}
	return "jokebot: " + details.Message
}
