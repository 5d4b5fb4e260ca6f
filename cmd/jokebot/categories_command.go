package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"jokebot/internal/jokes"
)

func newCategoriesCommand(ctx *commandContext) *cobra.Command {
	var language string

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List selectable joke categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			lang := cfg.Bot.Language
			if cmd.Flags().Changed("language") {
				if lang, err = jokes.NormalizeLanguage(language); err != nil {
					return fmt.Errorf("--language: %w", err)
				}
			}

			source := jokes.NewBuiltin(nil)
			rows := make([][]string, 0, len(jokes.Selectable()))
			for index, category := range jokes.Selectable() {
				rows = append(rows, []string{
					strconv.Itoa(index),
					category,
					jokes.Label(category),
					strconv.Itoa(categoryCount(source, lang, category)),
				})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Categories for language %q:\n", lang)
			fmt.Fprintln(out, renderTable(
				[]string{"Index", "Category", "Label", "Jokes"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight},
			))
			return nil
		},
	}
	cmd.Flags().StringVar(&language, "language", "", "Language code to count jokes for")
	return cmd
}

func categoryCount(source *jokes.Builtin, language, category string) int {
	if jokes.IsConcrete(category) {
		return source.Count(language, category)
	}
	total := 0
	for _, concrete := range jokes.Categories() {
		total += source.Count(language, concrete)
	}
	return total
}
