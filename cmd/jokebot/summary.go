package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"

	"jokebot/internal/jokes"
)

const summaryHeader = "\nHere are all jokes you got:\n"

const (
	ansiReset = "\x1b[0m"
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
)

type summaryOptions struct {
	table    bool
	colorize bool
}

func printSummary(w io.Writer, history []*jokes.Joke, opts summaryOptions) {
	fmt.Fprint(w, summaryHeader+"\n")
	if opts.table {
		if len(history) > 0 {
			fmt.Fprintln(w, renderSummaryTable(history))
		}
		return
	}
	for i, joke := range history {
		fmt.Fprintln(w, renderSummaryLine(i+1, joke, opts.colorize))
	}
}

func renderSummaryLine(index int, joke *jokes.Joke, colorize bool) string {
	verdict := joke.Verdict()
	if colorize {
		verdict = verdictColor(joke.Approved) + verdict + ansiReset
	}
	return fmt.Sprintf("%d. [%s] %s - %s", index, joke.Category, verdict, joke.Text)
}

func renderSummaryTable(history []*jokes.Joke) string {
	rows := make([][]string, 0, len(history))
	for i, joke := range history {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			jokes.Label(joke.Category),
			joke.Verdict(),
			joke.Text,
		})
	}
	return renderTable(
		[]string{"#", "Category", "Verdict", "Joke"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft},
	)
}

func verdictColor(approved bool) string {
	if approved {
		return ansiGreen
	}
	return ansiRed
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
