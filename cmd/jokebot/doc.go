// Package main hosts the jokebot CLI entrypoint and command graph.
//
// The Cobra-based command tree resolves configuration, builds the workflow
// engine over a terminal console and the built-in joke source, and prints the
// session summary. Subcommands cover category listing and configuration
// scaffolding.
package main
