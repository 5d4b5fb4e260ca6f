// Package jokes holds the joke record, the category vocabulary, and the joke
// sources the writer step draws from.
//
// The built-in source ships an offline corpus keyed by language and category.
// Callers that need a different supply (tests, alternative corpora) implement
// Source or adapt a function with SourceFunc.
package jokes
