// Package session models the workflow state threaded through every step of a
// jokebot run, and the partial updates steps hand back to the engine.
package session
