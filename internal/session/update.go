package session

import "jokebot/internal/jokes"

// Update is the partial state a step returns. Nil fields are left untouched.
type Update struct {
	Jokes    []*jokes.Joke
	Choice   *Choice
	Category *string
	Quit     *bool
}

// Empty reports whether the update changes nothing.
func (u Update) Empty() bool {
	return len(u.Jokes) == 0 && u.Choice == nil && u.Category == nil && u.Quit == nil
}

// ChoiceUpdate sets the menu choice.
func ChoiceUpdate(choice Choice) Update {
	return Update{Choice: &choice}
}

// CategoryUpdate sets the current category.
func CategoryUpdate(category string) Update {
	return Update{Category: &category}
}

// QuitUpdate marks the session as finished.
func QuitUpdate() Update {
	quit := true
	return Update{Quit: &quit}
}

// JokesUpdate carries new or reviewed joke records.
func JokesUpdate(records ...*jokes.Joke) Update {
	return Update{Jokes: records}
}
