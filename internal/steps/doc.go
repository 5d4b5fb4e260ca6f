// Package steps implements the handlers the workflow engine sequences: the
// menu, the writer, the critic, the category selector, and the exit step.
//
// Handlers talk to the user through console.Console and never touch the
// session state directly; they return a session.Update for the engine to
// merge. The critic is the one exception by construction: it reviews the last
// joke record in place, which is the same pointer the history holds.
package steps

// Conversation text shown to the user.
const (
	MenuPrompt     = "\n[n] Next  [c] Category  [q] Quit\n> "
	CategoryPrompt = "Select category [0=neutral,1=chuck,2=all]: "

	menuInvalidMessage        = "Invalid input. Defaulting to 'n'."
	categoryNotNumberMessage  = "Please enter a number."
	categoryOutOfRangeMessage = "Invalid selection."
	criticApprovedMessage     = "🧠 Critic: Approved this joke!"
	criticRejectedMessage     = "🧠 Critic: This joke is too short, rejecting it."
	farewellMessage           = "\n👋 Exiting bot. Thanks for laughing!"
)
