package engine

import "github.com/kmalyshev/votebattle/internal/gateway"

// Button payloads reserved by the bot. Nominee buttons carry the nominee's
// username instead.
const (
	buttonStartGame   = "start_game"
	buttonGetLastGame = "get_last_game"
	buttonCancelGame  = "cancel_game"
)

const (
	initMessage = "Hi! I run elimination voting games in this chat. " +
		"Make me an admin so I can see the players, then use the keyboard below."

	idleCommandsMessage = "Waiting for a game to start.\n" +
		"/help — show this message\n" +
		"/rules — how the game works\n" +
		"/keyboard — show the game keyboard"

	idleRulesMessage = "Each round two players are nominated and everyone " +
		"else votes on who leaves. The eliminated player keeps voting in " +
		"later rounds. The last player standing wins."

	idleKeyboardMessage = "Here is the game keyboard."

	idleUnknownCommandMessage = "Unknown command. Try /help."

	idleStartGameMessage = "Starting a new game!"

	idleLastGameMessage = "The last game was won by %s."

	idleNoGamesMessage = "No finished games in this chat yet."

	notEnoughPlayersMessage = "Not enough players: I need at least three chat members."

	rosterUnavailableMessage = "I could not fetch the chat members. " +
		"Make sure I am an admin and try again."

	roundStartMessage = "Round %d!"

	votingMessage = "%s vs %s — vote for the player who should leave!"

	voteWarningMessage = "%s, you cannot vote right now: nominees and " +
		"players who already voted have to wait."

	eliminatedMessage = "%s is eliminated with %d votes. %s stays in with %d."

	tieMessage = "It's a tie: %s and %s both got %d votes. Both return to the pool."

	winnerMessage = "We have a winner: %s! Congratulations!"
)

// mainKeyboard is the idle-state menu
func mainKeyboard() *gateway.Keyboard {
	return &gateway.Keyboard{
		Rows: [][]gateway.Button{
			{{Label: "Start a game", Payload: buttonStartGame}},
			{{Label: "Show the last game", Payload: buttonGetLastGame}},
		},
	}
}

// votingKeyboard names the round's two nominees plus a cancel button
func votingKeyboard(username1, username2 string) *gateway.Keyboard {
	return &gateway.Keyboard{
		Rows: [][]gateway.Button{
			{
				{Label: username1, Payload: username1},
				{Label: username2, Payload: username2},
			},
			{{Label: "End the game", Payload: buttonCancelGame}},
		},
	}
}
