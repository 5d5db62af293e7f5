package models

import (
	"time"
)

// ChatState represents the bot's current state within a chat
type ChatState string

const (
	// ChatStateInit is the state assigned to a freshly created chat
	ChatStateInit ChatState = "init"

	// ChatStateIdle indicates the bot is waiting for a game to start
	ChatStateIdle ChatState = "idle"

	// ChatStateStartNewGame indicates a game is being set up
	ChatStateStartNewGame ChatState = "start_new_game"

	// ChatStateRoundProcessing indicates a new round is being prepared
	ChatStateRoundProcessing ChatState = "round_processing"

	// ChatStateGameProcessing indicates a voting round is in progress
	ChatStateGameProcessing ChatState = "game_processing"

	// ChatStateGameFinished indicates a game has just produced a winner
	ChatStateGameFinished ChatState = "game_finished"
)

// IsValid reports whether s is one of the defined chat states
func (s ChatState) IsValid() bool {
	switch s {
	case ChatStateInit, ChatStateIdle, ChatStateStartNewGame,
		ChatStateRoundProcessing, ChatStateGameProcessing, ChatStateGameFinished:
		return true
	}
	return false
}

// Chat represents a group conversation the bot manages
type Chat struct {
	// ChatID is the platform conversation ID, unique per chat
	ChatID int64 `json:"chat_id"`

	// BotState is the bot's persisted state for this chat
	BotState ChatState `json:"bot_state"`

	// CreatedAt is when the chat row was created
	CreatedAt time.Time `json:"created_at"`
}
