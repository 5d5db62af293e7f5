package models

import (
	"time"
)

// GameStatus represents the current state of a game
type GameStatus string

const (
	// GameStatusInProgress indicates a game is being played
	GameStatusInProgress GameStatus = "in_progress"

	// GameStatusFinished indicates a game ended with a winner
	GameStatusFinished GameStatus = "finished"

	// GameStatusCanceled indicates a game was abandoned before finishing
	GameStatusCanceled GameStatus = "canceled"
)

// Game represents one elimination-voting session within a chat
type Game struct {
	// ID is the unique identifier for the game
	ID string `json:"id"`

	// ChatID is the chat the game belongs to
	ChatID int64 `json:"chat_id"`

	// CurrentRound is the round counter, starting at 1
	CurrentRound int `json:"current_round"`

	// Status is the current state of the game
	Status GameStatus `json:"status"`

	// CreatedAt is when the game was created
	CreatedAt time.Time `json:"created_at"`

	// FinishedAt is when the game finished, nil while in progress
	FinishedAt *time.Time `json:"finished_at,omitempty"`
}
