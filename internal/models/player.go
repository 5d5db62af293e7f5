package models

import (
	"time"
)

// PlayerStatus represents a player's role in the current round
type PlayerStatus string

const (
	// PlayerStatusVoting indicates a player is in the nomination pool and votes
	PlayerStatusVoting PlayerStatus = "voting"

	// PlayerStatusInGame indicates a player is one of the round's nominees
	PlayerStatusInGame PlayerStatus = "in_game"

	// PlayerStatusLoser indicates an eliminated player; losers still vote
	PlayerStatusLoser PlayerStatus = "loser"

	// PlayerStatusWinner indicates the last player standing
	PlayerStatusWinner PlayerStatus = "winner"
)

// Player represents a chat member's participation in one game
type Player struct {
	// ID is the unique identifier for this participation
	ID string `json:"id"`

	// GameID is the game the player belongs to
	GameID string `json:"game_id"`

	// UserID is the platform user ID of the player
	UserID int64 `json:"user_id"`

	// Username is the player's display name
	Username string `json:"username"`

	// AvatarURL points at the player's profile photo
	AvatarURL string `json:"avatar_url"`

	// Round is the round the player was last assigned to
	Round int `json:"round"`

	// Votes is the number of votes received this round
	Votes int `json:"votes"`

	// IsVoted reports whether the player has voted this round
	IsVoted bool `json:"is_voted"`

	// Status is the player's current role
	Status PlayerStatus `json:"status"`

	// CreatedAt is when the player row was created
	CreatedAt time.Time `json:"created_at"`
}
