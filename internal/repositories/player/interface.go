package player

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/kmalyshev/votebattle/internal/repositories/player Repository

import (
	"context"

	"github.com/kmalyshev/votebattle/internal/models"
)

// Repository defines the interface for player data persistence
type Repository interface {
	// BulkCreatePlayers creates one player row per roster member
	BulkCreatePlayers(ctx context.Context, input *BulkCreatePlayersInput) ([]*models.Player, error)

	// GetPlayers retrieves all players of a game
	GetPlayers(ctx context.Context, input *GetPlayersInput) ([]*models.Player, error)

	// GetPlayersByStatus retrieves all players of a game with the given status
	GetPlayersByStatus(ctx context.Context, input *GetPlayersByStatusInput) ([]*models.Player, error)

	// GetPlayerByUserID retrieves a player by platform user ID
	GetPlayerByUserID(ctx context.Context, input *GetPlayerByUserIDInput) (*models.Player, error)

	// GetPlayerByStatus retrieves the single player with the given status
	GetPlayerByStatus(ctx context.Context, input *GetPlayerByStatusInput) (*models.Player, error)

	// UpdatePlayerStatus sets one player's status
	UpdatePlayerStatus(ctx context.Context, input *UpdatePlayerStatusInput) (*models.Player, error)

	// UpdatePlayersStatusByUserIDs sets the status of every listed user's player
	UpdatePlayersStatusByUserIDs(ctx context.Context, input *UpdatePlayersStatusByUserIDsInput) ([]*models.Player, error)

	// IncrementVotesByUsername adds one vote to the named player
	IncrementVotesByUsername(ctx context.Context, input *IncrementVotesByUsernameInput) (*models.Player, error)

	// UpdateVoted sets a player's has-voted flag
	UpdateVoted(ctx context.Context, input *UpdateVotedInput) (*models.Player, error)

	// ResetVotes zeroes votes and has-voted flags for the whole game
	ResetVotes(ctx context.Context, input *ResetVotesInput) error

	// AllEligibleVoted reports whether every eligible voter has voted
	AllEligibleVoted(ctx context.Context, input *AllEligibleVotedInput) (bool, error)

	// GetPlayerWithMaxVotes retrieves the nominee with the most votes
	GetPlayerWithMaxVotes(ctx context.Context, input *GetPlayerWithMaxVotesInput) (*models.Player, error)

	// GetPlayerWithMinVotes retrieves the nominee with the fewest votes
	GetPlayerWithMinVotes(ctx context.Context, input *GetPlayerWithMinVotesInput) (*models.Player, error)
}
