package game

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/kmalyshev/votebattle/internal/repositories/game Repository

import (
	"context"

	"github.com/kmalyshev/votebattle/internal/models"
)

// Repository defines the interface for game data persistence
type Repository interface {
	// CreateGame creates a new in-progress game for the chat
	CreateGame(ctx context.Context, input *CreateGameInput) (*models.Game, error)

	// GetGame retrieves a game by ID
	GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error)

	// GetGameByStatus retrieves the chat's game with the given status
	GetGameByStatus(ctx context.Context, input *GetGameByStatusInput) (*models.Game, error)

	// UpdateGameStatus sets a game's status, maintaining the chat indexes
	UpdateGameStatus(ctx context.Context, input *UpdateGameStatusInput) (*models.Game, error)

	// IncrementRound bumps the game's round counter by one
	IncrementRound(ctx context.Context, input *IncrementRoundInput) (*models.Game, error)

	// CancelInProgressGame cancels the chat's in-progress game, if any
	CancelInProgressGame(ctx context.Context, input *CancelInProgressGameInput) error

	// GetLastFinishedGame retrieves the chat's most recently finished game
	GetLastFinishedGame(ctx context.Context, input *GetLastFinishedGameInput) (*models.Game, error)
}
