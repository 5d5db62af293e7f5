package game

import "github.com/kmalyshev/votebattle/internal/models"

type CreateGameInput struct {
	ChatID int64

	// CurrentRound defaults to 1 when zero
	CurrentRound int
}

type GetGameInput struct {
	GameID string
}

type GetGameByStatusInput struct {
	ChatID int64
	Status models.GameStatus
}

type UpdateGameStatusInput struct {
	GameID string
	Status models.GameStatus
}

type IncrementRoundInput struct {
	GameID string
}

type CancelInProgressGameInput struct {
	ChatID int64
}

type GetLastFinishedGameInput struct {
	ChatID int64
}
