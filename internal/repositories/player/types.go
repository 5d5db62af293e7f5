package player

import "github.com/kmalyshev/votebattle/internal/models"

// Member is one roster entry used for bulk creation
type Member struct {
	UserID    int64
	Username  string
	AvatarURL string
}

type BulkCreatePlayersInput struct {
	GameID  string
	Members []*Member
}

type GetPlayersInput struct {
	GameID string
}

type GetPlayersByStatusInput struct {
	GameID string
	Status models.PlayerStatus
}

type GetPlayerByUserIDInput struct {
	GameID string
	UserID int64
}

type GetPlayerByStatusInput struct {
	GameID string
	Status models.PlayerStatus
}

type UpdatePlayerStatusInput struct {
	GameID   string
	PlayerID string
	Status   models.PlayerStatus
}

type UpdatePlayersStatusByUserIDsInput struct {
	GameID  string
	UserIDs []int64
	Status  models.PlayerStatus
}

type IncrementVotesByUsernameInput struct {
	GameID   string
	Username string
}

type UpdateVotedInput struct {
	GameID   string
	PlayerID string
	Voted    bool
}

type ResetVotesInput struct {
	GameID string
}

type AllEligibleVotedInput struct {
	GameID string
}

type GetPlayerWithMaxVotesInput struct {
	GameID string
}

type GetPlayerWithMinVotesInput struct {
	GameID string
}
