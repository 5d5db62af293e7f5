package player

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/kmalyshev/votebattle/internal/common/clock"
	"github.com/kmalyshev/votebattle/internal/common/uuid"
	"github.com/kmalyshev/votebattle/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	playerKeyPrefix = "player:"
	gamePlayersKey  = "game_players:"
	byUserKeyPrefix = "player_by_user:"
	byNameKeyPrefix = "player_by_name:"
)

// ErrPlayerNotFound is returned when a player is not found
var ErrPlayerNotFound = errors.New("player not found")

// Config holds configuration for the Redis player repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// Clock used for row timestamps; defaults to the system clock
	Clock clock.Clock

	// UUIDGenerator used for player IDs; defaults to random UUIDs
	UUIDGenerator uuid.UUID
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	clock  clock.Clock
	uuider uuid.UUID
}

// NewRedis creates a new Redis-backed player repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	u := cfg.UUIDGenerator
	if u == nil {
		u = uuid.New()
	}

	return &redisRepository{
		client: cfg.RedisClient,
		clock:  c,
		uuider: u,
	}, nil
}

func playerKey(gameID, playerID string) string {
	return fmt.Sprintf("%s%s:%s", playerKeyPrefix, gameID, playerID)
}

// BulkCreatePlayers creates one player row per roster member
func (r *redisRepository) BulkCreatePlayers(ctx context.Context, input *BulkCreatePlayersInput) ([]*models.Player, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	now := r.clock.Now()
	players := make([]*models.Player, 0, len(input.Members))

	pipe := r.client.Pipeline()
	for _, member := range input.Members {
		p := &models.Player{
			ID:        r.uuider.NewUUID(),
			GameID:    input.GameID,
			UserID:    member.UserID,
			Username:  member.Username,
			AvatarURL: member.AvatarURL,
			Round:     1,
			Votes:     0,
			IsVoted:   false,
			Status:    models.PlayerStatusVoting,
			CreatedAt: now,
		}

		playerJSON, err := json.Marshal(p)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal player: %w", err)
		}

		pipe.Set(ctx, playerKey(input.GameID, p.ID), playerJSON, 0)
		pipe.SAdd(ctx, gamePlayersKey+input.GameID, p.ID)
		pipe.HSet(ctx, byUserKeyPrefix+input.GameID, strconv.FormatInt(p.UserID, 10), p.ID)
		pipe.HSet(ctx, byNameKeyPrefix+input.GameID, p.Username, p.ID)

		players = append(players, p)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to create players: %w", err)
	}

	return players, nil
}

// getPlayer retrieves a single player row
func (r *redisRepository) getPlayer(ctx context.Context, gameID, playerID string) (*models.Player, error) {
	playerJSON, err := r.client.Get(ctx, playerKey(gameID, playerID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	var p models.Player
	if err := json.Unmarshal([]byte(playerJSON), &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal player: %w", err)
	}

	return &p, nil
}

// loadPlayers loads every player of a game, ordered by creation then ID so
// nomination picks are deterministic.
func (r *redisRepository) loadPlayers(ctx context.Context, gameID string) ([]*models.Player, error) {
	playerIDs, err := r.client.SMembers(ctx, gamePlayersKey+gameID).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get player IDs: %w", err)
	}

	if len(playerIDs) == 0 {
		return []*models.Player{}, nil
	}

	pipe := r.client.Pipeline()
	cmds := make(map[string]*redis.StringCmd, len(playerIDs))
	for _, id := range playerIDs {
		cmds[id] = pipe.Get(ctx, playerKey(gameID, id))
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get players: %w", err)
	}

	players := make([]*models.Player, 0, len(playerIDs))
	for id, cmd := range cmds {
		playerJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get player %s: %w", id, err)
		}

		var p models.Player
		if err := json.Unmarshal([]byte(playerJSON), &p); err != nil {
			return nil, fmt.Errorf("failed to unmarshal player %s: %w", id, err)
		}

		players = append(players, &p)
	}

	sort.Slice(players, func(i, j int) bool {
		if players[i].CreatedAt.Equal(players[j].CreatedAt) {
			return players[i].ID < players[j].ID
		}
		return players[i].CreatedAt.Before(players[j].CreatedAt)
	})

	return players, nil
}

// mutatePlayer applies fn to one player row inside a WATCH transaction
func (r *redisRepository) mutatePlayer(ctx context.Context, gameID, playerID string, fn func(*models.Player)) (*models.Player, error) {
	key := playerKey(gameID, playerID)

	var updated *models.Player
	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		playerJSON, err := tx.Get(ctx, key).Result()
		if err != nil {
			if err == redis.Nil {
				return ErrPlayerNotFound
			}
			return fmt.Errorf("failed to get player: %w", err)
		}

		var p models.Player
		if err := json.Unmarshal([]byte(playerJSON), &p); err != nil {
			return fmt.Errorf("failed to unmarshal player: %w", err)
		}

		fn(&p)

		out, err := json.Marshal(&p)
		if err != nil {
			return fmt.Errorf("failed to marshal player: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, out, 0)
			return nil
		})
		if err != nil {
			return err
		}

		updated = &p
		return nil
	}, key)
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// GetPlayers retrieves all players of a game
func (r *redisRepository) GetPlayers(ctx context.Context, input *GetPlayersInput) ([]*models.Player, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	return r.loadPlayers(ctx, input.GameID)
}

// GetPlayersByStatus retrieves all players of a game with the given status
func (r *redisRepository) GetPlayersByStatus(ctx context.Context, input *GetPlayersByStatusInput) ([]*models.Player, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	players, err := r.loadPlayers(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	filtered := make([]*models.Player, 0, len(players))
	for _, p := range players {
		if p.Status == input.Status {
			filtered = append(filtered, p)
		}
	}

	return filtered, nil
}

// GetPlayerByUserID retrieves a player by platform user ID
func (r *redisRepository) GetPlayerByUserID(ctx context.Context, input *GetPlayerByUserIDInput) (*models.Player, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	playerID, err := r.client.HGet(ctx, byUserKeyPrefix+input.GameID, strconv.FormatInt(input.UserID, 10)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to resolve player by user ID: %w", err)
	}

	return r.getPlayer(ctx, input.GameID, playerID)
}

// GetPlayerByStatus retrieves the single player with the given status
func (r *redisRepository) GetPlayerByStatus(ctx context.Context, input *GetPlayerByStatusInput) (*models.Player, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	players, err := r.GetPlayersByStatus(ctx, &GetPlayersByStatusInput{
		GameID: input.GameID,
		Status: input.Status,
	})
	if err != nil {
		return nil, err
	}

	if len(players) == 0 {
		return nil, ErrPlayerNotFound
	}

	return players[0], nil
}

// UpdatePlayerStatus sets one player's status
func (r *redisRepository) UpdatePlayerStatus(ctx context.Context, input *UpdatePlayerStatusInput) (*models.Player, error) {
	if input == nil || input.GameID == "" || input.PlayerID == "" {
		return nil, errors.New("input, game ID and player ID cannot be empty")
	}

	return r.mutatePlayer(ctx, input.GameID, input.PlayerID, func(p *models.Player) {
		p.Status = input.Status
	})
}

// UpdatePlayersStatusByUserIDs sets the status of every listed user's player
func (r *redisRepository) UpdatePlayersStatusByUserIDs(ctx context.Context, input *UpdatePlayersStatusByUserIDsInput) ([]*models.Player, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	updated := make([]*models.Player, 0, len(input.UserIDs))
	for _, userID := range input.UserIDs {
		p, err := r.GetPlayerByUserID(ctx, &GetPlayerByUserIDInput{
			GameID: input.GameID,
			UserID: userID,
		})
		if err != nil {
			return nil, err
		}

		p, err = r.mutatePlayer(ctx, input.GameID, p.ID, func(p *models.Player) {
			p.Status = input.Status
		})
		if err != nil {
			return nil, err
		}

		updated = append(updated, p)
	}

	return updated, nil
}

// IncrementVotesByUsername adds one vote to the named player
func (r *redisRepository) IncrementVotesByUsername(ctx context.Context, input *IncrementVotesByUsernameInput) (*models.Player, error) {
	if input == nil || input.GameID == "" || input.Username == "" {
		return nil, errors.New("input, game ID and username cannot be empty")
	}

	playerID, err := r.client.HGet(ctx, byNameKeyPrefix+input.GameID, input.Username).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to resolve player by username: %w", err)
	}

	return r.mutatePlayer(ctx, input.GameID, playerID, func(p *models.Player) {
		p.Votes++
	})
}

// UpdateVoted sets a player's has-voted flag
func (r *redisRepository) UpdateVoted(ctx context.Context, input *UpdateVotedInput) (*models.Player, error) {
	if input == nil || input.GameID == "" || input.PlayerID == "" {
		return nil, errors.New("input, game ID and player ID cannot be empty")
	}

	return r.mutatePlayer(ctx, input.GameID, input.PlayerID, func(p *models.Player) {
		p.IsVoted = input.Voted
	})
}

// ResetVotes zeroes votes and has-voted flags for the whole game
func (r *redisRepository) ResetVotes(ctx context.Context, input *ResetVotesInput) error {
	if input == nil || input.GameID == "" {
		return errors.New("input and game ID cannot be empty")
	}

	players, err := r.loadPlayers(ctx, input.GameID)
	if err != nil {
		return err
	}

	for _, p := range players {
		_, err := r.mutatePlayer(ctx, input.GameID, p.ID, func(p *models.Player) {
			p.Votes = 0
			p.IsVoted = false
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// AllEligibleVoted reports whether every eligible voter has voted. Eligible
// voters are players still in the pool (voting) or already eliminated
// (loser); nominees and winners do not vote.
func (r *redisRepository) AllEligibleVoted(ctx context.Context, input *AllEligibleVotedInput) (bool, error) {
	if input == nil || input.GameID == "" {
		return false, errors.New("input and game ID cannot be empty")
	}

	players, err := r.loadPlayers(ctx, input.GameID)
	if err != nil {
		return false, err
	}

	eligible := 0
	voted := 0
	for _, p := range players {
		if p.Status != models.PlayerStatusVoting && p.Status != models.PlayerStatusLoser {
			continue
		}
		eligible++
		if p.IsVoted {
			voted++
		}
	}

	return eligible > 0 && eligible == voted, nil
}

// nominees returns the game's in_game players
func (r *redisRepository) nominees(ctx context.Context, gameID string) ([]*models.Player, error) {
	return r.GetPlayersByStatus(ctx, &GetPlayersByStatusInput{
		GameID: gameID,
		Status: models.PlayerStatusInGame,
	})
}

// GetPlayerWithMaxVotes retrieves the nominee with the most votes
func (r *redisRepository) GetPlayerWithMaxVotes(ctx context.Context, input *GetPlayerWithMaxVotesInput) (*models.Player, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	nominees, err := r.nominees(ctx, input.GameID)
	if err != nil {
		return nil, err
	}
	if len(nominees) == 0 {
		return nil, ErrPlayerNotFound
	}

	top := nominees[0]
	for _, p := range nominees[1:] {
		if p.Votes > top.Votes {
			top = p
		}
	}

	return top, nil
}

// GetPlayerWithMinVotes retrieves the nominee with the fewest votes
func (r *redisRepository) GetPlayerWithMinVotes(ctx context.Context, input *GetPlayerWithMinVotesInput) (*models.Player, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	nominees, err := r.nominees(ctx, input.GameID)
	if err != nil {
		return nil, err
	}
	if len(nominees) == 0 {
		return nil, ErrPlayerNotFound
	}

	low := nominees[0]
	for _, p := range nominees[1:] {
		if p.Votes < low.Votes {
			low = p
		}
	}

	return low, nil
}
