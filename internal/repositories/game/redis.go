package game

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kmalyshev/votebattle/internal/common/clock"
	"github.com/kmalyshev/votebattle/internal/common/uuid"
	"github.com/kmalyshev/votebattle/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	gameKeyPrefix       = "game:"
	inProgressKeyPrefix = "chat_game:"
	finishedKeyPrefix   = "chat_finished:"
)

// ErrGameNotFound is returned when a game is not found
var ErrGameNotFound = errors.New("game not found")

// ErrGameAlreadyExists is returned when the chat already has an in-progress game
var ErrGameAlreadyExists = errors.New("game already in progress for this chat")

// Config holds configuration for the Redis game repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// Clock used for row timestamps; defaults to the system clock
	Clock clock.Clock

	// UUIDGenerator used for game IDs; defaults to random UUIDs
	UUIDGenerator uuid.UUID
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	clock  clock.Clock
	uuider uuid.UUID
}

// NewRedis creates a new Redis-backed game repository
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

func gameKey(gameID string) string {
	return gameKeyPrefix + gameID
}

func inProgressKey(chatID int64) string {
	return fmt.Sprintf("%s%d", inProgressKeyPrefix, chatID)
}

func finishedKey(chatID int64) string {
	return fmt.Sprintf("%s%d", finishedKeyPrefix, chatID)
}

// CreateGame creates a new in-progress game for the chat. At most one game
// per chat may be in progress; the pointer key enforces that.
func (r *redisRepository) CreateGame(ctx context.Context, input *CreateGameInput) (*models.Game, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	round := input.CurrentRound
	if round == 0 {
		round = 1
	}

	game := &models.Game{
		ID:           r.uuider.NewUUID(),
		ChatID:       input.ChatID,
		CurrentRound: round,
		Status:       models.GameStatusInProgress,
		CreatedAt:    r.clock.Now(),
	}

	created, err := r.client.SetNX(ctx, inProgressKey(input.ChatID), game.ID, 0).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to claim in-progress slot: %w", err)
	}
	if !created {
		return nil, ErrGameAlreadyExists
	}

	if err := r.saveGame(ctx, game); err != nil {
		return nil, err
	}

	return game, nil
}

func (r *redisRepository) saveGame(ctx context.Context, game *models.Game) error {
	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("failed to marshal game: %w", err)
	}

	if err := r.client.Set(ctx, gameKey(game.ID), gameJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}

	return nil
}

// GetGame retrieves a game by ID
func (r *redisRepository) GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	gameJSON, err := r.client.Get(ctx, gameKey(input.GameID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	var game models.Game
	if err := json.Unmarshal([]byte(gameJSON), &game); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &game, nil
}

// GetGameByStatus retrieves the chat's game with the given status
func (r *redisRepository) GetGameByStatus(ctx context.Context, input *GetGameByStatusInput) (*models.Game, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	switch input.Status {
	case models.GameStatusInProgress:
		gameID, err := r.client.Get(ctx, inProgressKey(input.ChatID)).Result()
		if err != nil {
			if err == redis.Nil {
				return nil, ErrGameNotFound
			}
			return nil, fmt.Errorf("failed to get in-progress game ID: %w", err)
		}
		return r.GetGame(ctx, &GetGameInput{GameID: gameID})
	case models.GameStatusFinished:
		return r.GetLastFinishedGame(ctx, &GetLastFinishedGameInput{ChatID: input.ChatID})
	default:
		return nil, fmt.Errorf("no index for games with status %q", input.Status)
	}
}

// UpdateGameStatus sets a game's status, maintaining the chat indexes
func (r *redisRepository) UpdateGameStatus(ctx context.Context, input *UpdateGameStatusInput) (*models.Game, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	game, err := r.GetGame(ctx, &GetGameInput{GameID: input.GameID})
	if err != nil {
		return nil, err
	}

	game.Status = input.Status

	pipe := r.client.Pipeline()

	switch input.Status {
	case models.GameStatusFinished:
		now := r.clock.Now()
		game.FinishedAt = &now
		pipe.Del(ctx, inProgressKey(game.ChatID))
		pipe.ZAdd(ctx, finishedKey(game.ChatID), redis.Z{
			Score:  float64(now.UnixNano()),
			Member: game.ID,
		})
	case models.GameStatusCanceled:
		pipe.Del(ctx, inProgressKey(game.ChatID))
	}

	gameJSON, err := json.Marshal(game)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal game: %w", err)
	}
	pipe.Set(ctx, gameKey(game.ID), gameJSON, 0)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to update game status: %w", err)
	}

	return game, nil
}

// IncrementRound bumps the game's round counter by one
func (r *redisRepository) IncrementRound(ctx context.Context, input *IncrementRoundInput) (*models.Game, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	key := gameKey(input.GameID)

	var updated *models.Game
	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		gameJSON, err := tx.Get(ctx, key).Result()
		if err != nil {
			if err == redis.Nil {
				return ErrGameNotFound
			}
			return fmt.Errorf("failed to get game: %w", err)
		}

		var game models.Game
		if err := json.Unmarshal([]byte(gameJSON), &game); err != nil {
			return fmt.Errorf("failed to unmarshal game: %w", err)
		}

		game.CurrentRound++

		out, err := json.Marshal(&game)
		if err != nil {
			return fmt.Errorf("failed to marshal game: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, out, 0)
			return nil
		})
		if err != nil {
			return err
		}

		updated = &game
		return nil
	}, key)
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// CancelInProgressGame cancels the chat's in-progress game, if any. A chat
// without an in-progress game is not an error.
func (r *redisRepository) CancelInProgressGame(ctx context.Context, input *CancelInProgressGameInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	game, err := r.GetGameByStatus(ctx, &GetGameByStatusInput{
		ChatID: input.ChatID,
		Status: models.GameStatusInProgress,
	})
	if err != nil {
		if errors.Is(err, ErrGameNotFound) {
			return nil
		}
		return err
	}

	_, err = r.UpdateGameStatus(ctx, &UpdateGameStatusInput{
		GameID: game.ID,
		Status: models.GameStatusCanceled,
	})
	return err
}

// GetLastFinishedGame retrieves the chat's most recently finished game
func (r *redisRepository) GetLastFinishedGame(ctx context.Context, input *GetLastFinishedGameInput) (*models.Game, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	gameIDs, err := r.client.ZRevRange(ctx, finishedKey(input.ChatID), 0, 0).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get finished games: %w", err)
	}

	if len(gameIDs) == 0 {
		return nil, ErrGameNotFound
	}

	return r.GetGame(ctx, &GetGameInput{GameID: gameIDs[0]})
}
