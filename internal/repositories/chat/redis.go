package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kmalyshev/votebattle/internal/common/clock"
	"github.com/kmalyshev/votebattle/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	chatKeyPrefix = "chat:"
	allChatsKey   = "chats"
)

// ErrChatNotFound is returned when a chat is not found
var ErrChatNotFound = errors.New("chat not found")

// ErrStateConflict is returned when a conditional state update loses to a
// concurrent writer
var ErrStateConflict = errors.New("chat state changed concurrently")

// Config holds configuration for the Redis chat repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// Clock used for row timestamps; defaults to the system clock
	Clock clock.Clock
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	clock  clock.Clock
}

// NewRedis creates a new Redis-backed chat repository
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

	return &redisRepository{
		client: cfg.RedisClient,
		clock:  c,
	}, nil
}

func chatKey(chatID int64) string {
	return fmt.Sprintf("%s%d", chatKeyPrefix, chatID)
}

// GetOrCreateChat returns the chat row, creating it in state init if missing
func (r *redisRepository) GetOrCreateChat(ctx context.Context, input *GetOrCreateChatInput) (*models.Chat, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	fresh := &models.Chat{
		ChatID:    input.ChatID,
		BotState:  models.ChatStateInit,
		CreatedAt: r.clock.Now(),
	}

	chatJSON, err := json.Marshal(fresh)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal chat: %w", err)
	}

	key := chatKey(input.ChatID)

	// SetNX makes concurrent first-update races collapse into a single row
	created, err := r.client.SetNX(ctx, key, chatJSON, 0).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to create chat: %w", err)
	}

	if created {
		if err := r.client.SAdd(ctx, allChatsKey, input.ChatID).Err(); err != nil {
			return nil, fmt.Errorf("failed to index chat: %w", err)
		}
		return fresh, nil
	}

	return r.GetChat(ctx, &GetChatInput{ChatID: input.ChatID})
}

// UpdateBotState persists a new bot state for the chat
func (r *redisRepository) UpdateBotState(ctx context.Context, input *UpdateBotStateInput) (*models.Chat, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if !input.NewState.IsValid() {
		return nil, fmt.Errorf("invalid chat state %q", input.NewState)
	}

	key := chatKey(input.ChatID)

	var updated *models.Chat
	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		chatJSON, err := tx.Get(ctx, key).Result()
		if err != nil {
			if err == redis.Nil {
				return ErrChatNotFound
			}
			return fmt.Errorf("failed to get chat: %w", err)
		}

		var chat models.Chat
		if err := json.Unmarshal([]byte(chatJSON), &chat); err != nil {
			return fmt.Errorf("failed to unmarshal chat: %w", err)
		}

		if input.FromState != "" && chat.BotState != input.FromState {
			return ErrStateConflict
		}

		chat.BotState = input.NewState

		out, err := json.Marshal(&chat)
		if err != nil {
			return fmt.Errorf("failed to marshal chat: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, out, 0)
			return nil
		})
		if err != nil {
			return err
		}

		updated = &chat
		return nil
	}, key)
	if err != nil {
		if errors.Is(err, redis.TxFailedErr) {
			// Someone else wrote the chat row between our read and write
			return nil, ErrStateConflict
		}
		return nil, err
	}

	return updated, nil
}

// GetChat retrieves a chat by its conversation ID
func (r *redisRepository) GetChat(ctx context.Context, input *GetChatInput) (*models.Chat, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	chatJSON, err := r.client.Get(ctx, chatKey(input.ChatID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrChatNotFound
		}
		return nil, fmt.Errorf("failed to get chat: %w", err)
	}

	var chat models.Chat
	if err := json.Unmarshal([]byte(chatJSON), &chat); err != nil {
		return nil, fmt.Errorf("failed to unmarshal chat: %w", err)
	}

	return &chat, nil
}

// ListChats retrieves all known chats
func (r *redisRepository) ListChats(ctx context.Context, input *ListChatsInput) (*ListChatsOutput, error) {
	chatIDs, err := r.client.SMembers(ctx, allChatsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get chat IDs: %w", err)
	}

	if len(chatIDs) == 0 {
		return &ListChatsOutput{Chats: []*models.Chat{}}, nil
	}

	pipe := r.client.Pipeline()
	chatCommands := make(map[string]*redis.StringCmd, len(chatIDs))
	for _, id := range chatIDs {
		chatCommands[id] = pipe.Get(ctx, chatKeyPrefix+id)
	}

	_, err = pipe.Exec(ctx)
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get chats: %w", err)
	}

	chats := make([]*models.Chat, 0, len(chatIDs))
	for id, cmd := range chatCommands {
		chatJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get chat %s: %w", id, err)
		}

		var chat models.Chat
		if err := json.Unmarshal([]byte(chatJSON), &chat); err != nil {
			return nil, fmt.Errorf("failed to unmarshal chat %s: %w", id, err)
		}

		chats = append(chats, &chat)
	}

	return &ListChatsOutput{Chats: chats}, nil
}
