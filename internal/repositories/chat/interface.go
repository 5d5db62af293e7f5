package chat

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/kmalyshev/votebattle/internal/repositories/chat Repository

import (
	"context"

	"github.com/kmalyshev/votebattle/internal/models"
)

// Repository defines the interface for chat data persistence
type Repository interface {
	// GetOrCreateChat returns the chat row, creating it in state init if missing
	GetOrCreateChat(ctx context.Context, input *GetOrCreateChatInput) (*models.Chat, error)

	// UpdateBotState persists a new bot state for the chat. When FromState is
	// set, the update only succeeds if the persisted state still matches it.
	UpdateBotState(ctx context.Context, input *UpdateBotStateInput) (*models.Chat, error)

	// GetChat retrieves a chat by its conversation ID
	GetChat(ctx context.Context, input *GetChatInput) (*models.Chat, error)

	// ListChats retrieves all known chats
	ListChats(ctx context.Context, input *ListChatsInput) (*ListChatsOutput, error)
}
