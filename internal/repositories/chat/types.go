package chat

import "github.com/kmalyshev/votebattle/internal/models"

type GetOrCreateChatInput struct {
	ChatID int64
}

type UpdateBotStateInput struct {
	ChatID   int64
	NewState models.ChatState

	// FromState, when non-empty, makes the update conditional on the
	// currently persisted state.
	FromState models.ChatState
}

type GetChatInput struct {
	ChatID int64
}

type ListChatsInput struct {
}

type ListChatsOutput struct {
	Chats []*models.Chat
}
