package gateway

//go:generate mockgen -package=mocks -destination=mocks/mock_gateway.go github.com/kmalyshev/votebattle/internal/gateway Gateway

import (
	"context"
	"errors"
)

// ErrRosterUnavailable is returned when the platform refuses to list the
// chat's members, usually because the bot lacks admin rights.
var ErrRosterUnavailable = errors.New("chat roster unavailable")

// Gateway is the narrow messaging-platform surface the game engine consumes
type Gateway interface {
	// SendText sends a text message, optionally with an interactive keyboard
	SendText(ctx context.Context, input *SendTextInput) error

	// SendPhotos posts a group of photos to the chat
	SendPhotos(ctx context.Context, input *SendPhotosInput) error

	// AnswerEvent acknowledges an interactive button event
	AnswerEvent(ctx context.Context, input *AnswerEventInput) error

	// GetChatMembers lists the chat members eligible to play
	GetChatMembers(ctx context.Context, input *GetChatMembersInput) (*GetChatMembersOutput, error)

	// UploadPhoto prepares an image URL for sending as a photo
	UploadPhoto(ctx context.Context, input *UploadPhotoInput) (*UploadPhotoOutput, error)
}
