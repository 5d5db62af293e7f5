package telegram

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"

	"github.com/kmalyshev/votebattle/internal/gateway"
)

// Config holds configuration for the Telegram gateway
type Config struct {
	// Bot is the telego bot client
	Bot *telego.Bot
}

// Client implements the gateway.Gateway interface over the Telegram Bot API
type Client struct {
	bot *telego.Bot
}

// New creates a new Telegram-backed gateway
func New(cfg *Config) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Bot == nil {
		return nil, errors.New("bot cannot be nil")
	}

	return &Client{bot: cfg.Bot}, nil
}

// SendText sends a text message, optionally with an inline keyboard
func (c *Client) SendText(ctx context.Context, input *gateway.SendTextInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	params := tu.Message(tu.ID(input.PeerID), input.Text)
	if input.Keyboard != nil {
		params.ReplyMarkup = buildInlineKeyboard(input.Keyboard)
	}

	if _, err := c.bot.SendMessage(ctx, params); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	return nil
}

// SendPhotos posts a group of photos to the chat
func (c *Client) SendPhotos(ctx context.Context, input *gateway.SendPhotosInput) error {
	if input == nil || len(input.Photos) == 0 {
		return errors.New("input and photos cannot be empty")
	}

	media := make([]telego.InputMedia, 0, len(input.Photos))
	for _, photo := range input.Photos {
		media = append(media, tu.MediaPhoto(telego.InputFile{URL: photo.URL}))
	}

	_, err := c.bot.SendMediaGroup(ctx, &telego.SendMediaGroupParams{
		ChatID: tu.ID(input.PeerID),
		Media:  media,
	})
	if err != nil {
		return fmt.Errorf("failed to send media group: %w", err)
	}

	return nil
}

// AnswerEvent acknowledges a callback query so the client stops its spinner
func (c *Client) AnswerEvent(ctx context.Context, input *gateway.AnswerEventInput) error {
	if input == nil || input.EventID == "" {
		return errors.New("input and event ID cannot be empty")
	}

	err := c.bot.AnswerCallbackQuery(ctx, &telego.AnswerCallbackQueryParams{
		CallbackQueryID: input.EventID,
	})
	if err != nil {
		return fmt.Errorf("failed to answer callback query: %w", err)
	}

	return nil
}

// GetChatMembers lists the chat members eligible to play. The Bot API has no
// full-member listing for groups, so the roster is the chat's administrators.
func (c *Client) GetChatMembers(ctx context.Context, input *gateway.GetChatMembersInput) (*gateway.GetChatMembersOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	admins, err := c.bot.GetChatAdministrators(ctx, &telego.GetChatAdministratorsParams{
		ChatID: tu.ID(input.PeerID),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", gateway.ErrRosterUnavailable, err)
	}

	profiles := make([]*gateway.Profile, 0, len(admins))
	for _, member := range admins {
		user := member.MemberUser()
		if user.IsBot {
			continue
		}

		username := user.Username
		if username == "" {
			username = user.FirstName
		}

		avatarURL, err := c.avatarURL(ctx, user.ID)
		if err != nil {
			// Roster still works without avatars
			slog.Warn("telegram: failed to resolve avatar", "user_id", user.ID, "error", err)
			avatarURL = ""
		}

		profiles = append(profiles, &gateway.Profile{
			ID:        user.ID,
			Username:  username,
			AvatarURL: avatarURL,
		})
	}

	return &gateway.GetChatMembersOutput{Profiles: profiles}, nil
}

// avatarURL resolves a user's newest profile photo to a downloadable URL
func (c *Client) avatarURL(ctx context.Context, userID int64) (string, error) {
	photos, err := c.bot.GetUserProfilePhotos(ctx, &telego.GetUserProfilePhotosParams{
		UserID: userID,
		Limit:  1,
	})
	if err != nil {
		return "", fmt.Errorf("failed to get profile photos: %w", err)
	}

	if photos.TotalCount == 0 || len(photos.Photos) == 0 || len(photos.Photos[0]) == 0 {
		return "", nil
	}

	sizes := photos.Photos[0]
	file, err := c.bot.GetFile(ctx, &telego.GetFileParams{
		FileID: sizes[len(sizes)-1].FileID,
	})
	if err != nil {
		return "", fmt.Errorf("failed to resolve photo file: %w", err)
	}

	return c.bot.FileDownloadURL(file.FilePath), nil
}

// UploadPhoto prepares an image URL for sending. Telegram accepts remote
// URLs directly, so no upload round-trip is needed.
func (c *Client) UploadPhoto(ctx context.Context, input *gateway.UploadPhotoInput) (*gateway.UploadPhotoOutput, error) {
	if input == nil || input.ImageURL == "" {
		return nil, errors.New("input and image URL cannot be empty")
	}

	return &gateway.UploadPhotoOutput{Photo: gateway.Photo{URL: input.ImageURL}}, nil
}
