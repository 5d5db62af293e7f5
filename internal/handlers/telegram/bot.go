package telegram

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mymmrac/telego"

	"github.com/kmalyshev/votebattle/internal/engine"
	"github.com/kmalyshev/votebattle/internal/models"
)

// Config holds configuration for the update dispatcher
type Config struct {
	// Bot is the telego bot client
	Bot *telego.Bot

	// Engine is the game engine updates are dispatched to
	Engine *engine.Engine
}

// Bot pulls updates from the Telegram long-poll transport and feeds them to
// the engine one at a time. Sequential dispatch is what keeps a chat's state
// transitions ordered by update arrival.
type Bot struct {
	bot    *telego.Bot
	engine *engine.Engine
}

// New creates a new update dispatcher
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Bot == nil {
		return nil, errors.New("bot cannot be nil")
	}

	if cfg.Engine == nil {
		return nil, errors.New("engine cannot be nil")
	}

	return &Bot{
		bot:    cfg.Bot,
		engine: cfg.Engine,
	}, nil
}

// Run blocks on the long-poll loop until ctx is canceled
func (b *Bot) Run(ctx context.Context) error {
	me, err := b.bot.GetMe(ctx)
	if err != nil {
		return err
	}

	slog.Info("bot: running", "id", me.ID, "username", me.Username)

	updates, err := b.bot.UpdatesViaLongPolling(ctx, nil)
	if err != nil {
		return err
	}

	for update := range updates {
		upd := convertUpdate(update)
		if upd == nil {
			continue
		}

		// A failed update is dropped; the chat stays in its pre-update state
		if err := b.engine.HandleUpdate(ctx, upd); err != nil {
			slog.Error("bot: update dropped",
				"chat_id", upd.PeerID(), "error", err)
		}
	}

	return nil
}

// convertUpdate maps a Telegram update onto the engine's message/event
// union. Updates the engine does not consume map to nil.
func convertUpdate(update telego.Update) *models.Update {
	if update.Message != nil && update.Message.Text != "" {
		return &models.Update{
			Message: &models.Message{
				PeerID: update.Message.Chat.ID,
				Text:   update.Message.Text,
			},
		}
	}

	if cq := update.CallbackQuery; cq != nil {
		var peerID int64
		if cq.Message != nil {
			peerID = cq.Message.GetChat().ID
		}

		return &models.Update{
			Event: &models.Event{
				EventID: cq.ID,
				PeerID:  peerID,
				FromID:  cq.From.ID,
				Button:  cq.Data,
			},
		}
	}

	return nil
}
