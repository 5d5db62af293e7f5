package engine

import (
	"context"

	"github.com/kmalyshev/votebattle/internal/gateway"
	"github.com/kmalyshev/votebattle/internal/models"
	chatRepo "github.com/kmalyshev/votebattle/internal/repositories/chat"
	gameRepo "github.com/kmalyshev/votebattle/internal/repositories/game"
)

// initState greets a fresh (or freshly reset) chat and hands over to idle.
// Any inbound update restarts the session.
type initState struct {
	baseState
}

func newInitState(c *Context) State {
	return &initState{baseState{c}}
}

func (s *initState) Name() models.ChatState {
	return models.ChatStateInit
}

func (s *initState) OnEnter(ctx context.Context, from models.ChatState, p *Payload) error {
	return s.start(ctx)
}

func (s *initState) HandleMessage(ctx context.Context, msg *models.Message) error {
	return s.start(ctx)
}

func (s *initState) HandleEvent(ctx context.Context, ev *models.Event) error {
	return s.start(ctx)
}

func (s *initState) start(ctx context.Context) error {
	chat, err := s.engine.chats.GetOrCreateChat(ctx, &chatRepo.GetOrCreateChatInput{
		ChatID: s.chatID,
	})
	if err != nil {
		return err
	}

	// A stray in-progress game means the previous session died mid-game
	err = s.engine.games.CancelInProgressGame(ctx, &gameRepo.CancelInProgressGameInput{
		ChatID: s.chatID,
	})
	if err != nil {
		return err
	}

	err = s.engine.gateway.SendText(ctx, &gateway.SendTextInput{
		PeerID: chat.ChatID,
		Text:   initMessage,
	})
	if err != nil {
		return err
	}

	return s.Transition(ctx, models.ChatStateIdle, nil)
}
