package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kmalyshev/votebattle/internal/gateway"
	"github.com/kmalyshev/votebattle/internal/models"
	gameRepo "github.com/kmalyshev/votebattle/internal/repositories/game"
	playerRepo "github.com/kmalyshev/votebattle/internal/repositories/player"
)

// idleState waits for a game to be started and serves the menu commands
type idleState struct {
	baseState
}

func newIdleState(c *Context) State {
	return &idleState{baseState{c}}
}

func (s *idleState) Name() models.ChatState {
	return models.ChatStateIdle
}

func (s *idleState) OnEnter(ctx context.Context, from models.ChatState, p *Payload) error {
	return s.engine.gateway.SendText(ctx, &gateway.SendTextInput{
		PeerID:   s.chatID,
		Text:     idleCommandsMessage,
		Keyboard: mainKeyboard(),
	})
}

func (s *idleState) HandleEvent(ctx context.Context, ev *models.Event) error {
	switch ev.Button {
	case buttonStartGame:
		err := s.engine.gateway.SendText(ctx, &gateway.SendTextInput{
			PeerID: s.chatID,
			Text:   idleStartGameMessage,
		})
		if err != nil {
			return err
		}

		if err := s.Transition(ctx, models.ChatStateStartNewGame, nil); err != nil {
			return err
		}
	case buttonGetLastGame:
		if err := s.reportLastGame(ctx); err != nil {
			return err
		}
	}

	return s.engine.gateway.AnswerEvent(ctx, &gateway.AnswerEventInput{
		EventID: ev.EventID,
		UserID:  ev.FromID,
		PeerID:  ev.PeerID,
	})
}

func (s *idleState) HandleMessage(ctx context.Context, msg *models.Message) error {
	switch {
	case msg.Text == "/keyboard":
		return s.engine.gateway.SendText(ctx, &gateway.SendTextInput{
			PeerID:   s.chatID,
			Text:     idleKeyboardMessage,
			Keyboard: mainKeyboard(),
		})
	case msg.Text == "/help":
		return s.engine.gateway.SendText(ctx, &gateway.SendTextInput{
			PeerID: s.chatID,
			Text:   idleCommandsMessage,
		})
	case msg.Text == "/rules":
		return s.engine.gateway.SendText(ctx, &gateway.SendTextInput{
			PeerID:   s.chatID,
			Text:     idleRulesMessage,
			Keyboard: mainKeyboard(),
		})
	case strings.HasPrefix(msg.Text, "/"):
		return s.engine.gateway.SendText(ctx, &gateway.SendTextInput{
			PeerID: s.chatID,
			Text:   idleUnknownCommandMessage,
		})
	}

	return nil
}

// reportLastGame announces the winner of the most recently finished game
func (s *idleState) reportLastGame(ctx context.Context) error {
	text := idleNoGamesMessage

	lastGame, err := s.engine.games.GetLastFinishedGame(ctx, &gameRepo.GetLastFinishedGameInput{
		ChatID: s.chatID,
	})
	switch {
	case err == nil:
		winner, err := s.engine.players.GetPlayerByStatus(ctx, &playerRepo.GetPlayerByStatusInput{
			GameID: lastGame.ID,
			Status: models.PlayerStatusWinner,
		})
		if err != nil {
			return fmt.Errorf("finished game %s has no winner: %w", lastGame.ID, err)
		}
		text = fmt.Sprintf(idleLastGameMessage, winner.Username)
	case !errors.Is(err, gameRepo.ErrGameNotFound):
		return err
	}

	return s.engine.gateway.SendText(ctx, &gateway.SendTextInput{
		PeerID: s.chatID,
		Text:   text,
	})
}
