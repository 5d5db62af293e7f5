package engine

import (
	"context"
	"fmt"

	"github.com/kmalyshev/votebattle/internal/gateway"
	"github.com/kmalyshev/votebattle/internal/models"
	gameRepo "github.com/kmalyshev/votebattle/internal/repositories/game"
	playerRepo "github.com/kmalyshev/votebattle/internal/repositories/player"
)

// gameFinishedState announces the winner, closes the game record and loops
// the chat back to a fresh session.
type gameFinishedState struct {
	baseState
}

func newGameFinishedState(c *Context) State {
	return &gameFinishedState{baseState{c}}
}

func (s *gameFinishedState) Name() models.ChatState {
	return models.ChatStateGameFinished
}

func (s *gameFinishedState) OnEnter(ctx context.Context, from models.ChatState, p *Payload) error {
	game := p.game()
	if game == nil {
		var err error
		game, err = s.engine.games.GetGameByStatus(ctx, &gameRepo.GetGameByStatusInput{
			ChatID: s.chatID,
			Status: models.GameStatusInProgress,
		})
		if err != nil {
			return err
		}
	}

	winner, err := s.engine.players.GetPlayerByStatus(ctx, &playerRepo.GetPlayerByStatusInput{
		GameID: game.ID,
		Status: models.PlayerStatusWinner,
	})
	if err != nil {
		return err
	}

	err = s.engine.gateway.SendText(ctx, &gateway.SendTextInput{
		PeerID: s.chatID,
		Text:   fmt.Sprintf(winnerMessage, winner.Username),
	})
	if err != nil {
		return err
	}

	_, err = s.engine.games.UpdateGameStatus(ctx, &gameRepo.UpdateGameStatusInput{
		GameID: game.ID,
		Status: models.GameStatusFinished,
	})
	if err != nil {
		return err
	}

	return s.Transition(ctx, models.ChatStateInit, nil)
}
