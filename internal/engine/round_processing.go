package engine

import (
	"context"
	"fmt"

	"github.com/kmalyshev/votebattle/internal/gateway"
	"github.com/kmalyshev/votebattle/internal/models"
	gameRepo "github.com/kmalyshev/votebattle/internal/repositories/game"
	playerRepo "github.com/kmalyshev/votebattle/internal/repositories/player"
)

// roundProcessingState resets the round's vote bookkeeping and hands over to
// the voting state.
type roundProcessingState struct {
	baseState
}

func newRoundProcessingState(c *Context) State {
	return &roundProcessingState{baseState{c}}
}

func (s *roundProcessingState) Name() models.ChatState {
	return models.ChatStateRoundProcessing
}

func (s *roundProcessingState) OnEnter(ctx context.Context, from models.ChatState, p *Payload) error {
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

	err := s.engine.players.ResetVotes(ctx, &playerRepo.ResetVotesInput{
		GameID: game.ID,
	})
	if err != nil {
		return err
	}

	pool, err := s.engine.players.GetPlayersByStatus(ctx, &playerRepo.GetPlayersByStatusInput{
		GameID: game.ID,
		Status: models.PlayerStatusVoting,
	})
	if err != nil {
		return err
	}

	// A single survivor goes straight to the crowning in game_processing;
	// no new round is announced for them.
	if len(pool) != 1 {
		game, err = s.engine.games.IncrementRound(ctx, &gameRepo.IncrementRoundInput{
			GameID: game.ID,
		})
		if err != nil {
			return err
		}

		err = s.engine.gateway.SendText(ctx, &gateway.SendTextInput{
			PeerID: s.chatID,
			Text:   fmt.Sprintf(roundStartMessage, game.CurrentRound),
		})
		if err != nil {
			return err
		}
	}

	return s.Transition(ctx, models.ChatStateGameProcessing, &Payload{Game: game})
}

func (s *roundProcessingState) HandleEvent(ctx context.Context, ev *models.Event) error {
	if ev.Button != buttonCancelGame {
		return nil
	}

	err := s.engine.games.CancelInProgressGame(ctx, &gameRepo.CancelInProgressGameInput{
		ChatID: s.chatID,
	})
	if err != nil {
		return err
	}

	err = s.engine.gateway.AnswerEvent(ctx, &gateway.AnswerEventInput{
		EventID: ev.EventID,
		UserID:  ev.FromID,
		PeerID:  ev.PeerID,
	})
	if err != nil {
		return err
	}

	return s.Transition(ctx, models.ChatStateIdle, nil)
}
