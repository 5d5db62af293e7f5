package engine

import (
	"context"

	"github.com/kmalyshev/votebattle/internal/gateway"
	"github.com/kmalyshev/votebattle/internal/models"
	gameRepo "github.com/kmalyshev/votebattle/internal/repositories/game"
	playerRepo "github.com/kmalyshev/votebattle/internal/repositories/player"
)

// minPlayers is the smallest roster a game can start with
const minPlayers = 3

// startNewGameState sets up a fresh game from the chat roster. No game row
// is persisted until the roster is fetched and large enough.
type startNewGameState struct {
	baseState
}

func newStartNewGameState(c *Context) State {
	return &startNewGameState{baseState{c}}
}

func (s *startNewGameState) Name() models.ChatState {
	return models.ChatStateStartNewGame
}

func (s *startNewGameState) OnEnter(ctx context.Context, from models.ChatState, p *Payload) error {
	roster, err := s.engine.gateway.GetChatMembers(ctx, &gateway.GetChatMembersInput{
		PeerID: s.chatID,
	})
	if err != nil {
		if sendErr := s.engine.gateway.SendText(ctx, &gateway.SendTextInput{
			PeerID: s.chatID,
			Text:   rosterUnavailableMessage,
		}); sendErr != nil {
			return sendErr
		}
		return s.Transition(ctx, models.ChatStateIdle, nil)
	}

	if len(roster.Profiles) < minPlayers {
		if err := s.engine.gateway.SendText(ctx, &gateway.SendTextInput{
			PeerID: s.chatID,
			Text:   notEnoughPlayersMessage,
		}); err != nil {
			return err
		}
		return s.Transition(ctx, models.ChatStateIdle, nil)
	}

	game, err := s.engine.games.CreateGame(ctx, &gameRepo.CreateGameInput{
		ChatID: s.chatID,
	})
	if err != nil {
		return err
	}

	members := make([]*playerRepo.Member, 0, len(roster.Profiles))
	for _, profile := range roster.Profiles {
		members = append(members, &playerRepo.Member{
			UserID:    profile.ID,
			Username:  profile.Username,
			AvatarURL: profile.AvatarURL,
		})
	}

	_, err = s.engine.players.BulkCreatePlayers(ctx, &playerRepo.BulkCreatePlayersInput{
		GameID:  game.ID,
		Members: members,
	})
	if err != nil {
		return err
	}

	return s.Transition(ctx, models.ChatStateRoundProcessing, &Payload{Game: game})
}
