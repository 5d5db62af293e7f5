package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/kmalyshev/votebattle/internal/gateway"
	"github.com/kmalyshev/votebattle/internal/models"
	chatRepo "github.com/kmalyshev/votebattle/internal/repositories/chat"
	gameRepo "github.com/kmalyshev/votebattle/internal/repositories/game"
	playerRepo "github.com/kmalyshev/votebattle/internal/repositories/player"
)

// gameProcessingState runs one voting round: nominate a pair, collect votes
// from the rest of the pool, and resolve the elimination on exit.
type gameProcessingState struct {
	baseState
}

func newGameProcessingState(c *Context) State {
	return &gameProcessingState{baseState{c}}
}

func (s *gameProcessingState) Name() models.ChatState {
	return models.ChatStateGameProcessing
}

func (s *gameProcessingState) OnEnter(ctx context.Context, from models.ChatState, p *Payload) error {
	game, err := s.currentGame(ctx, p)
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

	if len(pool) == 0 {
		return ErrNoNominees
	}

	if len(pool) == 1 {
		_, err := s.engine.players.UpdatePlayerStatus(ctx, &playerRepo.UpdatePlayerStatusInput{
			GameID:   game.ID,
			PlayerID: pool[0].ID,
			Status:   models.PlayerStatusWinner,
		})
		if err != nil {
			return err
		}

		return s.Transition(ctx, models.ChatStateGameFinished, &Payload{Game: game})
	}

	nominee1, nominee2 := pool[0], pool[1]

	_, err = s.engine.players.UpdatePlayersStatusByUserIDs(ctx, &playerRepo.UpdatePlayersStatusByUserIDsInput{
		GameID:  game.ID,
		UserIDs: []int64{nominee1.UserID, nominee2.UserID},
		Status:  models.PlayerStatusInGame,
	})
	if err != nil {
		return err
	}

	s.sendAvatars(ctx, nominee1, nominee2)

	return s.engine.gateway.SendText(ctx, &gateway.SendTextInput{
		PeerID:   s.chatID,
		Text:     fmt.Sprintf(votingMessage, nominee1.Username, nominee2.Username),
		Keyboard: votingKeyboard(nominee1.Username, nominee2.Username),
	})
}

func (s *gameProcessingState) HandleEvent(ctx context.Context, ev *models.Event) error {
	game, err := s.currentGame(ctx, nil)
	if err != nil {
		return err
	}

	if ev.Button == buttonCancelGame {
		return s.cancelGame(ctx, ev)
	}

	voter, err := s.engine.players.GetPlayerByUserID(ctx, &playerRepo.GetPlayerByUserIDInput{
		GameID: game.ID,
		UserID: ev.FromID,
	})
	if err != nil {
		if errors.Is(err, playerRepo.ErrPlayerNotFound) {
			// Button pressed by someone who is not in the game
			return s.answer(ctx, ev)
		}
		return err
	}

	if s.eligibleVoter(voter) {
		_, err = s.engine.players.IncrementVotesByUsername(ctx, &playerRepo.IncrementVotesByUsernameInput{
			GameID:   game.ID,
			Username: ev.Button,
		})
		if err != nil {
			return err
		}

		_, err = s.engine.players.UpdateVoted(ctx, &playerRepo.UpdateVotedInput{
			GameID:   game.ID,
			PlayerID: voter.ID,
			Voted:    true,
		})
		if err != nil {
			return err
		}
	} else {
		err = s.engine.gateway.SendText(ctx, &gateway.SendTextInput{
			PeerID: s.chatID,
			Text:   fmt.Sprintf(voteWarningMessage, voter.Username),
		})
		if err != nil {
			return err
		}
	}

	allVoted, err := s.engine.players.AllEligibleVoted(ctx, &playerRepo.AllEligibleVotedInput{
		GameID: game.ID,
	})
	if err != nil {
		return err
	}

	if allVoted {
		err := s.Transition(ctx, models.ChatStateRoundProcessing, &Payload{Game: game})
		if err != nil {
			if errors.Is(err, chatRepo.ErrStateConflict) {
				// A concurrent last-vote event already advanced the round
				slog.Debug("engine: round advance lost compare-and-set",
					"chat_id", s.chatID, "game_id", game.ID)
				return s.answer(ctx, ev)
			}
			return err
		}
	}

	return s.answer(ctx, ev)
}

// OnExit resolves the head-to-head when the round advances. A cancellation
// (exit to idle) abandons the round without a result, and the crowning path
// (exit to game_finished) has no nominees left to resolve.
func (s *gameProcessingState) OnExit(ctx context.Context, to models.ChatState, p *Payload) error {
	if to == models.ChatStateGameFinished || to == models.ChatStateIdle {
		return nil
	}

	game, err := s.currentGame(ctx, p)
	if err != nil {
		return err
	}

	topVoted, err := s.engine.players.GetPlayerWithMaxVotes(ctx, &playerRepo.GetPlayerWithMaxVotesInput{
		GameID: game.ID,
	})
	if err != nil {
		return err
	}

	leastVoted, err := s.engine.players.GetPlayerWithMinVotes(ctx, &playerRepo.GetPlayerWithMinVotesInput{
		GameID: game.ID,
	})
	if err != nil {
		return err
	}

	if topVoted.Votes != leastVoted.Votes {
		// The most-voted nominee is eliminated but stays in the voter pool
		_, err = s.engine.players.UpdatePlayerStatus(ctx, &playerRepo.UpdatePlayerStatusInput{
			GameID:   game.ID,
			PlayerID: topVoted.ID,
			Status:   models.PlayerStatusLoser,
		})
		if err != nil {
			return err
		}

		_, err = s.engine.players.UpdatePlayerStatus(ctx, &playerRepo.UpdatePlayerStatusInput{
			GameID:   game.ID,
			PlayerID: leastVoted.ID,
			Status:   models.PlayerStatusVoting,
		})
		if err != nil {
			return err
		}

		return s.engine.gateway.SendText(ctx, &gateway.SendTextInput{
			PeerID: s.chatID,
			Text: fmt.Sprintf(eliminatedMessage,
				topVoted.Username, topVoted.Votes,
				leastVoted.Username, leastVoted.Votes),
		})
	}

	// Tie: both nominees return to the pool and may be nominated again. On
	// equal tallies the max/min lookups can land on the same player, so the
	// reset walks the nominee list instead.
	nominees, err := s.engine.players.GetPlayersByStatus(ctx, &playerRepo.GetPlayersByStatusInput{
		GameID: game.ID,
		Status: models.PlayerStatusInGame,
	})
	if err != nil {
		return err
	}

	for _, nominee := range nominees {
		_, err = s.engine.players.UpdatePlayerStatus(ctx, &playerRepo.UpdatePlayerStatusInput{
			GameID:   game.ID,
			PlayerID: nominee.ID,
			Status:   models.PlayerStatusVoting,
		})
		if err != nil {
			return err
		}
	}

	name1, name2 := topVoted.Username, leastVoted.Username
	if len(nominees) == 2 {
		name1, name2 = nominees[0].Username, nominees[1].Username
	}

	return s.engine.gateway.SendText(ctx, &gateway.SendTextInput{
		PeerID: s.chatID,
		Text:   fmt.Sprintf(tieMessage, name1, name2, topVoted.Votes),
	})
}

// eligibleVoter reports whether the player may vote this round: nominees,
// winners and players who already voted may not.
func (s *gameProcessingState) eligibleVoter(p *models.Player) bool {
	if p.IsVoted {
		return false
	}
	return p.Status == models.PlayerStatusVoting || p.Status == models.PlayerStatusLoser
}

func (s *gameProcessingState) currentGame(ctx context.Context, p *Payload) (*models.Game, error) {
	if game := p.game(); game != nil {
		return game, nil
	}

	return s.engine.games.GetGameByStatus(ctx, &gameRepo.GetGameByStatusInput{
		ChatID: s.chatID,
		Status: models.GameStatusInProgress,
	})
}

func (s *gameProcessingState) cancelGame(ctx context.Context, ev *models.Event) error {
	err := s.engine.games.CancelInProgressGame(ctx, &gameRepo.CancelInProgressGameInput{
		ChatID: s.chatID,
	})
	if err != nil {
		return err
	}

	if err := s.answer(ctx, ev); err != nil {
		return err
	}

	return s.Transition(ctx, models.ChatStateIdle, nil)
}

func (s *gameProcessingState) answer(ctx context.Context, ev *models.Event) error {
	return s.engine.gateway.AnswerEvent(ctx, &gateway.AnswerEventInput{
		EventID: ev.EventID,
		UserID:  ev.FromID,
		PeerID:  ev.PeerID,
	})
}

// sendAvatars posts the nominees' profile photos as a pair. Avatar delivery
// is best effort; the round proceeds without it.
func (s *gameProcessingState) sendAvatars(ctx context.Context, nominee1, nominee2 *models.Player) {
	if nominee1.AvatarURL == "" || nominee2.AvatarURL == "" {
		return
	}

	photos := make([]gateway.Photo, 0, 2)
	for _, nominee := range []*models.Player{nominee1, nominee2} {
		uploaded, err := s.engine.gateway.UploadPhoto(ctx, &gateway.UploadPhotoInput{
			ImageURL: nominee.AvatarURL,
		})
		if err != nil {
			slog.Warn("engine: failed to prepare avatar",
				"chat_id", s.chatID, "username", nominee.Username, "error", err)
			return
		}
		photos = append(photos, uploaded.Photo)
	}

	err := s.engine.gateway.SendPhotos(ctx, &gateway.SendPhotosInput{
		PeerID: s.chatID,
		Photos: photos,
	})
	if err != nil {
		slog.Warn("engine: failed to send avatars", "chat_id", s.chatID, "error", err)
	}
}
