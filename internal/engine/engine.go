package engine

import (
	"context"

	"github.com/kmalyshev/votebattle/internal/gateway"
	"github.com/kmalyshev/votebattle/internal/models"
	chatRepo "github.com/kmalyshev/votebattle/internal/repositories/chat"
	gameRepo "github.com/kmalyshev/votebattle/internal/repositories/game"
	playerRepo "github.com/kmalyshev/votebattle/internal/repositories/player"
)

// Config holds the engine's collaborators
type Config struct {
	ChatRepo   chatRepo.Repository
	GameRepo   gameRepo.Repository
	PlayerRepo playerRepo.Repository
	Gateway    gateway.Gateway
}

// Engine drives the per-chat finite-state game machine
type Engine struct {
	chats   chatRepo.Repository
	games   gameRepo.Repository
	players playerRepo.Repository
	gateway gateway.Gateway
	states  map[models.ChatState]stateFactory
}

// New creates a new engine
func New(cfg *Config) (*Engine, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.ChatRepo == nil {
		return nil, ErrNilChatRepo
	}
	if cfg.GameRepo == nil {
		return nil, ErrNilGameRepo
	}
	if cfg.PlayerRepo == nil {
		return nil, ErrNilPlayerRepo
	}
	if cfg.Gateway == nil {
		return nil, ErrNilGateway
	}

	e := &Engine{
		chats:   cfg.ChatRepo,
		games:   cfg.GameRepo,
		players: cfg.PlayerRepo,
		gateway: cfg.Gateway,
	}

	// Closed dispatch table: one handler per persisted chat state
	e.states = map[models.ChatState]stateFactory{
		models.ChatStateInit:            newInitState,
		models.ChatStateIdle:            newIdleState,
		models.ChatStateStartNewGame:    newStartNewGameState,
		models.ChatStateRoundProcessing: newRoundProcessingState,
		models.ChatStateGameProcessing:  newGameProcessingState,
		models.ChatStateGameFinished:    newGameFinishedState,
	}

	return e, nil
}

// HandleUpdate dispatches one inbound update to the chat's current state
func (e *Engine) HandleUpdate(ctx context.Context, upd *models.Update) error {
	if upd == nil || (upd.Message == nil && upd.Event == nil) {
		return ErrEmptyUpdate
	}

	sc := newContext(e, upd.PeerID())
	state, err := sc.Current(ctx)
	if err != nil {
		return err
	}

	if upd.Event != nil {
		return state.HandleEvent(ctx, upd.Event)
	}
	return state.HandleMessage(ctx, upd.Message)
}
