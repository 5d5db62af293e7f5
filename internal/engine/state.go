package engine

import (
	"context"

	"github.com/kmalyshev/votebattle/internal/models"
)

// State is one handler of the per-chat state machine. Implementations embed
// baseState for no-op defaults and override what their state reacts to.
type State interface {
	// Name returns the chat state this handler is bound to
	Name() models.ChatState

	// OnEnter runs after the state has been persisted as current
	OnEnter(ctx context.Context, from models.ChatState, p *Payload) error

	// OnExit runs before the transition away is persisted
	OnExit(ctx context.Context, to models.ChatState, p *Payload) error

	// HandleMessage dispatches an inbound text message
	HandleMessage(ctx context.Context, msg *models.Message) error

	// HandleEvent dispatches an inbound button event
	HandleEvent(ctx context.Context, ev *models.Event) error
}

// stateFactory builds a handler bound to a chat's state context
type stateFactory func(*Context) State

// baseState provides no-op defaults for the State hooks
type baseState struct {
	*Context
}

func (s *baseState) OnEnter(ctx context.Context, from models.ChatState, p *Payload) error {
	return nil
}

func (s *baseState) OnExit(ctx context.Context, to models.ChatState, p *Payload) error {
	return nil
}

func (s *baseState) HandleMessage(ctx context.Context, msg *models.Message) error {
	return nil
}

func (s *baseState) HandleEvent(ctx context.Context, ev *models.Event) error {
	return nil
}
