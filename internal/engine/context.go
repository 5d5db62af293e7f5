package engine

import (
	"context"

	"github.com/kmalyshev/votebattle/internal/models"
	chatRepo "github.com/kmalyshev/votebattle/internal/repositories/chat"
)

// Context binds the engine's collaborators to one chat and executes the
// state-transition protocol.
type Context struct {
	engine *Engine
	chatID int64
	state  State
}

func newContext(e *Engine, chatID int64) *Context {
	return &Context{
		engine: e,
		chatID: chatID,
	}
}

// ChatID returns the chat this context is bound to
func (c *Context) ChatID() int64 {
	return c.chatID
}

// Current loads (or lazily creates) the chat row and resolves the handler
// bound to its persisted state.
func (c *Context) Current(ctx context.Context) (State, error) {
	chat, err := c.engine.chats.GetOrCreateChat(ctx, &chatRepo.GetOrCreateChatInput{
		ChatID: c.chatID,
	})
	if err != nil {
		return nil, err
	}

	factory, ok := c.engine.states[chat.BotState]
	if !ok {
		return nil, ErrUnknownState
	}

	c.state = factory(c)
	return c.state, nil
}

// Transition moves the chat to a new state: the old handler's exit hook runs
// against still-consistent pre-transition data, then the new state is
// persisted with a compare-and-set on the old one, then the new handler's
// enter hook runs. A lost compare-and-set aborts the transition and
// surfaces chatRepo.ErrStateConflict.
func (c *Context) Transition(ctx context.Context, to models.ChatState, p *Payload) error {
	if c.state == nil {
		if _, err := c.Current(ctx); err != nil {
			return err
		}
	}

	from := c.state.Name()

	if err := c.state.OnExit(ctx, to, p); err != nil {
		return err
	}

	_, err := c.engine.chats.UpdateBotState(ctx, &chatRepo.UpdateBotStateInput{
		ChatID:    c.chatID,
		NewState:  to,
		FromState: from,
	})
	if err != nil {
		return err
	}

	state, err := c.Current(ctx)
	if err != nil {
		return err
	}

	return state.OnEnter(ctx, from, p)
}
