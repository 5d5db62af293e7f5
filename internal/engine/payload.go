package engine

import "github.com/kmalyshev/votebattle/internal/models"

// Payload carries optional data across a state transition. Handlers that do
// not receive a game in the payload fall back to the chat's in-progress game.
type Payload struct {
	Game *models.Game
}

// game returns the payload's game, tolerating a nil payload
func (p *Payload) game() *models.Game {
	if p == nil {
		return nil
	}
	return p.Game
}
