package engine

// EngineError is a custom error type for engine-level errors
type EngineError string

// Error implements the error interface
func (e EngineError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig     EngineError = "config cannot be nil"
	ErrNilChatRepo   EngineError = "chat repository cannot be nil"
	ErrNilGameRepo   EngineError = "game repository cannot be nil"
	ErrNilPlayerRepo EngineError = "player repository cannot be nil"
	ErrNilGateway    EngineError = "gateway cannot be nil"
	ErrUnknownState  EngineError = "no handler for chat state"
	ErrEmptyUpdate   EngineError = "update carries neither message nor event"
	ErrNoNominees    EngineError = "no players left in the nomination pool"
)
