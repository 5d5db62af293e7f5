package models

// Message is an inbound text message from a chat
type Message struct {
	// PeerID is the conversation the message came from
	PeerID int64

	// Text is the raw message text
	Text string
}

// Event is an inbound button press from an interactive keyboard
type Event struct {
	// EventID identifies the button event for acknowledgement
	EventID string

	// PeerID is the conversation the event came from
	PeerID int64

	// FromID is the platform user who pressed the button
	FromID int64

	// Button is the payload attached to the pressed button
	Button string
}

// Update is the inbound union the engine consumes: exactly one of
// Message or Event is set.
type Update struct {
	Message *Message
	Event   *Event
}

// PeerID returns the conversation ID regardless of update kind
func (u *Update) PeerID() int64 {
	if u.Message != nil {
		return u.Message.PeerID
	}
	if u.Event != nil {
		return u.Event.PeerID
	}
	return 0
}
