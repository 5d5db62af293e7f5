package gateway

// Button is one interactive keyboard button
type Button struct {
	// Label is the text shown on the button
	Label string

	// Payload is the opaque value delivered back in the button event
	Payload string
}

// Keyboard is an interactive keyboard attached to a message
type Keyboard struct {
	Rows [][]Button
}

// Profile is one chat member as reported by the platform
type Profile struct {
	ID        int64
	Username  string
	AvatarURL string
}

// Photo is a platform-sendable image reference
type Photo struct {
	URL string
}

type SendTextInput struct {
	PeerID   int64
	Text     string
	Keyboard *Keyboard
}

type SendPhotosInput struct {
	PeerID int64
	Photos []Photo
}

type AnswerEventInput struct {
	EventID string
	UserID  int64
	PeerID  int64
}

type GetChatMembersInput struct {
	PeerID int64
}

type GetChatMembersOutput struct {
	Profiles []*Profile
}

type UploadPhotoInput struct {
	ImageURL string
}

type UploadPhotoOutput struct {
	Photo Photo
}
