package telegram

import (
	"testing"

	"github.com/mymmrac/telego"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmalyshev/votebattle/internal/models"
)

func TestNewValidatesConfig(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)

	_, err = New(&Config{Bot: &telego.Bot{}})
	assert.Error(t, err)
}

func TestConvertUpdateMessage(t *testing.T) {
	upd := convertUpdate(telego.Update{
		Message: &telego.Message{
			Text: "/help",
			Chat: telego.Chat{ID: -100500},
		},
	})

	require.NotNil(t, upd)
	require.NotNil(t, upd.Message)
	assert.Nil(t, upd.Event)
	assert.Equal(t, int64(-100500), upd.Message.PeerID)
	assert.Equal(t, "/help", upd.Message.Text)
	assert.Equal(t, int64(-100500), upd.PeerID())
}

func TestConvertUpdateCallbackQuery(t *testing.T) {
	upd := convertUpdate(telego.Update{
		CallbackQuery: &telego.CallbackQuery{
			ID:      "cb-1",
			From:    telego.User{ID: 7},
			Data:    "start_game",
			Message: &telego.Message{Chat: telego.Chat{ID: -100500}},
		},
	})

	require.NotNil(t, upd)
	require.NotNil(t, upd.Event)
	assert.Nil(t, upd.Message)
	assert.Equal(t, &models.Event{
		EventID: "cb-1",
		PeerID:  -100500,
		FromID:  7,
		Button:  "start_game",
	}, upd.Event)
}

func TestConvertUpdateIgnoresOthers(t *testing.T) {
	assert.Nil(t, convertUpdate(telego.Update{}))

	// Non-text messages (photos, stickers, joins) carry no game input
	assert.Nil(t, convertUpdate(telego.Update{
		Message: &telego.Message{Chat: telego.Chat{ID: -100500}},
	}))
}
