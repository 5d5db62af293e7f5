package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmalyshev/votebattle/internal/gateway"
)

func TestBuildInlineKeyboard(t *testing.T) {
	markup := buildInlineKeyboard(&gateway.Keyboard{
		Rows: [][]gateway.Button{
			{
				{Label: "alice", Payload: "alice"},
				{Label: "bob", Payload: "bob"},
			},
			{{Label: "End the game", Payload: "cancel_game"}},
		},
	})

	require.Len(t, markup.InlineKeyboard, 2)
	require.Len(t, markup.InlineKeyboard[0], 2)
	require.Len(t, markup.InlineKeyboard[1], 1)

	assert.Equal(t, "alice", markup.InlineKeyboard[0][0].Text)
	assert.Equal(t, "alice", markup.InlineKeyboard[0][0].CallbackData)
	assert.Equal(t, "bob", markup.InlineKeyboard[0][1].CallbackData)
	assert.Equal(t, "End the game", markup.InlineKeyboard[1][0].Text)
	assert.Equal(t, "cancel_game", markup.InlineKeyboard[1][0].CallbackData)
}

func TestBuildInlineKeyboardEmpty(t *testing.T) {
	markup := buildInlineKeyboard(&gateway.Keyboard{})
	assert.Empty(t, markup.InlineKeyboard)
}
