package telegram

import (
	"github.com/mymmrac/telego"

	"github.com/kmalyshev/votebattle/internal/gateway"
)

// buildInlineKeyboard converts the gateway's platform-neutral keyboard into
// Telegram inline-keyboard markup with callback buttons.
func buildInlineKeyboard(kb *gateway.Keyboard) *telego.InlineKeyboardMarkup {
	rows := make([][]telego.InlineKeyboardButton, 0, len(kb.Rows))
	for _, row := range kb.Rows {
		buttons := make([]telego.InlineKeyboardButton, 0, len(row))
		for _, b := range row {
			buttons = append(buttons, telego.InlineKeyboardButton{
				Text:         b.Label,
				CallbackData: b.Payload,
			})
		}
		rows = append(rows, buttons)
	}

	return &telego.InlineKeyboardMarkup{InlineKeyboard: rows}
}
