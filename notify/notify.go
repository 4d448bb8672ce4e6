// Package notify pushes new orders to the barista chat through a
// Telegram bot. Optional: the site works without it, WhatsApp remains
// the business-critical channel.
package notify

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Notifier struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

func New(token string, chatID int64) (*Notifier, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram bot: %w", err)
	}
	return &Notifier{api: api, chatID: chatID}, nil
}

// OrderCreated sends the composed order message to the barista chat.
func (n *Notifier) OrderCreated(orderID int64, message string) error {
	text := fmt.Sprintf("Pedido #%d registrado\n\n%s", orderID, message)
	_, err := n.api.Send(tgbotapi.NewMessage(n.chatID, text))
	return err
}
