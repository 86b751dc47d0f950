package tg

import (
	"context"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/logger"
	"max.ks1230/expense-tracker/internal/model/messages"
)

const (
	defaultUpdateOffset = 0
	updateTimeoutSecs   = 60
	handleTimeout       = 15 * time.Second
)

type tokenGetter interface {
	Token() string
}

type incomingHandler interface {
	HandleIncomingMessage(ctx context.Context, msg messages.Message) error
}

type Client struct {
	client *tgbotapi.BotAPI
}

func New(tokenGetter tokenGetter) (*Client, error) {
	client, err := tgbotapi.NewBotAPI(tokenGetter.Token())
	if err != nil {
		return nil, errors.Wrap(err, "cannot NewBotApi")
	}
	return &Client{client}, nil
}

func (c *Client) SendMessage(text string, chatID int64) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.DisableWebPagePreview = true
	_, err := c.client.Send(msg)
	if err != nil {
		return errors.Wrap(err, "client.Send")
	}
	return nil
}

// ListenUpdates handles incoming messages until ctx is done. Each message
// runs on its own goroutine so a slow store call in one chat does not hold
// up the others.
func (c *Client) ListenUpdates(ctx context.Context, handler incomingHandler) error {
	u := tgbotapi.NewUpdate(defaultUpdateOffset)
	u.Timeout = updateTimeoutSecs

	updates := c.client.GetUpdatesChan(u)
	defer c.client.StopReceivingUpdates()

	logger.Info("Start listening for messages")

	for {
		select {
		case <-ctx.Done():
			logger.Info("Stop listening for messages")
			return nil
		case update, ok := <-updates:
			if !ok {
				return errors.New("updates channel closed")
			}
			if msg, ok := toMessage(update); ok {
				go handle(ctx, handler, msg)
			}
		}
	}
}

func toMessage(update tgbotapi.Update) (messages.Message, bool) {
	if update.Message == nil || update.Message.Chat == nil {
		return messages.Message{}, false
	}
	return messages.Message{
		Text:   update.Message.Text,
		ChatID: update.Message.Chat.ID,
	}, true
}

func handle(ctx context.Context, handler incomingHandler, msg messages.Message) {
	ctx, cancel := context.WithTimeout(ctx, handleTimeout)
	defer cancel()

	logger.Debug("incoming message", zap.Int64("chatID", msg.ChatID))
	if err := handler.HandleIncomingMessage(ctx, msg); err != nil {
		logger.Error("error processing message", zap.Int64("chatID", msg.ChatID), zap.Error(err))
	}
}
