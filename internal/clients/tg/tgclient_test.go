package tg

import (
	"context"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"max.ks1230/expense-tracker/internal/model/messages"
)

type handlerFunc func(ctx context.Context, msg messages.Message) error

func (f handlerFunc) HandleIncomingMessage(ctx context.Context, msg messages.Message) error {
	return f(ctx, msg)
}

func Test_ToMessage_UsesChatID(t *testing.T) {
	msg, ok := toMessage(tgbotapi.Update{Message: &tgbotapi.Message{
		Text: "/list",
		From: &tgbotapi.User{ID: 1},
		Chat: &tgbotapi.Chat{ID: -100},
	}})

	assert.True(t, ok)
	assert.Equal(t, messages.Message{Text: "/list", ChatID: -100}, msg)
}

func Test_ToMessage_SkipsNonMessageUpdates(t *testing.T) {
	_, ok := toMessage(tgbotapi.Update{})
	assert.False(t, ok)

	_, ok = toMessage(tgbotapi.Update{Message: &tgbotapi.Message{Text: "x"}})
	assert.False(t, ok)
}

func Test_Handle_AppliesDeadlineAndSwallowsErrors(t *testing.T) {
	called := false
	handle(context.Background(), handlerFunc(func(ctx context.Context, msg messages.Message) error {
		called = true
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)
		return errors.New("boom")
	}), messages.Message{ChatID: 1})

	assert.True(t, called)
}
