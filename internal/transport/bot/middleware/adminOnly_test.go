package middleware_test

import (
	"testing"

	"github.com/mymmrac/telego"
	"github.com/stretchr/testify/require"

	"deal_feed/internal/transport/bot/middleware"
)

func TestSenderID(t *testing.T) {
	rq := require.New(t)

	rq.Equal(int64(42), middleware.SenderID(telego.Update{
		Message: &telego.Message{From: &telego.User{ID: 42}},
	}))
	rq.Equal(int64(7), middleware.SenderID(telego.Update{
		CallbackQuery: &telego.CallbackQuery{From: telego.User{ID: 7}},
	}))
	rq.Zero(middleware.SenderID(telego.Update{Message: &telego.Message{}}))
	rq.Zero(middleware.SenderID(telego.Update{}))
}
