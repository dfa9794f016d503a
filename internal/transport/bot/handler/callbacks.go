package handler

import (
	"fmt"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"

	"deal_feed/internal/transport/bot/view"
)

const feedPagePrefix = "feed_page"

// OnFeedCallback листает выдачу. Формат данных: "feed_page:<number>".
func (h *Handler) OnFeedCallback(ctx *th.Context, query telego.CallbackQuery) error {
	var page int
	if _, err := fmt.Sscanf(query.Data, feedPagePrefix+":%d", &page); err != nil || page < 1 {
		page = 1
	}

	if query.Message == nil {
		return ctx.Bot().AnswerCallbackQuery(ctx, tu.CallbackQuery(query.ID))
	}

	text, keyboard := view.FeedPage(h.watcher.Last(), page, feedPagePrefix)

	// Если страница не изменилась, Telegram вернёт ошибку; её игнорируем.
	_, _ = ctx.Bot().EditMessageText(ctx, &telego.EditMessageTextParams{
		ChatID:      tu.ID(query.Message.GetChat().ID),
		MessageID:   query.Message.GetMessageID(),
		Text:        text,
		ParseMode:   telego.ModeHTML,
		ReplyMarkup: keyboard,
	})

	// Обязательно отвечаем на коллбэк, чтобы убрать часики
	return ctx.Bot().AnswerCallbackQuery(ctx, tu.CallbackQuery(query.ID))
}
