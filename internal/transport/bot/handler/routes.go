package handler

import (
	th "github.com/mymmrac/telego/telegohandler"

	"deal_feed/internal/transport/bot/middleware"
)

func (h *Handler) RegisterRoutes(bh *th.BotHandler, adminID int64) {
	adminGroup := bh.Group(th.AnyMessage())
	adminGroup.Use(middleware.AdminOnly(adminID))

	adminGroup.HandleMessage(h.OnStart, th.CommandEqual("start"))
	adminGroup.HandleMessage(h.OnStatus, th.CommandEqual("status"))

	// Фильтры
	adminGroup.HandleMessage(h.OnCategory, th.CommandEqual("category"))
	adminGroup.HandleMessage(h.OnWithin, th.CommandEqual("within"))
	adminGroup.HandleMessage(h.OnSearch, th.CommandEqual("search"))
	adminGroup.HandleMessage(h.OnSort, th.CommandEqual("sort"))
	adminGroup.HandleMessage(h.OnReset, th.CommandEqual("reset"))

	// Лента
	adminGroup.HandleMessage(h.OnDeals, th.CommandEqual("deals"))
	adminGroup.HandleMessage(h.OnRearm, th.CommandEqual("rearm"))

	// Наблюдатель
	adminGroup.HandleMessage(h.OnStartWatch, th.CommandEqual("startwatch"))
	adminGroup.HandleMessage(h.OnStopWatch, th.CommandEqual("stopwatch"))

	cbGroup := bh.Group(th.AnyCallbackQuery())
	cbGroup.Use(middleware.AdminOnly(adminID))

	cbGroup.HandleCallbackQuery(h.OnFeedCallback, th.CallbackDataPrefix(feedPagePrefix))
}
