package handler

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"deal_feed/internal/domain"
	"deal_feed/internal/domain/value"
	"deal_feed/internal/transport/bot/view"
)

func (h *Handler) OnStart(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, view.StartMessage)
}

func (h *Handler) OnStatus(ctx *th.Context, msg telego.Message) error {
	text := view.FormatStatus(h.watcher.IsRunning(), h.watcher.Filters(), h.watcher.Last())

	return h.sendHTML(ctx, msg.Chat.ID, text)
}

// OnCategory Использование: /category food
func (h *Handler) OnCategory(ctx *th.Context, msg telego.Message) error {
	return h.updateFilters(ctx, msg, func(f *value.Filters, arg string) error {
		category, err := value.ParseCategory(arg)
		if err != nil {
			return err
		}
		f.Category = category
		return nil
	})
}

// OnWithin Использование: /within 24h
func (h *Handler) OnWithin(ctx *th.Context, msg telego.Message) error {
	return h.updateFilters(ctx, msg, func(f *value.Filters, arg string) error {
		window, err := value.ParseTimeWindow(arg)
		if err != nil {
			return err
		}
		f.TimeWindow = window
		return nil
	})
}

// OnSearch Использование: /search burger; без аргумента сбрасывает поиск.
func (h *Handler) OnSearch(ctx *th.Context, msg telego.Message) error {
	return h.updateFilters(ctx, msg, func(f *value.Filters, arg string) error {
		f.Query = arg
		return nil
	})
}

// OnSort Использование: /sort ending-soon
func (h *Handler) OnSort(ctx *th.Context, msg telego.Message) error {
	return h.updateFilters(ctx, msg, func(f *value.Filters, arg string) error {
		order, err := value.ParseSortOrder(arg)
		if err != nil {
			return err
		}
		f.Sort = order
		return nil
	})
}

// OnReset сбрасывает фильтры, кроме продавца.
func (h *Handler) OnReset(ctx *th.Context, msg telego.Message) error {
	current := h.watcher.Filters()
	h.watcher.SetFilters(value.Filters{SellerID: current.SellerID})

	return h.sendHTML(ctx, msg.Chat.ID, view.FiltersReset)
}

func (h *Handler) OnRearm(ctx *th.Context, msg telego.Message) error {
	h.watcher.ResetAlerts()

	return h.sendHTML(ctx, msg.Chat.ID, view.AlertsRearmed)
}

func (h *Handler) OnDeals(ctx *th.Context, msg telego.Message) error {
	text, keyboard := view.FeedPage(h.watcher.Last(), 1, feedPagePrefix)

	params := &telego.SendMessageParams{
		ChatID:    telego.ChatID{ID: msg.Chat.ID},
		Text:      text,
		ParseMode: telego.ModeHTML,
	}
	if keyboard != nil {
		params.ReplyMarkup = keyboard
	}

	_, err := ctx.Bot().SendMessage(ctx, params)
	return err
}

func (h *Handler) OnStartWatch(ctx *th.Context, msg telego.Message) error {
	if h.watcher.IsRunning() {
		return h.sendHTML(ctx, msg.Chat.ID, view.WatcherAlreadyRunning)
	}

	// Наблюдатель живёт дольше обработки команды.
	if err := h.watcher.Start(context.WithoutCancel(ctx)); err != nil {
		return h.sendHTML(ctx, msg.Chat.ID, fmt.Sprintf(view.WatcherStartFailed, err))
	}

	return h.sendHTML(ctx, msg.Chat.ID, view.WatcherStarted)
}

func (h *Handler) OnStopWatch(ctx *th.Context, msg telego.Message) error {
	if !h.watcher.IsRunning() {
		return h.sendHTML(ctx, msg.Chat.ID, view.WatcherNotRunning)
	}

	h.watcher.Stop()

	return h.sendHTML(ctx, msg.Chat.ID, view.WatcherStopped)
}

// updateFilters общий путь для команд вида /cmd <arg>.
func (h *Handler) updateFilters(
	ctx *th.Context,
	msg telego.Message,
	apply func(f *value.Filters, arg string) error,
) error {
	filters := h.watcher.Filters()

	if err := apply(&filters, CommandArg(msg.Text)); err != nil {
		return h.sendHTML(ctx, msg.Chat.ID, fmt.Sprintf(view.InvalidArgument, html.EscapeString(domain.Describe(err))))
	}

	h.watcher.SetFilters(filters)

	return h.sendHTML(ctx, msg.Chat.ID, view.FormatFilters(filters))
}

// CommandArg всё, что идёт после команды: "/search  gourmet burger" -> "gourmet burger".
func CommandArg(text string) string {
	_, arg, _ := strings.Cut(strings.TrimSpace(text), " ")
	return strings.TrimSpace(arg)
}

// Вспомогательные методы

func (h *Handler) sendHTML(ctx *th.Context, chatID int64, text string) error {
	_, err := ctx.Bot().SendMessage(ctx, &telego.SendMessageParams{
		ChatID:    telego.ChatID{ID: chatID},
		Text:      text,
		ParseMode: telego.ModeHTML,
	})
	return err
}
