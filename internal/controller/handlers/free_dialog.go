package handlers

import (
	"context"
	"strings"
	"time"

	"github.com/Freeeeeet/meetbot/internal/availability"
	"github.com/Freeeeeet/meetbot/internal/controller/formatting"
	"github.com/Freeeeeet/meetbot/internal/controller/state"
	"github.com/Freeeeeet/meetbot/internal/parse"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleFreeStart начинает диалог просмотра свободного времени
func (h *Handlers) HandleFreeStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	_, ok := h.requireUser(ctx, b, update)
	if !ok {
		return
	}

	telegramID := update.Message.From.ID
	h.stateManager.SetState(telegramID, state.StateFreeDates)

	h.sendMessage(ctx, b, update.Message.Chat.ID,
		"🕐 Свободное время\n\n"+
			"Шаг 1 из 2: Введите дату или диапазон дат\n\n"+
			"Например: 1/15 или 12/10~12/20\n\n"+
			"Для отмены используйте /cancel")
}

// parseSearchDates разбирает диапазон дат поиска и проверяет его границы.
// Возвращает текст ошибки для пользователя, если ввод не годится.
func (h *Handlers) parseSearchDates(text string) (time.Time, time.Time, string) {
	start, end, ok := parse.DateRange(text, h.now())
	if !ok {
		return time.Time{}, time.Time{}, "❌ Не понял дату. Примеры: 1/15, 2026-1-15, 12/10~12/20.\n\nПопробуйте ещё раз:"
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, "❌ Конец диапазона раньше начала.\n\nПопробуйте ещё раз:"
	}
	if len(availability.ListDays(start, end)) > MaxRangeDays {
		return time.Time{}, time.Time{}, "❌ Слишком длинный диапазон, максимум 31 день.\n\nПопробуйте ещё раз:"
	}
	return start, end, ""
}

// parseWindow разбирает дневное окно; "-" означает окно по умолчанию
func (h *Handlers) parseWindow(text string) (availability.TimeOfDayRange, string) {
	if text == "-" {
		text = DefaultWindowStr
	}

	window, ok := parse.ClockRange(text)
	if !ok {
		return availability.TimeOfDayRange{}, "❌ Не понял окно. Пример: 9:00-18:00, либо «-» для окна по умолчанию.\n\nПопробуйте ещё раз:"
	}
	if !window.IsValid() {
		return availability.TimeOfDayRange{}, "❌ Конец окна должен быть позже начала.\n\nПопробуйте ещё раз:"
	}
	return window, ""
}

// handleFreeDatesStep обрабатывает ввод дат для просмотра свободного времени
func (h *Handlers) handleFreeDatesStep(ctx context.Context, b *bot.Bot, update *models.Update) {
	telegramID := update.Message.From.ID

	start, end, errMsg := h.parseSearchDates(strings.TrimSpace(update.Message.Text))
	if errMsg != "" {
		h.sendError(ctx, b, update.Message.Chat.ID, errMsg)
		return
	}

	h.stateManager.SetData(telegramID, dataKeyDateStart, start)
	h.stateManager.SetData(telegramID, dataKeyDateEnd, end)
	h.stateManager.SetState(telegramID, state.StateFreeWindow)

	h.sendMessage(ctx, b, update.Message.Chat.ID,
		"✅ Даты: "+formatting.FormatDateRange(start, end)+"\n\n"+
			"Шаг 2 из 2: Введите дневное окно, например 9:00-18:00,\n"+
			"или «-» для окна по умолчанию ("+DefaultWindowStr+")")
}

// handleFreeWindowStep обрабатывает ввод окна и показывает свободное время
func (h *Handlers) handleFreeWindowStep(ctx context.Context, b *bot.Bot, update *models.Update) {
	user, ok := h.requireUser(ctx, b, update)
	if !ok {
		return
	}

	telegramID := update.Message.From.ID

	window, errMsg := h.parseWindow(strings.TrimSpace(update.Message.Text))
	if errMsg != "" {
		h.sendError(ctx, b, update.Message.Chat.ID, errMsg)
		return
	}

	dateStart, _ := h.stateManager.GetData(telegramID, dataKeyDateStart)
	dateEnd, _ := h.stateManager.GetData(telegramID, dataKeyDateEnd)
	start, okStart := dateStart.(time.Time)
	end, okEnd := dateEnd.(time.Time)
	if !okStart || !okEnd {
		h.logger.Error("Free dialog data lost", zap.Int64("telegram_id", telegramID))
		h.stateManager.ClearState(telegramID)
		h.sendError(ctx, b, update.Message.Chat.ID, "❌ Диалог сброшен. Начните заново: /free")
		return
	}

	days, err := h.availabilityService.DayByDay(ctx, []int64{user.ID}, start, end, window)
	if err != nil {
		h.logger.Error("Failed to build availability", zap.Int64("user_id", user.ID), zap.Error(err))
		h.stateManager.ClearState(telegramID)
		h.sendError(ctx, b, update.Message.Chat.ID, "❌ Не удалось получить календарь. Попробуйте позже.")
		return
	}

	h.stateManager.ClearState(telegramID)
	h.sendMessage(ctx, b, update.Message.Chat.ID,
		"🕐 Ваше свободное время:\n\n"+formatting.FormatDayByDay(days))
}
