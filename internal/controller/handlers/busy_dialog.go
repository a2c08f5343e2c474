package handlers

import (
	"context"
	"strings"
	"time"

	"github.com/Freeeeeet/meetbot/internal/controller/formatting"
	"github.com/Freeeeeet/meetbot/internal/controller/state"
	"github.com/Freeeeeet/meetbot/internal/parse"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleBusyStart начинает диалог добавления занятости
func (h *Handlers) HandleBusyStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	_, ok := h.requireUser(ctx, b, update)
	if !ok {
		return
	}

	telegramID := update.Message.From.ID
	h.stateManager.SetState(telegramID, state.StateBusyDate)

	h.sendMessage(ctx, b, update.Message.Chat.ID,
		"🗓 Добавление занятости\n\n"+
			"Шаг 1 из 3: Введите дату или диапазон дат\n\n"+
			"Например: 1/15, 2026-1-15 или 12/30~1/3\n\n"+
			"Для отмены используйте /cancel")
}

// handleBusyDateStep обрабатывает ввод даты занятости
func (h *Handlers) handleBusyDateStep(ctx context.Context, b *bot.Bot, update *models.Update) {
	telegramID := update.Message.From.ID
	text := strings.TrimSpace(update.Message.Text)

	start, end, ok := parse.DateRange(text, h.now())
	if !ok {
		h.sendError(ctx, b, update.Message.Chat.ID,
			"❌ Не понял дату. Примеры: 1/15, 2026-1-15, 12/30~1/3.\n\nПопробуйте ещё раз:")
		return
	}
	if end.Before(start) {
		h.sendError(ctx, b, update.Message.Chat.ID,
			"❌ Конец диапазона раньше начала.\n\nПопробуйте ещё раз:")
		return
	}

	h.stateManager.SetData(telegramID, dataKeyDateStart, start)
	h.stateManager.SetData(telegramID, dataKeyDateEnd, end)
	h.stateManager.SetState(telegramID, state.StateBusyTime)

	h.sendMessage(ctx, b, update.Message.Chat.ID,
		"✅ Дата: "+formatting.FormatDateRange(start, end)+"\n\n"+
			"Шаг 2 из 3: Введите время, например 10:00-11:30,\n"+
			"или напишите «весь день»")
}

// handleBusyTimeStep обрабатывает ввод времени занятости
func (h *Handlers) handleBusyTimeStep(ctx context.Context, b *bot.Bot, update *models.Update) {
	telegramID := update.Message.From.ID
	text := strings.TrimSpace(update.Message.Text)

	dateStart, _ := h.stateManager.GetData(telegramID, dataKeyDateStart)
	dateEnd, _ := h.stateManager.GetData(telegramID, dataKeyDateEnd)
	start, okStart := dateStart.(time.Time)
	end, okEnd := dateEnd.(time.Time)
	if !okStart || !okEnd {
		h.logger.Error("Busy dialog data lost", zap.Int64("telegram_id", telegramID))
		h.stateManager.ClearState(telegramID)
		h.sendError(ctx, b, update.Message.Chat.ID, "❌ Диалог сброшен. Начните заново: /busy")
		return
	}

	if strings.EqualFold(text, "весь день") {
		h.stateManager.SetData(telegramID, dataKeyAllDay, true)
		h.stateManager.SetData(telegramID, dataKeyEventStart, start)
		h.stateManager.SetData(telegramID, dataKeyEventEnd, end)
		h.askBusyTitle(ctx, b, update.Message.Chat.ID, telegramID)
		return
	}

	window, ok := parse.ClockRange(text)
	if !ok {
		h.sendError(ctx, b, update.Message.Chat.ID,
			"❌ Не понял время. Пример: 10:00-11:30, либо «весь день».\n\nПопробуйте ещё раз:")
		return
	}
	if !window.IsValid() {
		h.sendError(ctx, b, update.Message.Chat.ID,
			"❌ Конец должен быть позже начала (время через полночь не поддерживается).\n\nПопробуйте ещё раз:")
		return
	}
	if !start.Equal(end) {
		h.sendError(ctx, b, update.Message.Chat.ID,
			"❌ Время можно указать только для одного дня. Для диапазона дат напишите «весь день».")
		return
	}

	h.stateManager.SetData(telegramID, dataKeyAllDay, false)
	h.stateManager.SetData(telegramID, dataKeyEventStart, window.Start.On(start))
	h.stateManager.SetData(telegramID, dataKeyEventEnd, window.End.On(start))
	h.askBusyTitle(ctx, b, update.Message.Chat.ID, telegramID)
}

func (h *Handlers) askBusyTitle(ctx context.Context, b *bot.Bot, chatID, telegramID int64) {
	h.stateManager.SetState(telegramID, state.StateBusyTitle)
	h.sendMessage(ctx, b, chatID,
		"Шаг 3 из 3: Введите название события или «-», чтобы пропустить")
}

// handleBusyTitleStep обрабатывает ввод названия и создаёт событие
func (h *Handlers) handleBusyTitleStep(ctx context.Context, b *bot.Bot, update *models.Update) {
	user, ok := h.requireUser(ctx, b, update)
	if !ok {
		return
	}

	telegramID := update.Message.From.ID
	title := strings.TrimSpace(update.Message.Text)
	if title == "-" {
		title = ""
	}
	if len(title) > MaxTitleLength {
		h.sendError(ctx, b, update.Message.Chat.ID,
			"❌ Название слишком длинное.\n\nПопробуйте ещё раз:")
		return
	}

	eventStart, _ := h.stateManager.GetData(telegramID, dataKeyEventStart)
	eventEnd, _ := h.stateManager.GetData(telegramID, dataKeyEventEnd)
	allDayVal, _ := h.stateManager.GetData(telegramID, dataKeyAllDay)

	start, okStart := eventStart.(time.Time)
	end, okEnd := eventEnd.(time.Time)
	allDay, okAllDay := allDayVal.(bool)
	if !okStart || !okEnd || !okAllDay {
		h.logger.Error("Busy dialog data lost", zap.Int64("telegram_id", telegramID))
		h.stateManager.ClearState(telegramID)
		h.sendError(ctx, b, update.Message.Chat.ID, "❌ Диалог сброшен. Начните заново: /busy")
		return
	}

	event, err := h.availabilityService.AddBusyEvent(ctx, user.ID, title, start, end, allDay)
	if err != nil {
		h.logger.Error("Failed to add busy event", zap.Int64("user_id", user.ID), zap.Error(err))
		h.stateManager.ClearState(telegramID)
		h.sendError(ctx, b, update.Message.Chat.ID, "❌ Не удалось сохранить событие. Попробуйте позже.")
		return
	}

	h.stateManager.ClearState(telegramID)
	h.sendMessage(ctx, b, update.Message.Chat.ID,
		"✅ Занятость добавлена:\n"+formatting.FormatEvent(event))
}
