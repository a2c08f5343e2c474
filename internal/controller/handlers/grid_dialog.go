package handlers

import (
	"bytes"
	"context"
	"strings"

	"github.com/Freeeeeet/meetbot/internal/controller/render"
	"github.com/Freeeeeet/meetbot/internal/controller/state"
	"github.com/Freeeeeet/meetbot/internal/parse"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleGridStart начинает диалог картинки занятости
func (h *Handlers) HandleGridStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	_, ok := h.requireUser(ctx, b, update)
	if !ok {
		return
	}

	telegramID := update.Message.From.ID
	h.stateManager.SetState(telegramID, state.StateGridDates)

	h.sendMessage(ctx, b, update.Message.Chat.ID,
		"🖼 Сетка занятости\n\n"+
			"Введите дату или диапазон дат\n\n"+
			"Например: 1/15 или 12/10~12/16\n\n"+
			"Для отмены используйте /cancel")
}

// handleGridDatesStep строит и отправляет картинку занятости
func (h *Handlers) handleGridDatesStep(ctx context.Context, b *bot.Bot, update *models.Update) {
	user, ok := h.requireUser(ctx, b, update)
	if !ok {
		return
	}

	telegramID := update.Message.From.ID

	start, end, errMsg := h.parseSearchDates(strings.TrimSpace(update.Message.Text))
	if errMsg != "" {
		h.sendError(ctx, b, update.Message.Chat.ID, errMsg)
		return
	}

	// Сетка рисуется в окне по умолчанию
	window, _ := parse.ClockRange(DefaultWindowStr)

	days, err := h.availabilityService.DayByDay(ctx, []int64{user.ID}, start, end, window)
	if err != nil {
		h.logger.Error("Failed to build availability", zap.Int64("user_id", user.ID), zap.Error(err))
		h.stateManager.ClearState(telegramID)
		h.sendError(ctx, b, update.Message.Chat.ID, "❌ Не удалось получить календарь. Попробуйте позже.")
		return
	}

	png, err := render.AvailabilityGrid(days, window)
	if err != nil {
		h.logger.Error("Failed to render grid", zap.Int64("user_id", user.ID), zap.Error(err))
		h.stateManager.ClearState(telegramID)
		h.sendError(ctx, b, update.Message.Chat.ID, "❌ Не удалось построить картинку. Попробуйте позже.")
		return
	}

	h.stateManager.ClearState(telegramID)

	_, err = b.SendPhoto(ctx, &bot.SendPhotoParams{
		ChatID: update.Message.Chat.ID,
		Photo: &models.InputFileUpload{
			Filename: "grid.png",
			Data:     bytes.NewReader(png),
		},
		Caption: "🟩 свободно, 🟥 занято",
	})
	if err != nil {
		h.logger.Error("Failed to send grid photo",
			zap.Int64("chat_id", update.Message.Chat.ID),
			zap.Error(err))
	}
}
