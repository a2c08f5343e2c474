package handlers

import (
	"context"
	"strings"
	"time"

	"github.com/Freeeeeet/meetbot/internal/availability"
	"github.com/Freeeeeet/meetbot/internal/controller/formatting"
	"github.com/Freeeeeet/meetbot/internal/controller/state"
	"github.com/Freeeeeet/meetbot/internal/model"
	"github.com/Freeeeeet/meetbot/internal/parse"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleFindStart начинает диалог поиска общего слота
func (h *Handlers) HandleFindStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	_, ok := h.requireUser(ctx, b, update)
	if !ok {
		return
	}

	telegramID := update.Message.From.ID
	h.stateManager.SetState(telegramID, state.StateFindParticipants)

	h.sendMessage(ctx, b, update.Message.Chat.ID,
		"🔍 Поиск слота для встречи\n\n"+
			"Шаг 1 из 4: Перечислите участников через пробел\n\n"+
			"Например: @anna @boris\n"+
			"Или «-», если встреча только для вас\n\n"+
			"Для отмены используйте /cancel")
}

// handleFindParticipantsStep обрабатывает ввод участников
func (h *Handlers) handleFindParticipantsStep(ctx context.Context, b *bot.Bot, update *models.Update) {
	user, ok := h.requireUser(ctx, b, update)
	if !ok {
		return
	}

	telegramID := update.Message.From.ID
	text := strings.TrimSpace(update.Message.Text)

	var usernames []string
	if text != "-" {
		usernames = strings.Fields(text)
	}
	if len(usernames) > MaxParticipants-1 {
		h.sendError(ctx, b, update.Message.Chat.ID,
			"❌ Слишком много участников, максимум 10 вместе с вами.\n\nПопробуйте ещё раз:")
		return
	}

	participants, err := h.userService.ResolveParticipants(ctx, user, usernames)
	if err != nil {
		h.logger.Warn("Failed to resolve participants",
			zap.Int64("user_id", user.ID),
			zap.Error(err))
		h.sendError(ctx, b, update.Message.Chat.ID,
			"❌ "+err.Error()+"\n\nУчастник должен хотя бы раз написать боту /start. Попробуйте ещё раз:")
		return
	}

	names := make([]string, 0, len(participants))
	for _, p := range participants {
		names = append(names, p.DisplayName())
	}

	h.stateManager.SetData(telegramID, dataKeyParticipants, participants)
	h.stateManager.SetState(telegramID, state.StateFindDates)

	h.sendMessage(ctx, b, update.Message.Chat.ID,
		"✅ Участники: "+strings.Join(names, ", ")+"\n\n"+
			"Шаг 2 из 4: Введите дату или диапазон дат поиска\n\n"+
			"Например: 1/15 или 12/10~12/20")
}

// handleFindDatesStep обрабатывает ввод дат поиска
func (h *Handlers) handleFindDatesStep(ctx context.Context, b *bot.Bot, update *models.Update) {
	telegramID := update.Message.From.ID

	start, end, errMsg := h.parseSearchDates(strings.TrimSpace(update.Message.Text))
	if errMsg != "" {
		h.sendError(ctx, b, update.Message.Chat.ID, errMsg)
		return
	}

	h.stateManager.SetData(telegramID, dataKeyDateStart, start)
	h.stateManager.SetData(telegramID, dataKeyDateEnd, end)
	h.stateManager.SetState(telegramID, state.StateFindWindow)

	h.sendMessage(ctx, b, update.Message.Chat.ID,
		"✅ Даты: "+formatting.FormatDateRange(start, end)+"\n\n"+
			"Шаг 3 из 4: Введите дневное окно, например 9:00-18:00,\n"+
			"или «-» для окна по умолчанию ("+DefaultWindowStr+")")
}

// handleFindWindowStep обрабатывает ввод дневного окна
func (h *Handlers) handleFindWindowStep(ctx context.Context, b *bot.Bot, update *models.Update) {
	telegramID := update.Message.From.ID

	window, errMsg := h.parseWindow(strings.TrimSpace(update.Message.Text))
	if errMsg != "" {
		h.sendError(ctx, b, update.Message.Chat.ID, errMsg)
		return
	}

	h.stateManager.SetData(telegramID, dataKeyWindow, window)
	h.stateManager.SetState(telegramID, state.StateFindDuration)

	h.sendMessage(ctx, b, update.Message.Chat.ID,
		"✅ Окно: "+formatting.FormatTimeOfDayRange(window)+"\n\n"+
			"Шаг 4 из 4: Введите длительность встречи\n\n"+
			"Например: 45, 30m или 2h")
}

// handleFindDurationStep обрабатывает длительность и запускает поиск
func (h *Handlers) handleFindDurationStep(ctx context.Context, b *bot.Bot, update *models.Update) {
	telegramID := update.Message.From.ID
	text := strings.TrimSpace(update.Message.Text)

	durationMinutes, ok := parse.Duration(text)
	if !ok {
		h.sendError(ctx, b, update.Message.Chat.ID,
			"❌ Не понял длительность. Примеры: 45, 30m, 2h.\n\nПопробуйте ещё раз:")
		return
	}
	if durationMinutes <= 0 {
		h.sendError(ctx, b, update.Message.Chat.ID,
			"❌ Длительность должна быть больше нуля.\n\nПопробуйте ещё раз:")
		return
	}

	participants, window, start, end, ok := h.findDialogData(telegramID)
	if !ok {
		h.stateManager.ClearState(telegramID)
		h.sendError(ctx, b, update.Message.Chat.ID, "❌ Диалог сброшен. Начните заново: /find")
		return
	}

	userIDs := make([]int64, 0, len(participants))
	for _, p := range participants {
		userIDs = append(userIDs, p.ID)
	}

	slotStart, found, err := h.availabilityService.FindFirstSlot(ctx, userIDs, start, end, window, durationMinutes)
	if err != nil {
		h.logger.Error("Failed to find slot", zap.Error(err))
		h.stateManager.ClearState(telegramID)
		h.sendError(ctx, b, update.Message.Chat.ID, "❌ Не удалось выполнить поиск. Попробуйте позже.")
		return
	}

	if !found {
		h.stateManager.ClearState(telegramID)
		h.sendMessage(ctx, b, update.Message.Chat.ID,
			"😔 Общего свободного слота не нашлось.\n\n"+
				"Попробуйте другой диапазон дат, окно пошире или встречу покороче: /find")
		return
	}

	h.stateManager.SetData(telegramID, dataKeySlotStart, slotStart)
	h.stateManager.SetData(telegramID, dataKeyDuration, durationMinutes)
	h.stateManager.SetState(telegramID, state.StateFindConfirm)

	slotEnd := slotStart.Add(time.Duration(durationMinutes) * time.Minute)
	h.sendMessage(ctx, b, update.Message.Chat.ID,
		"🎯 Самый ранний общий слот:\n\n"+
			"📅 "+formatting.FormatDateWithWeekday(slotStart)+"\n"+
			"🕐 "+formatting.FormatTimeRange(slotStart, slotEnd)+"\n\n"+
			"Забронировать встречу? (да/нет)")
}

// handleFindConfirmStep обрабатывает подтверждение бронирования
func (h *Handlers) handleFindConfirmStep(ctx context.Context, b *bot.Bot, update *models.Update) {
	telegramID := update.Message.From.ID
	text := strings.ToLower(strings.TrimSpace(update.Message.Text))

	switch text {
	case "да", "yes", "y":
		h.stateManager.SetState(telegramID, state.StateFindTitle)
		h.sendMessage(ctx, b, update.Message.Chat.ID,
			"Введите название встречи:")
	case "нет", "no", "n":
		h.stateManager.ClearState(telegramID)
		h.sendMessage(ctx, b, update.Message.Chat.ID,
			"✅ Хорошо, встреча не забронирована.")
	default:
		h.sendError(ctx, b, update.Message.Chat.ID,
			"❌ Ответьте «да» или «нет»:")
	}
}

// handleFindTitleStep обрабатывает название и бронирует встречу
func (h *Handlers) handleFindTitleStep(ctx context.Context, b *bot.Bot, update *models.Update) {
	user, ok := h.requireUser(ctx, b, update)
	if !ok {
		return
	}

	telegramID := update.Message.From.ID
	title := strings.TrimSpace(update.Message.Text)
	if title == "" || len(title) > MaxTitleLength {
		h.sendError(ctx, b, update.Message.Chat.ID,
			"❌ Название должно быть не пустым и не длиннее 120 символов.\n\nПопробуйте ещё раз:")
		return
	}

	participantsVal, _ := h.stateManager.GetData(telegramID, dataKeyParticipants)
	slotVal, _ := h.stateManager.GetData(telegramID, dataKeySlotStart)
	durationVal, _ := h.stateManager.GetData(telegramID, dataKeyDuration)

	participants, okParticipants := participantsVal.([]*model.User)
	slotStart, okSlot := slotVal.(time.Time)
	durationMinutes, okDuration := durationVal.(int)
	if !okParticipants || !okSlot || !okDuration {
		h.logger.Error("Find dialog data lost", zap.Int64("telegram_id", telegramID))
		h.stateManager.ClearState(telegramID)
		h.sendError(ctx, b, update.Message.Chat.ID, "❌ Диалог сброшен. Начните заново: /find")
		return
	}

	meeting, err := h.meetingService.Schedule(ctx, user, participants, title, slotStart, durationMinutes)
	if err != nil {
		h.logger.Error("Failed to schedule meeting",
			zap.Int64("organizer_id", user.ID),
			zap.Error(err))
		h.stateManager.ClearState(telegramID)
		h.sendError(ctx, b, update.Message.Chat.ID, "❌ Не удалось забронировать встречу. Попробуйте позже.")
		return
	}

	h.stateManager.ClearState(telegramID)
	h.sendHTML(ctx, b, update.Message.Chat.ID,
		"🎉 Встреча забронирована!\n\n"+formatting.FormatMeeting(meeting))
}

// findDialogData достаёт накопленные данные диалога поиска
func (h *Handlers) findDialogData(telegramID int64) ([]*model.User, availability.TimeOfDayRange, time.Time, time.Time, bool) {
	participantsVal, _ := h.stateManager.GetData(telegramID, dataKeyParticipants)
	windowVal, _ := h.stateManager.GetData(telegramID, dataKeyWindow)
	startVal, _ := h.stateManager.GetData(telegramID, dataKeyDateStart)
	endVal, _ := h.stateManager.GetData(telegramID, dataKeyDateEnd)

	participants, okParticipants := participantsVal.([]*model.User)
	window, okWindow := windowVal.(availability.TimeOfDayRange)
	start, okStart := startVal.(time.Time)
	end, okEnd := endVal.(time.Time)
	if !okParticipants || !okWindow || !okStart || !okEnd {
		h.logger.Error("Find dialog data lost", zap.Int64("telegram_id", telegramID))
		return nil, availability.TimeOfDayRange{}, time.Time{}, time.Time{}, false
	}

	return participants, window, start, end, true
}
