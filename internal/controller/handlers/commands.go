package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/Freeeeeet/meetbot/internal/controller/formatting"
	"github.com/Freeeeeet/meetbot/internal/controller/state"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleStart обрабатывает команду /start
func (h *Handlers) HandleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	user := update.Message.From

	// Регистрируем пользователя
	registeredUser, err := h.userService.RegisterUser(
		ctx,
		user.ID,
		user.Username,
		user.FirstName,
		user.LastName,
		user.LanguageCode,
	)

	if err != nil {
		h.logger.Error("Failed to register user", zap.Error(err))
		h.sendError(ctx, b, update.Message.Chat.ID, "❌ Произошла ошибка при регистрации. Попробуйте позже.")
		return
	}

	welcomeText := fmt.Sprintf(
		"👋 Привет, %s!\n\n"+
			"Meetbot помогает находить общее свободное время и бронировать встречи.\n\n"+
			"Доступные команды:\n"+
			"/busy - Отметить занятое время\n"+
			"/myevents - Мои события\n"+
			"/free - Моё свободное время\n"+
			"/find - Найти слот для встречи\n"+
			"/grid - Картинка занятости\n"+
			"/meetings - Мои встречи\n"+
			"/help - Справка",
		registeredUser.FirstName,
	)

	h.sendMessage(ctx, b, update.Message.Chat.ID, welcomeText)
}

// HandleHelp обрабатывает команду /help
func (h *Handlers) HandleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	helpText := "📚 Справка по командам:\n\n" +
		"/busy - Добавить занятый период в свой календарь\n" +
		"/myevents - Список будущих событий\n" +
		"/free - Показать свободное время по дням\n" +
		"/find - Найти самый ранний общий слот и забронировать встречу\n" +
		"/grid - Сетка занятости картинкой\n" +
		"/meetings - Мои запланированные встречи\n" +
		"/cancelmeeting <id> - Отменить свою встречу\n" +
		"/cancel - Прервать текущий диалог\n\n" +
		"Форматы ввода:\n" +
		"• Дата: 2026-1-15 или 1/15 (год подставится сам)\n" +
		"• Диапазон дат: 12/30~1/3, 12/10..12/20 или 12/10-12/20\n" +
		"• Окно времени: 9:00-18:00\n" +
		"• Длительность: 45, 30m или 2h"

	h.sendMessage(ctx, b, update.Message.Chat.ID, helpText)
}

// HandleCancel обрабатывает команду /cancel - отмена текущего диалога
func (h *Handlers) HandleCancel(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	telegramID := update.Message.From.ID
	currentState := h.stateManager.GetState(telegramID)

	if currentState == state.StateNone {
		h.sendMessage(ctx, b, update.Message.Chat.ID, "❌ Нет активных операций для отмены.")
		return
	}

	// Очищаем состояние
	h.stateManager.ClearState(telegramID)

	h.sendMessage(ctx, b, update.Message.Chat.ID, "✅ Операция отменена.\n\nИспользуйте /help для просмотра доступных команд.")
}

// HandleMyEvents обрабатывает команду /myevents
func (h *Handlers) HandleMyEvents(ctx context.Context, b *bot.Bot, update *models.Update) {
	user, ok := h.requireUser(ctx, b, update)
	if !ok {
		return
	}

	events, err := h.availabilityService.ListUpcomingEvents(ctx, user.ID, h.now(), MaxListedEvents)
	if err != nil {
		h.logger.Error("Failed to list events", zap.Int64("user_id", user.ID), zap.Error(err))
		h.sendError(ctx, b, update.Message.Chat.ID, "❌ Не удалось получить события. Попробуйте позже.")
		return
	}

	if len(events) == 0 {
		h.sendMessage(ctx, b, update.Message.Chat.ID, "📭 Будущих событий нет. Добавьте занятость: /busy")
		return
	}

	lines := make([]string, 0, len(events)+1)
	lines = append(lines, "📅 Ваши будущие события:")
	for _, event := range events {
		lines = append(lines, formatting.FormatEvent(event))
	}

	h.sendMessage(ctx, b, update.Message.Chat.ID, strings.Join(lines, "\n"))
}

// HandleMeetings обрабатывает команду /meetings
func (h *Handlers) HandleMeetings(ctx context.Context, b *bot.Bot, update *models.Update) {
	user, ok := h.requireUser(ctx, b, update)
	if !ok {
		return
	}

	meetings, err := h.meetingService.ListByUser(ctx, user.ID)
	if err != nil {
		h.logger.Error("Failed to list meetings", zap.Int64("user_id", user.ID), zap.Error(err))
		h.sendError(ctx, b, update.Message.Chat.ID, "❌ Не удалось получить встречи. Попробуйте позже.")
		return
	}

	if len(meetings) == 0 {
		h.sendMessage(ctx, b, update.Message.Chat.ID, "📭 Запланированных встреч нет. Найдите слот: /find")
		return
	}

	var sb strings.Builder
	sb.WriteString("🗓 Ваши встречи:\n")
	for _, meeting := range meetings {
		sb.WriteString(fmt.Sprintf("\n• %s — %s %s\n  ID: %s\n",
			meeting.Title,
			formatting.FormatDateWithWeekday(meeting.StartTime),
			formatting.FormatTimeRange(meeting.StartTime, meeting.EndTime),
			meeting.ID,
		))
	}

	h.sendMessage(ctx, b, update.Message.Chat.ID, sb.String())
}

// HandleCancelMeeting обрабатывает команду /cancelmeeting <id>
func (h *Handlers) HandleCancelMeeting(ctx context.Context, b *bot.Bot, update *models.Update) {
	user, ok := h.requireUser(ctx, b, update)
	if !ok {
		return
	}

	args := strings.Fields(update.Message.Text)
	if len(args) < 2 {
		h.sendError(ctx, b, update.Message.Chat.ID, "❌ Укажите ID встречи: /cancelmeeting <id>\n\nСписок встреч: /meetings")
		return
	}

	meeting, err := h.meetingService.Cancel(ctx, args[1], user.ID)
	if err != nil {
		h.logger.Warn("Failed to cancel meeting",
			zap.String("meeting_id", args[1]),
			zap.Int64("user_id", user.ID),
			zap.Error(err))
		h.sendError(ctx, b, update.Message.Chat.ID, "❌ Не удалось отменить встречу. Проверьте ID и что вы её организатор.")
		return
	}

	h.sendHTML(ctx, b, update.Message.Chat.ID, "🚫 Встреча отменена.\n\n"+formatting.FormatMeeting(meeting))
}

// HandleTextMessage обрабатывает текстовые сообщения в зависимости от состояния пользователя
func (h *Handlers) HandleTextMessage(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Text == "" {
		return
	}

	// Игнорируем команды (они обрабатываются другими handlers)
	if strings.HasPrefix(update.Message.Text, "/") {
		return
	}

	telegramID := update.Message.From.ID
	currentState := h.stateManager.GetState(telegramID)

	// Если нет активного состояния, игнорируем
	if currentState == state.StateNone {
		return
	}

	h.logger.Debug("Dialog message",
		zap.Int64("telegram_id", telegramID),
		zap.String("state", string(currentState)))

	// Обрабатываем в зависимости от состояния
	switch currentState {
	case state.StateBusyDate:
		h.handleBusyDateStep(ctx, b, update)
	case state.StateBusyTime:
		h.handleBusyTimeStep(ctx, b, update)
	case state.StateBusyTitle:
		h.handleBusyTitleStep(ctx, b, update)

	case state.StateFreeDates:
		h.handleFreeDatesStep(ctx, b, update)
	case state.StateFreeWindow:
		h.handleFreeWindowStep(ctx, b, update)

	case state.StateFindParticipants:
		h.handleFindParticipantsStep(ctx, b, update)
	case state.StateFindDates:
		h.handleFindDatesStep(ctx, b, update)
	case state.StateFindWindow:
		h.handleFindWindowStep(ctx, b, update)
	case state.StateFindDuration:
		h.handleFindDurationStep(ctx, b, update)
	case state.StateFindConfirm:
		h.handleFindConfirmStep(ctx, b, update)
	case state.StateFindTitle:
		h.handleFindTitleStep(ctx, b, update)

	case state.StateGridDates:
		h.handleGridDatesStep(ctx, b, update)

	default:
		h.logger.Warn("Unknown dialog state",
			zap.Int64("telegram_id", telegramID),
			zap.String("state", string(currentState)))
		h.stateManager.ClearState(telegramID)
	}
}
