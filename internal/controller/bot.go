package controller

import (
	"context"
	"time"

	"github.com/Freeeeeet/meetbot/internal/controller/handlers"
	"github.com/Freeeeeet/meetbot/internal/controller/state"
	"github.com/Freeeeeet/meetbot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

type BotController struct {
	bot      *bot.Bot
	handlers *handlers.Handlers
	logger   *zap.Logger
}

func NewBotController(
	botInstance *bot.Bot,
	userService *service.UserService,
	availabilityService *service.AvailabilityService,
	meetingService *service.MeetingService,
	location *time.Location,
	logger *zap.Logger,
) *BotController {
	// Создаём менеджер состояний
	stateManager := state.NewManager()

	// Создаём обработчики команд
	cmdHandlers := handlers.NewHandlers(
		userService,
		availabilityService,
		meetingService,
		stateManager,
		location,
		logger,
	)

	return &BotController{
		bot:      botInstance,
		handlers: cmdHandlers,
		logger:   logger,
	}
}

// RegisterHandlers регистрирует все обработчики команд
func (c *BotController) RegisterHandlers(ctx context.Context) error {
	// Регистрируем команды
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeExact, c.handlers.HandleStart)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypeExact, c.handlers.HandleHelp)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/cancel", bot.MatchTypeExact, c.handlers.HandleCancel)

	// Календарь
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/busy", bot.MatchTypeExact, c.handlers.HandleBusyStart)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/myevents", bot.MatchTypeExact, c.handlers.HandleMyEvents)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/free", bot.MatchTypeExact, c.handlers.HandleFreeStart)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/grid", bot.MatchTypeExact, c.handlers.HandleGridStart)

	// Встречи
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/find", bot.MatchTypeExact, c.handlers.HandleFindStart)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/meetings", bot.MatchTypeExact, c.handlers.HandleMeetings)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/cancelmeeting", bot.MatchTypePrefix, c.handlers.HandleCancelMeeting)

	// Обработчик текстовых сообщений (для диалогов с состояниями)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "", bot.MatchTypePrefix, c.handlers.HandleTextMessage)

	// Устанавливаем меню команд
	return c.setCommands(ctx)
}

// setCommands устанавливает список команд в меню бота
func (c *BotController) setCommands(ctx context.Context) error {
	commands := []models.BotCommand{
		{Command: "start", Description: "🚀 Начать работу с ботом"},
		{Command: "help", Description: "❓ Справка по командам"},
		{Command: "busy", Description: "🗓 Отметить занятое время"},
		{Command: "myevents", Description: "📅 Мои события"},
		{Command: "free", Description: "🕐 Моё свободное время"},
		{Command: "find", Description: "🔍 Найти слот для встречи"},
		{Command: "grid", Description: "🖼 Картинка занятости"},
		{Command: "meetings", Description: "👥 Мои встречи"},
		{Command: "cancel", Description: "✖️ Прервать текущий диалог"},
	}

	_, err := c.bot.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: commands,
	})

	if err != nil {
		c.logger.Error("Failed to set bot commands", zap.Error(err))
		return err
	}

	c.logger.Info("✅ Bot commands menu set")
	return nil
}

// Start запускает бота
func (c *BotController) Start(ctx context.Context) error {
	c.logger.Info("Starting bot...")
	c.bot.Start(ctx)
	return nil
}
