package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Freeeeeet/meetbot/internal/model"
	"github.com/Freeeeeet/meetbot/internal/repository"
	"go.uber.org/zap"
)

type UserService struct {
	userRepo *repository.UserRepository
	logger   *zap.Logger
}

func NewUserService(userRepo *repository.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// RegisterUser регистрирует или обновляет пользователя
func (s *UserService) RegisterUser(ctx context.Context, telegramID int64, username, firstName, lastName, languageCode string) (*model.User, error) {
	// Проверяем существует ли пользователь
	existingUser, err := s.userRepo.GetByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, fmt.Errorf("check existing user: %w", err)
	}

	// Если пользователь уже существует, обновляем данные
	if existingUser != nil {
		existingUser.Username = username
		existingUser.FirstName = firstName
		existingUser.LastName = lastName
		existingUser.LanguageCode = languageCode

		err = s.userRepo.Update(ctx, existingUser)
		if err != nil {
			return nil, fmt.Errorf("update user: %w", err)
		}

		return existingUser, nil
	}

	// Создаём нового пользователя
	user := &model.User{
		TelegramID:   telegramID,
		Username:     username,
		FirstName:    firstName,
		LastName:     lastName,
		LanguageCode: languageCode,
	}

	err = s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info("New user registered",
		zap.Int64("user_id", user.ID),
		zap.Int64("telegram_id", telegramID),
		zap.String("username", username),
	)

	return user, nil
}

// GetByTelegramID получает пользователя по Telegram ID
func (s *UserService) GetByTelegramID(ctx context.Context, telegramID int64) (*model.User, error) {
	return s.userRepo.GetByTelegramID(ctx, telegramID)
}

// ResolveParticipants превращает список @username в пользователей.
// Пользователь requester всегда включается первым. Неизвестный username —
// ошибка с его упоминанием, чтобы показать её пользователю.
func (s *UserService) ResolveParticipants(ctx context.Context, requester *model.User, usernames []string) ([]*model.User, error) {
	participants := []*model.User{requester}
	seen := map[int64]bool{requester.ID: true}

	for _, username := range usernames {
		username = strings.TrimPrefix(strings.TrimSpace(username), "@")
		if username == "" {
			continue
		}

		user, err := s.userRepo.GetByUsername(ctx, username)
		if err != nil {
			return nil, fmt.Errorf("resolve participant: %w", err)
		}
		if user == nil {
			return nil, fmt.Errorf("user @%s is not registered", username)
		}

		if !seen[user.ID] {
			participants = append(participants, user)
			seen[user.ID] = true
		}
	}

	return participants, nil
}
