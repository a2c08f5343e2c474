package handlers

import (
	"time"

	"github.com/Freeeeeet/meetbot/internal/controller/state"
	"github.com/Freeeeeet/meetbot/internal/service"
	"go.uber.org/zap"
)

// Handlers содержит все зависимости для обработки команд
type Handlers struct {
	userService         *service.UserService
	availabilityService *service.AvailabilityService
	meetingService      *service.MeetingService
	stateManager        *state.Manager
	location            *time.Location // Рабочая зона всех расчётов
	logger              *zap.Logger
}

// NewHandlers создаёт новый обработчик команд
func NewHandlers(
	userService *service.UserService,
	availabilityService *service.AvailabilityService,
	meetingService *service.MeetingService,
	stateManager *state.Manager,
	location *time.Location,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		userService:         userService,
		availabilityService: availabilityService,
		meetingService:      meetingService,
		stateManager:        stateManager,
		location:            location,
		logger:              logger,
	}
}

// now опорный момент для разбора дат: текущее время в рабочей зоне
func (h *Handlers) now() time.Time {
	return time.Now().In(h.location)
}
