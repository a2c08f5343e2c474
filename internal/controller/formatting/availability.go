package formatting

import (
	"fmt"
	"strings"

	"github.com/Freeeeeet/meetbot/internal/availability"
	"github.com/Freeeeeet/meetbot/internal/model"
	"github.com/Freeeeeet/meetbot/internal/service"
)

// FormatDayByDay форматирует свободное время по дням.
// Строки интервалов отдаёт движок; пустой день он помечает как "none".
func FormatDayByDay(days []service.DayAvailability) string {
	var b strings.Builder
	for i, day := range days {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(fmt.Sprintf("📅 %s:\n", FormatDateWithWeekday(day.Day)))
		b.WriteString(availability.FormatIntervals(day.Free))
	}
	return b.String()
}

// FormatMeeting форматирует информацию о встрече
func FormatMeeting(meeting *model.Meeting) string {
	statusEmoji := "✅"
	statusText := "Запланирована"
	if meeting.Status == model.MeetingStatusCanceled {
		statusEmoji = "🚫"
		statusText = "Отменена"
	}

	participants := make([]string, 0, len(meeting.Participants))
	for _, p := range meeting.Participants {
		participants = append(participants, p.DisplayName())
	}

	text := fmt.Sprintf(
		"%s <b>%s</b>\n\n"+
			"📅 Дата: %s\n"+
			"🕐 Время: %s\n"+
			"⏱ Длительность: %s\n"+
			"📊 Статус: %s\n"+
			"🆔 ID: %s",
		statusEmoji,
		meeting.Title,
		FormatDateWithWeekday(meeting.StartTime),
		FormatTimeRange(meeting.StartTime, meeting.EndTime),
		FormatDuration(int(meeting.EndTime.Sub(meeting.StartTime).Minutes())),
		statusText,
		meeting.ID,
	)

	if len(participants) > 0 {
		text += "\n👥 Участники: " + strings.Join(participants, ", ")
	}

	return text
}

// FormatEvent форматирует событие календаря одной строкой
func FormatEvent(event *model.CalendarEvent) string {
	title := event.Title
	if title == "" {
		title = "Занято"
	}

	if event.AllDay {
		return fmt.Sprintf("🗓 %s — %s (весь день)", FormatDateRange(event.StartTime, event.EndTime), title)
	}
	return fmt.Sprintf("🕐 %s %s — %s",
		FormatDate(event.StartTime),
		FormatTimeRange(event.StartTime, event.EndTime),
		title,
	)
}
