package parse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Freeeeeet/meetbot/internal/availability"
)

// Минуты всегда из двух цифр: "9:5" не распознаётся, "9:05" — да
var clockRe = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

// Clock разбирает время суток в строгом формате "H:MM" или "HH:MM"
func Clock(text string) (availability.TimeOfDay, bool) {
	m := clockRe.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return availability.TimeOfDay{}, false
	}

	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour > 23 || minute > 59 {
		return availability.TimeOfDay{}, false
	}

	return availability.TimeOfDay{Hour: hour, Minute: minute}, true
}

// ClockRange разбирает дневное окно "H:MM-H:MM". Перевёрнутое окно
// (конец раньше начала) парсится успешно — валидность проверяет
// TimeOfDayRange.IsValid на стороне вызывающего кода.
func ClockRange(text string) (availability.TimeOfDayRange, bool) {
	parts := strings.SplitN(strings.TrimSpace(text), "-", 2)
	if len(parts) != 2 {
		return availability.TimeOfDayRange{}, false
	}

	start, ok := Clock(parts[0])
	if !ok {
		return availability.TimeOfDayRange{}, false
	}
	end, ok := Clock(parts[1])
	if !ok {
		return availability.TimeOfDayRange{}, false
	}

	return availability.TimeOfDayRange{Start: start, End: end}, true
}
