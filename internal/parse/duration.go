package parse

import (
	"regexp"
	"strconv"
	"strings"
)

var durationRe = regexp.MustCompile(`^(\d+)([mhMH]?)$`)

// Duration разбирает длительность в минутах: "45" и "45m" — минуты,
// "2h" — часы. Дробные значения и составная форма "1h30m" не
// поддерживаются намеренно. Ноль парсится: положительность проверяет
// вызывающий код отдельно от синтаксиса.
func Duration(text string) (int, bool) {
	m := durationRe.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return 0, false
	}

	value, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}

	switch strings.ToLower(m[2]) {
	case "", "m":
		return value, true
	case "h":
		return value * 60, true
	}
	return 0, false
}
