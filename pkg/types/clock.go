package types

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// MinutesPerDay количество минут в сутках
const MinutesPerDay = 24 * 60

var (
	// Time24Pattern формат времени в настройках: "HH:mm"
	Time24Pattern = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

	// Time12Pattern формат времени в записях: "h:mm AM" / "hh:mm PM"
	Time12Pattern = regexp.MustCompile(`^(0?[1-9]|1[0-2]):([0-5]\d)\s(AM|PM)$`)
)

// IsTime24 проверяет, что строка в формате "HH:mm"
func IsTime24(value string) bool {
	return Time24Pattern.MatchString(value)
}

// IsTime12 проверяет, что строка в формате "h:mm AM/PM"
// Строка проверяется как есть, без обрезки пробелов
func IsTime12(value string) bool {
	return Time12Pattern.MatchString(value)
}

// Parse24 переводит "HH:mm" в минуты от полуночи
// Возвращает false, если строка не соответствует формату
func Parse24(value string) (int, bool) {
	match := Time24Pattern.FindStringSubmatch(value)
	if match == nil {
		return 0, false
	}

	hours, _ := strconv.Atoi(match[1])
	minutes, _ := strconv.Atoi(match[2])

	return hours*60 + minutes, true
}

// Parse12 переводит "h:mm AM/PM" в минуты от полуночи
// 12 AM -> 0, 12 PM -> 12, для остальных PM добавляется 12 часов
func Parse12(value string) (int, bool) {
	match := Time12Pattern.FindStringSubmatch(strings.TrimSpace(value))
	if match == nil {
		return 0, false
	}

	hours, _ := strconv.Atoi(match[1])
	minutes, _ := strconv.Atoi(match[2])

	switch match[3] {
	case "AM":
		if hours == 12 {
			hours = 0
		}
	case "PM":
		if hours != 12 {
			hours += 12
		}
	}

	return hours*60 + minutes, true
}

// Format12 переводит минуты от полуночи в "h:mm AM/PM"
// Значения вне [0, 1440) заворачиваются по модулю суток
func Format12(totalMinutes int) string {
	normalized := ((totalMinutes % MinutesPerDay) + MinutesPerDay) % MinutesPerDay

	hours24 := normalized / 60
	minutes := normalized % 60

	period := "AM"
	if hours24 >= 12 {
		period = "PM"
	}

	hours12 := hours24 % 12
	if hours12 == 0 {
		hours12 = 12
	}

	return fmt.Sprintf("%d:%02d %s", hours12, minutes, period)
}

// Format24 переводит минуты от полуночи в "HH:mm"
func Format24(totalMinutes int) string {
	normalized := ((totalMinutes % MinutesPerDay) + MinutesPerDay) % MinutesPerDay
	return fmt.Sprintf("%02d:%02d", normalized/60, normalized%60)
}
