package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatHour 9 -> "09:00"
func FormatHour(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}

// TimeRange диапазон от начала первого часа до конца последнего
// hours должны быть отсортированы
func TimeRange(hours []int) string {
	if len(hours) == 0 {
		return ""
	}
	return FormatHour(hours[0]) + " - " + FormatHour(hours[len(hours)-1]+1)
}

// FormatPrice форматирует сумму в песо: 15000 -> "$15.000"
func FormatPrice(price int64) string {
	sign := ""
	if price < 0 {
		sign = "-"
		price = -price
	}

	digits := strconv.FormatInt(price, 10)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	return sign + "$" + b.String()
}
