package web

import (
	"fmt"

	"github.com/m04kA/alejandrums/pkg/types"
)

var (
	weekdaysES = [...]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"}
	monthsES   = [...]string{"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio",
		"agosto", "septiembre", "octubre", "noviembre", "diciembre"}
)

// longDate "jueves 15 de octubre de 2026"
func longDate(d types.Date) string {
	return fmt.Sprintf("%s %d de %s de %d", weekdaysES[d.Weekday()], d.Day, monthsES[d.Month-1], d.Year)
}

// longDateString то же для строки YYYY-MM-DD; некорректная строка возвращается как есть
func longDateString(s string) string {
	d, err := types.ParseDate(s)
	if err != nil {
		return s
	}
	return longDate(d)
}
