package calendar

import (
	"fmt"
	"time"
)

var dayNames = [...]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"}

var monthNames = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// DayName returns the Spanish name of the weekday (domingo, lunes, ...).
func DayName(date time.Time) string {
	return dayNames[date.Weekday()]
}

// MonthName returns the Spanish name of the month.
func MonthName(month time.Month) string {
	return monthNames[month-1]
}

// LongDate formats a date the way it is written in Spanish, e.g.
// "lunes 11 de enero de 2010".
func LongDate(date time.Time) string {
	year, month, day := date.Date()
	return fmt.Sprintf("%s %d de %s de %d", DayName(date), day, MonthName(month), year)
}
