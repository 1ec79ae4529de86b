package model

import "fmt"

// Weekday and month names follow the pt-BR conventions the reports are
// shared in.
var (
	weekdayShort = [7]string{"dom.", "seg.", "ter.", "qua.", "qui.", "sex.", "sáb."}
	weekdayLong  = [7]string{
		"domingo", "segunda-feira", "terça-feira", "quarta-feira",
		"quinta-feira", "sexta-feira", "sábado",
	}
	monthLong = [12]string{
		"janeiro", "fevereiro", "março", "abril", "maio", "junho",
		"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
	}
)

// WeekdayAbbrev returns the short weekday name, e.g. "qua.".
func (d Date) WeekdayAbbrev() string {
	return weekdayShort[d.Weekday()]
}

// LongForm returns the long date, e.g. "quarta-feira, 14 de outubro de 2026".
func (d Date) LongForm() string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s, %d de %s de %d",
		weekdayLong[d.Weekday()], d.Day, monthLong[d.Month-1], d.Year)
}

// MonthName returns the long month name followed by the year, e.g. "outubro de 2026".
func (d Date) MonthName() string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s de %d", monthLong[d.Month-1], d.Year)
}
