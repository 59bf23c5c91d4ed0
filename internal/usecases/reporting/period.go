package reporting

import (
	"fmt"
	"time"

	"github.com/vfg2006/salon-manager-api/internal/domain"
)

// Nomes dos meses em francês, como o dashboard exibe os rótulos
var frenchMonths = [...]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

func frenchMonth(m time.Month) string {
	return frenchMonths[int(m)-1]
}

// ResolveWindow calcula o intervalo de calendário fechado nas duas
// extremidades para a granularidade pedida, com o rótulo exibido pelo
// dashboard. A semana começa na segunda-feira.
func ResolveWindow(reference time.Time, granularity domain.Granularity) domain.PeriodWindow {
	switch granularity {
	case domain.GranularityWeek:
		start := startOfWeek(reference)
		return domain.PeriodWindow{
			Start: start,
			End:   endOfDay(start.AddDate(0, 0, 6)),
			Label: fmt.Sprintf("Semaine du %02d %s", start.Day(), frenchMonth(start.Month())),
		}
	case domain.GranularityMonth:
		start := time.Date(reference.Year(), reference.Month(), 1, 0, 0, 0, 0, reference.Location())
		return domain.PeriodWindow{
			Start: start,
			End:   endOfDay(start.AddDate(0, 1, -1)),
			Label: fmt.Sprintf("%s %d", frenchMonth(reference.Month()), reference.Year()),
		}
	case domain.GranularityYear:
		start := time.Date(reference.Year(), time.January, 1, 0, 0, 0, 0, reference.Location())
		return domain.PeriodWindow{
			Start: start,
			End:   endOfDay(time.Date(reference.Year(), time.December, 31, 0, 0, 0, 0, reference.Location())),
			Label: fmt.Sprintf("%d", reference.Year()),
		}
	default: // dia
		start := startOfDay(reference)
		return domain.PeriodWindow{
			Start: start,
			End:   endOfDay(reference),
			Label: fmt.Sprintf("%02d %s %d", reference.Day(), frenchMonth(reference.Month()), reference.Year()),
		}
	}
}

// Step avança ou recua a referência em exatamente uma unidade da
// granularidade. O passo de mês e de ano usa aritmética de calendário
// com ajuste para o último dia válido: 31 de janeiro + 1 mês resulta no
// último dia de fevereiro, nunca em março.
func Step(reference time.Time, granularity domain.Granularity, direction domain.StepDirection) time.Time {
	delta := 1
	if direction == domain.StepPrev {
		delta = -1
	}

	switch granularity {
	case domain.GranularityWeek:
		return reference.AddDate(0, 0, 7*delta)
	case domain.GranularityMonth:
		return addMonthsClamped(reference, delta)
	case domain.GranularityYear:
		return addYearsClamped(reference, delta)
	default:
		return reference.AddDate(0, 0, delta)
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999_000_000, t.Location())
}

// startOfWeek retorna a segunda-feira da semana da referência
func startOfWeek(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 { // domingo
		weekday = 7
	}
	return startOfDay(t.AddDate(0, 0, -(weekday - 1)))
}

func daysInMonth(year int, month time.Month) int {
	// O dia zero do mês seguinte é o último dia deste mês
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// addMonthsClamped soma meses mantendo o dia dentro do mês de destino.
// time.AddDate transbordaria 31/01 + 1 mês para 02/03 ou 03/03.
func addMonthsClamped(t time.Time, months int) time.Time {
	year := t.Year()
	month := int(t.Month()) + months

	for month > 12 {
		month -= 12
		year++
	}
	for month < 1 {
		month += 12
		year--
	}

	day := t.Day()
	if last := daysInMonth(year, time.Month(month)); day > last {
		day = last
	}

	return time.Date(year, time.Month(month), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// addYearsClamped soma anos ajustando 29 de fevereiro para 28 quando o
// ano de destino não é bissexto
func addYearsClamped(t time.Time, years int) time.Time {
	year := t.Year() + years

	day := t.Day()
	if last := daysInMonth(year, t.Month()); day > last {
		day = last
	}

	return time.Date(year, t.Month(), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}
