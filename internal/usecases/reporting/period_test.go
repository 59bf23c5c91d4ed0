package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/salon-manager-api/internal/domain"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestResolveWindow_Day(t *testing.T) {
	window := ResolveWindow(date(2024, time.March, 15), domain.GranularityDay)

	assert.Equal(t, date(2024, time.March, 15), window.Start)
	assert.Equal(t, time.Date(2024, time.March, 15, 23, 59, 59, 999_000_000, time.UTC), window.End)
	assert.Equal(t, "15 mars 2024", window.Label)
}

func TestResolveWindow_WeekStartsOnMonday(t *testing.T) {
	tests := []struct {
		name      string
		reference time.Time
		wantStart time.Time
		wantLabel string
	}{
		{
			name:      "quarta-feira aponta para a segunda anterior",
			reference: date(2024, time.March, 13),
			wantStart: date(2024, time.March, 11),
			wantLabel: "Semaine du 11 mars",
		},
		{
			name:      "segunda-feira é o próprio início",
			reference: date(2024, time.March, 11),
			wantStart: date(2024, time.March, 11),
			wantLabel: "Semaine du 11 mars",
		},
		{
			name:      "domingo pertence à semana iniciada na segunda anterior",
			reference: date(2024, time.March, 17),
			wantStart: date(2024, time.March, 11),
			wantLabel: "Semaine du 11 mars",
		},
		{
			name:      "semana atravessando a virada do mês",
			reference: date(2024, time.April, 2),
			wantStart: date(2024, time.April, 1),
			wantLabel: "Semaine du 01 avril",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window := ResolveWindow(tt.reference, domain.GranularityWeek)

			assert.Equal(t, tt.wantStart, window.Start)
			assert.Equal(t, endOfDay(tt.wantStart.AddDate(0, 0, 6)), window.End)
			assert.Equal(t, tt.wantLabel, window.Label)
		})
	}
}

func TestResolveWindow_Month(t *testing.T) {
	window := ResolveWindow(date(2024, time.February, 10), domain.GranularityMonth)

	assert.Equal(t, date(2024, time.February, 1), window.Start)
	// 2024 é bissexto
	assert.Equal(t, time.Date(2024, time.February, 29, 23, 59, 59, 999_000_000, time.UTC), window.End)
	assert.Equal(t, "février 2024", window.Label)
}

func TestResolveWindow_Year(t *testing.T) {
	window := ResolveWindow(date(2024, time.July, 4), domain.GranularityYear)

	assert.Equal(t, date(2024, time.January, 1), window.Start)
	assert.Equal(t, time.Date(2024, time.December, 31, 23, 59, 59, 999_000_000, time.UTC), window.End)
	assert.Equal(t, "2024", window.Label)
}

func TestWindowBoundariesAreInclusive(t *testing.T) {
	window := ResolveWindow(date(2024, time.March, 15), domain.GranularityMonth)

	assert.True(t, window.Contains(date(2024, time.March, 1)))
	assert.True(t, window.Contains(date(2024, time.March, 31)))
	assert.False(t, window.Contains(date(2024, time.February, 29)))
	assert.False(t, window.Contains(date(2024, time.April, 1)))
}

func TestStep_MonthClampsToLastValidDay(t *testing.T) {
	tests := []struct {
		name      string
		reference time.Time
		direction domain.StepDirection
		want      time.Time
	}{
		{
			name:      "31 de janeiro avança para o último dia de fevereiro",
			reference: date(2024, time.January, 31),
			direction: domain.StepNext,
			want:      date(2024, time.February, 29),
		},
		{
			name:      "31 de janeiro em ano não bissexto",
			reference: date(2023, time.January, 31),
			direction: domain.StepNext,
			want:      date(2023, time.February, 28),
		},
		{
			name:      "31 de março recua para 29 de fevereiro",
			reference: date(2024, time.March, 31),
			direction: domain.StepPrev,
			want:      date(2024, time.February, 29),
		},
		{
			name:      "dia comum não é ajustado",
			reference: date(2024, time.March, 15),
			direction: domain.StepNext,
			want:      date(2024, time.April, 15),
		},
		{
			name:      "dezembro avança para janeiro do ano seguinte",
			reference: date(2024, time.December, 15),
			direction: domain.StepNext,
			want:      date(2025, time.January, 15),
		},
		{
			name:      "janeiro recua para dezembro do ano anterior",
			reference: date(2024, time.January, 15),
			direction: domain.StepPrev,
			want:      date(2023, time.December, 15),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Step(tt.reference, domain.GranularityMonth, tt.direction)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStep_YearClampsLeapDay(t *testing.T) {
	got := Step(date(2024, time.February, 29), domain.GranularityYear, domain.StepNext)
	assert.Equal(t, date(2025, time.February, 28), got)

	got = Step(date(2024, time.February, 29), domain.GranularityYear, domain.StepPrev)
	assert.Equal(t, date(2023, time.February, 28), got)
}

func TestStep_DayAndWeek(t *testing.T) {
	assert.Equal(t,
		date(2024, time.March, 16),
		Step(date(2024, time.March, 15), domain.GranularityDay, domain.StepNext),
	)
	assert.Equal(t,
		date(2024, time.March, 8),
		Step(date(2024, time.March, 15), domain.GranularityWeek, domain.StepPrev),
	)
	// Atravessa a virada do mês sem ajuste especial
	assert.Equal(t,
		date(2024, time.April, 5),
		Step(date(2024, time.March, 29), domain.GranularityWeek, domain.StepNext),
	)
}
