package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Granularity define o tamanho da janela de agregação do dashboard
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
	GranularityYear  Granularity = "year"
)

// Valid retorna verdadeiro se a granularidade é uma das reconhecidas
func (g Granularity) Valid() bool {
	switch g {
	case GranularityDay, GranularityWeek, GranularityMonth, GranularityYear:
		return true
	}
	return false
}

// StepDirection indica o sentido da navegação entre janelas
type StepDirection string

const (
	StepPrev StepDirection = "prev"
	StepNext StepDirection = "next"
)

// PeriodWindow é um intervalo de calendário derivado para um render do
// dashboard. Não é persistido.
type PeriodWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Label string    `json:"label"`
}

// Contains retorna verdadeiro se o instante cai dentro da janela,
// inclusivo em ambas as extremidades
func (w PeriodWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// ItemStats acumula contagem e receita de uma prestação ou produto
// dentro de uma janela
type ItemStats struct {
	Name    string          `json:"name"`
	Count   int             `json:"count"`
	Revenue decimal.Decimal `json:"revenue"`
}

// AggregateReport é o resultado da agregação de atividades em uma
// janela. Derivado, recalculado do zero a cada consulta.
type AggregateReport struct {
	Window                PeriodWindow                      `json:"window"`
	TotalRevenue          decimal.Decimal                   `json:"total_revenue"`
	ServiceRevenue        decimal.Decimal                   `json:"service_revenue"`
	ProductRevenue        decimal.Decimal                   `json:"product_revenue"`
	CustomerCount         int                               `json:"customer_count"`
	AvgRevenuePerCustomer decimal.Decimal                   `json:"avg_revenue_per_customer"`
	ByPaymentMethod       map[PaymentMethod]decimal.Decimal `json:"by_payment_method"`
	ByService             []ItemStats                       `json:"by_service"`
	ByProduct             []ItemStats                       `json:"by_product"`
}
