package reporting

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/salon-manager-api/infrastructure/repository"
	"github.com/vfg2006/salon-manager-api/internal/domain"
)

// Reporter produz o relatório de faturamento do dashboard para uma
// janela de calendário
type Reporter interface {
	DashboardReport(reference time.Time, granularity domain.Granularity) (*domain.AggregateReport, error)
}

type Service struct {
	activityRepo repository.ActivityRepository
	catalogRepo  repository.CatalogRepository
}

func NewService(
	activityRepo repository.ActivityRepository,
	catalogRepo repository.CatalogRepository,
) *Service {
	return &Service{
		activityRepo: activityRepo,
		catalogRepo:  catalogRepo,
	}
}

// DashboardReport resolve a janela, busca as atividades do intervalo e
// recalcula o relatório do zero. Nenhum estado de agregação é mantido
// entre chamadas.
func (s *Service) DashboardReport(reference time.Time, granularity domain.Granularity) (*domain.AggregateReport, error) {
	window := ResolveWindow(reference, granularity)

	activities, err := s.activityRepo.ListActivitiesByDateRange(window.Start, window.End)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar atividades do período")
		return nil, err
	}

	serviceNames, err := s.catalogRepo.ServiceNames()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar nomes das prestações")
		return nil, err
	}

	productNames, err := s.catalogRepo.ProductNames()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar nomes dos produtos")
		return nil, err
	}

	report := Aggregate(activities, window, serviceNames, productNames)

	logrus.WithFields(logrus.Fields{
		"window_label":   window.Label,
		"activity_count": len(activities),
		"total_revenue":  report.TotalRevenue,
	}).Debug("Relatório do dashboard calculado")

	return report, nil
}

// Aggregate computa o relatório da janela a partir da coleção de
// atividades em memória. Função pura e síncrona, sem I/O: pode ser
// reexecutada a cada render sem coordenação.
func Aggregate(
	activities []*domain.Activity,
	window domain.PeriodWindow,
	serviceNames map[string]string,
	productNames map[string]string,
) *domain.AggregateReport {
	report := &domain.AggregateReport{
		Window:                window,
		TotalRevenue:          decimal.Zero,
		ServiceRevenue:        decimal.Zero,
		ProductRevenue:        decimal.Zero,
		AvgRevenuePerCustomer: decimal.Zero,
		ByPaymentMethod:       make(map[domain.PaymentMethod]decimal.Decimal, len(domain.PaymentMethods)),
		ByService:             make([]domain.ItemStats, 0),
		ByProduct:             make([]domain.ItemStats, 0),
	}

	// Meios de pagamento não representados reportam zero, não ausência
	for _, method := range domain.PaymentMethods {
		report.ByPaymentMethod[method] = decimal.Zero
	}

	// Filtro inclusivo nas duas extremidades da janela
	filtered := make([]*domain.Activity, 0, len(activities))
	for _, activity := range activities {
		if window.Contains(activity.Date) {
			filtered = append(filtered, activity)
		}
	}

	customers := make(map[string]struct{})
	serviceStats := newStatsAccumulator()
	productStats := newStatsAccumulator()

	for _, activity := range filtered {
		report.ServiceRevenue = report.ServiceRevenue.Add(activity.TotalServices)
		report.ProductRevenue = report.ProductRevenue.Add(activity.TotalProducts)
		customers[activity.CustomerID] = struct{}{}

		method := activity.PaymentMethod
		report.ByPaymentMethod[method] = report.ByPaymentMethod[method].Add(activity.TotalAmount)

		for _, charge := range activity.Services {
			serviceStats.add(charge.ServiceID, 1, charge.Price)
		}
		for _, charge := range activity.Products {
			productStats.add(charge.ProductID, charge.Quantity, charge.Total())
		}
	}

	report.TotalRevenue = report.ServiceRevenue.Add(report.ProductRevenue)
	report.CustomerCount = len(customers)

	if report.CustomerCount > 0 {
		report.AvgRevenuePerCustomer = report.TotalRevenue.
			DivRound(decimal.NewFromInt(int64(report.CustomerCount)), 2)
	}

	report.ByService = serviceStats.sorted(serviceNames)
	report.ByProduct = productStats.sorted(productNames)

	return report
}

// statsAccumulator agrupa contagem e receita por id preservando a ordem
// do primeiro encontro, usada como desempate estável na ordenação
type statsAccumulator struct {
	order []string
	stats map[string]*domain.ItemStats
}

func newStatsAccumulator() *statsAccumulator {
	return &statsAccumulator{
		order: make([]string, 0),
		stats: make(map[string]*domain.ItemStats),
	}
}

func (a *statsAccumulator) add(id string, count int, revenue decimal.Decimal) {
	entry, ok := a.stats[id]
	if !ok {
		entry = &domain.ItemStats{Revenue: decimal.Zero}
		a.stats[id] = entry
		a.order = append(a.order, id)
	}

	entry.Count += count
	entry.Revenue = entry.Revenue.Add(revenue)
}

// sorted resolve os nomes pelo catálogo e ordena por receita
// decrescente, mantendo a ordem de encontro nos empates
func (a *statsAccumulator) sorted(names map[string]string) []domain.ItemStats {
	result := make([]domain.ItemStats, 0, len(a.order))
	for _, id := range a.order {
		entry := a.stats[id]

		name, ok := names[id]
		if !ok {
			name = "Unknown"
		}

		result = append(result, domain.ItemStats{
			Name:    name,
			Count:   entry.Count,
			Revenue: entry.Revenue,
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Revenue.GreaterThan(result[j].Revenue)
	})

	return result
}
