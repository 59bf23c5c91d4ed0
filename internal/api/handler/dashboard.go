package handler

import (
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/salon-manager-api/internal/domain"
	"github.com/vfg2006/salon-manager-api/internal/usecases/reporting"
	"github.com/vfg2006/salon-manager-api/pkg/apiErrors"
	"github.com/vfg2006/salon-manager-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// GetDashboardReport calcula o relatório de faturamento para a janela
// pedida. Parâmetros: period (day|week|month|year, padrão month), date
// (YYYY-MM-DD, padrão hoje) e nav (prev|next) para navegar uma janela a
// partir da data de referência.
func GetDashboardReport(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		granularity := domain.GranularityMonth
		if period := r.URL.Query().Get("period"); period != "" {
			granularity = domain.Granularity(period)
			if !granularity.Valid() {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Período inválido. Use day, week, month ou year", nil)
				return
			}
		}

		reference := time.Now()
		if dateStr := r.URL.Query().Get("date"); dateStr != "" {
			parsed, err := time.Parse(time.DateOnly, dateStr)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida. Use o formato YYYY-MM-DD", nil)
				return
			}
			reference = parsed
		}

		if nav := r.URL.Query().Get("nav"); nav != "" {
			direction := domain.StepDirection(nav)
			if direction != domain.StepPrev && direction != domain.StepNext {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Navegação inválida. Use prev ou next", nil)
				return
			}
			reference = reporting.Step(reference, granularity, direction)
		}

		report, err := service.DashboardReport(reference, granularity)
		if err != nil {
			logger.WithError(err).Error("dashboard: erro ao calcular relatório")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular relatório do período", nil)
			return
		}

		logger.WithFields(log.Fields{
			"period": string(granularity),
			"window": report.Window.Label,
		}).Info("dashboard: relatório gerado com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("dashboard: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
