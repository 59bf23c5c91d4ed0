package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/vfg2006/salon-manager-api/infrastructure/repository"
	"github.com/vfg2006/salon-manager-api/internal/usecases/activity"
	"github.com/vfg2006/salon-manager-api/pkg/apiErrors"
	"github.com/vfg2006/salon-manager-api/pkg/log"
)

var exportHeader = []string{
	"activity_id", "date", "customer", "payment_method",
	"item_type", "item_name", "quantity", "price", "line_total",
	"activity_total",
}

// ExportActivities exporta todas as atividades em CSV, uma linha por
// item. Atividades sem itens geram uma única linha com os totais.
func ExportActivities(service activity.Coordinator, catalog repository.CatalogRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		activities, err := service.ListActivities()
		if err != nil {
			logger.WithError(err).Error("export: erro ao listar atividades")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar atividades", nil)
			return
		}

		serviceNames, err := catalog.ServiceNames()
		if err != nil {
			logger.WithError(err).Error("export: erro ao carregar nomes das prestações")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao carregar o catálogo", nil)
			return
		}

		productNames, err := catalog.ProductNames()
		if err != nil {
			logger.WithError(err).Error("export: erro ao carregar nomes dos produtos")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao carregar o catálogo", nil)
			return
		}

		filename := fmt.Sprintf("activities-%s.csv", time.Now().Format(time.DateOnly))
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

		writer := csv.NewWriter(w)
		if err := writer.Write(exportHeader); err != nil {
			logger.WithError(err).Error("export: erro ao escrever cabeçalho")
			return
		}

		for _, act := range activities {
			base := []string{
				act.ID,
				act.Date.Format(time.DateOnly),
				act.CustomerName,
				string(act.PaymentMethod),
			}
			total := act.TotalAmount.StringFixed(2)

			wrote := false
			for _, charge := range act.Services {
				record := append(append([]string{}, base...),
					"service",
					resolveName(serviceNames, charge.ServiceID),
					"1",
					charge.Price.StringFixed(2),
					charge.Price.StringFixed(2),
					total,
				)
				if err := writer.Write(record); err != nil {
					logger.WithError(err).Error("export: erro ao escrever linha")
					return
				}
				wrote = true
			}

			for _, charge := range act.Products {
				record := append(append([]string{}, base...),
					"product",
					resolveName(productNames, charge.ProductID),
					fmt.Sprintf("%d", charge.Quantity),
					charge.Price.StringFixed(2),
					charge.Total().StringFixed(2),
					total,
				)
				if err := writer.Write(record); err != nil {
					logger.WithError(err).Error("export: erro ao escrever linha")
					return
				}
				wrote = true
			}

			if !wrote {
				record := append(append([]string{}, base...), "", "", "", "", "", total)
				if err := writer.Write(record); err != nil {
					logger.WithError(err).Error("export: erro ao escrever linha")
					return
				}
			}
		}

		writer.Flush()
		if err := writer.Error(); err != nil {
			logger.WithError(err).Error("export: erro ao finalizar CSV")
			return
		}

		logger.WithField("activities", len(activities)).Info("export: CSV gerado com sucesso")
	})
}

func resolveName(names map[string]string, id string) string {
	if name, ok := names[id]; ok {
		return name
	}
	return id
}
