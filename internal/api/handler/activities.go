package handler

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/salon-manager-api/internal/domain"
	"github.com/vfg2006/salon-manager-api/internal/usecases/activity"
	"github.com/vfg2006/salon-manager-api/pkg/apiErrors"
)

// ActivityRequest é o payload de criação/atualização de uma atividade.
// A data chega como string no formato YYYY-MM-DD.
type ActivityRequest struct {
	CustomerID    string                 `json:"customer_id"`
	Date          string                 `json:"date"`
	Services      []domain.ServiceCharge `json:"services"`
	Products      []domain.ProductCharge `json:"products"`
	PaymentMethod string                 `json:"payment_method"`
}

func (req *ActivityRequest) toInput() (*domain.ActivityInput, error) {
	var date time.Time
	if req.Date != "" {
		parsed, err := time.Parse(time.DateOnly, req.Date)
		if err != nil {
			return nil, err
		}
		date = parsed
	}

	return &domain.ActivityInput{
		CustomerID:    req.CustomerID,
		Date:          date,
		Services:      req.Services,
		Products:      req.Products,
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
	}, nil
}

func ListActivities(service activity.Coordinator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		activities, err := service.ListActivities()
		if err != nil {
			logrus.Error("Error listing activities:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar atividades no banco de dados", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(activities); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func GetActivity(service activity.Coordinator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da atividade é obrigatório", nil)
			return
		}

		result, err := service.GetActivity(id)
		if err != nil {
			if errors.Is(err, activity.ErrActivityNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrNotFound, "Atividade não encontrada", nil)
				return
			}

			logrus.Error("Error fetching activity:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar atividade no banco de dados", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func CreateActivity(service activity.Coordinator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req ActivityRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		input, err := req.toInput()
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida. Use o formato YYYY-MM-DD", nil)
			return
		}

		created, err := service.CreateActivity(input)
		if err != nil {
			writeActivityError(w, err, "Erro ao criar atividade")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(created); err != nil {
			logrus.Error("Error encoding response:", err)
		}
	})
}

func UpdateActivity(service activity.Coordinator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da atividade é obrigatório", nil)
			return
		}

		var req ActivityRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		input, err := req.toInput()
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida. Use o formato YYYY-MM-DD", nil)
			return
		}

		updated, err := service.UpdateActivity(id, input)
		if err != nil {
			writeActivityError(w, err, "Erro ao atualizar atividade")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(updated); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func DeleteActivity(service activity.Coordinator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da atividade é obrigatório", nil)
			return
		}

		if err := service.DeleteActivity(id); err != nil {
			writeActivityError(w, err, "Erro ao excluir atividade")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// writeActivityError traduz os erros do coordenador para a resposta da
// API. A falha de escrita parcial leva o passo e a atividade nos
// detalhes para permitir a reconciliação manual.
func writeActivityError(w http.ResponseWriter, err error, message string) {
	logrus.Error(message+":", err)

	var partialErr *activity.PartialWriteError
	if errors.As(err, &partialErr) {
		apiErrors.WriteError(w, apiErrors.ErrPartialWrite, message, map[string]interface{}{
			"activity_id": partialErr.ActivityID,
			"failed_step": string(partialErr.Step),
		})
		return
	}

	var persistErr *activity.PersistenceError
	if errors.As(err, &persistErr) {
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, message, map[string]interface{}{
			"failed_step": string(persistErr.Step),
		})
		return
	}

	switch {
	case errors.Is(err, activity.ErrActivityNotFound):
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Atividade não encontrada", nil)

	case errors.Is(err, activity.ErrCustomerRequired):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Cliente é obrigatório", nil)

	case errors.Is(err, activity.ErrDateRequired):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Data é obrigatória", nil)

	case errors.Is(err, activity.ErrInvalidPaymentMethod):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Meio de pagamento inválido", nil)

	case errors.Is(err, activity.ErrOperationInFlight):
		apiErrors.WriteError(w, apiErrors.ErrConflict, "Já existe uma operação em andamento para esta atividade", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, message, nil)
	}
}
