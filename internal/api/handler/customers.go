package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/salon-manager-api/infrastructure/repository"
	"github.com/vfg2006/salon-manager-api/internal/domain"
	"github.com/vfg2006/salon-manager-api/pkg/apiErrors"
	"github.com/vfg2006/salon-manager-api/pkg/log"
)

// CustomerRequest é o payload de criação e atualização de clientes.
type CustomerRequest struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Gender    string  `json:"gender"`
	BirthDate *string `json:"birth_date,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
}

func (r CustomerRequest) toCustomer() (*domain.Customer, error) {
	customer := &domain.Customer{
		FirstName: strings.TrimSpace(r.FirstName),
		LastName:  strings.TrimSpace(r.LastName),
		Gender:    domain.Gender(r.Gender),
		Email:     r.Email,
		Phone:     r.Phone,
	}

	if r.BirthDate != nil && *r.BirthDate != "" {
		parsed, err := time.Parse(time.DateOnly, *r.BirthDate)
		if err != nil {
			return nil, err
		}
		customer.BirthDate = &parsed
	}

	return customer, nil
}

// NoteRequest é o payload de criação de observações de um cliente.
type NoteRequest struct {
	Content string `json:"content"`
}

// ListCustomers lista todos os clientes cadastrados
func ListCustomers(repo repository.CustomerRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		customers, err := repo.ListCustomers()
		if err != nil {
			logger.WithError(err).Error("clientes: erro ao listar clientes")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar clientes", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(customers); err != nil {
			logger.WithError(err).Error("clientes: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// GetCustomer busca um cliente pelo ID
func GetCustomer(repo repository.CustomerRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		params := httprouter.ParamsFromContext(r.Context())
		customerID := params.ByName("id")

		customer, err := repo.GetCustomerByID(customerID)
		if err != nil {
			logger.WithError(err).Error("clientes: erro ao buscar cliente")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar cliente", nil)
			return
		}

		if customer == nil {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Cliente não encontrado", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(customer); err != nil {
			logger.WithError(err).Error("clientes: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// CreateCustomer cadastra um novo cliente
func CreateCustomer(repo repository.CustomerRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req CustomerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		customer, err := req.toCustomer()
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data de nascimento inválida. Use o formato YYYY-MM-DD", nil)
			return
		}

		if !validateCustomer(w, customer) {
			return
		}

		created, err := repo.CreateCustomer(customer)
		if err != nil {
			logger.WithError(err).Error("clientes: erro ao criar cliente")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao criar cliente", nil)
			return
		}

		logger.WithField("customer_id", created.ID).Info("clientes: cliente criado com sucesso")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(created); err != nil {
			logger.WithError(err).Error("clientes: erro ao codificar resposta")
		}
	})
}

// UpdateCustomer atualiza os dados de um cliente existente
func UpdateCustomer(repo repository.CustomerRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		params := httprouter.ParamsFromContext(r.Context())
		customerID := params.ByName("id")

		var req CustomerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		customer, err := req.toCustomer()
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data de nascimento inválida. Use o formato YYYY-MM-DD", nil)
			return
		}
		customer.ID = customerID

		if !validateCustomer(w, customer) {
			return
		}

		if err := repo.UpdateCustomer(customer); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				apiErrors.WriteError(w, apiErrors.ErrNotFound, "Cliente não encontrado", nil)
				return
			}

			logger.WithError(err).Error("clientes: erro ao atualizar cliente")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar cliente", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(customer); err != nil {
			logger.WithError(err).Error("clientes: erro ao codificar resposta")
		}
	})
}

// DeleteCustomer remove um cliente e suas observações
func DeleteCustomer(repo repository.CustomerRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		params := httprouter.ParamsFromContext(r.Context())
		customerID := params.ByName("id")

		if err := repo.DeleteCustomer(customerID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				apiErrors.WriteError(w, apiErrors.ErrNotFound, "Cliente não encontrado", nil)
				return
			}

			logger.WithError(err).Error("clientes: erro ao remover cliente")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao remover cliente", nil)
			return
		}

		logger.WithField("customer_id", customerID).Info("clientes: cliente removido com sucesso")
		w.WriteHeader(http.StatusNoContent)
	})
}

// ListCustomerNotes lista as observações de um cliente, da mais recente
// para a mais antiga
func ListCustomerNotes(repo repository.CustomerRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		params := httprouter.ParamsFromContext(r.Context())
		customerID := params.ByName("id")

		notes, err := repo.ListNotesByCustomer(customerID)
		if err != nil {
			logger.WithError(err).Error("clientes: erro ao listar observações")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar observações", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(notes); err != nil {
			logger.WithError(err).Error("clientes: erro ao codificar resposta")
		}
	})
}

// CreateCustomerNote adiciona uma observação a um cliente
func CreateCustomerNote(repo repository.CustomerRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		params := httprouter.ParamsFromContext(r.Context())
		customerID := params.ByName("id")

		var req NoteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		if strings.TrimSpace(req.Content) == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "O conteúdo da observação é obrigatório", nil)
			return
		}

		note, err := repo.CreateNote(&domain.CustomerNote{
			CustomerID: customerID,
			Content:    strings.TrimSpace(req.Content),
		})
		if err != nil {
			logger.WithError(err).Error("clientes: erro ao criar observação")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao criar observação", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(note); err != nil {
			logger.WithError(err).Error("clientes: erro ao codificar resposta")
		}
	})
}

// DeleteCustomerNote remove uma observação de um cliente
func DeleteCustomerNote(repo repository.CustomerRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		params := httprouter.ParamsFromContext(r.Context())
		noteID := params.ByName("noteId")

		if err := repo.DeleteNote(noteID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				apiErrors.WriteError(w, apiErrors.ErrNotFound, "Observação não encontrada", nil)
				return
			}

			logger.WithError(err).Error("clientes: erro ao remover observação")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao remover observação", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func validateCustomer(w http.ResponseWriter, customer *domain.Customer) bool {
	if customer.FirstName == "" || customer.LastName == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome e sobrenome são obrigatórios", nil)
		return false
	}

	if customer.Gender != "" && !customer.Gender.Valid() {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Gênero inválido. Use homme, femme ou enfant", nil)
		return false
	}

	return true
}
