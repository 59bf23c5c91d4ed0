package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/salon-manager-api/infrastructure/repository"
	"github.com/vfg2006/salon-manager-api/internal/domain"
	"github.com/vfg2006/salon-manager-api/pkg/apiErrors"
	"github.com/vfg2006/salon-manager-api/pkg/log"
)

// CatalogItemRequest é o payload de criação e atualização de itens do
// catálogo (prestações e produtos)
type CatalogItemRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// ListServices lista as prestações do catálogo em ordem alfabética
func ListServices(repo repository.CatalogRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		services, err := repo.ListServices()
		if err != nil {
			logger.WithError(err).Error("catálogo: erro ao listar prestações")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar prestações", nil)
			return
		}

		writeJSON(w, logger, services)
	})
}

// CreateService cadastra uma nova prestação no catálogo
func CreateService(repo repository.CatalogRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		req, ok := decodeCatalogItem(w, r)
		if !ok {
			return
		}

		service, err := repo.CreateService(&domain.Service{
			Name:        req.Name,
			Description: req.Description,
		})
		if err != nil {
			logger.WithError(err).Error("catálogo: erro ao criar prestação")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao criar prestação", nil)
			return
		}

		logger.WithField("service_id", service.ID).Info("catálogo: prestação criada com sucesso")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(service); err != nil {
			logger.WithError(err).Error("catálogo: erro ao codificar resposta")
		}
	})
}

// UpdateService atualiza uma prestação do catálogo
func UpdateService(repo repository.CatalogRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		params := httprouter.ParamsFromContext(r.Context())
		serviceID := params.ByName("id")

		req, ok := decodeCatalogItem(w, r)
		if !ok {
			return
		}

		service := &domain.Service{
			ID:          serviceID,
			Name:        req.Name,
			Description: req.Description,
		}

		if err := repo.UpdateService(service); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				apiErrors.WriteError(w, apiErrors.ErrNotFound, "Prestação não encontrada", nil)
				return
			}

			logger.WithError(err).Error("catálogo: erro ao atualizar prestação")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar prestação", nil)
			return
		}

		writeJSON(w, logger, service)
	})
}

// DeleteService remove uma prestação do catálogo
func DeleteService(repo repository.CatalogRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		params := httprouter.ParamsFromContext(r.Context())
		serviceID := params.ByName("id")

		if err := repo.DeleteService(serviceID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				apiErrors.WriteError(w, apiErrors.ErrNotFound, "Prestação não encontrada", nil)
				return
			}

			logger.WithError(err).Error("catálogo: erro ao remover prestação")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao remover prestação", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// ListProducts lista os produtos do catálogo em ordem alfabética
func ListProducts(repo repository.CatalogRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		products, err := repo.ListProducts()
		if err != nil {
			logger.WithError(err).Error("catálogo: erro ao listar produtos")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar produtos", nil)
			return
		}

		writeJSON(w, logger, products)
	})
}

// CreateProduct cadastra um novo produto no catálogo
func CreateProduct(repo repository.CatalogRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		req, ok := decodeCatalogItem(w, r)
		if !ok {
			return
		}

		product, err := repo.CreateProduct(&domain.Product{
			Name:        req.Name,
			Description: req.Description,
		})
		if err != nil {
			logger.WithError(err).Error("catálogo: erro ao criar produto")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao criar produto", nil)
			return
		}

		logger.WithField("product_id", product.ID).Info("catálogo: produto criado com sucesso")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(product); err != nil {
			logger.WithError(err).Error("catálogo: erro ao codificar resposta")
		}
	})
}

// UpdateProduct atualiza um produto do catálogo
func UpdateProduct(repo repository.CatalogRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		params := httprouter.ParamsFromContext(r.Context())
		productID := params.ByName("id")

		req, ok := decodeCatalogItem(w, r)
		if !ok {
			return
		}

		product := &domain.Product{
			ID:          productID,
			Name:        req.Name,
			Description: req.Description,
		}

		if err := repo.UpdateProduct(product); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				apiErrors.WriteError(w, apiErrors.ErrNotFound, "Produto não encontrado", nil)
				return
			}

			logger.WithError(err).Error("catálogo: erro ao atualizar produto")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar produto", nil)
			return
		}

		writeJSON(w, logger, product)
	})
}

// DeleteProduct remove um produto do catálogo
func DeleteProduct(repo repository.CatalogRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		params := httprouter.ParamsFromContext(r.Context())
		productID := params.ByName("id")

		if err := repo.DeleteProduct(productID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				apiErrors.WriteError(w, apiErrors.ErrNotFound, "Produto não encontrado", nil)
				return
			}

			logger.WithError(err).Error("catálogo: erro ao remover produto")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao remover produto", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func decodeCatalogItem(w http.ResponseWriter, r *http.Request) (CatalogItemRequest, bool) {
	var req CatalogItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
		return req, false
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "O nome é obrigatório", nil)
		return req, false
	}

	return req, true
}

func writeJSON(w http.ResponseWriter, logger log.Logger, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.WithError(err).Error("erro ao codificar resposta")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
	}
}
