package handler

import (
	"net/http"

	"github.com/vfg2006/salon-manager-api/infrastructure/repository"
	"github.com/vfg2006/salon-manager-api/internal/api/handler/router"
	"github.com/vfg2006/salon-manager-api/internal/config"
	"github.com/vfg2006/salon-manager-api/internal/usecases/activity"
	"github.com/vfg2006/salon-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/salon-manager-api/internal/usecases/reporting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator, cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: RegisterUser(service, cfg),
		},
	}
}

func Activities(service activity.Coordinator, catalog repository.CatalogRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/activities",
			Method:  http.MethodGet,
			Handler: ListActivities(service),
		},
		{
			// Rota fora de /v1/activities/:id para não conflitar com o
			// wildcard do httprouter
			Path:    "/v1/export/activities",
			Method:  http.MethodGet,
			Handler: ExportActivities(service, catalog),
		},
		{
			Path:    "/v1/activities/:id",
			Method:  http.MethodGet,
			Handler: GetActivity(service),
		},
		{
			Path:    "/v1/activities",
			Method:  http.MethodPost,
			Handler: CreateActivity(service),
		},
		{
			Path:    "/v1/activities/:id",
			Method:  http.MethodPut,
			Handler: UpdateActivity(service),
		},
		{
			Path:    "/v1/activities/:id",
			Method:  http.MethodDelete,
			Handler: DeleteActivity(service),
		},
	}
}

func Dashboard(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboardReport(service),
		},
	}
}

func Customers(repo repository.CustomerRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/customers",
			Method:  http.MethodGet,
			Handler: ListCustomers(repo),
		},
		{
			Path:    "/v1/customers/:id",
			Method:  http.MethodGet,
			Handler: GetCustomer(repo),
		},
		{
			Path:    "/v1/customers",
			Method:  http.MethodPost,
			Handler: CreateCustomer(repo),
		},
		{
			Path:    "/v1/customers/:id",
			Method:  http.MethodPut,
			Handler: UpdateCustomer(repo),
		},
		{
			Path:    "/v1/customers/:id",
			Method:  http.MethodDelete,
			Handler: DeleteCustomer(repo),
		},
		{
			Path:    "/v1/customers/:id/notes",
			Method:  http.MethodGet,
			Handler: ListCustomerNotes(repo),
		},
		{
			Path:    "/v1/customers/:id/notes",
			Method:  http.MethodPost,
			Handler: CreateCustomerNote(repo),
		},
		{
			Path:    "/v1/customers/:id/notes/:noteId",
			Method:  http.MethodDelete,
			Handler: DeleteCustomerNote(repo),
		},
	}
}

func Catalog(repo repository.CatalogRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/services",
			Method:  http.MethodGet,
			Handler: ListServices(repo),
		},
		{
			Path:    "/v1/services",
			Method:  http.MethodPost,
			Handler: CreateService(repo),
		},
		{
			Path:    "/v1/services/:id",
			Method:  http.MethodPut,
			Handler: UpdateService(repo),
		},
		{
			Path:    "/v1/services/:id",
			Method:  http.MethodDelete,
			Handler: DeleteService(repo),
		},
		{
			Path:    "/v1/products",
			Method:  http.MethodGet,
			Handler: ListProducts(repo),
		},
		{
			Path:    "/v1/products",
			Method:  http.MethodPost,
			Handler: CreateProduct(repo),
		},
		{
			Path:    "/v1/products/:id",
			Method:  http.MethodPut,
			Handler: UpdateProduct(repo),
		},
		{
			Path:    "/v1/products/:id",
			Method:  http.MethodDelete,
			Handler: DeleteProduct(repo),
		},
	}
}
