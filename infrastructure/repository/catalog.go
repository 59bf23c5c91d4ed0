package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/salon-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/salon-manager-api/internal/domain"
	"github.com/vfg2006/salon-manager-api/pkg/utils"
)

const (
	servicesTable = "services"
	productsTable = "products"
)

// CatalogRepository mantém os cadastros de prestações e produtos. O
// dashboard usa os mapas de nomes para resolver os ids dos itens.
type CatalogRepository interface {
	CreateService(service *domain.Service) (*domain.Service, error)
	UpdateService(service *domain.Service) error
	DeleteService(serviceID string) error
	ListServices() ([]*domain.Service, error)
	CreateProduct(product *domain.Product) (*domain.Product, error)
	UpdateProduct(product *domain.Product) error
	DeleteProduct(productID string) error
	ListProducts() ([]*domain.Product, error)
	ServiceNames() (map[string]string, error)
	ProductNames() (map[string]string, error)
}

type catalogRepository struct {
	conn *postgres.Connection
}

func NewCatalogRepository(conn *postgres.Connection) CatalogRepository {
	return &catalogRepository{
		conn: conn,
	}
}

func (r *catalogRepository) CreateService(service *domain.Service) (*domain.Service, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar id da prestação: %w", err)
	}
	service.ID = id

	if err := r.create(servicesTable, service.ID, service.Name, service.Description); err != nil {
		return nil, err
	}

	return service, nil
}

func (r *catalogRepository) UpdateService(service *domain.Service) error {
	return r.update(servicesTable, service.ID, service.Name, service.Description)
}

func (r *catalogRepository) DeleteService(serviceID string) error {
	return r.delete(servicesTable, serviceID)
}

func (r *catalogRepository) ListServices() ([]*domain.Service, error) {
	rows, err := r.list(servicesTable)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		service := &domain.Service{}
		if err := rows.Scan(&service.ID, &service.Name, &service.Description, &service.CreatedAt, &service.UpdatedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear prestação: %w", err)
		}
		services = append(services, service)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return services, nil
}

func (r *catalogRepository) CreateProduct(product *domain.Product) (*domain.Product, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar id do produto: %w", err)
	}
	product.ID = id

	if err := r.create(productsTable, product.ID, product.Name, product.Description); err != nil {
		return nil, err
	}

	return product, nil
}

func (r *catalogRepository) UpdateProduct(product *domain.Product) error {
	return r.update(productsTable, product.ID, product.Name, product.Description)
}

func (r *catalogRepository) DeleteProduct(productID string) error {
	return r.delete(productsTable, productID)
}

func (r *catalogRepository) ListProducts() ([]*domain.Product, error) {
	rows, err := r.list(productsTable)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]*domain.Product, 0)
	for rows.Next() {
		product := &domain.Product{}
		if err := rows.Scan(&product.ID, &product.Name, &product.Description, &product.CreatedAt, &product.UpdatedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear produto: %w", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return products, nil
}

// ServiceNames retorna o mapa id -> nome das prestações do catálogo
func (r *catalogRepository) ServiceNames() (map[string]string, error) {
	return r.names(servicesTable)
}

// ProductNames retorna o mapa id -> nome dos produtos do catálogo
func (r *catalogRepository) ProductNames() (map[string]string, error) {
	return r.names(productsTable)
}

func (r *catalogRepository) create(table, id, name string, description *string) error {
	query, args, err := squirrel.
		Insert(table).
		Columns("id", "name", "description").
		Values(id, name, description).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao inserir em %s: %w", table, err)
	}

	return nil
}

func (r *catalogRepository) update(table, id, name string, description *string) error {
	query, args, err := squirrel.
		Update(table).
		Set("name", name).
		Set("description", description).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar em %s: %w", table, err)
	}

	return checkAffected(result)
}

func (r *catalogRepository) delete(table, id string) error {
	query, args, err := squirrel.
		Delete(table).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao excluir em %s: %w", table, err)
	}

	return checkAffected(result)
}

func (r *catalogRepository) list(table string) (*sql.Rows, error) {
	query, args, err := squirrel.
		Select("id", "name", "description", "created_at", "updated_at").
		From(table).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return rows, nil
}

func (r *catalogRepository) names(table string) (map[string]string, error) {
	query, args, err := squirrel.
		Select("id", "name").
		From(table).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	names := make(map[string]string)
	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("erro ao escanear nome: %w", err)
		}
		names[id] = name
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return names, nil
}
