package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/salon-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/salon-manager-api/internal/domain"
	"github.com/vfg2006/salon-manager-api/pkg/utils"
)

const (
	customersTable     = "customers c"
	customerNotesTable = "customer_notes"
)

type CustomerRepository interface {
	CreateCustomer(customer *domain.Customer) (*domain.Customer, error)
	UpdateCustomer(customer *domain.Customer) error
	DeleteCustomer(customerID string) error
	GetCustomerByID(customerID string) (*domain.Customer, error)
	ListCustomers() ([]*domain.Customer, error)
	CreateNote(note *domain.CustomerNote) (*domain.CustomerNote, error)
	DeleteNote(noteID string) error
	ListNotesByCustomer(customerID string) ([]*domain.CustomerNote, error)
}

type customerRepository struct {
	conn *postgres.Connection
}

func NewCustomerRepository(conn *postgres.Connection) CustomerRepository {
	return &customerRepository{
		conn: conn,
	}
}

func (r *customerRepository) CreateCustomer(customer *domain.Customer) (*domain.Customer, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar id do cliente: %w", err)
	}
	customer.ID = id

	var birthDate interface{}
	if customer.BirthDate != nil {
		birthDate = customer.BirthDate.Format(time.DateOnly)
	}

	query, args, err := squirrel.
		Insert("customers").
		Columns("id", "first_name", "last_name", "birth_date", "gender", "email", "phone").
		Values(customer.ID, customer.FirstName, customer.LastName, birthDate, customer.Gender, customer.Email, customer.Phone).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return nil, fmt.Errorf("erro ao inserir cliente: %w", err)
	}

	return customer, nil
}

func (r *customerRepository) UpdateCustomer(customer *domain.Customer) error {
	queryBuilder := squirrel.
		Update("customers").
		Set("first_name", customer.FirstName).
		Set("last_name", customer.LastName).
		Set("gender", customer.Gender).
		Set("email", customer.Email).
		Set("phone", customer.Phone).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": customer.ID}).
		PlaceholderFormat(squirrel.Dollar)

	if customer.BirthDate != nil {
		queryBuilder = queryBuilder.Set("birth_date", customer.BirthDate.Format(time.DateOnly))
	} else {
		queryBuilder = queryBuilder.Set("birth_date", nil)
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar cliente: %w", err)
	}

	return checkAffected(result)
}

func (r *customerRepository) DeleteCustomer(customerID string) error {
	query, args, err := squirrel.
		Delete("customers").
		Where(squirrel.Eq{"id": customerID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao excluir cliente: %w", err)
	}

	return checkAffected(result)
}

func (r *customerRepository) GetCustomerByID(customerID string) (*domain.Customer, error) {
	query, args, err := squirrel.
		Select("c.id, c.first_name, c.last_name, c.birth_date, c.gender, c.email, c.phone, c.created_at, c.updated_at").
		From(customersTable).
		Where(squirrel.Eq{"c.id": customerID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	customer, err := r.scanCustomerRow(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear cliente: %w", err)
	}

	return customer, nil
}

func (r *customerRepository) ListCustomers() ([]*domain.Customer, error) {
	query, args, err := squirrel.
		Select("c.id, c.first_name, c.last_name, c.birth_date, c.gender, c.email, c.phone, c.created_at, c.updated_at").
		From(customersTable).
		OrderBy("c.last_name ASC", "c.first_name ASC").
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

	customers := make([]*domain.Customer, 0)
	for rows.Next() {
		customer, err := r.scanCustomerRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear cliente: %w", err)
		}
		customers = append(customers, customer)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return customers, nil
}

func (r *customerRepository) CreateNote(note *domain.CustomerNote) (*domain.CustomerNote, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar id da anotação: %w", err)
	}
	note.ID = id

	query, args, err := squirrel.
		Insert(customerNotesTable).
		Columns("id", "customer_id", "content").
		Values(note.ID, note.CustomerID, note.Content).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return nil, fmt.Errorf("erro ao inserir anotação: %w", err)
	}

	return note, nil
}

func (r *customerRepository) DeleteNote(noteID string) error {
	query, args, err := squirrel.
		Delete(customerNotesTable).
		Where(squirrel.Eq{"id": noteID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao excluir anotação: %w", err)
	}

	return checkAffected(result)
}

func (r *customerRepository) ListNotesByCustomer(customerID string) ([]*domain.CustomerNote, error) {
	query, args, err := squirrel.
		Select("id", "customer_id", "content", "created_at", "updated_at").
		From(customerNotesTable).
		Where(squirrel.Eq{"customer_id": customerID}).
		OrderBy("created_at DESC").
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

	notes := make([]*domain.CustomerNote, 0)
	for rows.Next() {
		note := &domain.CustomerNote{}
		if err := rows.Scan(&note.ID, &note.CustomerID, &note.Content, &note.CreatedAt, &note.UpdatedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear anotação: %w", err)
		}
		notes = append(notes, note)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return notes, nil
}

func (r *customerRepository) scanCustomerRow(row *sql.Row) (*domain.Customer, error) {
	customer := &domain.Customer{}
	var birthDate sql.NullTime

	if err := row.Scan(
		&customer.ID,
		&customer.FirstName,
		&customer.LastName,
		&birthDate,
		&customer.Gender,
		&customer.Email,
		&customer.Phone,
		&customer.CreatedAt,
		&customer.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if birthDate.Valid {
		date := birthDate.Time
		customer.BirthDate = &date
	}

	return customer, nil
}

func (r *customerRepository) scanCustomerRows(rows *sql.Rows) (*domain.Customer, error) {
	customer := &domain.Customer{}
	var birthDate sql.NullTime

	if err := rows.Scan(
		&customer.ID,
		&customer.FirstName,
		&customer.LastName,
		&birthDate,
		&customer.Gender,
		&customer.Email,
		&customer.Phone,
		&customer.CreatedAt,
		&customer.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if birthDate.Valid {
		date := birthDate.Time
		customer.BirthDate = &date
	}

	return customer, nil
}
