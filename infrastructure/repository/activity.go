package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/salon-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/salon-manager-api/internal/domain"
)

const (
	activitiesTable       = "activities a"
	activityServicesTable = "activity_services"
	activityProductsTable = "activity_products"
)

// ActivityRepository expõe cada passo de escrita separadamente: o
// coordenador de atividades encadeia os passos na ordem definida e trata
// a falha de cada um, já que não há transação entre as tabelas.
type ActivityRepository interface {
	InsertActivity(activity *domain.Activity) (string, error)
	UpdateActivity(activity *domain.Activity) error
	DeleteActivity(activityID string) error
	InsertServiceCharges(activityID string, charges []domain.ServiceCharge) error
	InsertProductCharges(activityID string, charges []domain.ProductCharge) error
	DeleteServiceCharges(activityID string) error
	DeleteProductCharges(activityID string) error
	GetActivityByID(activityID string) (*domain.Activity, error)
	ListActivities() ([]*domain.Activity, error)
	ListActivitiesByDateRange(startDate, endDate time.Time) ([]*domain.Activity, error)
}

type activityRepository struct {
	conn *postgres.Connection
}

func NewActivityRepository(conn *postgres.Connection) ActivityRepository {
	return &activityRepository{
		conn: conn,
	}
}

// InsertActivity grava o registro pai com os totais já calculados e
// retorna o id gerado pelo banco
func (r *activityRepository) InsertActivity(activity *domain.Activity) (string, error) {
	query, args, err := squirrel.
		Insert("activities").
		Columns("customer_id", "date", "total_services", "total_products", "total_amount", "payment_method").
		Values(
			activity.CustomerID,
			activity.Date.Format(time.DateOnly),
			activity.TotalServices,
			activity.TotalProducts,
			activity.TotalAmount,
			activity.PaymentMethod,
		).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("erro ao construir a query: %w", err)
	}

	var id string
	if err := r.conn.QueryRow(query, args...).Scan(&id); err != nil {
		return "", fmt.Errorf("erro ao inserir atividade: %w", err)
	}

	return id, nil
}

// UpdateActivity sobrescreve os campos escalares e os totais do registro
// pai, por id
func (r *activityRepository) UpdateActivity(activity *domain.Activity) error {
	query, args, err := squirrel.
		Update("activities").
		Set("customer_id", activity.CustomerID).
		Set("date", activity.Date.Format(time.DateOnly)).
		Set("total_services", activity.TotalServices).
		Set("total_products", activity.TotalProducts).
		Set("total_amount", activity.TotalAmount).
		Set("payment_method", activity.PaymentMethod).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": activity.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar atividade: %w", err)
	}

	return checkAffected(result)
}

// DeleteActivity remove apenas o registro pai; os itens filhos são
// removidos em cascata pelo schema
func (r *activityRepository) DeleteActivity(activityID string) error {
	query, args, err := squirrel.
		Delete("activities").
		Where(squirrel.Eq{"id": activityID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao excluir atividade: %w", err)
	}

	return checkAffected(result)
}

// InsertServiceCharges insere em lote os itens de prestação da atividade
func (r *activityRepository) InsertServiceCharges(activityID string, charges []domain.ServiceCharge) error {
	if len(charges) == 0 {
		return nil
	}

	queryBuilder := squirrel.
		Insert(activityServicesTable).
		Columns("activity_id", "service_id", "price")

	for _, charge := range charges {
		queryBuilder = queryBuilder.Values(activityID, charge.ServiceID, charge.Price)
	}

	query, args, err := queryBuilder.
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao inserir prestações da atividade: %w", err)
	}

	return nil
}

// InsertProductCharges insere em lote os itens de produto da atividade
func (r *activityRepository) InsertProductCharges(activityID string, charges []domain.ProductCharge) error {
	if len(charges) == 0 {
		return nil
	}

	queryBuilder := squirrel.
		Insert(activityProductsTable).
		Columns("activity_id", "product_id", "price", "quantity")

	for _, charge := range charges {
		queryBuilder = queryBuilder.Values(activityID, charge.ProductID, charge.Price, charge.Quantity)
	}

	query, args, err := queryBuilder.
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao inserir produtos da atividade: %w", err)
	}

	return nil
}

// DeleteServiceCharges remove todos os itens de prestação da atividade
func (r *activityRepository) DeleteServiceCharges(activityID string) error {
	query, args, err := squirrel.
		Delete(activityServicesTable).
		Where(squirrel.Eq{"activity_id": activityID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao excluir prestações da atividade: %w", err)
	}

	return nil
}

// DeleteProductCharges remove todos os itens de produto da atividade
func (r *activityRepository) DeleteProductCharges(activityID string) error {
	query, args, err := squirrel.
		Delete(activityProductsTable).
		Where(squirrel.Eq{"activity_id": activityID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao excluir produtos da atividade: %w", err)
	}

	return nil
}

func (r *activityRepository) GetActivityByID(activityID string) (*domain.Activity, error) {
	activities, err := r.listActivities(squirrel.Eq{"a.id": activityID})
	if err != nil {
		return nil, err
	}
	if len(activities) == 0 {
		return nil, nil
	}
	return activities[0], nil
}

// ListActivities retorna todas as atividades, mais recentes primeiro,
// com as coleções de itens e o nome do cliente já montados
func (r *activityRepository) ListActivities() ([]*domain.Activity, error) {
	return r.listActivities(nil)
}

// ListActivitiesByDateRange retorna as atividades com data dentro do
// intervalo, inclusivo nas duas extremidades
func (r *activityRepository) ListActivitiesByDateRange(startDate, endDate time.Time) ([]*domain.Activity, error) {
	return r.listActivities(squirrel.And{
		squirrel.GtOrEq{"a.date": startDate.Format(time.DateOnly)},
		squirrel.LtOrEq{"a.date": endDate.Format(time.DateOnly)},
	})
}

func (r *activityRepository) listActivities(whereClause squirrel.Sqlizer) ([]*domain.Activity, error) {
	queryBuilder := squirrel.
		Select(
			"a.id", "a.customer_id", "a.date",
			"a.total_services", "a.total_products", "a.total_amount",
			"a.payment_method", "a.created_at", "a.updated_at",
			"c.first_name", "c.last_name",
		).
		From(activitiesTable).
		LeftJoin("customers c ON c.id = a.customer_id").
		OrderBy("a.date DESC", "a.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if whereClause != nil {
		queryBuilder = queryBuilder.Where(whereClause)
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	activities := make([]*domain.Activity, 0)
	ids := make([]string, 0)
	byID := make(map[string]*domain.Activity)

	for rows.Next() {
		activity, err := r.scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear atividade: %w", err)
		}
		activities = append(activities, activity)
		ids = append(ids, activity.ID)
		byID[activity.ID] = activity
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	if len(activities) == 0 {
		return activities, nil
	}

	if err := r.attachServiceCharges(ids, byID); err != nil {
		return nil, err
	}
	if err := r.attachProductCharges(ids, byID); err != nil {
		return nil, err
	}

	return activities, nil
}

func (r *activityRepository) scanActivity(rows *sql.Rows) (*domain.Activity, error) {
	activity := &domain.Activity{
		Services: make([]domain.ServiceCharge, 0),
		Products: make([]domain.ProductCharge, 0),
	}

	var firstName, lastName sql.NullString

	// A coluna date é DATE: o driver a entrega como time.Time
	if err := rows.Scan(
		&activity.ID,
		&activity.CustomerID,
		&activity.Date,
		&activity.TotalServices,
		&activity.TotalProducts,
		&activity.TotalAmount,
		&activity.PaymentMethod,
		&activity.CreatedAt,
		&activity.UpdatedAt,
		&firstName,
		&lastName,
	); err != nil {
		return nil, err
	}

	if firstName.Valid || lastName.Valid {
		activity.CustomerName = fmt.Sprintf("%s %s", firstName.String, lastName.String)
	}

	return activity, nil
}

func (r *activityRepository) attachServiceCharges(ids []string, byID map[string]*domain.Activity) error {
	query, args, err := squirrel.
		Select("activity_id", "service_id", "price").
		From(activityServicesTable).
		Where(squirrel.Eq{"activity_id": ids}).
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao buscar prestações das atividades: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var activityID string
		var charge domain.ServiceCharge

		if err := rows.Scan(&activityID, &charge.ServiceID, &charge.Price); err != nil {
			return fmt.Errorf("erro ao escanear prestação: %w", err)
		}

		if activity, ok := byID[activityID]; ok {
			activity.Services = append(activity.Services, charge)
		}
	}

	return rows.Err()
}

func (r *activityRepository) attachProductCharges(ids []string, byID map[string]*domain.Activity) error {
	query, args, err := squirrel.
		Select("activity_id", "product_id", "price", "quantity").
		From(activityProductsTable).
		Where(squirrel.Eq{"activity_id": ids}).
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao buscar produtos das atividades: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var activityID string
		var charge domain.ProductCharge

		if err := rows.Scan(&activityID, &charge.ProductID, &charge.Price, &charge.Quantity); err != nil {
			return fmt.Errorf("erro ao escanear produto: %w", err)
		}

		if activity, ok := byID[activityID]; ok {
			activity.Products = append(activity.Products, charge)
		}
	}

	return rows.Err()
}
