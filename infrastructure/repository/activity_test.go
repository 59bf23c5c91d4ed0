package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/salon-manager-api/infrastructure/database/postgres"
)

func newMockConnection(t *testing.T) (*postgres.Connection, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &postgres.Connection{DB: db}, mock
}

func activityColumns() []string {
	return []string{
		"id", "customer_id", "date",
		"total_services", "total_products", "total_amount",
		"payment_method", "created_at", "updated_at",
		"first_name", "last_name",
	}
}

// A coluna date é DATE e o driver a entrega como time.Time,
// não como string formatada
func TestListActivities_ScansDateColumn(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewActivityRepository(conn)

	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	mock.ExpectQuery("FROM activities").WillReturnRows(
		sqlmock.NewRows(activityColumns()).
			AddRow("42", "CLI001", date, "30.00", "15.00", "45.00", "carte", now, now, "Marie", "Dupont"),
	)
	mock.ExpectQuery("FROM activity_services").WillReturnRows(
		sqlmock.NewRows([]string{"activity_id", "service_id", "price"}).
			AddRow("42", "SRV001", "30.00"),
	)
	mock.ExpectQuery("FROM activity_products").WillReturnRows(
		sqlmock.NewRows([]string{"activity_id", "product_id", "price", "quantity"}).
			AddRow("42", "PRD001", "5.00", 3),
	)

	activities, err := repo.ListActivities()
	require.NoError(t, err)
	require.Len(t, activities, 1)

	activity := activities[0]
	assert.Equal(t, "42", activity.ID)
	assert.True(t, activity.Date.Equal(date))
	assert.Equal(t, "Marie Dupont", activity.CustomerName)
	assert.True(t, activity.TotalAmount.Equal(decimal.NewFromInt(45)))

	require.Len(t, activity.Services, 1)
	assert.Equal(t, "SRV001", activity.Services[0].ServiceID)
	require.Len(t, activity.Products, 1)
	assert.Equal(t, 3, activity.Products[0].Quantity)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetActivityByID_ScansDateColumn(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewActivityRepository(conn)

	date := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 7, 1, 18, 0, 0, 0, time.UTC)

	mock.ExpectQuery("FROM activities").WillReturnRows(
		sqlmock.NewRows(activityColumns()).
			AddRow("7", "CLI002", date, "0.00", "12.00", "12.00", "especes", now, now, nil, nil),
	)
	mock.ExpectQuery("FROM activity_services").WillReturnRows(
		sqlmock.NewRows([]string{"activity_id", "service_id", "price"}),
	)
	mock.ExpectQuery("FROM activity_products").WillReturnRows(
		sqlmock.NewRows([]string{"activity_id", "product_id", "price", "quantity"}).
			AddRow("7", "PRD002", "6.00", 2),
	)

	activity, err := repo.GetActivityByID("7")
	require.NoError(t, err)
	require.NotNil(t, activity)

	assert.True(t, activity.Date.Equal(date))
	assert.Empty(t, activity.CustomerName)
	assert.Empty(t, activity.Services)
	require.Len(t, activity.Products, 1)

	assert.NoError(t, mock.ExpectationsWereMet())
}
