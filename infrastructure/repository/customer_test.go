package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func customerColumns() []string {
	return []string{
		"id", "first_name", "last_name", "birth_date",
		"gender", "email", "phone", "created_at", "updated_at",
	}
}

// birth_date é DATE e chega do driver como time.Time
func TestGetCustomerByID_ScansBirthDate(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewCustomerRepository(conn)

	birthDate := time.Date(1990, 5, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery("FROM customers").WillReturnRows(
		sqlmock.NewRows(customerColumns()).
			AddRow("CLI001", "Marie", "Dupont", birthDate, "femme", nil, nil, now, now),
	)

	customer, err := repo.GetCustomerByID("CLI001")
	require.NoError(t, err)
	require.NotNil(t, customer)

	assert.Equal(t, "Marie", customer.FirstName)
	require.NotNil(t, customer.BirthDate)
	assert.True(t, customer.BirthDate.Equal(birthDate))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListCustomers_NullBirthDate(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewCustomerRepository(conn)

	birthDate := time.Date(1985, 11, 2, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery("FROM customers").WillReturnRows(
		sqlmock.NewRows(customerColumns()).
			AddRow("CLI002", "Jean", "Martin", birthDate, "homme", nil, nil, now, now).
			AddRow("CLI003", "Sophie", "Petit", nil, "femme", nil, nil, now, now),
	)

	customers, err := repo.ListCustomers()
	require.NoError(t, err)
	require.Len(t, customers, 2)

	require.NotNil(t, customers[0].BirthDate)
	assert.True(t, customers[0].BirthDate.Equal(birthDate))
	assert.Nil(t, customers[1].BirthDate)

	assert.NoError(t, mock.ExpectationsWereMet())
}
