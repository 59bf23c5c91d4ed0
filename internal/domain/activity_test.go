package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name         string
		services     []ServiceCharge
		products     []ProductCharge
		wantServices string
		wantProducts string
		wantTotal    string
	}{
		{
			name:         "Listas vazias resultam em totais zero",
			services:     nil,
			products:     nil,
			wantServices: "0",
			wantProducts: "0",
			wantTotal:    "0",
		},
		{
			name: "Prestação de 30 e produto de 5 x3",
			services: []ServiceCharge{
				{ServiceID: "svc1", Price: decimal.RequireFromString("30.00")},
			},
			products: []ProductCharge{
				{ProductID: "p1", Price: decimal.RequireFromString("5.00"), Quantity: 3},
			},
			wantServices: "30",
			wantProducts: "15",
			wantTotal:    "45",
		},
		{
			name: "Somente prestações",
			services: []ServiceCharge{
				{ServiceID: "svc1", Price: decimal.RequireFromString("12.50")},
				{ServiceID: "svc2", Price: decimal.RequireFromString("7.50")},
			},
			wantServices: "20",
			wantProducts: "0",
			wantTotal:    "20",
		},
		{
			name: "Somente produtos",
			products: []ProductCharge{
				{ProductID: "p1", Price: decimal.RequireFromString("9.90"), Quantity: 2},
				{ProductID: "p2", Price: decimal.RequireFromString("0.10"), Quantity: 1},
			},
			wantServices: "0",
			wantProducts: "19.9",
			wantTotal:    "19.9",
		},
		{
			name: "Soma decimal exata sem erro de ponto flutuante",
			services: []ServiceCharge{
				{ServiceID: "s", Price: decimal.RequireFromString("0.10")},
				{ServiceID: "s", Price: decimal.RequireFromString("0.10")},
				{ServiceID: "s", Price: decimal.RequireFromString("0.10")},
			},
			wantServices: "0.3",
			wantProducts: "0",
			wantTotal:    "0.3",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			serviceTotal, productTotal, grandTotal := ComputeTotals(tc.services, tc.products)

			assert.True(t, serviceTotal.Equal(decimal.RequireFromString(tc.wantServices)),
				"total de prestações: esperado %s, obtido %s", tc.wantServices, serviceTotal)
			assert.True(t, productTotal.Equal(decimal.RequireFromString(tc.wantProducts)),
				"total de produtos: esperado %s, obtido %s", tc.wantProducts, productTotal)
			assert.True(t, grandTotal.Equal(decimal.RequireFromString(tc.wantTotal)),
				"total geral: esperado %s, obtido %s", tc.wantTotal, grandTotal)

			// O total geral é sempre a soma dos dois subtotais
			assert.True(t, grandTotal.Equal(serviceTotal.Add(productTotal)))
		})
	}
}

func TestProductChargeTotal(t *testing.T) {
	charge := ProductCharge{
		ProductID: "p1",
		Price:     decimal.RequireFromString("4.25"),
		Quantity:  4,
	}

	assert.True(t, charge.Total().Equal(decimal.RequireFromString("17.00")))
}
