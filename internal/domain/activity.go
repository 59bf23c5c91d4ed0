package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod identifica o meio de pagamento de uma atividade
type PaymentMethod string

const (
	PaymentEspeces PaymentMethod = "especes"
	PaymentCheque  PaymentMethod = "cheque"
	PaymentCarte   PaymentMethod = "carte"
	PaymentAutres  PaymentMethod = "autres"
)

// PaymentMethods lista todos os meios de pagamento reconhecidos, na ordem
// em que aparecem no dashboard
var PaymentMethods = []PaymentMethod{
	PaymentEspeces,
	PaymentCheque,
	PaymentCarte,
	PaymentAutres,
}

// Valid retorna verdadeiro se o meio de pagamento é um dos reconhecidos
func (p PaymentMethod) Valid() bool {
	switch p {
	case PaymentEspeces, PaymentCheque, PaymentCarte, PaymentAutres:
		return true
	}
	return false
}

// ServiceCharge representa uma prestação cobrada em uma atividade, com o
// preço capturado no momento da venda (pode diferir do preço de catálogo)
type ServiceCharge struct {
	ServiceID string          `json:"service_id"`
	Price     decimal.Decimal `json:"price"`
}

// ProductCharge representa unidades de um produto vendidas em uma
// atividade, com o preço unitário capturado no momento da venda
type ProductCharge struct {
	ProductID string          `json:"product_id"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

// Total retorna o valor da linha (preço unitário x quantidade)
func (p ProductCharge) Total() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Quantity)))
}

// Activity representa uma visita de cliente: o registro pai com os totais
// desnormalizados e as duas coleções de itens que ele possui com
// exclusividade. Os itens não têm ciclo de vida próprio: são recriados
// por completo a cada gravação e removidos em cascata com o pai.
type Activity struct {
	ID            string          `json:"id"`
	CustomerID    string          `json:"customer_id"`
	Date          time.Time       `json:"date"`
	Services      []ServiceCharge `json:"services"`
	Products      []ProductCharge `json:"products"`
	TotalServices decimal.Decimal `json:"total_services"`
	TotalProducts decimal.Decimal `json:"total_products"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	CustomerName  string          `json:"customer_name,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ActivityInput é o payload de criação/atualização de uma atividade.
// Os totais nunca vêm do chamador: são sempre derivados dos itens.
type ActivityInput struct {
	CustomerID    string          `json:"customer_id"`
	Date          time.Time       `json:"date"`
	Services      []ServiceCharge `json:"services"`
	Products      []ProductCharge `json:"products"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
}

// ComputeTotals deriva os subtotais de prestações e produtos e o total
// geral a partir das listas de itens. Função pura: listas vazias
// resultam em totais zero e a soma é exata em decimal fixo, sem erro de
// arredondamento binário acumulado.
func ComputeTotals(services []ServiceCharge, products []ProductCharge) (serviceTotal, productTotal, grandTotal decimal.Decimal) {
	serviceTotal = decimal.Zero
	for _, s := range services {
		serviceTotal = serviceTotal.Add(s.Price)
	}

	productTotal = decimal.Zero
	for _, p := range products {
		productTotal = productTotal.Add(p.Total())
	}

	return serviceTotal, productTotal, serviceTotal.Add(productTotal)
}
