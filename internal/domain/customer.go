package domain

import "time"

// Gender classifica o cliente nas categorias usadas pelo salão
type Gender string

const (
	GenderHomme  Gender = "homme"
	GenderFemme  Gender = "femme"
	GenderEnfant Gender = "enfant"
)

// Valid retorna verdadeiro se o gênero é uma das categorias reconhecidas
func (g Gender) Valid() bool {
	switch g {
	case GenderHomme, GenderFemme, GenderEnfant:
		return true
	}
	return false
}

type Customer struct {
	ID        string     `json:"id"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	BirthDate *time.Time `json:"birth_date"`
	Gender    Gender     `json:"gender"`
	Email     *string    `json:"email"`
	Phone     *string    `json:"phone"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CustomerNote é uma anotação livre do histórico de um cliente
type CustomerNote struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customer_id"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
