package activity

import (
	"errors"
	"fmt"
)

// Erros de validação, detectados antes de qualquer escrita
var (
	ErrCustomerRequired     = errors.New("customer is required")
	ErrDateRequired         = errors.New("date is required")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrActivityNotFound     = errors.New("activity not found")

	// ErrOperationInFlight indica que já existe uma operação em andamento
	// para a mesma atividade (proteção contra submissão duplicada)
	ErrOperationInFlight = errors.New("another operation is already running for this activity")
)

// Step identifica o passo da sequência de escrita que falhou. Sem
// transação entre as tabelas, o operador precisa saber exatamente onde a
// sequência parou para reconciliar manualmente.
type Step string

const (
	StepInsertActivity Step = "insert_activity"
	StepUpdateActivity Step = "update_activity"
	StepDeleteServices Step = "delete_services"
	StepDeleteProducts Step = "delete_products"
	StepInsertServices Step = "insert_services"
	StepInsertProducts Step = "insert_products"
	StepDeleteActivity Step = "delete_activity"
)

// PersistenceError representa a falha de um dos passos de escrita. Os
// passos já confirmados NÃO são desfeitos: o chamador deve repetir a
// operação inteira (a atualização é idempotente; a criação não é).
type PersistenceError struct {
	Step Step
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence error at step %s: %v", e.Step, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// PartialWriteError é o caso específico em que o registro pai foi
// gravado mas uma das coleções de itens não: o banco de dados ficou em
// estado intermediário conhecido
type PartialWriteError struct {
	PersistenceError
	ActivityID string
}

func (e *PartialWriteError) Error() string {
	return fmt.Sprintf("partial write on activity %s: %v", e.ActivityID, &e.PersistenceError)
}

func newPersistenceError(step Step, err error) *PersistenceError {
	return &PersistenceError{Step: step, Err: err}
}

func newPartialWriteError(activityID string, step Step, err error) *PartialWriteError {
	return &PartialWriteError{
		PersistenceError: PersistenceError{Step: step, Err: err},
		ActivityID:       activityID,
	}
}
