package activity

import (
	"database/sql"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/salon-manager-api/infrastructure/repository"
	"github.com/vfg2006/salon-manager-api/internal/domain"
)

// Coordinator monta e persiste atividades mantendo os totais derivados e
// as coleções de itens consistentes com as listas recebidas. A sequência
// de escritas é multi-tabela e NÃO transacional: cada passo só é emitido
// depois da resposta do anterior, e o primeiro erro interrompe os passos
// restantes sem desfazer os já confirmados.
type Coordinator interface {
	CreateActivity(input *domain.ActivityInput) (*domain.Activity, error)
	UpdateActivity(activityID string, input *domain.ActivityInput) (*domain.Activity, error)
	DeleteActivity(activityID string) error
	GetActivity(activityID string) (*domain.Activity, error)
	ListActivities() ([]*domain.Activity, error)
}

type Service struct {
	repo repository.ActivityRepository

	// Guarda de exclusão mútua por atividade: impede que uma segunda
	// submissão para o mesmo id intercale com uma sequência em andamento
	pendingMu sync.Mutex
	pending   map[string]struct{}
}

func NewService(repo repository.ActivityRepository) *Service {
	return &Service{
		repo:    repo,
		pending: make(map[string]struct{}),
	}
}

// CreateActivity persiste uma nova atividade em três passos: pai com os
// totais calculados, itens de prestação e itens de produto. Listas
// vazias pulam o passo de inserção correspondente.
func (s *Service) CreateActivity(input *domain.ActivityInput) (*domain.Activity, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	activity := buildActivity(input)

	id, err := s.repo.InsertActivity(activity)
	if err != nil {
		return nil, newPersistenceError(StepInsertActivity, err)
	}
	activity.ID = id

	if err := s.repo.InsertServiceCharges(id, input.Services); err != nil {
		return nil, newPartialWriteError(id, StepInsertServices, err)
	}

	if err := s.repo.InsertProductCharges(id, input.Products); err != nil {
		return nil, newPartialWriteError(id, StepInsertProducts, err)
	}

	logrus.WithFields(logrus.Fields{
		"activity_id":  id,
		"customer_id":  activity.CustomerID,
		"total_amount": activity.TotalAmount,
	}).Info("Atividade criada")

	return activity, nil
}

// UpdateActivity substitui integralmente a atividade: sobrescreve o pai,
// apaga todas as coleções de itens e as regrava a partir das listas
// recebidas. A política apagar-e-reinserir evita o diff item a item e é
// segura porque nenhum outro componente lê os itens no meio da
// sequência. Repetir a operação com o mesmo payload é idempotente.
func (s *Service) UpdateActivity(activityID string, input *domain.ActivityInput) (*domain.Activity, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	if err := s.acquire(activityID); err != nil {
		return nil, err
	}
	defer s.release(activityID)

	activity := buildActivity(input)
	activity.ID = activityID

	if err := s.repo.UpdateActivity(activity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrActivityNotFound
		}
		return nil, newPersistenceError(StepUpdateActivity, err)
	}

	if err := s.repo.DeleteServiceCharges(activityID); err != nil {
		return nil, newPartialWriteError(activityID, StepDeleteServices, err)
	}

	if err := s.repo.DeleteProductCharges(activityID); err != nil {
		return nil, newPartialWriteError(activityID, StepDeleteProducts, err)
	}

	if err := s.repo.InsertServiceCharges(activityID, input.Services); err != nil {
		return nil, newPartialWriteError(activityID, StepInsertServices, err)
	}

	if err := s.repo.InsertProductCharges(activityID, input.Products); err != nil {
		return nil, newPartialWriteError(activityID, StepInsertProducts, err)
	}

	logrus.WithFields(logrus.Fields{
		"activity_id":  activityID,
		"total_amount": activity.TotalAmount,
	}).Info("Atividade atualizada")

	return activity, nil
}

// DeleteActivity remove o registro pai; os itens são removidos em
// cascata pelo schema, não por este componente
func (s *Service) DeleteActivity(activityID string) error {
	if err := s.acquire(activityID); err != nil {
		return err
	}
	defer s.release(activityID)

	if err := s.repo.DeleteActivity(activityID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrActivityNotFound
		}
		return newPersistenceError(StepDeleteActivity, err)
	}

	logrus.WithField("activity_id", activityID).Info("Atividade excluída")
	return nil
}

func (s *Service) GetActivity(activityID string) (*domain.Activity, error) {
	activity, err := s.repo.GetActivityByID(activityID)
	if err != nil {
		return nil, err
	}
	if activity == nil {
		return nil, ErrActivityNotFound
	}
	return activity, nil
}

func (s *Service) ListActivities() ([]*domain.Activity, error) {
	return s.repo.ListActivities()
}

// acquire registra a atividade no conjunto de operações pendentes;
// falha se já houver uma operação em andamento para o mesmo id
func (s *Service) acquire(activityID string) error {
	s.pendingMu.Lock()
	defer s.pendingMu.Unlock()

	if _, ok := s.pending[activityID]; ok {
		return ErrOperationInFlight
	}

	s.pending[activityID] = struct{}{}
	return nil
}

func (s *Service) release(activityID string) {
	s.pendingMu.Lock()
	defer s.pendingMu.Unlock()
	delete(s.pending, activityID)
}

func validateInput(input *domain.ActivityInput) error {
	if input == nil || input.CustomerID == "" {
		return ErrCustomerRequired
	}

	if input.Date.IsZero() {
		return ErrDateRequired
	}

	if !input.PaymentMethod.Valid() {
		return ErrInvalidPaymentMethod
	}

	// Atividade sem nenhum item é permitida (total zero), mas fica
	// registrada para o operador conferir se foi intencional
	if len(input.Services) == 0 && len(input.Products) == 0 {
		logrus.WithField("customer_id", input.CustomerID).
			Warn("Atividade sem prestações nem produtos")
	}

	return nil
}

func buildActivity(input *domain.ActivityInput) *domain.Activity {
	totalServices, totalProducts, totalAmount := domain.ComputeTotals(input.Services, input.Products)

	return &domain.Activity{
		CustomerID:    input.CustomerID,
		Date:          input.Date,
		Services:      input.Services,
		Products:      input.Products,
		TotalServices: totalServices,
		TotalProducts: totalProducts,
		TotalAmount:   totalAmount,
		PaymentMethod: input.PaymentMethod,
	}
}
