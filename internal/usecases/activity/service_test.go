package activity

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/salon-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/salon-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func validInput() *domain.ActivityInput {
	return &domain.ActivityInput{
		CustomerID: "CLI001",
		Date:       time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Services: []domain.ServiceCharge{
			{ServiceID: "SRV001", Price: decimal.NewFromInt(30)},
		},
		Products: []domain.ProductCharge{
			{ProductID: "PRD001", Price: decimal.NewFromInt(5), Quantity: 3},
		},
		PaymentMethod: domain.PaymentCarte,
	}
}

func TestCreateActivity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockActivityRepository(ctrl)
	service := NewService(mockRepo)

	input := validInput()

	// A ordem dos passos é fixa: pai, prestações, produtos
	parent := mockRepo.EXPECT().
		InsertActivity(gomock.Any()).
		DoAndReturn(func(activity *domain.Activity) (string, error) {
			assert.True(t, activity.TotalServices.Equal(decimal.NewFromInt(30)))
			assert.True(t, activity.TotalProducts.Equal(decimal.NewFromInt(15)))
			assert.True(t, activity.TotalAmount.Equal(decimal.NewFromInt(45)))
			return "42", nil
		})
	services := mockRepo.EXPECT().
		InsertServiceCharges("42", input.Services).
		Return(nil).
		After(parent)
	mockRepo.EXPECT().
		InsertProductCharges("42", input.Products).
		Return(nil).
		After(services)

	created, err := service.CreateActivity(input)
	require.NoError(t, err)
	assert.Equal(t, "42", created.ID)
	assert.True(t, created.TotalAmount.Equal(decimal.NewFromInt(45)))
}

func TestCreateActivity_EmptyCollectionsSkipInserts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockActivityRepository(ctrl)
	service := NewService(mockRepo)

	input := validInput()
	input.Services = nil
	input.Products = nil

	mockRepo.EXPECT().InsertActivity(gomock.Any()).Return("42", nil)
	// As inserções de itens recebem coleções vazias e o repositório as
	// trata como no-op
	mockRepo.EXPECT().InsertServiceCharges("42", gomock.Len(0)).Return(nil)
	mockRepo.EXPECT().InsertProductCharges("42", gomock.Len(0)).Return(nil)

	created, err := service.CreateActivity(input)
	require.NoError(t, err)
	assert.True(t, created.TotalAmount.IsZero())
}

func TestCreateActivity_ValidationHappensBeforeAnyWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockActivityRepository(ctrl)
	service := NewService(mockRepo)

	tests := []struct {
		name    string
		mutate  func(input *domain.ActivityInput)
		wantErr error
	}{
		{
			name:    "cliente ausente",
			mutate:  func(input *domain.ActivityInput) { input.CustomerID = "" },
			wantErr: ErrCustomerRequired,
		},
		{
			name:    "data ausente",
			mutate:  func(input *domain.ActivityInput) { input.Date = time.Time{} },
			wantErr: ErrDateRequired,
		},
		{
			name:    "meio de pagamento inválido",
			mutate:  func(input *domain.ActivityInput) { input.PaymentMethod = "bitcoin" },
			wantErr: ErrInvalidPaymentMethod,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(input)

			// Nenhum método do repositório deve ser chamado
			_, err := service.CreateActivity(input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateActivity_ParentFailureHasNoActivityID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockActivityRepository(ctrl)
	service := NewService(mockRepo)

	dbErr := errors.New("connection reset")
	mockRepo.EXPECT().InsertActivity(gomock.Any()).Return("", dbErr)

	_, err := service.CreateActivity(validInput())

	var persistErr *PersistenceError
	require.ErrorAs(t, err, &persistErr)
	assert.Equal(t, StepInsertActivity, persistErr.Step)
	assert.ErrorIs(t, err, dbErr)

	var partialErr *PartialWriteError
	assert.False(t, errors.As(err, &partialErr))
}

func TestCreateActivity_ServiceInsertFailureHaltsSequence(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockActivityRepository(ctrl)
	service := NewService(mockRepo)

	dbErr := errors.New("unique violation")
	mockRepo.EXPECT().InsertActivity(gomock.Any()).Return("42", nil)
	mockRepo.EXPECT().InsertServiceCharges("42", gomock.Any()).Return(dbErr)
	// InsertProductCharges não deve ser chamado: o primeiro erro
	// interrompe a sequência

	_, err := service.CreateActivity(validInput())

	var partialErr *PartialWriteError
	require.ErrorAs(t, err, &partialErr)
	assert.Equal(t, "42", partialErr.ActivityID)
	assert.Equal(t, StepInsertServices, partialErr.Step)
	assert.ErrorIs(t, err, dbErr)
}

func TestUpdateActivity_StepOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockActivityRepository(ctrl)
	service := NewService(mockRepo)

	input := validInput()

	// Sobrescreve o pai, apaga as duas coleções, regrava as duas
	parent := mockRepo.EXPECT().UpdateActivity(gomock.Any()).Return(nil)
	delServices := mockRepo.EXPECT().DeleteServiceCharges("42").Return(nil).After(parent)
	delProducts := mockRepo.EXPECT().DeleteProductCharges("42").Return(nil).After(delServices)
	insServices := mockRepo.EXPECT().InsertServiceCharges("42", input.Services).Return(nil).After(delProducts)
	mockRepo.EXPECT().InsertProductCharges("42", input.Products).Return(nil).After(insServices)

	updated, err := service.UpdateActivity("42", input)
	require.NoError(t, err)
	assert.Equal(t, "42", updated.ID)
	assert.True(t, updated.TotalAmount.Equal(decimal.NewFromInt(45)))
}

// Reenviar o mesmo payload repete a sequência completa de sobrescrita
// com os mesmos argumentos e produz o mesmo resultado
func TestUpdateActivity_RepeatedSubmissionRepeatsFullSequence(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockActivityRepository(ctrl)
	service := NewService(mockRepo)

	input := validInput()

	captured := make([]*domain.Activity, 0, 2)
	mockRepo.EXPECT().
		UpdateActivity(gomock.Any()).
		Times(2).
		DoAndReturn(func(activity *domain.Activity) error {
			captured = append(captured, activity)
			return nil
		})
	mockRepo.EXPECT().DeleteServiceCharges("42").Return(nil).Times(2)
	mockRepo.EXPECT().DeleteProductCharges("42").Return(nil).Times(2)
	mockRepo.EXPECT().InsertServiceCharges("42", input.Services).Return(nil).Times(2)
	mockRepo.EXPECT().InsertProductCharges("42", input.Products).Return(nil).Times(2)

	first, err := service.UpdateActivity("42", input)
	require.NoError(t, err)
	second, err := service.UpdateActivity("42", input)
	require.NoError(t, err)

	require.Len(t, captured, 2)
	assert.True(t, captured[0].TotalServices.Equal(captured[1].TotalServices))
	assert.True(t, captured[0].TotalProducts.Equal(captured[1].TotalProducts))
	assert.True(t, captured[0].TotalAmount.Equal(captured[1].TotalAmount))
	assert.Equal(t, captured[0].Services, captured[1].Services)
	assert.Equal(t, captured[0].Products, captured[1].Products)

	assert.True(t, first.TotalAmount.Equal(decimal.NewFromInt(45)))
	assert.True(t, second.TotalAmount.Equal(first.TotalAmount))
	assert.Equal(t, first.Services, second.Services)
	assert.Equal(t, first.Products, second.Products)
}

func TestUpdateActivity_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockActivityRepository(ctrl)
	service := NewService(mockRepo)

	mockRepo.EXPECT().UpdateActivity(gomock.Any()).Return(sql.ErrNoRows)

	_, err := service.UpdateActivity("999", validInput())
	assert.ErrorIs(t, err, ErrActivityNotFound)
}

func TestUpdateActivity_DeleteFailureHaltsReinserts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockActivityRepository(ctrl)
	service := NewService(mockRepo)

	dbErr := errors.New("deadlock detected")
	mockRepo.EXPECT().UpdateActivity(gomock.Any()).Return(nil)
	mockRepo.EXPECT().DeleteServiceCharges("42").Return(nil)
	mockRepo.EXPECT().DeleteProductCharges("42").Return(dbErr)
	// As reinserções não acontecem: a atividade fica com prestações
	// apagadas e produtos antigos, e o erro aponta o passo exato

	_, err := service.UpdateActivity("42", validInput())

	var partialErr *PartialWriteError
	require.ErrorAs(t, err, &partialErr)
	assert.Equal(t, "42", partialErr.ActivityID)
	assert.Equal(t, StepDeleteProducts, partialErr.Step)
}

func TestUpdateActivity_RejectsConcurrentOperationOnSameID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockActivityRepository(ctrl)
	service := NewService(mockRepo)

	input := validInput()

	started := make(chan struct{})
	proceed := make(chan struct{})

	mockRepo.EXPECT().UpdateActivity(gomock.Any()).DoAndReturn(func(*domain.Activity) error {
		close(started)
		<-proceed
		return nil
	})
	mockRepo.EXPECT().DeleteServiceCharges("42").Return(nil)
	mockRepo.EXPECT().DeleteProductCharges("42").Return(nil)
	mockRepo.EXPECT().InsertServiceCharges("42", gomock.Any()).Return(nil)
	mockRepo.EXPECT().InsertProductCharges("42", gomock.Any()).Return(nil)

	done := make(chan error, 1)
	go func() {
		_, err := service.UpdateActivity("42", input)
		done <- err
	}()

	<-started

	// Segunda submissão para o mesmo id enquanto a primeira está no meio
	// da sequência
	_, err := service.UpdateActivity("42", validInput())
	assert.ErrorIs(t, err, ErrOperationInFlight)

	// Operação sobre OUTRA atividade não é bloqueada
	mockRepo.EXPECT().DeleteActivity("43").Return(nil)
	assert.NoError(t, service.DeleteActivity("43"))

	close(proceed)
	require.NoError(t, <-done)

	// Com a primeira concluída, o id volta a aceitar operações
	mockRepo.EXPECT().DeleteActivity("42").Return(nil)
	assert.NoError(t, service.DeleteActivity("42"))
}

func TestDeleteActivity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockActivityRepository(ctrl)
	service := NewService(mockRepo)

	mockRepo.EXPECT().DeleteActivity("42").Return(nil)
	assert.NoError(t, service.DeleteActivity("42"))
}

func TestDeleteActivity_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockActivityRepository(ctrl)
	service := NewService(mockRepo)

	mockRepo.EXPECT().DeleteActivity("999").Return(sql.ErrNoRows)
	assert.ErrorIs(t, service.DeleteActivity("999"), ErrActivityNotFound)
}

func TestGetActivity_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockActivityRepository(ctrl)
	service := NewService(mockRepo)

	mockRepo.EXPECT().GetActivityByID("999").Return(nil, nil)

	_, err := service.GetActivity("999")
	assert.ErrorIs(t, err, ErrActivityNotFound)
}
