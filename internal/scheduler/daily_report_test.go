package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/salon-manager-api/internal/config"
	"github.com/vfg2006/salon-manager-api/internal/domain"
)

type reporterStub struct {
	mu          sync.Mutex
	calls       int
	granularity domain.Granularity
	reference   time.Time
	err         error
}

func (r *reporterStub) DashboardReport(reference time.Time, granularity domain.Granularity) (*domain.AggregateReport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls++
	r.reference = reference
	r.granularity = granularity

	if r.err != nil {
		return nil, r.err
	}

	return &domain.AggregateReport{
		Window: domain.PeriodWindow{Label: "15 mars 2024"},
		ByPaymentMethod: map[domain.PaymentMethod]decimal.Decimal{
			domain.PaymentCarte: decimal.NewFromInt(45),
		},
	}, nil
}

func TestRunDailyReport_UsesYesterdayWithDayGranularity(t *testing.T) {
	stub := &reporterStub{}
	service := NewDailyReportService(stub, &config.Config{})

	service.runDailyReport()

	assert.Equal(t, 1, stub.calls)
	assert.Equal(t, domain.GranularityDay, stub.granularity)

	yesterday := time.Now().AddDate(0, 0, -1)
	assert.Equal(t, yesterday.Format(time.DateOnly), stub.reference.Format(time.DateOnly))

	_, succeededAt := service.LastRun()
	assert.False(t, succeededAt.IsZero())
}

func TestRunDailyReport_FailureDoesNotMarkSuccess(t *testing.T) {
	stub := &reporterStub{err: assert.AnError}
	service := NewDailyReportService(stub, &config.Config{})

	service.runDailyReport()

	startedAt, succeededAt := service.LastRun()
	assert.False(t, startedAt.IsZero())
	assert.True(t, succeededAt.IsZero())
}

func TestStart_DisabledDoesNotSchedule(t *testing.T) {
	stub := &reporterStub{}
	cfg := &config.Config{}
	cfg.DailyReport.Enabled = false

	service := NewDailyReportService(stub, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err := service.Start(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 0, stub.calls)
}
