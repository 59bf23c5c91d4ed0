package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/salon-manager-api/internal/config"
	"github.com/vfg2006/salon-manager-api/internal/domain"
	"github.com/vfg2006/salon-manager-api/internal/usecases/reporting"
)

// DailyReportConfig representa a configuração do agendador do relatório
// diário
type DailyReportConfig struct {
	CronSchedule string
	Enabled      bool
}

// DailyReportService agenda o cálculo do relatório de faturamento do dia
// anterior e registra o resumo no log da aplicação
type DailyReportService struct {
	scheduler     *gocron.Scheduler
	config        DailyReportConfig
	reportService reporting.Reporter

	runMutex      sync.Mutex
	running       bool
	lastRunAt     time.Time
	lastSuccessAt time.Time
}

// NewDailyReportService cria uma nova instância do agendador de relatório
// diário
func NewDailyReportService(reportService reporting.Reporter, appConfig *config.Config) *DailyReportService {
	reportConfig := DailyReportConfig{
		CronSchedule: appConfig.DailyReport.CronSchedule,
		Enabled:      appConfig.DailyReport.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": reportConfig.CronSchedule,
		"enabled":       reportConfig.Enabled,
	}).Info("Configuração do agendador de relatório diário carregada")

	return &DailyReportService{
		scheduler:     gocron.NewScheduler(time.Local),
		config:        reportConfig,
		reportService: reportService,
	}
}

// Start inicia o agendador
func (s *DailyReportService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Relatório diário desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de relatório diário")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runDailyReport()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar relatório diário: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de relatório diário")
		s.scheduler.Stop()
	}()

	return nil
}

// runDailyReport calcula o relatório do dia anterior. Execuções
// sobrepostas são ignoradas.
func (s *DailyReportService) runDailyReport() {
	s.runMutex.Lock()
	if s.running {
		s.runMutex.Unlock()
		logrus.Info("Relatório diário já em andamento, ignorando")
		return
	}
	s.running = true
	s.lastRunAt = time.Now()
	s.runMutex.Unlock()

	defer func() {
		s.runMutex.Lock()
		s.running = false
		s.runMutex.Unlock()
	}()

	yesterday := time.Now().AddDate(0, 0, -1)

	report, err := s.reportService.DashboardReport(yesterday, domain.GranularityDay)
	if err != nil {
		logrus.WithError(err).Error("Erro ao calcular relatório diário")
		return
	}

	logrus.WithFields(logrus.Fields{
		"window":          report.Window.Label,
		"total_revenue":   report.TotalRevenue.StringFixed(2),
		"services":        report.ServiceRevenue.StringFixed(2),
		"products":        report.ProductRevenue.StringFixed(2),
		"customers":       report.CustomerCount,
		"payment_methods": len(report.ByPaymentMethod),
	}).Info("Relatório diário calculado")

	s.runMutex.Lock()
	s.lastSuccessAt = time.Now()
	s.runMutex.Unlock()
}

// LastRun retorna os horários da última execução e do último sucesso
func (s *DailyReportService) LastRun() (startedAt, succeededAt time.Time) {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()
	return s.lastRunAt, s.lastSuccessAt
}
