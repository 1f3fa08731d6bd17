// Package scheduler contém os serviços agendados que consomem o motor de benchmark
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/roi-benchmark-api/internal/config"
	"github.com/vfg2006/roi-benchmark-api/internal/domain"
	"github.com/vfg2006/roi-benchmark-api/internal/usecases/benchmarking"
	"github.com/vfg2006/roi-benchmark-api/pkg/metrics"
	"github.com/vfg2006/roi-benchmark-api/pkg/utils"
)

// ReportSink recebe os relatórios gerados a cada execução
type ReportSink interface {
	Publish(ctx context.Context, generatedAt time.Time, reports []*domain.BusinessReport) error
}

// LogReportSink escreve um registro estruturado por negócio
type LogReportSink struct{}

func (LogReportSink) Publish(_ context.Context, generatedAt time.Time, reports []*domain.BusinessReport) error {
	for _, report := range reports {
		logrus.WithFields(logrus.Fields{
			"generated_at":     generatedAt.Format(time.RFC3339),
			"business_id":      report.Business.ID,
			"business_name":    report.Business.Name,
			"active_campaigns": report.Stats.ActiveCampaigns,
			"total_campaigns":  report.Stats.TotalCampaigns,
			"total_spent":      report.Stats.TotalSpent.StringFixed(2),
			"total_earned":     report.Stats.TotalEarned.StringFixed(2),
			"average_roi":      utils.RoundWithTwoDecimalPlace(report.Stats.AverageROI),
		}).Info("WeeklyReportService: relatório semanal do negócio")
	}
	return nil
}

type WeeklyReportConfig struct {
	CronSchedule string
	Enabled      bool
}

type WeeklyReportService struct {
	scheduler           *gocron.Scheduler
	benchmarker         benchmarking.Benchmarker
	sink                ReportSink
	config              WeeklyReportConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastReportCount     int
	lastError           string
}

func NewWeeklyReportService(
	benchmarker benchmarking.Benchmarker,
	sink ReportSink,
	cfg *config.Config,
) *WeeklyReportService {
	reportConfig := WeeklyReportConfig{
		CronSchedule: cfg.WeeklyReport.CronSchedule, // Default: segunda-feira às 7h
		Enabled:      cfg.WeeklyReport.Enabled,      // Default: desabilitado
	}

	if sink == nil {
		sink = LogReportSink{}
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": reportConfig.CronSchedule,
	}).Info("Configuração do agendador do relatório semanal carregada")

	return &WeeklyReportService{
		scheduler:   gocron.NewScheduler(time.Local),
		benchmarker: benchmarker,
		sink:        sink,
		config:      reportConfig,
	}
}

func (s *WeeklyReportService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron do relatório semanal desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron do relatório semanal")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunWeeklyReport(ctx); err != nil {
			logrus.WithError(err).Error("Erro na geração do relatório semanal")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar relatório semanal: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron do relatório semanal")
		s.scheduler.Stop()
	}()

	return nil
}

// RunWeeklyReport consolida as estatísticas de todos os negócios e publica no sink.
// Execuções concorrentes são ignoradas.
func (s *WeeklyReportService) RunWeeklyReport(ctx context.Context) error {
	if !s.tryStart() {
		logrus.Warn("Relatório semanal já está em execução")
		return nil
	}
	return s.run(ctx)
}

// tryStart marca a execução como ativa; false se outra já estiver em andamento
func (s *WeeklyReportService) tryStart() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	return true
}

// run exige tryStart bem-sucedido
func (s *WeeklyReportService) run(ctx context.Context) error {
	reportCount, err := s.generate(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastReportCount = reportCount
	s.lastError = ""
	if err != nil {
		s.lastError = err.Error()
	}
	s.syncMutex.Unlock()

	return err
}

func (s *WeeklyReportService) generate(ctx context.Context) (int, error) {
	logrus.Info("Iniciando geração do relatório semanal")

	reports, err := s.benchmarker.GetAllBusinessStats(ctx)
	if err != nil {
		logrus.WithError(err).Error("WeeklyReportService: Erro ao consolidar estatísticas dos negócios")
		return 0, err
	}

	if len(reports) == 0 {
		logrus.Info("Nenhum negócio encontrado para o relatório semanal")
		return 0, nil
	}

	if err := s.sink.Publish(ctx, time.Now(), reports); err != nil {
		logrus.WithError(err).Error("WeeklyReportService: Erro ao publicar relatório semanal")
		return 0, fmt.Errorf("erro ao publicar relatório semanal: %w", err)
	}

	metrics.WeeklyReportsGenerated.Add(float64(len(reports)))

	logrus.WithField("reports", len(reports)).Info("Relatório semanal concluído")

	return len(reports), nil
}

// TriggerManualSync inicia manualmente o relatório semanal. Retorna false se já houver uma execução em andamento.
func (s *WeeklyReportService) TriggerManualSync() bool {
	if !s.tryStart() {
		logrus.Info("Relatório semanal já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando execução manual do relatório semanal")
	go func() {
		if err := s.run(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na execução manual do relatório semanal")
		}
	}()

	return true
}

// GetStatus retorna o status atual do agendador
func (s *WeeklyReportService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_report_count":      s.lastReportCount,
		"last_error":             s.lastError,
	}
}
