package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/roi-benchmark-api/internal/config"
	"github.com/vfg2006/roi-benchmark-api/internal/domain"
	"github.com/vfg2006/roi-benchmark-api/internal/scheduler/mocks"
	benchmarkmocks "github.com/vfg2006/roi-benchmark-api/internal/usecases/benchmarking/mocks"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (*WeeklyReportService, *benchmarkmocks.MockBenchmarker, *mocks.MockReportSink) {
	ctrl := gomock.NewController(t)

	benchmarker := benchmarkmocks.NewMockBenchmarker(ctrl)
	sink := mocks.NewMockReportSink(ctrl)

	cfg := &config.Config{
		WeeklyReport: config.WeeklyReport{CronSchedule: "0 7 * * 1", Enabled: false},
	}

	return NewWeeklyReportService(benchmarker, sink, cfg), benchmarker, sink
}

func sampleReports() []*domain.BusinessReport {
	return []*domain.BusinessReport{
		{
			Business: &domain.Business{ID: "A", Name: "Loja A"},
			Stats: &domain.BusinessStats{
				ActiveCampaigns: 1,
				AverageROI:      50,
				TotalSpent:      decimal.NewFromInt(500),
				TotalEarned:     decimal.NewFromInt(300),
				TotalCampaigns:  2,
			},
		},
		{
			Business: &domain.Business{ID: "B", Name: "Loja B"},
			Stats:    &domain.BusinessStats{TotalSpent: decimal.Zero, TotalEarned: decimal.Zero},
		},
	}
}

func TestWeeklyReportService_RunWeeklyReport(t *testing.T) {
	tests := []struct {
		name          string
		setup         func(b *benchmarkmocks.MockBenchmarker, s *mocks.MockReportSink)
		expectedErr   bool
		expectedCount int
	}{
		{
			name: "publica um relatório por negócio",
			setup: func(b *benchmarkmocks.MockBenchmarker, s *mocks.MockReportSink) {
				reports := sampleReports()
				b.EXPECT().GetAllBusinessStats(gomock.Any()).Return(reports, nil)
				s.EXPECT().Publish(gomock.Any(), gomock.Any(), reports).Return(nil)
			},
			expectedCount: 2,
		},
		{
			name: "sem negócios não publica",
			setup: func(b *benchmarkmocks.MockBenchmarker, s *mocks.MockReportSink) {
				b.EXPECT().GetAllBusinessStats(gomock.Any()).Return([]*domain.BusinessReport{}, nil)
			},
		},
		{
			name: "falha ao consolidar",
			setup: func(b *benchmarkmocks.MockBenchmarker, s *mocks.MockReportSink) {
				b.EXPECT().GetAllBusinessStats(gomock.Any()).Return(nil, errors.New("db down"))
			},
			expectedErr: true,
		},
		{
			name: "falha ao publicar",
			setup: func(b *benchmarkmocks.MockBenchmarker, s *mocks.MockReportSink) {
				b.EXPECT().GetAllBusinessStats(gomock.Any()).Return(sampleReports(), nil)
				s.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("sink closed"))
			},
			expectedErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, benchmarker, sink := newTestService(t)
			tt.setup(benchmarker, sink)

			err := service.RunWeeklyReport(context.Background())

			status := service.GetStatus()
			if tt.expectedErr {
				assert.Error(t, err)
				assert.NotEmpty(t, status["last_error"])
			} else {
				assert.NoError(t, err)
				assert.Empty(t, status["last_error"])
			}
			assert.Equal(t, tt.expectedCount, status["last_report_count"])
			assert.Equal(t, false, status["sync_running"])
			assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
		})
	}
}

func TestWeeklyReportService_IgnoresConcurrentRuns(t *testing.T) {
	service, benchmarker, sink := newTestService(t)

	entered := make(chan struct{})
	release := make(chan struct{})

	benchmarker.EXPECT().GetAllBusinessStats(gomock.Any()).
		DoAndReturn(func(ctx context.Context) ([]*domain.BusinessReport, error) {
			close(entered)
			<-release
			return sampleReports(), nil
		}).
		Times(1)
	sink.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)

	done := make(chan error, 1)
	go func() {
		done <- service.RunWeeklyReport(context.Background())
	}()

	<-entered

	assert.NoError(t, service.RunWeeklyReport(context.Background()))
	assert.False(t, service.TriggerManualSync())
	assert.Equal(t, true, service.GetStatus()["sync_running"])

	close(release)

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("relatório semanal não terminou")
	}

	assert.Equal(t, 2, service.GetStatus()["last_report_count"])
}

func TestWeeklyReportService_TriggerManualSyncTwice(t *testing.T) {
	service, benchmarker, sink := newTestService(t)

	entered := make(chan struct{})
	release := make(chan struct{})
	published := make(chan struct{})

	benchmarker.EXPECT().GetAllBusinessStats(gomock.Any()).
		DoAndReturn(func(ctx context.Context) ([]*domain.BusinessReport, error) {
			close(entered)
			<-release
			return sampleReports(), nil
		}).
		Times(1)
	sink.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, generatedAt time.Time, reports []*domain.BusinessReport) error {
			close(published)
			return nil
		}).
		Times(1)

	first := service.TriggerManualSync()
	second := service.TriggerManualSync()

	assert.True(t, first)
	assert.False(t, second)
	assert.Equal(t, true, service.GetStatus()["sync_running"])

	<-entered
	assert.False(t, service.TriggerManualSync())
	close(release)

	select {
	case <-published:
	case <-time.After(2 * time.Second):
		t.Fatal("relatório manual não foi publicado")
	}

	require.Eventually(t, func() bool {
		return service.GetStatus()["sync_running"] == false
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, 2, service.GetStatus()["last_report_count"])
}

func TestWeeklyReportService_StartDisabled(t *testing.T) {
	service, _, _ := newTestService(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, service.Start(ctx))

	status := service.GetStatus()
	assert.Equal(t, false, status["sync_enabled"])
	assert.Equal(t, "0 7 * * 1", status["sync_cron"])
}

func TestWeeklyReportService_StartInvalidCron(t *testing.T) {
	service, _, _ := newTestService(t)
	service.config = WeeklyReportConfig{CronSchedule: "not a cron", Enabled: true}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	assert.Error(t, service.Start(ctx))
}

func TestLogReportSink_Publish(t *testing.T) {
	assert.NoError(t, LogReportSink{}.Publish(context.Background(), time.Now(), sampleReports()))
}
