package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/roi-benchmark-api/internal/api/handler/router"
	"github.com/vfg2006/roi-benchmark-api/pkg/apiErrors"
)

type fakeJob struct {
	running   bool
	triggered int
}

func (f *fakeJob) TriggerManualSync() bool {
	if f.running {
		return false
	}
	f.triggered++
	return true
}

func (f *fakeJob) GetStatus() map[string]any {
	return map[string]any{"sync_running": f.running, "sync_cron": "0 7 * * 1"}
}

func TestRunCronJob(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		running        bool
		expectedStatus int
		expectedCode   string
		expectedRuns   int
	}{
		{name: "relatório semanal", path: "/v1/cron/weekly-report/run", expectedStatus: http.StatusAccepted, expectedRuns: 1},
		{name: "já em execução", path: "/v1/cron/weekly-report/run", running: true, expectedStatus: http.StatusConflict, expectedCode: apiErrors.ErrJobAlreadyRunning},
		{name: "tipo desconhecido", path: "/v1/cron/meta/run", expectedStatus: http.StatusBadRequest, expectedCode: apiErrors.ErrInvalidRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := &fakeJob{running: tt.running}
			handler := router.New(router.WithRoutes(CronJobs(CronJobServices{WeeklyReportService: job})...))

			rec := doRequest(handler, http.MethodPost, tt.path)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedRuns, job.triggered)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decodeBody(t, rec)["code"])
			}
		})
	}
}

func TestRunCronJob_ServiceNotConfigured(t *testing.T) {
	handler := router.New(router.WithRoutes(CronJobs(CronJobServices{})...))

	rec := doRequest(handler, http.MethodPost, "/v1/cron/weekly-report/run")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, apiErrors.ErrServiceNotReady, decodeBody(t, rec)["code"])
}

func TestGetCronStatus(t *testing.T) {
	handler := router.New(router.WithRoutes(CronJobs(CronJobServices{WeeklyReportService: &fakeJob{}})...))

	rec := doRequest(handler, http.MethodGet, "/v1/cron/status")

	require.Equal(t, http.StatusOK, rec.Code)
	status := decodeBody(t, rec)[CronJobTypeWeeklyReport].(map[string]any)
	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, "0 7 * * 1", status["sync_cron"])
}
