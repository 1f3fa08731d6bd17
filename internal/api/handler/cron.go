package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/roi-benchmark-api/pkg/apiErrors"
	"github.com/vfg2006/roi-benchmark-api/pkg/log"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeWeeklyReport = "weekly-report"
)

// ManualJob é um job agendado que também pode ser disparado pela API
type ManualJob interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	WeeklyReportService ManualJob
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeWeeklyReport:
			if services.WeeklyReportService == nil {
				apiErrors.WriteError(w, apiErrors.ErrServiceNotReady, "Serviço de relatório semanal não disponível", nil)
				return
			}
			if !services.WeeklyReportService.TriggerManualSync() {
				apiErrors.WriteError(w, apiErrors.ErrJobAlreadyRunning, "Relatório semanal já está em execução", nil)
				return
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: weekly-report", nil)
			return
		}

		logger.WithField("cron_type", cronType).Info("RunCronJob: execução manual iniciada")

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.WeeklyReportService != nil {
			status[CronJobTypeWeeklyReport] = services.WeeklyReportService.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}
