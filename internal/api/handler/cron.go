package handler

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/casaalves/backoffice-api/pkg/apiErrors"
	"github.com/casaalves/backoffice-api/pkg/log"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeDashboardArchive = "dashboard-archive"
	CronJobTypeWorkspaceSweep   = "workspace-sweep"
	CronJobTypeAll              = "all"
)

// CronJob é um agendador que aceita execução manual
type CronJob interface {
	TriggerManualSync(ctx context.Context)
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	DashboardArchive CronJob
	WorkspaceSweep   CronJob
}

func (s CronJobServices) byType() map[string]CronJob {
	jobs := make(map[string]CronJob, 2)
	if s.DashboardArchive != nil {
		jobs[CronJobTypeDashboardArchive] = s.DashboardArchive
	}
	if s.WorkspaceSweep != nil {
		jobs[CronJobTypeWorkspaceSweep] = s.WorkspaceSweep
	}
	return jobs
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		jobs := services.byType()

		switch job, ok := jobs[cronType]; {
		case ok:
			job.TriggerManualSync(r.Context())
		case cronType == CronJobTypeAll:
			for _, job := range jobs {
				job.TriggerManualSync(r.Context())
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest,
				"Tipo de cron job inválido. Valores aceitos: dashboard-archive, workspace-sweep, all", nil)
			return
		}

		log.ForContext(r.Context()).WithField("type", cronType).Info("Cron job iniciada manualmente")

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any)
		for name, job := range services.byType() {
			status[name] = job.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}
