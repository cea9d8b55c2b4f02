package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/customer-profile-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeResolutionAudit = "resolution-audit"
	CronJobTypeAll             = "all"
)

// ManualJob é um agendador que pode ser disparado manualmente
type ManualJob interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	ResolutionAuditService ManualJob
}

func (s CronJobServices) jobs() map[string]ManualJob {
	jobs := make(map[string]ManualJob)
	if s.ResolutionAuditService != nil {
		jobs[CronJobTypeResolutionAudit] = s.ResolutionAuditService
	}
	return jobs
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		jobs := services.jobs()

		switch cronType {
		case CronJobTypeResolutionAudit:
			job, ok := jobs[cronType]
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrUnavailable, "Serviço de auditoria de referências não disponível", nil)
				return
			}
			job.TriggerManualSync()

		case CronJobTypeAll:
			for _, job := range jobs {
				job.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: resolution-audit, all", nil)
			return
		}

		writeJSONStatus(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := make(map[string]any)
		for name, job := range services.jobs() {
			status[name] = job.GetStatus()
		}

		writeJSON(w, status)
	}
}
