package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/customer-profile-api/internal/api/handler/router"
	"github.com/vfg2006/customer-profile-api/internal/usecases/profiling"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

// Profile retorna as rotas de leitura das distribuições de perfil
func Profile(service profiling.Profiler) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/profile/dimensions",
			Method:  http.MethodGet,
			Handler: ListDimensions(service),
		},
		{
			Path:    "/v1/profile/sessions",
			Method:  http.MethodGet,
			Handler: ListSessions(service),
		},
		{
			Path:    "/v1/profile/categories",
			Method:  http.MethodGet,
			Handler: ListCategories(service),
		},
		{
			Path:    "/v1/profile/groups",
			Method:  http.MethodGet,
			Handler: ListGroups(service),
		},
		{
			Path:    "/v1/profile/distribution",
			Method:  http.MethodGet,
			Handler: GetDistribution(service),
		},
		{
			Path:    "/v1/profile/drilldown",
			Method:  http.MethodGet,
			Handler: GetDrilldown(service),
		},
		{
			Path:    "/v1/profile/integrated",
			Method:  http.MethodGet,
			Handler: GetIntegratedView(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
