package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/roi-benchmark-api/internal/api/handler/router"
	"github.com/vfg2006/roi-benchmark-api/internal/config"
	"github.com/vfg2006/roi-benchmark-api/internal/usecases/benchmarking"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
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

func Benchmarks(service benchmarking.Benchmarker, cfg config.Benchmark) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/benchmarks/area-ranking",
			Method:  http.MethodGet,
			Handler: GetAreaRanking(service, cfg),
		},
		{
			Path:    "/v1/benchmarks/top-performers",
			Method:  http.MethodGet,
			Handler: GetTopPerformers(service),
		},
		{
			Path:    "/v1/businesses/:id/stats",
			Method:  http.MethodGet,
			Handler: GetBusinessStats(service),
		},
		{
			Path:    "/v1/businesses/:id/competitors",
			Method:  http.MethodGet,
			Handler: GetCompetitors(service, cfg),
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
