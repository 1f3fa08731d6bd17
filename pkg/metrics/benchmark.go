package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// Duração de cada operação do motor de benchmark, incluindo a busca de dados
	BenchmarkOperationDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "benchmark_operation_duration_seconds",
		Help:    "Duration of benchmark engine operations, including data fetch",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})

	// Falhas por operação, separadas por etapa (fetch ou not_found)
	BenchmarkOperationErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "benchmark_operation_errors_total",
		Help: "Total number of failed benchmark engine operations",
	}, []string{"operation", "stage"})

	// Tamanho da coorte (antes do limite) das consultas por área
	AreaCohortSize = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "benchmark_area_cohort_size",
		Help:    "Number of campaigns ranked in an area query before truncation",
		Buckets: prometheus.ExponentialBuckets(1, 2, 12),
	})

	WeeklyReportsGenerated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "benchmark_weekly_reports_total",
		Help: "Total number of business reports produced by the weekly report job",
	})
)

var initOnce sync.Once

func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(
			BenchmarkOperationDuration,
			BenchmarkOperationErrors,
			AreaCohortSize,
			WeeklyReportsGenerated,
			HTTPRequestDuration,
		)
	})
}

// ObserveOperation registra a duração de uma operação iniciada em start
func ObserveOperation(operation string, start time.Time) {
	BenchmarkOperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
