package provisioning

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	buildsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "auroractl",
			Subsystem: "provisioning",
			Name:      "builds_total",
			Help:      "Total number of cluster builds by result",
		},
		[]string{"result"},
	)

	configIssuesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "auroractl",
			Subsystem: "provisioning",
			Name:      "config_issues_total",
			Help:      "Total number of configuration issues flagged on plans",
		},
	)

	rotationJobsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "auroractl",
			Subsystem: "provisioning",
			Name:      "rotation_jobs_total",
			Help:      "Total number of rotation jobs attached by kind",
		},
		[]string{"kind"},
	)

	phaseDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "auroractl",
			Subsystem: "provisioning",
			Name:      "phase_duration_seconds",
			Help:      "Duration of provisioning phases in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12), // 10ms to ~40s
		},
		[]string{"phase", "result"},
	)
)

func init() {
	prometheus.MustRegister(
		buildsTotal,
		configIssuesTotal,
		rotationJobsTotal,
		phaseDuration,
	)
}

// recordBuild records a build result.
func recordBuild(result string) {
	buildsTotal.WithLabelValues(result).Inc()
}

// recordConfigIssue records one flagged configuration issue.
func recordConfigIssue() {
	configIssuesTotal.Inc()
}

// recordRotationJob records an attached rotation job.
func recordRotationJob(kind string) {
	rotationJobsTotal.WithLabelValues(kind).Inc()
}

// recordPhaseDuration records the duration of a phase run.
func recordPhaseDuration(phase, result string, duration time.Duration) {
	phaseDuration.WithLabelValues(phase, result).Observe(duration.Seconds())
}
