// Package metrics records the outcome of a sync run as Prometheus gauges
// and exports them in the node_exporter textfile format.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/imamik/podssh/internal/reconcile"
)

const namespace = "podssh"

// Recorder holds the gauges of one sync run in a private registry.
type Recorder struct {
	registry *prometheus.Registry

	instances  *prometheus.GaugeVec
	hostBlocks *prometheus.GaugeVec
	failures   *prometheus.GaugeVec
	collisions *prometheus.GaugeVec
	duration   *prometheus.GaugeVec
	lastRun    *prometheus.GaugeVec
	success    *prometheus.GaugeVec
}

// NewRecorder creates a Recorder with all gauges registered.
func NewRecorder() *Recorder {
	gauge := func(subsystem, name, help string) *prometheus.GaugeVec {
		return prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      name,
				Help:      help,
			},
			[]string{"provider"},
		)
	}

	r := &Recorder{
		registry:   prometheus.NewRegistry(),
		instances:  gauge("inventory", "instances", "Number of instances returned by the provider"),
		hostBlocks: gauge("sync", "host_blocks", "Number of host blocks in the generated config"),
		failures:   gauge("sync", "failed_instances", "Number of instance records that could not be converted"),
		collisions: gauge("sync", "name_collisions", "Number of host names produced by more than one endpoint"),
		duration:   gauge("sync", "duration_seconds", "Duration of the last sync run"),
		lastRun:    gauge("sync", "last_run_timestamp_seconds", "Unix time of the last sync run"),
		success:    gauge("sync", "success", "Whether the last sync run wrote the config (1) or not (0)"),
	}

	r.registry.MustRegister(
		r.instances,
		r.hostBlocks,
		r.failures,
		r.collisions,
		r.duration,
		r.lastRun,
		r.success,
	)
	return r
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Observe records a finished run. report may be nil when the run failed
// before the inventory was fetched.
func (r *Recorder) Observe(provider string, report *reconcile.Report, runErr error, took time.Duration, now time.Time) {
	r.duration.WithLabelValues(provider).Set(took.Seconds())
	r.lastRun.WithLabelValues(provider).Set(float64(now.Unix()))

	if runErr != nil || report == nil || !report.Written {
		r.success.WithLabelValues(provider).Set(0)
	} else {
		r.success.WithLabelValues(provider).Set(1)
	}

	if report == nil {
		return
	}
	r.instances.WithLabelValues(provider).Set(float64(report.InstanceCount))
	r.failures.WithLabelValues(provider).Set(float64(len(report.Failures())))
	r.collisions.WithLabelValues(provider).Set(float64(len(report.Collisions)))
	if report.Document != nil {
		r.hostBlocks.WithLabelValues(provider).Set(float64(len(report.Document.Blocks)))
	}
}

// WriteTextfile writes all gauges to path for the node_exporter textfile
// collector. The file is replaced atomically.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}
