package experiment

import (
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/timeshare-sim/timeshare-sim/sim"
)

const metricsNamespace = "timeshare"

// resultCollectors holds the gauges describing a sweep.
type resultCollectors struct {
	responseTime *prometheus.GaugeVec
	queueLength  *prometheus.GaugeVec
	utilization  *prometheus.GaugeVec
	completions  *prometheus.GaugeVec
	endTime      *prometheus.GaugeVec
}

func newResultCollectors() *resultCollectors {
	laneLabels := []string{"terminals", "lane"}
	return &resultCollectors{
		responseTime: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "response_time_seconds",
			Help:      "Mean job response time per lane.",
		}, laneLabels),
		queueLength: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "queue_length",
			Help:      "Time-average wait queue length per lane.",
		}, laneLabels),
		utilization: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "utilization_ratio",
			Help:      "Fraction of simulated time the lane's CPU was busy.",
		}, laneLabels),
		completions: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "completions",
			Help:      "Jobs completed per lane during the run.",
		}, laneLabels),
		endTime: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "run_end_time_seconds",
			Help:      "Simulated time at which the run terminated.",
		}, []string{"terminals"}),
	}
}

func (c *resultCollectors) collectors() []prometheus.Collector {
	return []prometheus.Collector{c.responseTime, c.queueLength, c.utilization, c.completions, c.endTime}
}

// RegisterResults registers gauges for results on reg and sets their values.
func RegisterResults(reg prometheus.Registerer, results []sim.RunResult) error {
	c := newResultCollectors()
	for _, col := range c.collectors() {
		if err := reg.Register(col); err != nil {
			return fmt.Errorf("register result metrics: %w", err)
		}
	}
	for _, r := range results {
		terms := strconv.Itoa(r.NumTerminals)
		c.endTime.WithLabelValues(terms).Set(r.EndTime)
		for i, lr := range r.Lanes {
			lane := sim.LaneID(i).String()
			c.responseTime.WithLabelValues(terms, lane).Set(lr.ResponseTime)
			c.queueLength.WithLabelValues(terms, lane).Set(lr.QueueLength)
			c.utilization.WithLabelValues(terms, lane).Set(lr.Utilization)
			c.completions.WithLabelValues(terms, lane).Set(float64(lr.Completions))
		}
	}
	return nil
}

// ExportMetrics writes results to path in the Prometheus text format, for
// pickup by a node-exporter textfile collector.
func ExportMetrics(path string, results []sim.RunResult) error {
	reg := prometheus.NewRegistry()
	if err := RegisterResults(reg, results); err != nil {
		return err
	}
	if err := prometheus.WriteToTextfile(path, reg); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
