// Package promfile writes readiness gauges in the node_exporter textfile format.
package promfile

import (
	"fmt"

	"github.com/huangsam/examtwin/schema"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "examtwin"

// gauges holds the collectors exported for one report.
type gauges struct {
	readiness     prometheus.Gauge
	projectedBand prometheus.Gauge
	targetBand    prometheus.Gauge
	bandGap       prometheus.Gauge
	examDays      prometheus.Gauge
	zone          *prometheus.GaugeVec
}

// newGauges registers the gauges on reg. A private registry keeps process
// and Go runtime collectors out of the file.
func newGauges(reg prometheus.Registerer) *gauges {
	factory := promauto.With(reg)
	return &gauges{
		readiness: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "readiness_percent",
			Help:      "Exam readiness percent (0-100)",
		}),
		projectedBand: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "projected_band",
			Help:      "Projected overall band",
		}),
		targetBand: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "target_band",
			Help:      "Target overall band",
		}),
		bandGap: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "band_gap",
			Help:      "Target band minus projected band",
		}),
		examDays: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "exam_days",
			Help:      "Days remaining until the exam",
		}),
		zone: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "zone",
			Help:      "1 for the current readiness zone, 0 otherwise",
		}, []string{"zone"}),
	}
}

func (g *gauges) observe(report schema.Report) {
	g.readiness.Set(float64(report.Readiness))
	g.projectedBand.Set(report.Projection.ProjectedBand)
	g.targetBand.Set(report.Inputs.TargetBand)
	g.bandGap.Set(report.BandGap)
	g.examDays.Set(float64(report.Inputs.ExamDays))
	for _, band := range schema.GaugeBands {
		v := 0.0
		if band.Zone == report.Zone {
			v = 1
		}
		g.zone.WithLabelValues(string(band.Zone)).Set(v)
	}
}

// Gather returns a registry populated with the gauges for report.
func Gather(report schema.Report) prometheus.Gatherer {
	reg := prometheus.NewRegistry()
	newGauges(reg).observe(report)
	return reg
}

// WriteReport writes the report gauges to path. The file is replaced atomically.
func WriteReport(path string, report schema.Report) error {
	if err := prometheus.WriteToTextfile(path, Gather(report)); err != nil {
		return fmt.Errorf("could not write metrics file: %w", err)
	}
	return nil
}
