package main

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// logMetrics logs every counter and histogram sample gathered from reg.
func logMetrics(logger *slog.Logger, reg prometheus.Gatherer) {
	families, err := reg.Gather()
	if err != nil {
		logger.Warn("failed to gather metrics", "error", err)
		return
	}

	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			attrs := []any{slog.String("metric", mf.GetName())}
			for _, lp := range m.GetLabel() {
				attrs = append(attrs, slog.String(lp.GetName(), lp.GetValue()))
			}
			switch {
			case m.GetCounter() != nil:
				attrs = append(attrs, slog.Float64("value", m.GetCounter().GetValue()))
			case m.GetGauge() != nil:
				attrs = append(attrs, slog.Float64("value", m.GetGauge().GetValue()))
			case m.GetHistogram() != nil:
				attrs = append(attrs,
					slog.Uint64("count", m.GetHistogram().GetSampleCount()),
					slog.Float64("sum", m.GetHistogram().GetSampleSum()))
			}
			logger.Info("metrics", attrs...)
		}
	}
}
