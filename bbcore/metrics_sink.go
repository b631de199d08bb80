package bbcore

// MetricsSink is an optional observer the Engine reports its statistics
// block to after every explored state and every incumbent update. It exists
// so a host process can mirror Stats into e.g. Prometheus (see package
// bbmetrics) without the driver importing any particular metrics library.
type MetricsSink interface {
	Observe(s *Stats)
}
