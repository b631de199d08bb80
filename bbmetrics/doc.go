// Package bbmetrics exposes an Engine's Stats block as Prometheus gauges.
//
// Collector implements bbcore.MetricsSink, so wiring it into a search is
// one call:
//
//	col, err := bbmetrics.NewCollector(nil)
//	engine, err := bbcore.NewEngine(strategy, cfg)
//	engine.Metrics = col
//
// Every call to Observe replaces the gauge values wholesale; there is no
// accumulation beyond what Stats itself tracks.
package bbmetrics
