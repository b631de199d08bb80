package bbmetrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/branchbound/bnbsearch/bbcore"
)

// Collector bundles the Prometheus gauges/counters a running search
// publishes. It implements bbcore.MetricsSink.
type Collector struct {
	StatesIdentified         prometheus.Gauge
	StatesExplored           prometheus.Gauge
	StatesStoredInTree       prometheus.Gauge
	TerminalStatesIdentified prometheus.Gauge
	HeuristicStatesProcessed prometheus.Gauge
	IncumbentUpdates         prometheus.Counter

	PrunedByBoundsBeforeInsertion   prometheus.Counter
	PrunedByBoundsBeforeExploration prometheus.Counter
	PrunedByDomBeforeInsertion      prometheus.Counter
	PrunedByDomBeforeExploration    prometheus.Counter

	TimeToOptSeconds prometheus.Gauge

	seenIncumbentUpdates int
	seenPrunedBI         int
	seenPrunedBE         int
	seenPrunedDI         int
	seenPrunedDE         int
}

// NewCollector registers the search gauges/counters against reg, defaulting
// to the global Prometheus registry when reg is nil.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	statesIdentified, err := registerGauge(reg, "bnb_states_identified", "Total states identified so far.")
	if err != nil {
		return nil, err
	}
	statesExplored, err := registerGauge(reg, "bnb_states_explored", "Total states explored (branched) so far.")
	if err != nil {
		return nil, err
	}
	statesStored, err := registerGauge(reg, "bnb_states_stored", "Total states inserted into the frontier so far.")
	if err != nil {
		return nil, err
	}
	terminal, err := registerGauge(reg, "bnb_terminal_states_identified", "Total terminal states identified so far.")
	if err != nil {
		return nil, err
	}
	heuristic, err := registerGauge(reg, "bnb_heuristic_states_processed", "Total non-terminal states saved as heuristic candidates so far.")
	if err != nil {
		return nil, err
	}
	incumbentUpdates, err := registerCounter(reg, "bnb_incumbent_updates_total", "Number of times the incumbent solution was replaced.")
	if err != nil {
		return nil, err
	}
	prunedBI, err := registerCounter(reg, "bnb_pruned_bounds_before_insertion_total", "States pruned by bound check before insertion into the frontier.")
	if err != nil {
		return nil, err
	}
	prunedBE, err := registerCounter(reg, "bnb_pruned_bounds_before_exploration_total", "States pruned by bound check when popped for exploration.")
	if err != nil {
		return nil, err
	}
	prunedDI, err := registerCounter(reg, "bnb_pruned_dominance_before_insertion_total", "States pruned by dominance before insertion into the frontier.")
	if err != nil {
		return nil, err
	}
	prunedDE, err := registerCounter(reg, "bnb_pruned_dominance_before_exploration_total", "States pruned by dominance when popped for exploration.")
	if err != nil {
		return nil, err
	}
	timeToOpt, err := registerGauge(reg, "bnb_time_to_opt_seconds", "Wall-clock seconds elapsed when the incumbent was last updated.")
	if err != nil {
		return nil, err
	}

	return &Collector{
		StatesIdentified:                 statesIdentified,
		StatesExplored:                   statesExplored,
		StatesStoredInTree:                statesStored,
		TerminalStatesIdentified:          terminal,
		HeuristicStatesProcessed:          heuristic,
		IncumbentUpdates:                  incumbentUpdates,
		PrunedByBoundsBeforeInsertion:     prunedBI,
		PrunedByBoundsBeforeExploration:   prunedBE,
		PrunedByDomBeforeInsertion:        prunedDI,
		PrunedByDomBeforeExploration:      prunedDE,
		TimeToOptSeconds:                  timeToOpt,
	}, nil
}

// Observe implements bbcore.MetricsSink. It is called synchronously from
// the search loop, so it must stay cheap: gauges are Set, counters are
// advanced by the delta since the previous Observe.
func (c *Collector) Observe(s *bbcore.Stats) {
	if c == nil || s == nil {
		return
	}
	c.StatesIdentified.Set(float64(s.StatesIdentified))
	c.StatesExplored.Set(float64(s.StatesExplored))
	c.StatesStoredInTree.Set(float64(s.StatesStoredInTree))
	c.TerminalStatesIdentified.Set(float64(s.TerminalStatesIdentified))
	c.HeuristicStatesProcessed.Set(float64(s.HeuristicStatesProcessed))
	c.TimeToOptSeconds.Set(s.TimeToOpt.Seconds())

	c.IncumbentUpdates.Add(float64(s.TimesBestStateWasUpdated - c.seenIncumbentUpdates))
	c.seenIncumbentUpdates = s.TimesBestStateWasUpdated

	c.PrunedByBoundsBeforeInsertion.Add(float64(s.PrunedByBoundsBeforeInsertion - c.seenPrunedBI))
	c.seenPrunedBI = s.PrunedByBoundsBeforeInsertion

	c.PrunedByBoundsBeforeExploration.Add(float64(s.PrunedByBoundsBeforeExploration - c.seenPrunedBE))
	c.seenPrunedBE = s.PrunedByBoundsBeforeExploration

	c.PrunedByDomBeforeInsertion.Add(float64(s.PrunedByDomBeforeInsertion - c.seenPrunedDI))
	c.seenPrunedDI = s.PrunedByDomBeforeInsertion

	c.PrunedByDomBeforeExploration.Add(float64(s.PrunedByDomBeforeExploration - c.seenPrunedDE))
	c.seenPrunedDE = s.PrunedByDomBeforeExploration
}

func registerGauge(reg prometheus.Registerer, name, help string) (prometheus.Gauge, error) {
	g := prometheus.NewGauge(prometheus.GaugeOpts{Name: name, Help: help})
	if err := reg.Register(g); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}
		}
		return nil, fmt.Errorf("bbmetrics: registering %s: %w", name, err)
	}
	return g, nil
}

func registerCounter(reg prometheus.Registerer, name, help string) (prometheus.Counter, error) {
	c := prometheus.NewCounter(prometheus.CounterOpts{Name: name, Help: help})
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
		}
		return nil, fmt.Errorf("bbmetrics: registering %s: %w", name, err)
	}
	return c, nil
}
