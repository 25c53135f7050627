// Package stats collects classification query statistics.
package stats

import "sync/atomic"

type queryCollector struct {
	queries      atomic.Uint64
	academic     atomic.Uint64
	underTLD     atomic.Uint64
	stoplisted   atomic.Uint64
	institutions atomic.Uint64
}

// NewQueryCollector returns a new collector for collecting classification
// query statistics.
func NewQueryCollector() *queryCollector {
	return &queryCollector{}
}

// Queries stores the classification query statistics.
type Queries struct {
	Queries      uint64 `json:"queries"`
	Academic     uint64 `json:"academic"`
	UnderTLD     uint64 `json:"underTLD"`
	Stoplisted   uint64 `json:"stoplisted"`
	Institutions uint64 `json:"institutions"`
}

// CollectQuery implements the Collector CollectQuery method.
func (qc *queryCollector) CollectQuery(academic, underTLD, stoplisted, institution bool) {
	qc.queries.Add(1)
	if academic {
		qc.academic.Add(1)
	}
	if underTLD {
		qc.underTLD.Add(1)
	}
	if stoplisted {
		qc.stoplisted.Add(1)
	}
	if institution {
		qc.institutions.Add(1)
	}
}

// Snapshot implements the Collector Snapshot method.
func (qc *queryCollector) Snapshot() Queries {
	return Queries{
		Queries:      qc.queries.Load(),
		Academic:     qc.academic.Load(),
		UnderTLD:     qc.underTLD.Load(),
		Stoplisted:   qc.stoplisted.Load(),
		Institutions: qc.institutions.Load(),
	}
}

// SnapshotAndReset implements the Collector SnapshotAndReset method.
func (qc *queryCollector) SnapshotAndReset() Queries {
	return Queries{
		Queries:      qc.queries.Swap(0),
		Academic:     qc.academic.Swap(0),
		UnderTLD:     qc.underTLD.Swap(0),
		Stoplisted:   qc.stoplisted.Swap(0),
		Institutions: qc.institutions.Swap(0),
	}
}

// Collector collects classification query statistics.
type Collector interface {
	// CollectQuery collects one classification query's outcome.
	CollectQuery(academic, underTLD, stoplisted, institution bool)

	// Snapshot returns the collected statistics.
	Snapshot() Queries

	// SnapshotAndReset returns the collected statistics and resets the statistics.
	SnapshotAndReset() Queries
}

// NoopCollector is a no-op collector.
// Its collect method does nothing and its snapshot methods return empty statistics.
type NoopCollector struct{}

// CollectQuery implements the Collector CollectQuery method.
func (NoopCollector) CollectQuery(academic, underTLD, stoplisted, institution bool) {}

// Snapshot implements the Collector Snapshot method.
func (NoopCollector) Snapshot() Queries {
	return Queries{}
}

// SnapshotAndReset implements the Collector SnapshotAndReset method.
func (NoopCollector) SnapshotAndReset() Queries {
	return Queries{}
}

// Config stores configuration for the stats collector.
type Config struct {
	Enabled bool `json:"enabled"`
}

// Collector returns a new stats collector from the config.
func (c Config) Collector() Collector {
	if c.Enabled {
		return NewQueryCollector()
	}
	return NoopCollector{}
}
