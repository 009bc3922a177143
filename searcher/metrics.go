package searcher

import (
	"sync/atomic"
	"time"
)

// SearchMetric summarizes one FindMove invocation.
type SearchMetric struct {
	Duration   time.Duration
	Iterations int64
	Workers    int
}

type Collector interface {
	Start(workers int)
	AddIteration()
	Complete() SearchMetric
}

type collector struct {
	startTime  time.Time
	workers    int
	iterations atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(workers int) {
	c.startTime = time.Now()
	c.workers = workers
}

func (c *collector) AddIteration() {
	c.iterations.Add(1)
}

func (c *collector) Complete() SearchMetric {
	return SearchMetric{
		Duration:   time.Since(c.startTime),
		Iterations: c.iterations.Load(),
		Workers:    c.workers,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector { return dummyCollector{} }

func (dummyCollector) Start(int)              {}
func (dummyCollector) AddIteration()          {}
func (dummyCollector) Complete() SearchMetric { return SearchMetric{} }
