package searcher

import (
	"sync/atomic"
	"time"
)

// SearchMetrics describes one completed search call.
type SearchMetrics struct {
	StartTime time.Time
	Duration  time.Duration
	Nodes     int64
	Depth     int // deepest fully completed depth
}

type Collector interface {
	Start()
	AddNode()
	Complete(depth int) SearchMetrics
}

type collector struct {
	startTime time.Time
	nodes     atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start() {
	c.startTime = time.Now()
	c.nodes.Store(0)
}

func (c *collector) AddNode() {
	c.nodes.Add(1)
}

func (c *collector) Complete(depth int) SearchMetrics {
	return SearchMetrics{
		StartTime: c.startTime,
		Duration:  time.Since(c.startTime),
		Nodes:     c.nodes.Load(),
		Depth:     depth,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (dummyCollector) Start()   {}
func (dummyCollector) AddNode() {}
func (dummyCollector) Complete(depth int) SearchMetrics {
	return SearchMetrics{Depth: depth}
}
