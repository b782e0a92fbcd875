package searcher

import "time"

// SearchMetric describes a single Think call.
type SearchMetric struct {
	StartTime    time.Time
	Duration     time.Duration
	Iterations   int
	PlayoutPlies int // total rollout moves across all iterations
	MaxDepth     int // deepest node reached by selection/expansion
}

type Collector interface {
	Start()
	AddIteration()
	AddPlayout(plies int)
	AddDepth(depth int)
	Complete() SearchMetric
}

// The search is sequential by contract, so the collector needs no locking.
type collector struct {
	startTime    time.Time
	iterations   int
	playoutPlies int
	maxDepth     int
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start() {
	*c = collector{startTime: time.Now()}
}

func (c *collector) AddIteration() {
	c.iterations++
}

func (c *collector) AddPlayout(plies int) {
	c.playoutPlies += plies
}

func (c *collector) AddDepth(depth int) {
	if depth > c.maxDepth {
		c.maxDepth = depth
	}
}

func (c *collector) Complete() SearchMetric {
	return SearchMetric{
		StartTime:    c.startTime,
		Duration:     time.Since(c.startTime),
		Iterations:   c.iterations,
		PlayoutPlies: c.playoutPlies,
		MaxDepth:     c.maxDepth,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (dummyCollector) Start()                 {}
func (dummyCollector) AddIteration()          {}
func (dummyCollector) AddPlayout(plies int)   {}
func (dummyCollector) AddDepth(depth int)     {}
func (dummyCollector) Complete() SearchMetric { return SearchMetric{} }
