package metrics

import (
	"stonehenge/game"
	"time"
)

type SearchMetric struct {
	Strategy   string
	Duration   time.Duration
	Nodes      int // Positions created or visited
	Pops       int // Work stack pops (iterative search only)
	Expansions int
	Leaves     int // Terminal positions scored
	MaxDepth   int
}

type MoveMetric struct {
	Step   int
	Player game.Player
	Move   string
	SearchMetric
}

type GameMetric struct {
	StartingPlayer game.Player
	Winner         game.Player
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// AgentConfig identifies one side of a match-up.
type AgentConfig struct {
	ID       int    `yaml:"id"`
	Strategy string `yaml:"strategy"`
}

// Collector counts the work of a single search. Searches are single-threaded
// so implementations need no locking.
type Collector interface {
	Start(strategy string)
	AddNode()
	AddPop()
	AddExpansion()
	AddLeaf()
	ObserveDepth(depth int)
	Complete() SearchMetric
}

type collector struct {
	startTime time.Time
	metric    SearchMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(strategy string) {
	m.startTime = time.Now()
	m.metric = SearchMetric{Strategy: strategy}
}

func (m *collector) AddNode() {
	m.metric.Nodes++
}

func (m *collector) AddPop() {
	m.metric.Pops++
}

func (m *collector) AddExpansion() {
	m.metric.Expansions++
}

func (m *collector) AddLeaf() {
	m.metric.Leaves++
}

func (m *collector) ObserveDepth(depth int) {
	if depth > m.metric.MaxDepth {
		m.metric.MaxDepth = depth
	}
}

func (m *collector) Complete() SearchMetric {
	metric := m.metric
	metric.Duration = time.Since(m.startTime)
	return metric
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(strategy string)  {}
func (m *dummyCollector) AddNode()               {}
func (m *dummyCollector) AddPop()                {}
func (m *dummyCollector) AddExpansion()          {}
func (m *dummyCollector) AddLeaf()               {}
func (m *dummyCollector) ObserveDepth(int)       {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
