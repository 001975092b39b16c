package experiments

import (
	"stonehenge/agent"
	"stonehenge/experiments/metrics"
	"stonehenge/game"
	"stonehenge/game/synthetic"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// ThroughputSetup describes the random trees every strategy searches.
type ThroughputSetup struct {
	Seed         uint64
	NumTrees     int
	MaxDepth     int
	MaxBranching int
	Strategies   []string
}

// RunThroughput searches the same random synthetic trees with each strategy
// and records the work every search took. Trees are generated from Seed, so
// reruns see identical trees.
func RunThroughput(setup ThroughputSetup) ([]metrics.ThroughputRecord, error) {
	if setup.NumTrees <= 0 || setup.MaxDepth <= 0 || setup.MaxBranching <= 0 {
		return nil, errors.Errorf("throughput needs positive trees, depth and branching, got %+v", setup)
	}

	rng := rand.New(rand.NewSource(setup.Seed))
	trees := make([]*synthetic.Node, setup.NumTrees)
	for i := range trees {
		trees[i] = synthetic.Random(rng, setup.MaxDepth, setup.MaxBranching)
	}

	log.Info().Msgf("starting throughput experiment with %d trees...", len(trees))

	var records []metrics.ThroughputRecord
	for _, name := range setup.Strategies {
		a, err := agent.New(name, nil)
		if err != nil {
			return nil, errors.Wrapf(err, "throughput for %s", name)
		}
		for i, tree := range trees {
			nodes, leaves := tree.Count()
			_, searchMetric := a.FindMove(synthetic.New(tree, game.PlayerOne))
			records = append(records, metrics.ThroughputRecord{
				Tree:         i + 1,
				TreeNodes:    nodes,
				TreeLeaves:   leaves,
				SearchMetric: searchMetric,
			})
		}
		log.Info().Msgf("completed throughput for %s", name)
	}
	return records, nil
}
