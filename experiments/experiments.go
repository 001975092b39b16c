package experiments

import (
	"context"
	"sort"
	"stonehenge/agent"
	"stonehenge/engine"
	"stonehenge/experiments/metrics"
	"stonehenge/game"
	"stonehenge/game/stonehenge"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// Setup describes which strategies play each other and how often.
type Setup struct {
	Name        string
	BoardSize   int
	NumGames    int // Per match up
	Concurrency int
	MaxTurns    int
	Matchups    [][2]string // Strategy names
}

// Results holds everything a run produced.
type Results struct {
	Agents []metrics.AgentConfig
	Games  []metrics.GameRecord
	Moves  []metrics.MoveRecord
}

// Wins counts the games won by each strategy name, draws under "".
func (r Results) Wins() map[string]int {
	names := lo.SliceToMap(r.Agents, func(a metrics.AgentConfig) (int, string) {
		return a.ID, a.Strategy
	})
	wins := map[string]int{}
	for _, g := range r.Games {
		switch g.Winner {
		case game.PlayerOne:
			wins[names[g.Agent1]]++
		case game.PlayerTwo:
			wins[names[g.Agent2]]++
		default:
			wins[""]++
		}
	}
	return wins
}

type job struct {
	id     int
	agent1 metrics.AgentConfig
	agent2 metrics.AgentConfig
	first  game.Player
}

// Run plays every matchup NumGames times, alternating who starts, with up to
// Concurrency games in flight. Each game owns its agents; nothing is shared
// between games.
func Run(ctx context.Context, setup Setup) (Results, error) {
	agents := agentConfigs(setup.Matchups)
	ids := lo.SliceToMap(agents, func(a metrics.AgentConfig) (string, metrics.AgentConfig) {
		return a.Strategy, a
	})

	var jobs []job
	for _, matchup := range setup.Matchups {
		for i := 0; i < setup.NumGames; i++ {
			first := game.PlayerOne
			if i%2 == 1 {
				first = game.PlayerTwo
			}
			jobs = append(jobs, job{
				id:     len(jobs) + 1,
				agent1: ids[matchup[0]],
				agent2: ids[matchup[1]],
				first:  first,
			})
		}
	}

	log.Info().Msgf("starting %s experiment with %d games...", setup.Name, len(jobs))

	var (
		mu      sync.Mutex
		results = Results{Agents: agents}
	)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(setup.Concurrency, 1))
	for _, j := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			record, moves, err := runGame(setup, j)
			if err != nil {
				return errors.Wrapf(err, "game %d", j.id)
			}
			log.Info().Msgf("completed game %d of %d (%s vs %s) with winner: %q",
				j.id, len(jobs), j.agent1.Strategy, j.agent2.Strategy, record.Winner)

			mu.Lock()
			defer mu.Unlock()
			results.Games = append(results.Games, record)
			results.Moves = append(results.Moves, moves...)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Results{}, err
	}

	sort.Slice(results.Games, func(a, b int) bool { return results.Games[a].ID < results.Games[b].ID })
	sort.SliceStable(results.Moves, func(a, b int) bool {
		if results.Moves[a].Game != results.Moves[b].Game {
			return results.Moves[a].Game < results.Moves[b].Game
		}
		return results.Moves[a].Step < results.Moves[b].Step
	})

	log.Info().Msgf("completed %s experiment", setup.Name)
	return results, nil
}

// Store writes setup and results through w.
func Store(w *metrics.Writer, setup Setup, results Results, start, end time.Time) error {
	err := w.WriteSetup(metrics.Setup{
		Name:      setup.Name,
		BoardSize: setup.BoardSize,
		Agents:    results.Agents,
		Matchups: lo.Map(setup.Matchups, func(m [2]string, _ int) []metrics.AgentConfig {
			return []metrics.AgentConfig{lookup(results.Agents, m[0]), lookup(results.Agents, m[1])}
		}),
		NumGames:  setup.NumGames,
		StartTime: start,
		EndTime:   end,
		Duration:  end.Sub(start),
	})
	if err != nil {
		return errors.Wrap(err, "failed to store setup")
	}
	log.Info().Msg("stored setup")

	if err := w.WriteGameRecords(results.Games); err != nil {
		return errors.Wrap(err, "failed to store game records")
	}
	log.Info().Msg("stored game records")

	if err := w.WriteMoveRecords(results.Moves); err != nil {
		return errors.Wrap(err, "failed to store move records")
	}
	log.Info().Msg("stored move records")
	return nil
}

// runGame plays a single game; agent1 always plays p1.
func runGame(setup Setup, j job) (metrics.GameRecord, []metrics.MoveRecord, error) {
	g, err := stonehenge.New(setup.BoardSize, j.first)
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}
	p1, err := agent.New(j.agent1.Strategy, nil)
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}
	p2, err := agent.New(j.agent2.Strategy, nil)
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}

	e := engine.NewLocal(g, p1, p2, engine.WithMaxMoves(setup.MaxTurns))
	_, gameMetric, moveMetrics, err := e.Run()
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}

	record := metrics.GameRecord{
		ID:         j.id,
		Agent1:     j.agent1.ID,
		Agent2:     j.agent2.ID,
		GameMetric: gameMetric,
	}
	moves := lo.Map(moveMetrics, func(mm metrics.MoveMetric, _ int) metrics.MoveRecord {
		return metrics.MoveRecord{Game: j.id, MoveMetric: mm}
	})
	return record, moves, nil
}

func agentConfigs(matchups [][2]string) []metrics.AgentConfig {
	names := lo.Uniq(lo.Flatten(lo.Map(matchups, func(m [2]string, _ int) []string {
		return m[:]
	})))
	return lo.Map(names, func(name string, i int) metrics.AgentConfig {
		return metrics.AgentConfig{ID: i + 1, Strategy: name}
	})
}

func lookup(agents []metrics.AgentConfig, strategy string) metrics.AgentConfig {
	a, _ := lo.Find(agents, func(a metrics.AgentConfig) bool { return a.Strategy == strategy })
	return a
}
