package main

import (
	"context"
	"fmt"
	"os"
	"stonehenge/agent"
	"stonehenge/config"
	"stonehenge/engine"
	"stonehenge/experiments"
	"stonehenge/experiments/metrics"
	"stonehenge/game"
	"stonehenge/game/stonehenge"
	"stonehenge/game/synthetic"
	"stonehenge/player"
	"stonehenge/searcher"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"
)

func main() {
	if err := rootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var configPath string
	cfg := config.Default()

	root := &cobra.Command{
		Use:           "stonehenge",
		Short:         "Play Stonehenge against exhaustive minimax strategies",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(configPath)
			if err != nil {
				return err
			}
			cfg = loaded
			applyFlags(cmd, &cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}
			setupLogging(cfg.LogLevel)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "stonehenge.yaml", "path to a YAML config file")
	root.PersistentFlags().Int("size", 0, "board side length (1-5)")
	root.PersistentFlags().String("log-level", "", "zerolog level")

	root.AddCommand(playCmd(&cfg), experimentCmd(&cfg), throughputCmd(&cfg), treeCmd())
	return root
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("size") {
		cfg.BoardSize, _ = flags.GetInt("size")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("p1") {
		cfg.Strategies.P1, _ = flags.GetString("p1")
	}
	if flags.Changed("p2") {
		cfg.Strategies.P2, _ = flags.GetString("p2")
	}
	if flags.Changed("first") {
		first, _ := flags.GetString("first")
		cfg.FirstPlayer = game.Player(first)
	}
	if flags.Changed("games") {
		cfg.Experiment.NumGames, _ = flags.GetInt("games")
	}
}

func setupLogging(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
}

func playCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play one game, each side driven by a strategy",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := stonehenge.New(cfg.BoardSize, cfg.FirstPlayer)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, g.Instructions())

			src := player.NewConsole(cmd.InOrStdin(), out)
			p1, err := agent.New(cfg.Strategies.P1, src)
			if err != nil {
				return err
			}
			p2, err := agent.New(cfg.Strategies.P2, src)
			if err != nil {
				return err
			}

			e := engine.NewLocal(g, p1, p2,
				engine.WithMaxMoves(cfg.MaxTurns),
				engine.WithObserver(func(step int, move game.Move, state game.State) {
					fmt.Fprintf(out, "%d. %v -> %v\n", step, move, state)
				}))
			winner, _, _, err := e.Run()
			if err != nil {
				return err
			}
			if winner == game.NoPlayer {
				fmt.Fprintln(out, "No winner.")
			} else {
				fmt.Fprintf(out, "%s wins!\n", winner)
			}
			return nil
		},
	}
	cmd.Flags().String("p1", "", fmt.Sprintf("strategy for p1, one of %v", agent.Names))
	cmd.Flags().String("p2", "", fmt.Sprintf("strategy for p2, one of %v", agent.Names))
	cmd.Flags().String("first", "", "player to move first (p1 or p2)")
	return cmd
}

func experimentCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "experiment",
		Short: "Play strategies against each other and record the results",
		RunE: func(cmd *cobra.Command, args []string) error {
			setup := experiments.Setup{
				Name:        cfg.Experiment.Name,
				BoardSize:   cfg.BoardSize,
				NumGames:    cfg.Experiment.NumGames,
				Concurrency: cfg.Experiment.Concurrency,
				MaxTurns:    cfg.MaxTurns,
			}
			for _, m := range cfg.Experiment.Matchups {
				setup.Matchups = append(setup.Matchups, [2]string{m[0], m[1]})
			}

			start := time.Now()
			results, err := experiments.Run(cmd.Context(), setup)
			if err != nil {
				return err
			}
			end := time.Now()

			writer, err := metrics.NewWriter(cfg.Experiment.OutputDir, setup.Name)
			if err != nil {
				return err
			}
			if err := experiments.Store(writer, setup, results, start, end); err != nil {
				return err
			}

			for name, wins := range results.Wins() {
				if name == "" {
					name = "draws"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d\n", name, wins)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "records written to %s\n", writer.Dir())
			return nil
		},
	}
	cmd.Flags().Int("games", 0, "games per matchup")
	return cmd
}

func throughputCmd(cfg *config.Config) *cobra.Command {
	setup := experiments.ThroughputSetup{
		Strategies: []string{agent.MinimaxRecursive, agent.MinimaxIterative},
	}
	cmd := &cobra.Command{
		Use:   "throughput",
		Short: "Measure search work of each strategy on random synthetic trees",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := experiments.RunThroughput(setup)
			if err != nil {
				return err
			}
			writer, err := metrics.NewWriter(cfg.Experiment.OutputDir, "throughput")
			if err != nil {
				return err
			}
			if err := writer.WriteThroughputRecords(records); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "records written to %s\n", writer.Dir())
			return nil
		},
	}
	cmd.Flags().Uint64Var(&setup.Seed, "seed", 1, "random seed")
	cmd.Flags().IntVar(&setup.NumTrees, "trees", 20, "number of random trees")
	cmd.Flags().IntVar(&setup.MaxDepth, "depth", 8, "maximum depth of each tree")
	cmd.Flags().IntVar(&setup.MaxBranching, "branching", 4, "maximum branching factor")
	cmd.Flags().StringSliceVar(&setup.Strategies, "strategies", setup.Strategies, "strategies to measure")
	return cmd
}

func treeCmd() *cobra.Command {
	var (
		seed      uint64
		depth     int
		branching int
	)
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Search a random synthetic game tree and print it in dot syntax",
		RunE: func(cmd *cobra.Command, args []string) error {
			if depth < 1 || branching < 1 {
				return fmt.Errorf("depth and branching must be positive, got %d and %d", depth, branching)
			}
			root := synthetic.Random(rand.New(rand.NewSource(seed)), depth, branching)
			g := synthetic.New(root, game.PlayerOne)

			var tree *searcher.Node
			s := searcher.NewIterative(searcher.WithTree(func(n *searcher.Node) { tree = n }))
			result := s.Search(g, g.CurrentState())
			log.Info().Msgf("best move %v with score %+g", result.Move, result.Score)

			dot, err := searcher.ToDot(tree)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), dot)
			return nil
		},
	}
	cmd.Flags().Uint64Var(&seed, "seed", 1, "random seed")
	cmd.Flags().IntVar(&depth, "depth", 3, "maximum depth of the tree")
	cmd.Flags().IntVar(&branching, "branching", 3, "maximum branching factor")
	return cmd
}
