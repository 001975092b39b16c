package config

import (
	"os"
	"stonehenge/agent"
	"stonehenge/game"
	"stonehenge/game/stonehenge"
	"stonehenge/meta"
	"strconv"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// Config collects every knob of the command line tool.
type Config struct {
	BoardSize   int         `yaml:"boardSize"`
	FirstPlayer game.Player `yaml:"firstPlayer"`
	Strategies  Strategies  `yaml:"strategies"`
	MaxTurns    int         `yaml:"maxTurns"`
	Experiment  Experiment  `yaml:"experiment"`
	LogLevel    string      `yaml:"logLevel"`
}

type Strategies struct {
	P1 string `yaml:"p1"`
	P2 string `yaml:"p2"`
}

type Experiment struct {
	Name        string     `yaml:"name"`
	NumGames    int        `yaml:"numGames"`
	Concurrency int        `yaml:"concurrency"`
	OutputDir   string     `yaml:"outputDir"`
	Matchups    [][]string `yaml:"matchups"`
}

func Default() Config {
	return Config{
		BoardSize:   meta.BOARD_SIZE,
		FirstPlayer: meta.FIRST_PLAYER,
		Strategies: Strategies{
			P1: meta.STRATEGY_P1,
			P2: meta.STRATEGY_P2,
		},
		MaxTurns: meta.MAX_TURNS,
		Experiment: Experiment{
			Name:        "strategies",
			NumGames:    meta.NUM_GAMES,
			Concurrency: meta.CONCURRENCY,
			OutputDir:   meta.OUTPUT_DIR,
			Matchups: [][]string{
				{agent.RoughOutcome, agent.MinimaxIterative},
				{agent.MinimaxRecursive, agent.MinimaxIterative},
			},
		},
		LogLevel: meta.LOG_LEVEL,
	}
}

// Load reads configuration with priority: env > file > defaults. A missing
// file keeps the defaults.
func Load(path string) (Config, error) {
	config := Default()

	if path != "" {
		if err := loadFile(path, &config); err != nil {
			return config, errors.Wrapf(err, "cannot load config file %s", path)
		}
	}

	if err := loadEnv(&config); err != nil {
		return config, errors.Wrap(err, "cannot load config from environment")
	}

	if err := config.Validate(); err != nil {
		return config, errors.Wrap(err, "invalid config")
	}
	return config, nil
}

func loadFile(path string, config *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return yaml.Unmarshal(data, config)
}

func loadEnv(config *Config) error {
	if v := os.Getenv("STONEHENGE_BOARD_SIZE"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrap(err, "STONEHENGE_BOARD_SIZE")
		}
		config.BoardSize = size
	}
	if v := os.Getenv("STONEHENGE_FIRST_PLAYER"); v != "" {
		config.FirstPlayer = game.Player(v)
	}
	if v := os.Getenv("STONEHENGE_STRATEGY_P1"); v != "" {
		config.Strategies.P1 = v
	}
	if v := os.Getenv("STONEHENGE_STRATEGY_P2"); v != "" {
		config.Strategies.P2 = v
	}
	if v := os.Getenv("STONEHENGE_LOG_LEVEL"); v != "" {
		config.LogLevel = v
	}
	return nil
}

func (c Config) Validate() error {
	if c.BoardSize < stonehenge.MinSize || c.BoardSize > stonehenge.MaxSize {
		return errors.Errorf("boardSize %d out of range [%d, %d]", c.BoardSize, stonehenge.MinSize, stonehenge.MaxSize)
	}
	if c.FirstPlayer != game.PlayerOne && c.FirstPlayer != game.PlayerTwo {
		return errors.Errorf("firstPlayer must be %s or %s, got %q", game.PlayerOne, game.PlayerTwo, c.FirstPlayer)
	}
	for _, name := range []string{c.Strategies.P1, c.Strategies.P2} {
		if !lo.Contains(agent.Names, name) {
			return errors.Errorf("unknown strategy %q, want one of %v", name, agent.Names)
		}
	}
	if c.MaxTurns <= 0 {
		return errors.Errorf("maxTurns must be positive, got %d", c.MaxTurns)
	}
	if c.Experiment.NumGames <= 0 || c.Experiment.Concurrency <= 0 {
		return errors.New("experiment numGames and concurrency must be positive")
	}
	for _, matchup := range c.Experiment.Matchups {
		if len(matchup) != 2 {
			return errors.Errorf("matchup %v must name exactly two strategies", matchup)
		}
		for _, name := range matchup {
			if name == agent.Interactive || !lo.Contains(agent.Names, name) {
				return errors.Errorf("matchup strategy %q must be a non-interactive strategy", name)
			}
		}
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrapf(err, "logLevel %q", c.LogLevel)
	}
	return nil
}
