package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID, playing p1
	Agent2 int // AgentConfig.ID, playing p2
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

// ThroughputRecord is the work one strategy spent on one synthetic tree.
type ThroughputRecord struct {
	Tree       int
	TreeNodes  int
	TreeLeaves int
	SearchMetric
}

// Setup describes an experiment run.
type Setup struct {
	Name      string          `yaml:"name"`
	BoardSize int             `yaml:"boardSize"`
	Agents    []AgentConfig   `yaml:"agents"`
	Matchups  [][]AgentConfig `yaml:"matchups"`
	NumGames  int             `yaml:"numGames"` // per matchup
	StartTime time.Time       `yaml:"startTime"`
	EndTime   time.Time       `yaml:"endTime"`
	Duration  time.Duration   `yaml:"duration"`
}

type Writer struct {
	baseDir string
}

func NewWriter(root, name string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format("2006-01-02T15-04-05")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string { return w.baseDir }

func (w *Writer) WriteSetup(setup Setup) error {
	path := filepath.Join(w.baseDir, "setup.yaml")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create setup file: %w", err)
	}
	defer f.Close()

	encoder := yaml.NewEncoder(f)
	defer encoder.Close()
	if err := encoder.Encode(setup); err != nil {
		return fmt.Errorf("failed to write setup: %w", err)
	}
	return nil
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "agent1", "agent2", "starting_player", "winner", "start_time", "end_time", "duration", "total_moves"}
	rows := make([][]string, len(records))
	for i, record := range records {
		rows[i] = []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Agent1),
			strconv.Itoa(record.Agent2),
			string(record.StartingPlayer),
			string(record.Winner),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
		}
	}
	return w.writeCSV("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "player", "move", "strategy", "duration", "nodes", "pops", "expansions", "leaves", "max_depth"}
	rows := make([][]string, len(records))
	for i, record := range records {
		rows[i] = []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			string(record.Player),
			record.Move,
			record.Strategy,
			record.Duration.String(),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.Pops),
			strconv.Itoa(record.Expansions),
			strconv.Itoa(record.Leaves),
			strconv.Itoa(record.MaxDepth),
		}
	}
	return w.writeCSV("move_records.csv", header, rows)
}

func (w *Writer) WriteThroughputRecords(records []ThroughputRecord) error {
	header := []string{"tree", "tree_nodes", "tree_leaves", "strategy", "duration", "nodes", "pops", "expansions", "leaves", "max_depth", "nodes_per_second"}
	rows := make([][]string, len(records))
	for i, record := range records {
		perSecond := 0.0
		if record.Duration > 0 {
			perSecond = float64(record.Nodes) / record.Duration.Seconds()
		}
		rows[i] = []string{
			strconv.Itoa(record.Tree),
			strconv.Itoa(record.TreeNodes),
			strconv.Itoa(record.TreeLeaves),
			record.Strategy,
			record.Duration.String(),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.Pops),
			strconv.Itoa(record.Expansions),
			strconv.Itoa(record.Leaves),
			strconv.Itoa(record.MaxDepth),
			strconv.FormatFloat(perSecond, 'f', 0, 64),
		}
	}
	return w.writeCSV("throughput_records.csv", header, rows)
}

func (w *Writer) writeCSV(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	return nil
}
