package experiments

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Writer stores match records as CSV files under a timestamped directory.
type Writer struct {
	baseDir string
}

func NewWriter(baseDir, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	dir := filepath.Join(baseDir, name, timestamp)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create results directory: %w", err)
	}
	return &Writer{baseDir: dir}, nil
}

func (w *Writer) writeCSV(file string, header []string, rows [][]string) error {
	f, err := os.Create(filepath.Join(w.baseDir, file))
	if err != nil {
		return fmt.Errorf("create %s: %w", file, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write %s header: %w", file, err)
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write %s row: %w", file, err)
		}
	}
	return nil
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "kind", "iterations", "time_budget", "workers", "exploration", "seed"}
	rows := make([][]string, len(configs))
	for i, c := range configs {
		rows[i] = []string{
			strconv.Itoa(c.ID),
			c.Kind,
			strconv.Itoa(c.Iterations),
			c.TimeBudget.String(),
			strconv.Itoa(c.Workers),
			strconv.FormatFloat(c.Exploration, 'f', -1, 64),
			strconv.FormatUint(c.Seed, 10),
		}
	}
	return w.writeCSV("agent_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "agent1", "agent2", "winner", "scores", "turns", "moves", "duration"}
	rows := make([][]string, len(records))
	for i, r := range records {
		scores := ""
		for j, s := range r.Scores {
			if j > 0 {
				scores += " "
			}
			scores += strconv.Itoa(s)
		}
		rows[i] = []string{
			strconv.Itoa(r.ID),
			strconv.Itoa(r.Agent1),
			strconv.Itoa(r.Agent2),
			r.Winner,
			scores,
			strconv.Itoa(r.Turns),
			strconv.Itoa(r.Moves),
			r.Duration.String(),
		}
	}
	return w.writeCSV("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "player", "move", "search_duration", "search_iterations", "search_workers"}
	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = []string{
			strconv.Itoa(r.Game),
			strconv.Itoa(r.Step),
			strconv.Itoa(r.Player),
			r.Move,
			r.Duration.String(),
			strconv.FormatInt(r.Iterations, 10),
			strconv.Itoa(r.Workers),
		}
	}
	return w.writeCSV("move_records.csv", header, rows)
}
