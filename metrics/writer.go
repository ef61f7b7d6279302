package metrics

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type GameRecord struct {
	ID    int
	Round int
	Match int
	Game  int // Game number within the match
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates <root>/<name>/<timestamp> and writes every file into it.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Round),
			strconv.Itoa(record.Match),
			strconv.Itoa(record.Game),
			record.Red,
			record.Yellow,
			record.Winner,
			record.Outcome,
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
			strconv.Itoa(record.Fallbacks),
			strconv.FormatUint(record.FinalHash, 10),
		})
	}

	header := []string{"id", "round", "match", "game", "red", "yellow", "winner", "outcome", "start_time", "end_time", "duration", "total_moves", "fallbacks", "final_hash"}
	return w.writeCSV("game_records.csv", "game records", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Player,
			record.Colour.String(),
			strconv.Itoa(record.Column),
			strconv.FormatUint(record.Hash, 10),
			record.ThinkTime.String(),
			strconv.FormatBool(record.Fallback),
		})
	}

	header := []string{"game", "step", "player", "colour", "column", "hash", "think_time", "fallback"}
	return w.writeCSV("move_records.csv", "move records", header, rows)
}

// WriteSummary stores v as indented JSON in tournament.json.
func (w *Writer) WriteSummary(v any) error {
	path := filepath.Join(w.baseDir, "tournament.json")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create summary file: %w", err)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	err = encoder.Encode(v)
	if err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}

	return nil
}

func (w *Writer) writeCSV(filename, what string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, filename)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s file: %w", what, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", what, err)
	}

	for _, row := range rows {
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write %s row: %w", what, err)
		}
	}

	writer.Flush()
	if err = writer.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", what, err)
	}

	return nil
}
