package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// SweepConfig identifies one searcher configuration in a sweep.
type SweepConfig struct {
	ID          int
	Workers     int
	Duration    time.Duration
	SharedBound bool
}

// SearchRecord is the outcome of one timed search.
type SearchRecord struct {
	Config   int // SweepConfig.ID
	Round    int
	Depth    int
	Nodes    int64
	Duration time.Duration
}

type Writer struct {
	baseDir string
}

func NewWriter() (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join("experiments", "throughput", timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{baseDir: baseDir}, nil
}

func (w *Writer) WriteSweepConfigs(configs []SweepConfig) error {
	path := filepath.Join(w.baseDir, "sweep_configs.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create sweep configs file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "workers", "duration", "shared_bound"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write sweep configs header: %w", err)
	}

	for _, config := range configs {
		row := []string{
			strconv.Itoa(config.ID),
			strconv.Itoa(config.Workers),
			config.Duration.String(),
			strconv.FormatBool(config.SharedBound),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write sweep config row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteSearchRecords(records []SearchRecord) error {
	path := filepath.Join(w.baseDir, "search_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create search records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"config", "round", "depth", "nodes", "duration"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write search records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.Config),
			strconv.Itoa(record.Round),
			strconv.Itoa(record.Depth),
			strconv.FormatInt(record.Nodes, 10),
			record.Duration.String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write search record row: %w", err)
		}
	}

	return nil
}
