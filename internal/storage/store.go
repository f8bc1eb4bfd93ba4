package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/forcelab/internal/experiment"
	"github.com/san-kum/forcelab/internal/force"
)

const (
	metadataFile = "metadata.json"
	seriesFile   = "series.csv"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID          string             `json:"id"`
	Curve       string             `json:"curve"`
	Timestamp   time.Time          `json:"timestamp"`
	Domain      force.Domain       `json:"domain"`
	Params      ParamSet           `json:"params"`
	Diagnostics []force.Diagnostic `json:"diagnostics"`
	Summary     force.Summary      `json:"summary"`
	Warnings    []string           `json:"warnings,omitempty"`
	Chart       force.ChartSpec    `json:"chart"`
}

// Save writes the run's metadata and samples. A failed save leaves no run
// directory behind.
func (s *Store) Save(result *experiment.Result) (string, error) {
	now := time.Now()
	runID := fmt.Sprintf("%s_%d", result.Curve, now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:          runID,
		Curve:       result.Curve,
		Timestamp:   now,
		Domain:      result.Domain,
		Params:      result.Params,
		Diagnostics: result.Diagnostics,
		Summary:     result.Summary,
		Warnings:    result.Warnings,
		Chart:       result.Series.Chart,
	}

	if err := writeRun(runDir, &meta, result.Series); err != nil {
		os.RemoveAll(runDir)
		return "", fmt.Errorf("save %s: %w", runID, err)
	}

	return runID, nil
}

func writeRun(runDir string, meta *RunMetadata, series *force.Series) error {
	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return err
	}

	csvFile, err := os.Create(filepath.Join(runDir, seriesFile))
	if err != nil {
		return err
	}
	defer csvFile.Close()

	if err := WriteCSV(csvFile, series); err != nil {
		return err
	}
	return csvFile.Close()
}

// List returns every readable run, oldest first. Directories without
// valid metadata are skipped.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadSeries reads the samples of a run back, with the chart metadata
// recorded at save time.
func (s *Store) LoadSeries(runID string) (*force.Series, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(filepath.Join(s.baseDir, runID, seriesFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	series := &force.Series{
		Name:  meta.Curve,
		X:     []float64{},
		Y:     []float64{},
		Chart: meta.Chart,
	}
	if len(records) < 2 {
		return series, nil
	}

	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) < 2 {
			continue
		}
		x, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		y, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			continue
		}
		series.X = append(series.X, x)
		series.Y = append(series.Y, y)
	}

	return series, nil
}
