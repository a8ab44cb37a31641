package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/avaldr/mms/internal/grid"
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
	ID        string             `json:"id"`
	Field     string             `json:"field"`
	Quantity  string             `json:"quantity"`
	Timestamp time.Time          `json:"timestamp"`
	Nx        int                `json:"nx"`
	Ny        int                `json:"ny"`
	Domain    [4]float64         `json:"domain"`
	Columns   []string           `json:"columns"`
	Metrics   map[string]float64 `json:"metrics"`
}

func (s *Store) Save(fieldName string, spec grid.Spec, result *grid.Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", fieldName, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Field:     fieldName,
		Quantity:  spec.Quantity,
		Timestamp: time.Now(),
		Nx:        spec.Nx,
		Ny:        spec.Ny,
		Domain:    [4]float64{spec.X0, spec.X1, spec.Y0, spec.Y1},
		Columns:   result.Columns,
		Metrics:   result.Metrics,
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvPath := filepath.Join(runDir, "samples.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	header := append([]string{"x", "y"}, result.Columns...)
	if err := w.Write(header); err != nil {
		return "", err
	}

	for _, row := range result.Points {
		record := make([]string, len(row))
		for i, val := range row {
			record[i] = strconv.FormatFloat(val, 'g', 12, 64)
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}

	return runID, nil
}

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

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadSamples reads a run's CSV back as the header columns and the
// numeric rows (x, y first, then the stored quantities).
func (s *Store) LoadSamples(runID string) ([]string, [][]float64, error) {
	csvPath := filepath.Join(s.baseDir, runID, "samples.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}

	if len(records) < 2 {
		return nil, [][]float64{}, nil
	}

	header := records[0]
	rows := make([][]float64, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make([]float64, 0, len(record))
		for _, cell := range record {
			val, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				continue
			}
			row = append(row, val)
		}
		rows = append(rows, row)
	}

	return header, rows, nil
}
