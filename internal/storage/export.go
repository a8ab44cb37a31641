package storage

import (
	"encoding/json"
	"os"
)

type runExport struct {
	Meta    *RunMetadata `json:"meta"`
	Columns []string     `json:"columns"`
	Rows    [][]float64  `json:"rows"`
}

// ExportJSONStdout writes a full run (metadata plus samples) to
// stdout as indented JSON.
func ExportJSONStdout(meta *RunMetadata, columns []string, rows [][]float64) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(runExport{Meta: meta, Columns: columns, Rows: rows})
}
