// Package report provides output formatters for calc results in JSON
// and human-readable text formats.
package report

import (
	"encoding/json"
	"io"

	"github.com/unbound-force/calc/internal/taxonomy"
)

// SchemaVersion is the version of the JSON output format.
const SchemaVersion = "1.0.0"

// JSONReport is the top-level JSON output structure.
type JSONReport struct {
	Version      string                 `json:"version"`
	Calculations []taxonomy.Calculation `json:"calculations"`
	Metadata     taxonomy.Metadata      `json:"metadata"`
}

// WriteJSON writes a report as formatted JSON to the writer.
func WriteJSON(w io.Writer, rpt *taxonomy.Report) error {
	out := JSONReport{
		Version:      SchemaVersion,
		Calculations: []taxonomy.Calculation{},
	}
	if rpt != nil {
		out.Metadata = rpt.Metadata
		if rpt.Calculations != nil {
			out.Calculations = rpt.Calculations
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
