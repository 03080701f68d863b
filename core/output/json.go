package output

import (
	"encoding/json"
	"io"

	"cloudcost/core/types"
	"cloudcost/internal/errors"
)

// JSONFormatter renders the report as JSON. Amounts are quoted decimal
// strings so no precision is lost.
type JSONFormatter struct {
	Indent string
}

// Format returns FormatJSON
func (f *JSONFormatter) Format() Format { return FormatJSON }

// Render writes the report to w
func (f *JSONFormatter) Render(w io.Writer, report *Report, opts Options) error {
	doc := *report
	if !opts.Details {
		doc.Scenarios = make([]ScenarioReport, len(report.Scenarios))
		for i, s := range report.Scenarios {
			s.A = summaryOnly(s.A)
			s.B = summaryOnly(s.B)
			doc.Scenarios[i] = s
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", f.Indent)
	if err := enc.Encode(&doc); err != nil {
		return errors.Internal("failed to encode report", err)
	}
	return nil
}

// summaryOnly drops line items and assumptions from a breakdown copy
func summaryOnly(b *types.Breakdown) *types.Breakdown {
	if b == nil {
		return nil
	}
	out := *b
	out.Units = nil
	out.Assumptions = nil
	return &out
}
