// Package xer tokenizes a Primavera P6 XER export (a tab-delimited,
// line-oriented tabular stream) into an ordered dictionary of named tables.
// It performs no interpretation of cell values — that is the schedule
// builder's job (see internal/builder) — only framing and encoding.
package xer

import (
	"strings"

	"github.com/avireddy0/XERReader/pkg/schedule"
	"github.com/avireddy0/XERReader/pkg/scheduleerr"
)

// MaxFileBytes is the hard ceiling on input size. Inputs larger than this
// fail with scheduleerr.KindFileTooLarge before any decoding is attempted.
const MaxFileBytes = 100 * 1024 * 1024

// MaxRows is the hard ceiling on cumulative %R data rows across all tables.
// Parsing aborts with scheduleerr.KindTooManyRows the moment it is exceeded.
const MaxRows = 1_000_000

const bytesPerMiB = 1024 * 1024

// Parse tokenizes raw XER bytes into a Tables dictionary. It does not
// itself check for a zero-length buffer (EmptyFile is the format
// auto-detector's concern, since an empty buffer never reaches a specific
// parser); every other failure mode in spec §4.1 is handled here.
func Parse(data []byte) (*Tables, []schedule.Diagnostic, error) {
	if len(data) > MaxFileBytes {
		return nil, nil, scheduleerr.NewFileTooLarge(
			float64(len(data))/bytesPerMiB,
			float64(MaxFileBytes)/bytesPerMiB,
		)
	}

	text, ok := decode(data)
	if !ok {
		return nil, nil, scheduleerr.NewEncoding()
	}

	return parseText(text)
}

func parseText(text string) (*Tables, []schedule.Diagnostic, error) {
	tables := newTables()
	var diags []schedule.Diagnostic

	var current *Table
	rowCount := 0
	sawAnyMarker := false
	sawHeader := false

	for _, line := range splitLines(text) {
		if strings.TrimSpace(line) == "" {
			continue
		}

		parts := strings.Split(line, "\t")
		marker := parts[0]
		cells := parts[1:]

		switch marker {
		case "ERMHDR":
			sawAnyMarker = true
			sawHeader = true

		case "%T":
			sawAnyMarker = true
			if current != nil {
				tables.finalize(current)
			}
			name := ""
			if len(cells) > 0 {
				name = strings.ToUpper(strings.TrimSpace(cells[0]))
			}
			current = &Table{Name: name}

		case "%F":
			sawAnyMarker = true
			if current != nil {
				current.Fields = append([]string{}, cells...)
			}

		case "%R":
			sawAnyMarker = true
			if current == nil || len(current.Fields) == 0 {
				continue
			}
			rowCount++
			if rowCount > MaxRows {
				return nil, nil, scheduleerr.NewTooManyRows(rowCount, MaxRows)
			}
			row := make(Row, len(current.Fields))
			for i, fname := range current.Fields {
				if i < len(cells) {
					row[fname] = cells[i]
				}
			}
			current.Rows = append(current.Rows, row)

		case "%E":
			sawAnyMarker = true
			if current != nil {
				tables.finalize(current)
				current = nil
			}

		default:
			// Unrecognized marker lines are ignored.
		}
	}

	// No %E at EOF: finalize the final table only if it has rows.
	if current != nil && len(current.Rows) > 0 {
		tables.finalize(current)
	}

	if !sawAnyMarker {
		return nil, nil, scheduleerr.NewInvalidFormat("no recognizable XER markers found")
	}
	if !sawHeader {
		diags = append(diags, schedule.NewDiagnostic(
			schedule.DiagnosticMissingHeader,
			"no ERMHDR line encountered",
		))
	}

	return tables, diags, nil
}

// splitLines frames the stream on any of LF, CR, or CRLF line endings.
func splitLines(text string) []string {
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")
	return strings.Split(normalized, "\n")
}
