// Package report renders checklist state as a CSV export and as a static
// print view. Every function here is a pure projection of its inputs.
package report

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/runoshun/toilet-monitor/internal/domain"
)

// CSV file naming.
const (
	CSVMIMEType   = "text/csv"
	csvNamePrefix = "monitoring-toilet-"
	csvNameSuffix = ".csv"
)

// CSVOptions selects the column set and label language of an export.
type CSVOptions struct {
	StatusLabels      domain.LabelStyle // Status tokens and header language
	IncludeDateColumn bool              // Emit the date label column
}

// OptionsFromConfig builds CSVOptions from the [export] section.
func OptionsFromConfig(cfg domain.ExportConfig) CSVOptions {
	return CSVOptions{
		StatusLabels:      cfg.StatusLabels,
		IncludeDateColumn: cfg.IncludeDateColumn,
	}
}

// Header returns the header cells for the column set.
func (o CSVOptions) Header() []string {
	if o.StatusLabels == domain.LabelStyleCanonical {
		if o.IncludeDateColumn {
			return []string{"No", "Item", "Status", "Note", "Date", "Location", "Coordinator"}
		}
		return []string{"No", "Item", "Status", "Note", "Location", "Coordinator"}
	}
	if o.IncludeDateColumn {
		return []string{"No", "Checklist", "Status", "Catatan", "Hari & Tanggal", "Lokasi", "Koordinator"}
	}
	return []string{"No", "Checklist", "Status", "Catatan", "Lokasi", "Koordinator"}
}

// EncodeCSV renders the checklist and metadata as CSV text.
//
// The header row is followed by one row per item in checklist order. Id and
// status are written bare; label, note and the metadata fields (repeated on
// every row) are always double-quoted with embedded quotes doubled. Rows are
// separated by "\n" with no trailing newline.
func EncodeCSV(c domain.Checklist, meta domain.SessionMetadata, opts CSVOptions) string {
	lines := make([]string, 0, c.Len()+1)
	lines = append(lines, strings.Join(opts.Header(), ","))

	for _, it := range c.Items() {
		cells := []string{
			strconv.Itoa(it.ID),
			quote(it.Label),
			it.Status.Label(opts.StatusLabels),
			quote(it.Note),
		}
		if opts.IncludeDateColumn {
			cells = append(cells, quote(meta.DateLabel))
		}
		cells = append(cells, quote(meta.Location), quote(meta.Coordinator))
		lines = append(lines, strings.Join(cells, ","))
	}

	return strings.Join(lines, "\n")
}

// quote wraps s in double quotes, doubling any embedded quote.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// Row is one parsed data row of an export.
// Fields are ordered to minimize memory padding.
type Row struct {
	Label       string
	Status      domain.Status
	Note        string
	DateLabel   string
	Location    string
	Coordinator string
	ID          int
}

// DecodeCSV parses text produced by EncodeCSV. The header must match one of
// the column sets EncodeCSV writes, so exports with or without the date column
// and in either label style are accepted.
func DecodeCSV(text string) ([]Row, error) {
	records, err := readRecords(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidCSV, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: missing header", domain.ErrInvalidCSV)
	}

	header := records[0]
	opts, ok := detectOptions(header)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected header %q", domain.ErrInvalidCSV, strings.Join(header, ","))
	}

	rows := make([]Row, 0, len(records)-1)
	for i, rec := range records[1:] {
		line := i + 2
		if len(rec) != len(header) {
			return nil, fmt.Errorf("%w: line %d has %d fields, want %d", domain.ErrInvalidCSV, line, len(rec), len(header))
		}

		id, err := strconv.Atoi(rec[0])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: bad id %q", domain.ErrInvalidCSV, line, rec[0])
		}
		status, err := domain.ParseStatus(rec[2])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", domain.ErrInvalidCSV, line, err)
		}

		row := Row{
			ID:     id,
			Label:  rec[1],
			Status: status,
			Note:   rec[3],
		}
		rest := rec[4:]
		if opts.IncludeDateColumn {
			row.DateLabel = rest[0]
			rest = rest[1:]
		}
		row.Location = rest[0]
		row.Coordinator = rest[1]
		rows = append(rows, row)
	}

	return rows, nil
}

// detectOptions returns the column set whose header equals header.
func detectOptions(header []string) (CSVOptions, bool) {
	for _, labels := range []domain.LabelStyle{domain.LabelStyleLocalized, domain.LabelStyleCanonical} {
		for _, withDate := range []bool{true, false} {
			opts := CSVOptions{StatusLabels: labels, IncludeDateColumn: withDate}
			if slices.Equal(header, opts.Header()) {
				return opts, true
			}
		}
	}
	return CSVOptions{}, false
}

// readRecords splits text into records using the quoting rule of EncodeCSV.
// A quoted field runs to the first quote that is not doubled; a doubled quote
// becomes one quote and every other byte, "\r" and "\n" included, is kept.
// Outside quotes a record ends at "\n" or "\r\n". Blank lines are skipped.
func readRecords(text string) ([][]string, error) {
	var (
		records [][]string
		record  []string
	)
	line := 1
	pos := 0
	for {
		value, next, err := readField(text, pos, &line)
		if err != nil {
			return nil, err
		}
		record = append(record, value)
		pos = next

		if pos >= len(text) {
			return appendRecord(records, record), nil
		}
		if text[pos] == ',' {
			pos++
			continue
		}
		pos += lineEndWidth(text, pos)
		records = appendRecord(records, record)
		record = nil
		line++
	}
}

// readField reads one field starting at pos and returns its value and the
// index of the delimiter (or end of text) that follows it.
func readField(text string, pos int, line *int) (string, int, error) {
	if pos >= len(text) || text[pos] != '"' {
		end := pos
		for end < len(text) && text[end] != ',' && lineEndWidth(text, end) == 0 {
			if text[end] == '"' {
				return "", 0, fmt.Errorf("line %d: bare quote in unquoted field", *line)
			}
			end++
		}
		return text[pos:end], end, nil
	}

	var b strings.Builder
	for i := pos + 1; i < len(text); i++ {
		ch := text[i]
		if ch != '"' {
			if ch == '\n' {
				*line++
			}
			b.WriteByte(ch)
			continue
		}
		if i+1 < len(text) && text[i+1] == '"' {
			b.WriteByte('"')
			i++
			continue
		}
		end := i + 1
		if end < len(text) && text[end] != ',' && lineEndWidth(text, end) == 0 {
			return "", 0, fmt.Errorf("line %d: unexpected %q after quoted field", *line, text[end])
		}
		return b.String(), end, nil
	}
	return "", 0, fmt.Errorf("line %d: unterminated quoted field", *line)
}

// lineEndWidth returns the length of the line terminator at i, or 0.
func lineEndWidth(text string, i int) int {
	switch {
	case text[i] == '\n':
		return 1
	case text[i] == '\r' && i+1 < len(text) && text[i+1] == '\n':
		return 2
	}
	return 0
}

// appendRecord adds record unless it is a blank line.
func appendRecord(records [][]string, record []string) [][]string {
	if len(record) == 1 && record[0] == "" {
		return records
	}
	return append(records, record)
}

// FileName returns the export file name for the calendar date of now (UTC),
// e.g. monitoring-toilet-2025-01-31.csv.
func FileName(now time.Time) string {
	return csvNamePrefix + now.UTC().Format(time.DateOnly) + csvNameSuffix
}
