// Package linkedin parses LinkedIn data exports (Connections/Profile/
// Positions CSVs, optionally bundled in a ZIP archive) into domain types.
//
// Real exports are messy: UTF-8 BOMs, preamble notes before the header row,
// stray quotes inside unquoted fields and ragged rows are all common, so the
// parser is deliberately lenient and never fails a whole file for a bad row.
package linkedin

import (
	"strings"
)

// headerScanWindow caps how many leading lines are inspected while looking
// for the header row.
const headerScanWindow = 20

// RawRow is one parsed data row: an ordered mapping from normalized column
// key to the cell value.
type RawRow struct {
	Columns []string
	values  map[string]string
}

// NewRawRow builds a row from header labels and positional values. Labels are
// normalized the same way parseTable normalizes a discovered header; missing
// trailing values default to "".
func NewRawRow(labels, values []string) RawRow {
	columns := make([]string, len(labels))
	vals := make(map[string]string, len(labels))
	for i, label := range labels {
		columns[i] = normalizeKey(label)
		if i < len(values) {
			vals[columns[i]] = values[i]
		} else {
			vals[columns[i]] = ""
		}
	}
	return RawRow{Columns: columns, values: vals}
}

// Get returns the value of the first column whose normalized key matches one
// of the given synonyms.
func (r RawRow) Get(synonyms ...string) string {
	for _, syn := range synonyms {
		if v, ok := r.values[normalizeKey(syn)]; ok {
			return v
		}
	}
	return ""
}

// ValueAt returns the cell under the i-th column, or "" when out of range.
func (r RawRow) ValueAt(i int) string {
	if i < 0 || i >= len(r.Columns) {
		return ""
	}
	return r.values[r.Columns[i]]
}

// normalizeKey lowercases a header label and strips everything that is not a
// letter or digit, so "E-mail Address", "Email address" and "EmailAddress"
// collapse to the same key.
func normalizeKey(label string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(label) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// tokenizeLine splits one CSV line into trimmed field values. A double quote
// toggles quoted mode, a doubled quote inside quoted mode emits a literal
// quote, and a comma only terminates a field outside quoted mode. An
// unterminated quote is tolerated; the mode simply resets at end of line.
func tokenizeLine(line string) []string {
	var values []string
	var current strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch {
		case ch == '"':
			if i+1 < len(line) && line[i+1] == '"' {
				current.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case ch == ',' && !inQuotes:
			values = append(values, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteByte(ch)
		}
	}
	values = append(values, strings.TrimSpace(current.String()))
	return values
}

// headerPredicate decides whether a tokenized line is the header row.
type headerPredicate func(tokens []string) bool

// genericHeader accepts the first row with more than two non-empty cells.
func genericHeader(tokens []string) bool {
	if len(tokens) <= 2 {
		return false
	}
	for _, t := range tokens {
		if t != "" {
			return true
		}
	}
	return false
}

// connectionsHeader requires both a first-name-like and a last-name-like
// column label, which reliably skips the "Notes:" preamble LinkedIn prepends
// to Connections.csv.
func connectionsHeader(tokens []string) bool {
	hasFirst, hasLast := false, false
	for _, t := range tokens {
		switch normalizeKey(t) {
		case "firstname", "first":
			hasFirst = true
		case "lastname", "last":
			hasLast = true
		}
	}
	return hasFirst && hasLast
}

// parseTable turns full CSV text into header-keyed rows. The header row is
// discovered by scanning up to headerScanWindow non-blank lines with the
// given predicate; if nothing matches, line 0 is treated as the header so the
// caller degrades to empty field lookups instead of an error.
func parseTable(text string, isHeader headerPredicate) []RawRow {
	text = strings.TrimPrefix(text, "\ufeff")

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}

	if len(lines) < 2 {
		return nil
	}

	headerIndex := 0
	var header []string
	found := false

	limit := len(lines)
	if limit > headerScanWindow {
		limit = headerScanWindow
	}
	for i := 0; i < limit; i++ {
		tokens := tokenizeLine(lines[i])
		if isHeader(tokens) {
			headerIndex = i
			header = tokens
			found = true
			break
		}
	}
	if !found {
		header = tokenizeLine(lines[0])
	}

	columns := make([]string, len(header))
	for i, label := range header {
		columns[i] = normalizeKey(label)
	}

	var rows []RawRow
	for i := headerIndex + 1; i < len(lines); i++ {
		values := tokenizeLine(lines[i])
		if len(values) == 0 || (len(values) == 1 && values[0] == "") {
			continue
		}

		row := RawRow{Columns: columns, values: make(map[string]string, len(columns))}
		for j, col := range columns {
			if j < len(values) {
				row.values[col] = values[j]
			} else {
				row.values[col] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows
}
