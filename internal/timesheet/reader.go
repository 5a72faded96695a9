// Package timesheet reads the two-line-per-record timesheet export.
//
// Each record spans two non-blank lines:
//
//	01.12.2025;09:00
//	45 min;Berlin
//
// The first line carries date and start time, the second duration and
// location. Fields are semicolon separated; extra fields are ignored.
package timesheet

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/iho/goinvoice/internal/domain"
)

const (
	fieldSeparator = ";"
	byteOrderMark  = "\ufeff"
	maxLineSize    = 1024 * 1024
)

type line struct {
	text   string
	number int
}

// Read parses all records from r.
func Read(r io.Reader) ([]domain.TimeEntry, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}

	if len(lines)%2 != 0 {
		last := lines[len(lines)-1]
		return nil, fmt.Errorf("%w: line %d has no matching duration line (odd number of lines: %d)",
			domain.ErrMalformedRecord, last.number, len(lines))
	}

	entries := make([]domain.TimeEntry, 0, len(lines)/2)
	for i := 0; i < len(lines); i += 2 {
		entry, err := parseRecord(lines[i], lines[i+1])
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// ReadString parses all records from s.
func ReadString(s string) ([]domain.TimeEntry, error) {
	return Read(strings.NewReader(s))
}

func readLines(r io.Reader) ([]line, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lines []line
	number := 0
	for scanner.Scan() {
		number++
		text := scanner.Text()
		if number == 1 {
			text = strings.TrimPrefix(text, byteOrderMark)
		}

		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		lines = append(lines, line{text: text, number: number})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read timesheet: %w", err)
	}

	return lines, nil
}

func parseRecord(first, second line) (domain.TimeEntry, error) {
	head, err := splitFields(first)
	if err != nil {
		return domain.TimeEntry{}, err
	}

	tail, err := splitFields(second)
	if err != nil {
		return domain.TimeEntry{}, err
	}

	return domain.TimeEntry{
		Date:      head[0],
		StartTime: head[1],
		Duration:  tail[0],
		Location:  tail[1],
		Line:      first.number,
	}, nil
}

func splitFields(l line) ([]string, error) {
	fields := strings.Split(l.text, fieldSeparator)
	if len(fields) < 2 {
		return nil, fmt.Errorf("%w: line %d has %d field(s), want at least 2",
			domain.ErrMalformedRecord, l.number, len(fields))
	}

	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	return fields, nil
}
