package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/cyclefeat/cycles"
	"github.com/katalvlaran/cyclefeat/timeline"
	"github.com/katalvlaran/cyclefeat/tracking"
)

// ErrBadHeader indicates the CSV header is missing a required column.
var ErrBadHeader = errors.New("dataset: missing header column")

// ErrBadRecord indicates a data row that cannot be parsed; always wrapped
// with its 1-based line number.
var ErrBadRecord = errors.New("dataset: malformed record")

// Expected column names per input table.
const (
	colUserID       = "user_id"
	colCycleID      = "cycle_id"
	colCycleStart   = "cycle_start"
	colCycleLength  = "cycle_length"
	colPeriodLength = "period_length"
	colDate         = "date"
	colSymptom      = "symptom"
)

// header maps column names to their position in the CSV header row.
type header map[string]int

// readHeader consumes the first row and resolves the required columns.
func readHeader(cr *csv.Reader, required ...string) (header, error) {
	row, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("dataset: read header: %w", err)
	}

	h := make(header, len(row))
	for i, name := range row {
		h[name] = i
	}
	for _, name := range required {
		if _, ok := h[name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrBadHeader, name)
		}
	}

	return h, nil
}

// rows iterates data rows, handing each to fn with its 1-based physical
// line number. The position comes from the reader itself, so quoted
// fields spanning multiple lines still report true locations.
func rows(cr *csv.Reader, fn func(line int, row []string) error) error {
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			// csv.ParseError carries its own line and column.
			return fmt.Errorf("%w: %v", ErrBadRecord, err)
		}
		line, _ := cr.FieldPos(0)
		if err = fn(line, row); err != nil {
			return err
		}
	}
}

// badRecord wraps a field-level parse failure with its line number.
func badRecord(line int, field string, err error) error {
	return fmt.Errorf("line %d: %w: %s: %v", line, ErrBadRecord, field, err)
}

// LoadCycles reads the cycle records table: columns user_id, cycle_id,
// cycle_start (YYYY-MM-DD), cycle_length, period_length.
// Records are returned as read; validation belongs to cycles.ExpandAll.
func LoadCycles(r io.Reader) ([]cycles.Record, error) {
	cr := csv.NewReader(r)
	h, err := readHeader(cr, colUserID, colCycleID, colCycleStart, colCycleLength, colPeriodLength)
	if err != nil {
		return nil, err
	}

	var out []cycles.Record
	err = rows(cr, func(line int, row []string) error {
		id, err := strconv.ParseInt(row[h[colCycleID]], 10, 64)
		if err != nil {
			return badRecord(line, colCycleID, err)
		}
		start, err := timeline.ParseDate(row[h[colCycleStart]])
		if err != nil {
			return badRecord(line, colCycleStart, err)
		}
		length, err := strconv.Atoi(row[h[colCycleLength]])
		if err != nil {
			return badRecord(line, colCycleLength, err)
		}
		period, err := strconv.Atoi(row[h[colPeriodLength]])
		if err != nil {
			return badRecord(line, colPeriodLength, err)
		}

		out = append(out, cycles.Record{
			User:         row[h[colUserID]],
			CycleID:      id,
			Start:        start,
			Length:       length,
			PeriodLength: period,
		})

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// LoadEvents reads the symptom event log: columns user_id, date, symptom.
func LoadEvents(r io.Reader) ([]tracking.Event, error) {
	cr := csv.NewReader(r)
	h, err := readHeader(cr, colUserID, colDate, colSymptom)
	if err != nil {
		return nil, err
	}

	var out []tracking.Event
	err = rows(cr, func(line int, row []string) error {
		d, err := timeline.ParseDate(row[h[colDate]])
		if err != nil {
			return badRecord(line, colDate, err)
		}
		out = append(out, tracking.Event{
			User:    row[h[colUserID]],
			Date:    d,
			Symptom: row[h[colSymptom]],
		})

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// LoadUsers reads the user roster: column user_id.
func LoadUsers(r io.Reader) ([]string, error) {
	cr := csv.NewReader(r)
	h, err := readHeader(cr, colUserID)
	if err != nil {
		return nil, err
	}

	var out []string
	err = rows(cr, func(_ int, row []string) error {
		out = append(out, row[h[colUserID]])

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// LoadActiveDays reads the active-day pairs: columns user_id, date.
func LoadActiveDays(r io.Reader) ([]timeline.Key, error) {
	cr := csv.NewReader(r)
	h, err := readHeader(cr, colUserID, colDate)
	if err != nil {
		return nil, err
	}

	var out []timeline.Key
	err = rows(cr, func(line int, row []string) error {
		d, err := timeline.ParseDate(row[h[colDate]])
		if err != nil {
			return badRecord(line, colDate, err)
		}
		out = append(out, timeline.Key{User: row[h[colUserID]], Date: d})

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}
