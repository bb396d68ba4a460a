package readings

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// DefaultFile is the file name the station writes next to the server binary.
const DefaultFile = "readings.csv"

// ParseError reports the first row that could not be coerced. Loading stops there;
// no rows are skipped.
type ParseError struct {
	Line   int
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: %s %q: %v", e.Line, e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ErrFieldCount is wrapped by a ParseError when a row does not have exactly five fields.
var ErrFieldCount = errors.New("wrong number of fields")

// Load reads path and returns its readings sorted ascending by time, with every
// timestamp converted to loc (time.Local when nil).
func Load(path string, loc *time.Location) ([]Reading, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open readings %q: %w", path, err)
	}
	defer f.Close()
	rs, err := Parse(f, loc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rs, nil
}

// Parse decodes headerless CSV rows of time,temperature,humidity,pressure,battery.
// Naive timestamps are read as wall time in loc; zone-aware ones keep their offset
// and are then converted to loc.
func Parse(r io.Reader, loc *time.Location) ([]Reading, error) {
	if loc == nil {
		loc = time.Local
	}
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // checked below so the error carries our line number
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	var out []Reading
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			line := 0
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				line = pe.Line
			}
			return nil, &ParseError{Line: line, Err: err}
		}
		line, _ := cr.FieldPos(0)
		rd, perr := parseRecord(rec, loc)
		if perr != nil {
			perr.Line = line
			return nil, perr
		}
		out = append(out, rd)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].at.Before(out[j].at) })
	return out, nil
}

// utcSuffixes are trailing zone names meaning UTC. dateparse ignores them after
// fractional seconds ("2023-05-14 19:22:31.123456789 UTC"), so they are stripped and
// the rest is read as UTC.
var utcSuffixes = []string{" UTC", " GMT", " Z"}

// parseTime reads a timestamp, honoring its zone when it has one and otherwise taking
// it as wall time in loc.
func parseTime(raw string, loc *time.Location) (time.Time, error) {
	for _, suffix := range utcSuffixes {
		if len(raw) > len(suffix) && strings.EqualFold(raw[len(raw)-len(suffix):], suffix) {
			if t, err := dateparse.ParseIn(strings.TrimSpace(raw[:len(raw)-len(suffix)]), time.UTC); err == nil {
				return t, nil
			}
		}
	}
	return dateparse.ParseIn(raw, loc)
}

func parseRecord(rec []string, loc *time.Location) (Reading, *ParseError) {
	if len(rec) != len(Columns) {
		return Reading{}, &ParseError{Err: fmt.Errorf("%w: got %d, want %d", ErrFieldCount, len(rec), len(Columns))}
	}
	at, err := parseTime(strings.TrimSpace(rec[0]), loc)
	if err != nil {
		return Reading{}, &ParseError{Column: Columns[0], Value: rec[0], Err: err}
	}
	var vals [4]float64
	for i := range vals {
		s := strings.TrimSpace(rec[i+1])
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			var ne *strconv.NumError
			if errors.As(err, &ne) {
				err = ne.Err
			}
			return Reading{}, &ParseError{Column: Columns[i+1], Value: rec[i+1], Err: err}
		}
		vals[i] = v
	}
	return NewReading(at.In(loc), vals[0], vals[1], vals[2], vals[3]), nil
}
