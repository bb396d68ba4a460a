package readings

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "readings.csv")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoad_SortsAscendingByTime(t *testing.T) {
	p := writeCSV(t, strings.Join([]string{
		"2024-01-02T00:00:00Z,21.5,40,1013.2,3.9",
		"2024-01-01T00:00:00Z,20.0,45,1012.0,4.0",
		"2024-01-01T12:00:00Z,22.0,43,1011.8,3.95",
	}, "\n")+"\n")

	rs, err := Load(p, time.UTC)
	require.NoError(t, err)
	require.Len(t, rs, 3)
	for i := 1; i < len(rs); i++ {
		require.False(t, rs[i].Time().Before(rs[i-1].Time()), "row %d out of order", i)
	}
	require.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), rs[0].Time())
	require.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), rs[2].Time())
	require.Equal(t, 45.0, rs[0].Humidity())
	require.Equal(t, 1012.0, rs[0].Pressure())
	require.Equal(t, 4.0, rs[0].Battery())
	require.Equal(t, 20.0, rs[0].Temperature().Celsius())
}

func TestParse_ManyRowsKeepCountAndOrder(t *testing.T) {
	var b strings.Builder
	base := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	const n = 200
	for i := 0; i < n; i++ {
		// interleave so the file is far from sorted
		at := base.Add(time.Duration((i*37)%n) * time.Minute)
		b.WriteString(at.Format(time.RFC3339) + ",20," + strconv.Itoa(i%100) + ",1000,3.7\n")
	}
	rs, err := Parse(strings.NewReader(b.String()), time.UTC)
	require.NoError(t, err)
	require.Len(t, rs, n)
	for i := 1; i < len(rs); i++ {
		require.False(t, rs[i].Time().Before(rs[i-1].Time()))
	}
}

func TestParse_EqualTimestampsKeepFileOrder(t *testing.T) {
	rs, err := Parse(strings.NewReader(
		"2024-01-01T00:00:00Z,1,1,1,1\n"+
			"2023-12-31T00:00:00Z,0,0,0,0\n"+
			"2024-01-01T00:00:00Z,2,2,2,2\n"), time.UTC)
	require.NoError(t, err)
	require.Len(t, rs, 3)
	require.Equal(t, 1.0, rs[1].Battery())
	require.Equal(t, 2.0, rs[2].Battery())
}

func TestParse_NormalizesToLocation(t *testing.T) {
	berlin := time.FixedZone("CET", 3600)
	rs, err := Parse(strings.NewReader(
		"2024-06-01T12:00:00+00:00,20,50,1000,3.7\n"+
			"2024-06-01 15:00:00,20,50,1000,3.7\n"), berlin)
	require.NoError(t, err)
	require.Len(t, rs, 2)

	// zone-aware: same instant, shown in the target zone
	require.Equal(t, berlin, rs[0].Time().Location())
	require.Equal(t, 13, rs[0].Time().Hour())
	require.True(t, rs[0].Time().Equal(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)))

	// naive: wall time read in the target zone
	require.Equal(t, 15, rs[1].Time().Hour())
	require.True(t, rs[1].Time().Equal(time.Date(2024, 6, 1, 14, 0, 0, 0, time.UTC)))
}

func TestParse_AcceptsCommonDateFormats(t *testing.T) {
	for _, ts := range []string{
		"2024-01-01",
		"2024-01-01 08:30:00",
		"2024-01-01T08:30:00.123456-05:00",
		"01/02/2024 08:30",
		"Mon, 01 Jan 2024 08:30:00 +0000",
	} {
		_, err := Parse(strings.NewReader(`"`+ts+`",20,50,1000,3.7`+"\n"), time.UTC)
		require.NoError(t, err, "format %q", ts)
	}
}

func TestParse_HonorsUTCSuffixInNonUTCLocation(t *testing.T) {
	eastern := time.FixedZone("EDT", -4*3600)
	want := time.Date(2023, 5, 14, 19, 22, 31, 0, time.UTC)
	cases := map[string]time.Time{
		"2023-05-14 19:22:31.123456789 UTC": want.Add(123456789 * time.Nanosecond),
		"2023-05-14 19:22:31.5 UTC":         want.Add(500 * time.Millisecond),
		"2023-05-14 19:22:31 UTC":           want,
		"2023-05-14 19:22:31 +0000":         want,
		"2023-05-14T19:22:31Z":              want,
		"2023-05-14 19:22:31.25 GMT":        want.Add(250 * time.Millisecond),
	}
	for ts, instant := range cases {
		rs, err := Parse(strings.NewReader(ts+",20,50,1000,3.7\n"), eastern)
		require.NoError(t, err, "format %q", ts)
		require.Len(t, rs, 1)
		require.True(t, rs[0].Time().Equal(instant), "%q parsed as %v, want %v", ts, rs[0].Time(), instant)
		require.Equal(t, eastern, rs[0].Time().Location(), "%q not converted to the load location", ts)
	}
}

func TestParse_NonNumericFieldFails(t *testing.T) {
	rs, err := Parse(strings.NewReader(
		"2024-01-01,20,50,1000,3.7\n"+
			"2024-01-01,abc,50,1000,3.7\n"), time.UTC)
	require.Error(t, err)
	require.Nil(t, rs, "no partial result")

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	require.Equal(t, 2, pe.Line)
	require.Equal(t, "temperature", pe.Column)
	require.Equal(t, "abc", pe.Value)
	require.ErrorIs(t, err, strconv.ErrSyntax)
}

func TestParse_BadTimestampFails(t *testing.T) {
	_, err := Parse(strings.NewReader("not a date,20,50,1000,3.7\n"), time.UTC)
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	require.Equal(t, 1, pe.Line)
	require.Equal(t, "time", pe.Column)
}

func TestParse_WrongFieldCountFails(t *testing.T) {
	_, err := Parse(strings.NewReader("2024-01-01,20,50,1000\n"), time.UTC)
	require.ErrorIs(t, err, ErrFieldCount)
}

func TestParse_HeaderRowIsData(t *testing.T) {
	// There is no header support: a header line is just a malformed first row.
	_, err := Parse(strings.NewReader("time,temperature,humidity,pressure,battery\n"), time.UTC)
	require.Error(t, err)
}

func TestParse_EmptyInput(t *testing.T) {
	rs, err := Parse(strings.NewReader(""), time.UTC)
	require.NoError(t, err)
	require.Empty(t, rs)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"), nil)
	require.Error(t, err)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestSummarize(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := Summarize([]Reading{
		NewReading(t0.Add(time.Hour), 25, 40, 1010, 3.6),
		NewReading(t0, 18, 60, 1020, 4.1),
	})
	require.Equal(t, 2, s.Count)
	require.Equal(t, t0, s.First)
	require.Equal(t, time.Hour, s.Span())
	require.Equal(t, Range{Min: 18, Max: 25}, s.Temperature)
	require.Equal(t, Range{Min: 40, Max: 60}, s.Humidity)
	require.Equal(t, Range{Min: 1010, Max: 1020}, s.Pressure)
	require.Equal(t, Range{Min: 3.6, Max: 4.1}, s.Battery)
	require.Contains(t, s.String(), "2 readings")

	require.Equal(t, "0 readings", Summarize(nil).String())
	require.Zero(t, Summarize(nil).Span())
}
