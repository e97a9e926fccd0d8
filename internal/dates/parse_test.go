package dates

import (
	"math"
	"testing"
	"time"

	"github.com/jonathan/consent-generator/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseText_DayMonthYear(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"two digit year", "05.03.24", date(2024, time.March, 5)},
		{"four digit year", "05.03.2024", date(2024, time.March, 5)},
		{"single digits", "5.3.2024", date(2024, time.March, 5)},
		{"slashes", "05/03/2024", date(2024, time.March, 5)},
		{"dashes", "05-03-24", date(2024, time.March, 5)},
		{"equals", "05=03=2024", date(2024, time.March, 5)},
		{"mixed separators", "05.03/2024", date(2024, time.March, 5)},
		{"surrounding spaces", "  17.11.2012 ", date(2012, time.November, 17)},
		{"leap day", "29.02.2024", date(2024, time.February, 29)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseText(tt.input)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseText_ISO(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"2024-03-05", date(2024, time.March, 5)},
		{"2024-03-05T10:30:00Z", date(2024, time.March, 5)},
		{"2024-03-05T10:30:00+03:00", date(2024, time.March, 5)},
		{"2024-03-05T10:30:00", date(2024, time.March, 5)},
		{"2024-03-05 10:30", date(2024, time.March, 5)},
		{"2024-03-05T10:00:00+0300", date(2024, time.March, 5)},
		{"2024-03-05T10:00:00.250+0300", date(2024, time.March, 5)},
		{"2024-03-05T10:00+03:00", date(2024, time.March, 5)},
		{"2024-03", date(2024, time.March, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseText(tt.input)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseText_Malformed(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"not-a-date",
		"31.02.2024",
		"00.01.2024",
		"12.13.2024",
		"05.03.202",
		"05.03",
		"2024",
		"05.03.24.",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			got, ok := ParseText(input)
			assert.False(t, ok)
			assert.True(t, got.IsZero())
		})
	}
}

func TestFromSerial(t *testing.T) {
	tests := []struct {
		serial float64
		want   time.Time
	}{
		{45356, date(2024, time.March, 5)},
		{36526, date(2000, time.January, 1)},
		{45356.75, date(2024, time.March, 5)},
		{40000, date(2009, time.July, 6)},
	}

	for _, tt := range tests {
		got, ok := FromSerial(tt.serial)
		require.True(t, ok, "serial %v", tt.serial)
		assert.Equal(t, tt.want, got)
	}
}

func TestFromSerial_Invalid(t *testing.T) {
	for _, serial := range []float64{0, -5, 2958466, math.NaN(), math.Inf(1)} {
		_, ok := FromSerial(serial)
		assert.False(t, ok, "serial %v", serial)
	}
}

func TestParse_Variants(t *testing.T) {
	native := time.Date(2011, time.June, 2, 15, 4, 0, 0, time.UTC)

	got, ok := Parse(types.CalendarDate{Time: native})
	require.True(t, ok)
	assert.Equal(t, native, got, "native dates pass through unchanged")

	got, ok = Parse(types.NumericDate{Serial: 45356})
	require.True(t, ok)
	assert.Equal(t, date(2024, time.March, 5), got)

	got, ok = Parse(types.TextDate{Value: "05.03.24"})
	require.True(t, ok)
	assert.Equal(t, date(2024, time.March, 5), got)

	_, ok = Parse(types.TextDate{Value: "not-a-date"})
	assert.False(t, ok)

	_, ok = Parse(types.AbsentDate{})
	assert.False(t, ok)

	_, ok = Parse(nil)
	assert.False(t, ok)

	_, ok = Parse(types.CalendarDate{})
	assert.False(t, ok)
}
