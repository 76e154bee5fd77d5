package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-08-20")
	require.NoError(t, err)
	assert.Equal(t, 2026, d.Year())
	assert.Equal(t, time.August, d.Month())
	assert.Equal(t, 20, d.Day())

	_, err = ParseDate("20/08/2026")
	assert.Error(t, err)
}

func TestDateJSON(t *testing.T) {
	d := NewDate(2026, time.August, 20)
	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-08-20"`, string(b))

	var parsed Date
	require.NoError(t, json.Unmarshal([]byte(`"2026-08-20"`), &parsed))
	assert.Equal(t, d, parsed)

	// Null and the zero value round-trip to each other.
	var zero Date
	b, err = json.Marshal(zero)
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))
	require.NoError(t, json.Unmarshal([]byte("null"), &parsed))
	assert.True(t, parsed.IsZero())
}

func TestDateArithmetic(t *testing.T) {
	d := NewDate(2026, time.August, 20)
	assert.Equal(t, "2026-08-27", d.AddDays(7).String())
	assert.Equal(t, "2026-07-31", d.AddDays(-20).String())
	assert.Equal(t, 10, d.DaysSince(NewDate(2026, time.August, 10)))
	assert.Equal(t, -1, d.DaysSince(NewDate(2026, time.August, 21)))
}

func TestDateScan(t *testing.T) {
	var d Date

	require.NoError(t, d.Scan(time.Date(2026, 8, 20, 17, 30, 0, 0, time.UTC)))
	assert.Equal(t, "2026-08-20", d.String())

	require.NoError(t, d.Scan([]byte("1990-05-01")))
	assert.Equal(t, "1990-05-01", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(42))
}

func TestDateValue(t *testing.T) {
	v, err := NewDate(2026, time.August, 20).Value()
	require.NoError(t, err)
	assert.Equal(t, "2026-08-20", v)

	v, err = Date{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}
