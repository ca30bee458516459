package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partnerlink/partnerlink/internal/domain"
)

func TestParseDate(t *testing.T) {
	d, err := domain.ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, domain.Date{Year: 2024, Month: time.February, Day: 29}, d)
	assert.Equal(t, "2024-02-29", d.String())

	for _, bad := range []string{"", "2023-02-29", "2024-13-01", "2024-3-5", "2024-03-05T10:00:00Z", "yesterday"} {
		_, err := domain.ParseDate(bad)
		assert.ErrorIs(t, err, domain.ErrInvalidDate, bad)
		assert.ErrorIs(t, err, domain.ErrValidation, bad)
	}
}

func TestNewDate(t *testing.T) {
	_, err := domain.NewDate(2024, time.April, 31)
	assert.ErrorIs(t, err, domain.ErrInvalidDate)

	_, err = domain.NewDate(2024, 0, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidDate)

	d, err := domain.NewDate(2000, time.February, 29)
	require.NoError(t, err)
	assert.Equal(t, "2000-02-29", d.String())
}

func TestDateOf_UsesValueLocation(t *testing.T) {
	taipei := time.FixedZone("UTC+8", 8*60*60)
	instant := time.Date(2024, 1, 31, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, "2024-01-31", domain.DateOf(instant).String())
	assert.Equal(t, "2024-02-01", domain.DateOf(instant.In(taipei)).String())
}

func TestDate_AddDaysAndBefore(t *testing.T) {
	d := domain.Date{Year: 2023, Month: time.December, Day: 31}
	next := d.AddDays(1)
	assert.Equal(t, "2024-01-01", next.String())
	assert.True(t, d.Before(next))
	assert.False(t, next.Before(d))
	assert.False(t, d.Before(d))

	assert.Equal(t, "2024-02-29", domain.Date{Year: 2024, Month: time.March, Day: 1}.AddDays(-1).String())
}

func TestDate_JSON(t *testing.T) {
	type payload struct {
		Due domain.Date `json:"due"`
	}

	b, err := json.Marshal(payload{Due: domain.Date{Year: 2024, Month: time.March, Day: 5}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"due":"2024-03-05"}`, string(b))

	b, err = json.Marshal(payload{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"due":null}`, string(b))

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"due":"2024-12-31"}`), &p))
	assert.Equal(t, "2024-12-31", p.Due.String())

	require.NoError(t, json.Unmarshal([]byte(`{"due":null}`), &p))
	assert.True(t, p.Due.IsZero())

	err = json.Unmarshal([]byte(`{"due":"2024-02-30"}`), &p)
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestDaysIn(t *testing.T) {
	assert.Equal(t, 29, domain.DaysIn(2024, time.February))
	assert.Equal(t, 28, domain.DaysIn(2023, time.February))
	assert.Equal(t, 28, domain.DaysIn(1900, time.February))
	assert.Equal(t, 29, domain.DaysIn(2000, time.February))
	assert.Equal(t, 30, domain.DaysIn(2024, time.November))
	assert.Equal(t, 31, domain.DaysIn(2024, time.December))
}

func TestParseMonth(t *testing.T) {
	y, m, err := domain.ParseMonth("2024-02")
	require.NoError(t, err)
	assert.Equal(t, 2024, y)
	assert.Equal(t, time.February, m)
	assert.Equal(t, "2024-02-", domain.MonthPrefix(y, m))

	_, _, err = domain.ParseMonth("2024-2-1")
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestSplitTaskID(t *testing.T) {
	source, raw, ok := domain.SplitTaskID("todo:abc")
	require.True(t, ok)
	assert.Equal(t, domain.SourceManual, source)
	assert.Equal(t, "abc", raw)

	source, _, ok = domain.SplitTaskID("wo:1")
	require.True(t, ok)
	assert.Equal(t, domain.SourceTransaction, source)

	source, _, ok = domain.SplitTaskID("log:1")
	require.True(t, ok)
	assert.Equal(t, domain.SourceFollowUp, source)

	for _, bad := range []string{"", "todo:", "task:1", "1"} {
		_, _, ok := domain.SplitTaskID(bad)
		assert.False(t, ok, bad)
	}
}
