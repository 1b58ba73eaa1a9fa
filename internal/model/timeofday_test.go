package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTime(t *testing.T, s string) *TimeOfDay {
	t.Helper()
	parsed, err := ParseTimeOfDay(s)
	require.NoError(t, err)
	return &parsed
}

func TestDurationMinutes(t *testing.T) {
	tests := []struct {
		name  string
		start *TimeOfDay
		end   *TimeOfDay
		want  int
	}{
		{"full working day", &TimeOfDay{Hour: 9}, &TimeOfDay{Hour: 17}, 480},
		{"with minutes", &TimeOfDay{Hour: 9, Minute: 30}, &TimeOfDay{Hour: 11, Minute: 15}, 105},
		{"equal times", &TimeOfDay{Hour: 9}, &TimeOfDay{Hour: 9}, 0},
		{"end before start", &TimeOfDay{Hour: 17}, &TimeOfDay{Hour: 9}, 0},
		{"missing start", nil, &TimeOfDay{Hour: 17}, 0},
		{"missing end", &TimeOfDay{Hour: 9}, nil, 0},
		{"both missing", nil, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DurationMinutes(tt.start, tt.end))
		})
	}
}

func TestDurationMinutesFromStrings(t *testing.T) {
	assert.Equal(t, 480, DurationMinutes(mustTime(t, "09:00"), mustTime(t, "17:00")))
	assert.Equal(t, 0, DurationMinutes(mustTime(t, "09:00"), mustTime(t, "09:00")))
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{480, "8sa"},
		{45, "45dk"},
		{90, "1sa 30dk"},
		{60, "1sa"},
		{0, "0dk"},
		{-10, "0dk"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.minutes))
	}
}

func TestTimeOfDayJSON(t *testing.T) {
	tod := TimeOfDay{Hour: 9, Minute: 5}

	data, err := json.Marshal(tod)
	require.NoError(t, err)
	assert.Equal(t, `"09:05"`, string(data))

	var decoded TimeOfDay
	require.NoError(t, json.Unmarshal([]byte(`"17:30"`), &decoded))
	assert.Equal(t, TimeOfDay{Hour: 17, Minute: 30}, decoded)
}

func TestParseTimeOfDayInvalid(t *testing.T) {
	_, err := ParseTimeOfDay("25:00")
	assert.Error(t, err)

	_, err = ParseTimeOfDay("not a time")
	assert.Error(t, err)
}

func TestDateJSON(t *testing.T) {
	d, err := ParseDate("2024-05-01")
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01", d.String())
	assert.False(t, d.IsZero())

	var decoded Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-05-01"`), &decoded))
	assert.Equal(t, d, decoded)

	require.NoError(t, json.Unmarshal([]byte(`""`), &decoded))
	assert.True(t, decoded.IsZero())
}
