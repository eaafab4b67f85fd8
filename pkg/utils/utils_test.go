package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	date, err := ParseDate(" 2024-06-01 ", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), *date)

	date, err = ParseDate("", time.UTC)
	assert.NoError(t, err)
	assert.Nil(t, date)

	_, err = ParseDate("01/06/2024", time.UTC)
	assert.Error(t, err)
}

func TestEndOfDay(t *testing.T) {
	end := EndOfDay(time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, 6, 1, 23, 59, 59, 999999999, time.UTC), end)
}

func TestNumbers(t *testing.T) {
	assert.Equal(t, 33.33, RoundWithTwoDecimalPlace(33.3333))
	assert.Equal(t, 0.0, Percentage(10, 0))
	assert.Equal(t, 25.0, Percentage(100, 400))
	assert.Equal(t, 0.0, Average(10, 0))
	assert.Equal(t, 2.5, Average(5, 2))
}

func TestPrettyJson(t *testing.T) {
	assert.Equal(t, "{\n  \"a\": 1\n}", PrettyJson(map[string]int{"a": 1}))
	assert.Equal(t, "{\n  \"b\": true\n}", PrettyJson([]byte(`{"b":true}`)))
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()
	require.NoError(t, err)
	assert.Len(t, id, idLength)
}
