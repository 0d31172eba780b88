package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEntryDate_RoundTrip(t *testing.T) {
	got, err := ParseEntryDate("2024-03-15")
	require.NoError(t, err)

	// 存的是 UTC 正午：不管服务器本地时区是什么，
	// 按 UTC 读回来都还是 2024-03-15
	assert.Equal(t, time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC), got)
	assert.Equal(t, "2024-03-15", got.UTC().Format("2006-01-02"))

	// 即便换算到极端时区，日期偏移也不会超过正午的 12 小时缓冲
	sydney := time.FixedZone("AEDT", 11*3600)
	assert.Equal(t, 15, got.In(sydney).Day())
	honolulu := time.FixedZone("HST", -10*3600)
	assert.Equal(t, 15, got.In(honolulu).Day())
}

func TestParseEntryDate_Invalid(t *testing.T) {
	for _, input := range []string{"", "2024/03/15", "15-03-2024", "2024-13-01", "2024-02-30", "abc"} {
		_, err := ParseEntryDate(input)
		assert.ErrorIs(t, err, ErrInvalidDate, "input=%q", input)
	}
}

func TestDateKey_UsesUTC(t *testing.T) {
	cst := time.FixedZone("CST", 8*3600)
	r := ExpenseRecord{OccurredAt: time.Date(2024, 1, 2, 4, 0, 0, 0, cst)}
	assert.Equal(t, "2024-01-01", r.DateKey())
}
