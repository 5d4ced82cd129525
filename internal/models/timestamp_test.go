package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimestamp(t *testing.T) {
	before := time.Now().Add(-time.Second)

	ts := NewTimestamp()
	require.Len(t, ts, 14)

	parsed, err := time.ParseInLocation(TimestampLayout, ts, time.Local)
	require.NoError(t, err)

	after := time.Now().Add(time.Second)
	assert.True(t, parsed.After(before.Truncate(time.Second).Add(-time.Second)))
	assert.True(t, parsed.Before(after))
}

func TestTimestampLayout(t *testing.T) {
	moment := time.Date(2024, 1, 15, 9, 30, 0, 0, time.Local)
	assert.Equal(t, "20240115093000", moment.Format(TimestampLayout))
}
