package ratetable

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PerkPoints_Go/internal/domain"
	"github.com/osse101/PerkPoints_Go/internal/metrics"
)

func raw(pairs ...string) []RawEntry {
	var out []RawEntry
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, RawEntry{Key: pairs[i], Value: pairs[i+1]})
	}
	return out
}

func TestBuild_InsertOrReplace(t *testing.T) {
	table := Build(raw("2-5", "0.5", "2-5", "3"), 16)

	require.Equal(t, 1, table.Len())
	rate, ok := table.Lookup(3)
	require.True(t, ok)
	assert.Equal(t, float32(3), rate, "last value for a duplicate range wins")
}

func TestBuild_Idempotent(t *testing.T) {
	entries := raw("1-4", "0.5", "5", "2", "10-20", "1.5")

	first := Build(entries, 16)
	second := Build(entries, 16)

	assert.Equal(t, first.Entries(), second.Entries())
}

func TestBuild_MalformedEntriesDoNotChangeSize(t *testing.T) {
	base := raw("1-4", "0.5")
	good := Build(base, 0)

	bad := []RawEntry{
		{Key: "1-2-3", Value: "1"},
		{Key: "8-2", Value: "1"},
		{Key: "6", Value: "-1"},
		{Key: "7", Value: "128"},
		{Key: "x", Value: "1"},
	}

	rejected := metrics.ConfigEntriesRejected.WithLabelValues(ReasonMalformedKey)
	before := testutil.ToFloat64(rejected)

	withBad := Build(append(base, bad...), 0)

	assert.Equal(t, good.Len(), withBad.Len())
	assert.Equal(t, before+1, testutil.ToFloat64(rejected))
}

func TestLookup(t *testing.T) {
	table := Build(raw("10-20", "1.5", "2-5", "0.5", "7", "3"), 16)

	tests := []struct {
		level uint16
		rate  float32
		found bool
	}{
		{1, 0, false},
		{2, 0.5, true},
		{5, 0.5, true},
		{6, 0, false},
		{7, 3, true},
		{15, 1.5, true},
		{21, 0, false},
	}

	for _, tt := range tests {
		rate, ok := table.Lookup(tt.level)
		assert.Equal(t, tt.found, ok, "level %d", tt.level)
		assert.Equal(t, tt.rate, rate, "level %d", tt.level)
	}
}

func TestLookup_OverlapLowerStartWins(t *testing.T) {
	table := Build(raw("5-30", "2", "1-10", "0.5"), 0)

	rate, ok := table.Lookup(7)
	require.True(t, ok)
	assert.Equal(t, float32(0.5), rate)

	rate, ok = table.Lookup(11)
	require.True(t, ok)
	assert.Equal(t, float32(2), rate)
}

func TestEntries_SortedAndCopied(t *testing.T) {
	table := Build(raw("10", "1", "3-4", "2", "3", "0.25"), 0)

	entries := table.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, domain.SingleLevel(3), entries[0].Range)
	assert.Equal(t, domain.LevelRange{Low: 3, High: 4}, entries[1].Range)
	assert.Equal(t, domain.SingleLevel(10), entries[2].Range)

	entries[0].Rate = 99
	rate, _ := table.Lookup(3)
	assert.Equal(t, float32(0.25), rate)
}

func TestCache_InvalidatedOnChange(t *testing.T) {
	table := Build(raw("1-5", "0.5"), 8)

	rate, ok := table.Lookup(3)
	require.True(t, ok)
	assert.Equal(t, float32(0.5), rate)
	_, ok = table.Lookup(9)
	assert.False(t, ok)
	assert.Equal(t, 2, table.cache.len(), "misses are cached too")

	table.Set(domain.RateEntry{Range: domain.SingleLevel(9), Rate: 4})
	assert.Zero(t, table.cache.len())

	rate, ok = table.Lookup(9)
	require.True(t, ok)
	assert.Equal(t, float32(4), rate)

	table.Replace(Build(raw("1-5", "2"), 0))
	rate, ok = table.Lookup(3)
	require.True(t, ok)
	assert.Equal(t, float32(2), rate)
	_, ok = table.Lookup(9)
	assert.False(t, ok)
}

func TestNewTable_ZeroCacheSize(t *testing.T) {
	table := NewTable(0)
	assert.Nil(t, table.cache)

	_, ok := table.Lookup(1)
	assert.False(t, ok)
	assert.Zero(t, table.Len())
}
