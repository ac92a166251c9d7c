package ratetable

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PerkPoints_Go/internal/domain"
	"github.com/osse101/PerkPoints_Go/internal/metrics"
)

const sampleINI = `; early game is slow
1-10 = 0.5
11 = 2

[late]
12-50 = 1.5
1-2-3 = 4
60-50 = 1
51 = 200
this line is junk
`

func writeINI(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ppc.ini")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestReadFile_AllSectionsInOrder(t *testing.T) {
	entries, err := ReadFile([]byte(sampleINI))
	require.NoError(t, err)

	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		keys = append(keys, e.Key)
	}
	assert.Equal(t, []string{"1-10", "11", "12-50", "1-2-3", "60-50", "51", "this line is junk"}, keys)
	assert.Equal(t, "late", entries[2].Section)
	assert.Equal(t, "1.5", entries[2].Value)
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.ini"))
	assert.ErrorIs(t, err, domain.ErrConfigUnreadable)
}

func TestLoader_Load(t *testing.T) {
	table := NewLoader(32).Load(writeINI(t, sampleINI))

	assert.Equal(t, 3, table.Len(), "bad lines are skipped individually")

	rate, ok := table.Lookup(30)
	require.True(t, ok)
	assert.Equal(t, float32(1.5), rate)
}

func TestLoader_LoadMissingFileYieldsEmptyTable(t *testing.T) {
	table := NewLoader(32).Load(filepath.Join(t.TempDir(), "missing.ini"))

	require.NotNil(t, table)
	assert.Zero(t, table.Len())
}

func TestLoader_ReloadReadsFileInFull(t *testing.T) {
	path := writeINI(t, "1-10 = 0.5\n")
	loader := NewLoader(0)

	first := loader.Load(path)
	require.Equal(t, 1, first.Len())

	require.NoError(t, os.WriteFile(path, []byte("20 = 3\n"), 0o644))
	second := loader.Load(path)

	require.Equal(t, 1, second.Len())
	_, ok := second.Lookup(5)
	assert.False(t, ok, "no incremental merge with the previous load")
}

func TestBuild_LineWithoutDelimiterIsRejectedWithWarning(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	rejected := metrics.ConfigEntriesRejected.WithLabelValues(ReasonInvalidNumber)
	before := testutil.ToFloat64(rejected)

	raw, err := ReadFile([]byte("2-5=0.5\ngarbage line without delimiter\n9\n7=1\n"))
	require.NoError(t, err)
	require.Len(t, raw, 4)

	table := Build(raw, 0)

	assert.Equal(t, 2, table.Len())
	assert.Contains(t, buf.String(), LogMsgEntryRejected)
	assert.Contains(t, buf.String(), "garbage line without delimiter")
	assert.Contains(t, buf.String(), "key=9")
	assert.Equal(t, before+2, testutil.ToFloat64(rejected))
}
