package ratetable

import (
	"sort"

	"github.com/osse101/PerkPoints_Go/internal/domain"
	"github.com/osse101/PerkPoints_Go/internal/logger"
	"github.com/osse101/PerkPoints_Go/internal/metrics"
)

// Table maps level ranges to perk points per level.
// It is built once, then read; Replace swaps the whole contents.
// Not safe for concurrent use.
type Table struct {
	entries []domain.RateEntry // sorted by (Low, High)
	cache   *lookupCache
}

// NewTable returns an empty table whose lookups are memoized in an LRU of cacheSize levels.
func NewTable(cacheSize int) *Table {
	return &Table{cache: newLookupCache(cacheSize)}
}

// Build parses raw entries into a table. Bad entries are logged and skipped;
// an entry whose range equals an earlier one replaces it.
func Build(raw []RawEntry, cacheSize int) *Table {
	t := NewTable(cacheSize)

	for _, r := range raw {
		entry, err := ParseEntry(r.Key, r.Value)
		if err != nil {
			logger.Warn(LogMsgEntryRejected, "section", r.Section, "key", r.Key, "value", r.Value, "error", err)
			metrics.ConfigEntriesRejected.WithLabelValues(rejectReason(err)).Inc()
			continue
		}

		logger.Debug(LogMsgEntryRegistered, "low", entry.Range.Low, "high", entry.Range.High, "rate", entry.Rate)
		t.Set(entry)
	}

	t.warnOverlaps()
	return t
}

// Set inserts entry, replacing any entry with the identical range.
func (t *Table) Set(entry domain.RateEntry) {
	defer t.cache.purge()

	for i := range t.entries {
		if t.entries[i].Range == entry.Range {
			t.entries[i].Rate = entry.Rate
			return
		}
	}

	t.entries = append(t.entries, entry)
	sort.SliceStable(t.entries, func(i, j int) bool {
		a, b := t.entries[i].Range, t.entries[j].Range
		if a.Low != b.Low {
			return a.Low < b.Low
		}
		return a.High < b.High
	})
}

// Lookup returns the rate of the first range, in ascending order, containing level.
func (t *Table) Lookup(level uint16) (float32, bool) {
	if r, ok := t.cache.get(level); ok {
		return r.rate, r.found
	}

	var res lookupResult
	for _, e := range t.entries {
		if e.Range.Contains(level) {
			res = lookupResult{rate: e.Rate, found: true}
			break
		}
	}

	t.cache.add(level, res)
	return res.rate, res.found
}

// Replace swaps in the contents of other wholesale.
func (t *Table) Replace(other *Table) {
	t.entries = append([]domain.RateEntry(nil), other.entries...)
	t.cache.purge()
}

// Len returns the number of configured ranges
func (t *Table) Len() int {
	return len(t.entries)
}

// Entries returns a copy of the entries in lookup order
func (t *Table) Entries() []domain.RateEntry {
	return append([]domain.RateEntry(nil), t.entries...)
}

func (t *Table) warnOverlaps() {
	if len(t.entries) == 0 {
		return
	}
	// widest reach seen so far; entries are sorted by Low
	reach := t.entries[0].Range
	for _, e := range t.entries[1:] {
		if reach.Overlaps(e.Range) {
			logger.Warn(LogMsgRangesOverlap, "first", reach.String(), "second", e.Range.String())
		}
		if e.Range.High > reach.High {
			reach = e.Range
		}
	}
}
