package ratetable

import (
	"fmt"

	"gopkg.in/ini.v1"

	"github.com/osse101/PerkPoints_Go/internal/domain"
	"github.com/osse101/PerkPoints_Go/internal/logger"
	"github.com/osse101/PerkPoints_Go/internal/metrics"
)

// Lines without a delimiter come through as boolean keys so Build can reject
// them with a warning like any other malformed entry.
var loadOptions = ini.LoadOptions{
	AllowBooleanKeys:        true,
	SkipUnrecognizableLines: true,
}

// ReadFile reads every key/value pair of an INI file, in file order, across all sections.
// source may be a path or raw bytes.
func ReadFile(source interface{}) ([]RawEntry, error) {
	f, err := ini.LoadSources(loadOptions, source)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrConfigUnreadable, err)
	}

	var entries []RawEntry
	for _, sec := range f.Sections() {
		for _, key := range sec.Keys() {
			entries = append(entries, RawEntry{
				Section: sec.Name(),
				Key:     key.Name(),
				Value:   key.Value(),
			})
		}
	}
	return entries, nil
}

// Loader builds rate tables from a configuration file
type Loader struct {
	cacheSize int
}

// NewLoader creates a loader whose tables memoize up to cacheSize lookups
func NewLoader(cacheSize int) *Loader {
	if cacheSize <= 0 {
		logger.Debug(LogMsgCacheDisabled)
	}
	return &Loader{cacheSize: cacheSize}
}

// Load reads the file in full and builds a table. It never fails: an unreadable
// file yields an empty table, so every level falls back to natural growth.
func (l *Loader) Load(path string) *Table {
	raw, err := ReadFile(path)
	if err != nil {
		logger.Warn(LogMsgConfigReadFailed, "path", path, "error", err)
		metrics.RateTableEntries.Set(0)
		return NewTable(l.cacheSize)
	}

	t := Build(raw, l.cacheSize)
	metrics.RateTableEntries.Set(float64(t.Len()))
	logger.Info(LogMsgConfigLoaded, "path", path, "lines", len(raw), "ranges", t.Len())
	return t
}
