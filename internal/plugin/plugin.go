package plugin

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-version"

	"github.com/osse101/PerkPoints_Go/internal/domain"
	"github.com/osse101/PerkPoints_Go/internal/event"
	"github.com/osse101/PerkPoints_Go/internal/logger"
	"github.com/osse101/PerkPoints_Go/internal/progress"
	"github.com/osse101/PerkPoints_Go/internal/ratetable"
	"github.com/osse101/PerkPoints_Go/internal/resolver"
	"github.com/osse101/PerkPoints_Go/internal/serialization"
)

var minRuntime = version.Must(version.NewVersion(domain.MinRuntime))

// Options configures a plugin context
type Options struct {
	RatesPath         string
	LookupCacheSize   int
	RevertResetsState bool
}

// Context owns everything the plugin keeps for the process lifetime:
// the rate table and the player's progress state.
type Context struct {
	opts     Options
	host     LoadInterface
	loader   *ratetable.Loader
	table    *ratetable.Table
	tracker  *progress.Tracker
	resolver *resolver.Resolver
	saves    *serialization.Handler
	active   bool
}

// Load gates on the host environment, reads the rate configuration and
// registers the plugin's callbacks. An error means the plugin stays inactive;
// the host carries on unmodified.
func Load(host LoadInterface, opts Options) (*Context, error) {
	if host.IsEditor() {
		logger.Error("Plugin disabled", "reason", domain.ErrMsgEditorContext)
		return nil, domain.ErrEditorContext
	}

	runtime, err := version.NewVersion(host.RuntimeVersion())
	if err != nil || runtime.LessThan(minRuntime) {
		logger.Error("Plugin disabled", "reason", domain.ErrMsgUnsupportedRuntime, "runtime", host.RuntimeVersion())
		return nil, fmt.Errorf("%w v%s", domain.ErrUnsupportedRuntime, host.RuntimeVersion())
	}

	c := &Context{
		opts:    opts,
		host:    host,
		loader:  ratetable.NewLoader(opts.LookupCacheSize),
		tracker: progress.NewTracker(),
	}
	c.table = c.loader.Load(opts.RatesPath)
	c.resolver = resolver.New(c.table, c.tracker, host.PlayerCharacter)
	c.saves = serialization.NewHandler(c.tracker, opts.RevertResetsState)

	c.saves.Register(host.Serialization())
	host.Messaging().RegisterListener(c.HandleMessage)

	logger.Info("Plugin loaded", "name", Info.Name, "version", Info.Version, "runtime", runtime.String(), "ranges", c.table.Len())
	return c, nil
}

// HandleMessage reacts to host lifecycle messages
func (c *Context) HandleMessage(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	switch evt.Type {
	case event.DataReady:
		if c.active {
			return nil
		}
		source := c.host.PerkPointEventSource()
		if source == nil {
			log.Warn("Perk point event source not found, plugin will be inactive")
			return nil
		}
		log.Info("Perk point event source found, adding sink")
		source.RegisterSink(c.resolver.HandlePerkPointIncrease)
		c.active = true

	case event.NewGame, event.PostLoadGame:
		if player := c.host.PlayerCharacter(); player != nil {
			c.tracker.SyncFrom(player)
		}
	}

	return nil
}

// Reload re-reads the rate configuration in full and swaps it in
func (c *Context) Reload() int {
	c.table.Replace(c.loader.Load(c.opts.RatesPath))
	return c.table.Len()
}

// Active reports whether the perk point sink is attached
func (c *Context) Active() bool { return c.active }

// State returns the player's progress state
func (c *Context) State() domain.PlayerProgressState { return c.tracker.State() }

// Rates returns the configured entries in lookup order
func (c *Context) Rates() []domain.RateEntry { return c.table.Entries() }
