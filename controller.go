package glyphweave

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/jinzhu/copier"
)

// Controller owns the current settings of a sketch and the engine for its
// seed. Writers replace the settings between passes; passes work on a copy
// taken when they start, so they never observe a change midway.
//
// A Controller is safe for concurrent use.
type Controller struct {
	log *slog.Logger

	mu       sync.RWMutex
	settings Settings
	engine   *Engine
	// seedWarning is reported by every pass until the next reseed.
	seedWarning string
}

// NewController returns a controller for s. An empty seed token in s is
// replaced by a fresh seed, as is a malformed one. A nil logger uses
// [slog.Default].
func NewController(s Settings, log *slog.Logger) *Controller {
	if log == nil {
		log = slog.Default()
	}
	c := &Controller{log: log}
	c.settings = c.copySettings(s)
	c.reseedLocked()
	return c
}

// copySettings returns a deep copy of s.
func (c *Controller) copySettings(s Settings) Settings {
	var out Settings
	if err := copier.CopyWithOption(&out, &s, copier.Option{DeepCopy: true}); err != nil {
		c.log.Error("copying settings: " + err.Error())
		return s
	}
	return out
}

// reseedLocked derives the engine from the seed token in the current
// settings. c.mu must be held for writing.
func (c *Controller) reseedLocked() {
	token := c.settings.Seed
	seed, ok := ResolveSeed(token)
	c.seedWarning = ""
	if !ok {
		c.seedWarning = fmt.Sprintf("seed %q is invalid, using %s", token, seed)
		c.log.Warn("invalid seed token, generated a fresh seed", "token", token, "seed", seed.Token())
	} else if token == "" {
		c.log.Debug("generated seed", "seed", seed.Token())
	}
	c.settings.Seed = seed.Token()
	c.engine = NewEngine(seed)
}

// Settings returns a copy of the current settings.
func (c *Controller) Settings() Settings {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.copySettings(c.settings)
}

// Seed returns the current seed.
func (c *Controller) Seed() Seed {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.engine.Seed()
}

// Update applies fn to a copy of the current settings and replaces them
// with the result. A changed seed token replaces the engine. An empty seed
// token keeps the current seed; use [Controller.NewSeed] for a fresh one.
func (c *Controller) Update(fn func(*Settings)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	next := c.copySettings(c.settings)
	fn(&next)
	if next.Seed == "" {
		next.Seed = c.settings.Seed
	}
	reseed := next.Seed != c.settings.Seed
	c.settings = next
	if reseed {
		c.reseedLocked()
	}
}

// Replace replaces the current settings with s. Snapshots without a seed
// token keep the current seed.
func (c *Controller) Replace(s Settings) {
	c.Update(func(cur *Settings) { *cur = s })
}

// NewSeed replaces the seed with a fresh one, invalidating all state
// derived from the old seed, and returns it.
func (c *Controller) NewSeed() Seed {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.settings.Seed = NewSeed().Token()
	c.reseedLocked()
	return c.engine.Seed()
}

// Render runs a pass over the current settings at time zero.
func (c *Controller) Render() *Artwork {
	return c.RenderAt(0)
}

// RenderAt runs a pass over the current settings at animation time t.
func (c *Controller) RenderAt(t float64) *Artwork {
	c.mu.RLock()
	s := c.copySettings(c.settings)
	e := c.engine
	warning := c.seedWarning
	c.mu.RUnlock()

	art := e.RenderAt(s, t)
	if warning != "" {
		art.Warnings = append([]string{warning}, art.Warnings...)
	}
	if art.Err != nil {
		c.log.Warn("layout produced no rows", "err", art.Err)
	}
	c.log.Debug("rendered pass",
		"seed", art.Seed,
		"layout", art.Settings.Layout.String(),
		"rows", art.Plan.Count(),
		"glyphs", art.Glyphs(),
		"t", t)
	return art
}
