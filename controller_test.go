package glyphweave

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestControllerCopies(t *testing.T) {
	c := NewController(testSettings(), discardLogger())
	s := c.Settings()
	s.Rows = 3
	assert.Equal(t, 10, c.Settings().Rows, "modifying a copy changed the controller")

	c.Update(func(s *Settings) { s.Rows = 4 })
	assert.Equal(t, 4, c.Settings().Rows)
	assert.Equal(t, 4, c.Render().Plan.Count())
}

func TestControllerReseed(t *testing.T) {
	c := NewController(testSettings(), discardLogger())
	assert.Equal(t, "abc123", c.Seed().Token())
	before := c.Render()

	// Changes that keep the seed keep the engine.
	c.Update(func(s *Settings) { s.Motif = "WEAV" })
	assert.True(t, before.Equal(c.Render()))

	c.Update(func(s *Settings) { s.Seed = "abc124" })
	assert.Equal(t, "abc124", c.Seed().Token())
	assert.False(t, before.Equal(c.Render()))

	seed := c.NewSeed()
	assert.Equal(t, seed, c.Seed())
	assert.Equal(t, seed.Token(), c.Settings().Seed)

	c.Replace(testSettings())
	assert.True(t, before.Equal(c.Render()))
}

func TestControllerInvalidSeed(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))
	s := testSettings()
	s.Seed = "0OIl"
	c := NewController(s, log)

	fresh := c.Seed().Token()
	assert.NotEqual(t, "0OIl", fresh)
	assert.Equal(t, fresh, c.Settings().Seed)
	assert.Contains(t, buf.String(), "invalid seed token")

	art := c.Render()
	require.NotEmpty(t, art.Warnings)
	assert.True(t, strings.Contains(art.Warnings[0], "0OIl"), art.Warnings[0])

	// The warning lasts until the next reseed.
	c.Update(func(s *Settings) { s.Seed = "abc123" })
	assert.Empty(t, c.Render().Warnings)
}

func TestControllerEmptySeed(t *testing.T) {
	s := testSettings()
	s.Seed = ""
	c := NewController(s, nil)
	assert.False(t, c.Seed().IsZero())
	assert.Empty(t, c.Render().Warnings)
}

func TestControllerReplaceKeepsSeed(t *testing.T) {
	s := DefaultSettings()
	c := NewController(s, discardLogger())
	before := c.Seed()

	// A reloaded snapshot without a seed token.
	s.Rows = 4
	c.Replace(s)
	assert.Equal(t, before, c.Seed())
	assert.Equal(t, before.Token(), c.Settings().Seed)
	assert.Equal(t, 4, c.Settings().Rows)

	c.Update(func(s *Settings) { s.Seed = "" })
	assert.Equal(t, before, c.Seed())
}

func TestControllerConcurrent(t *testing.T) {
	c := NewController(testSettings(), discardLogger())
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 5 {
				if i%2 == 0 {
					c.Update(func(s *Settings) { s.Rows = 2 + j })
				} else {
					art := c.RenderAt(float64(j))
					assert.NoError(t, art.Err)
				}
			}
		}()
	}
	wg.Wait()
}
