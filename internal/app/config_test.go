package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/src-d/go-billy.v4/memfs"
	"gopkg.in/src-d/go-billy.v4/util"

	"turing/internal/render"
)

func TestBuildDefaults(t *testing.T) {
	cfg := NewConfig()
	cfg.Width = 64
	cfg.Height = 48
	cfg.Seed = 1

	m, r, err := cfg.Build(memfs.New())
	require.NoError(t, err)
	assert.Equal(t, 64*48*3, r.FrameSize())
	assert.Equal(t, 4, m.Table().States())
	assert.Equal(t, 6, m.Table().Symbols())
	require.Len(t, m.Heads(), 1)

	opts := cfg.Options()
	assert.True(t, opts.ReseedOnStall)
	assert.EqualValues(t, 2500000, opts.ReseedAfter)
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero cadence", func(c *Config) { c.StepsPerFrame = 0 }},
		{"too many states", func(c *Config) { c.States = 300 }},
		{"zero symbols", func(c *Config) { c.Symbols = 0 }},
		{"unknown palette", func(c *Config) { c.Palette = "neon" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := NewConfig()
			tc.mutate(cfg)
			assert.Error(t, cfg.Validate())
			_, _, err := cfg.Build(memfs.New())
			assert.Error(t, err)
		})
	}
}

func TestBuildPaletteUnderflow(t *testing.T) {
	cfg := NewConfig()
	cfg.Width = 16
	cfg.Height = 16
	cfg.Seed = 1
	cfg.Symbols = 12

	_, _, err := cfg.Build(memfs.New())
	assert.ErrorIs(t, err, render.ErrPaletteUnderflow)

	cfg.Palette = "hsluv"
	_, _, err = cfg.Build(memfs.New())
	assert.NoError(t, err, "generated palettes cover any alphabet")
}

func TestBuildFromTableFile(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "ant.tbl", []byte("0 0 -> 1 right 0\n0 1 -> 0 left 0\n"), 0o644))

	cfg := NewConfig()
	cfg.Width = 32
	cfg.Height = 32
	cfg.Seed = 1
	cfg.Table = "ant.tbl"
	cfg.Heads = "16:16:0:north"

	m, _, err := cfg.Build(fs)
	require.NoError(t, err)
	assert.Equal(t, 1, m.Table().States())
	assert.Equal(t, 2, m.Table().Symbols())
	require.Len(t, m.Heads(), 1)
	assert.Equal(t, 16, m.Heads()[0].X)

	opts := cfg.Options()
	assert.False(t, opts.ReseedOnStall, "explicit tables are never discarded by reseeding")
	assert.Zero(t, opts.ReseedAfter)
}

func TestOSFSSplit(t *testing.T) {
	_, rel := OSFS("tables/ant.tbl")
	assert.Equal(t, "ant.tbl", rel)

	_, rel = OSFS("ant.tbl")
	assert.Equal(t, "ant.tbl", rel)

	_, rel = OSFS("")
	assert.Equal(t, "", rel)
}
