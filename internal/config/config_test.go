package config

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()
	assert.True(t, cfg.Render.Border)
	assert.Equal(t, byte('.'), cfg.Render.Empty)
	assert.True(t, cfg.Render.HighlightDiff)
	assert.Equal(t, 1, cfg.Verbosity)
}

func TestBuilderChaining(t *testing.T) {
	var buf bytes.Buffer
	cfg := NewConfigBuilder().
		WithGame("chess").
		WithVisitedLimit(5000).
		WithBorder(false).
		WithEmptyGlyph(' ').
		WithHighlightDiff(false).
		WithLogOutput(&buf).
		WithVerbosity(2).
		Build()

	assert.Equal(t, "chess", cfg.Game)
	assert.Equal(t, 5000, cfg.Repeat.VisitedLimit)
	assert.False(t, cfg.Render.Border)
	assert.Equal(t, byte(' '), cfg.Render.Empty)
	assert.False(t, cfg.Render.HighlightDiff)
	assert.Equal(t, &buf, cfg.LogFile)
	assert.Equal(t, 2, cfg.Verbosity)
}
