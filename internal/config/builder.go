package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithGame selects the catalog entry this session plays.
func (b *ConfigBuilder) WithGame(name string) *ConfigBuilder {
	b.cfg.Game = name
	return b
}

// WithVisitedLimit sets Repeat.VisitedLimit (see RepeatLimits).
func (b *ConfigBuilder) WithVisitedLimit(limit int) *ConfigBuilder {
	b.cfg.Repeat.VisitedLimit = limit
	return b
}

// WithBorder toggles the rendered border.
func (b *ConfigBuilder) WithBorder(enabled bool) *ConfigBuilder {
	b.cfg.Render.Border = enabled
	return b
}

// WithEmptyGlyph sets the glyph rendered for an in-bounds empty square.
func (b *ConfigBuilder) WithEmptyGlyph(glyph byte) *ConfigBuilder {
	b.cfg.Render.Empty = glyph
	return b
}

// WithHighlightDiff toggles successor-diff highlighting.
func (b *ConfigBuilder) WithHighlightDiff(enabled bool) *ConfigBuilder {
	b.cfg.Render.HighlightDiff = enabled
	return b
}

// WithLogOutput sets the writer commentary at Verbosity >= 2 is written to.
func (b *ConfigBuilder) WithLogOutput(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
