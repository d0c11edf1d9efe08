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

// WithFreeCells sets the number of free cells.
func (b *ConfigBuilder) WithFreeCells(n int) *ConfigBuilder {
	b.cfg.Rules.FreeCells = n
	return b
}

// WithCascades sets the number of cascades.
func (b *ConfigBuilder) WithCascades(n int) *ConfigBuilder {
	b.cfg.Rules.Cascades = n
	return b
}

// WithIgnoreDependencies makes the auto-mover skip its safety check.
func (b *ConfigBuilder) WithIgnoreDependencies(enabled bool) *ConfigBuilder {
	b.cfg.Rules.IgnoreDependencies = enabled
	return b
}

// WithExemptTwos makes the auto-mover always home twos.
func (b *ConfigBuilder) WithExemptTwos(enabled bool) *ConfigBuilder {
	b.cfg.SetExemptTwos(enabled)
	return b
}

// WithAutoMoves turns the auto-mover on or off.
func (b *ConfigBuilder) WithAutoMoves(enabled bool) *ConfigBuilder {
	b.cfg.Rules.NoAutoMoves = !enabled
	return b
}

// WithPrinter selects the line or tty printer.
func (b *ConfigBuilder) WithPrinter(name string) *ConfigBuilder {
	b.cfg.Output.Printer = name
	return b
}

// WithGlyphs enables suit symbols.
func (b *ConfigBuilder) WithGlyphs(enabled bool) *ConfigBuilder {
	b.cfg.Output.Glyphs = enabled
	return b
}

// WithColour enables ANSI colour.
func (b *ConfigBuilder) WithColour(enabled bool) *ConfigBuilder {
	b.cfg.Output.Colour = enabled
	return b
}

// WithWidth sets the terminal width.
func (b *ConfigBuilder) WithWidth(width int) *ConfigBuilder {
	b.cfg.Output.Width = width
	return b
}

// WithPossibleMoves lists legal moves before each prompt.
func (b *ConfigBuilder) WithPossibleMoves(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowPossibleMoves = enabled
	return b
}

// WithGame sets the game to deal.
func (b *ConfigBuilder) WithGame(seed int) *ConfigBuilder {
	b.cfg.Game = seed
	return b
}

// WithPlayBack replays game seed from the library.
func (b *ConfigBuilder) WithPlayBack(seed int) *ConfigBuilder {
	b.cfg.PlayBack = true
	b.cfg.Game = seed
	return b
}

// WithPlayAll replays every library game above jump, minus skips.
func (b *ConfigBuilder) WithPlayAll(jump int, skips ...int) *ConfigBuilder {
	b.cfg.PlayAll = true
	b.cfg.Jump = jump
	b.cfg.Skips = skips
	return b
}

// WithInputFile reads supplied moves from path.
func (b *ConfigBuilder) WithInputFile(path string) *ConfigBuilder {
	b.cfg.InputFile = path
	return b
}

// WithMovesFile loads the solved games library from path.
func (b *ConfigBuilder) WithMovesFile(path string) *ConfigBuilder {
	b.cfg.MovesFile = path
	return b
}

// WithMoveLog sets the move log path. Empty disables logging.
func (b *ConfigBuilder) WithMoveLog(path string) *ConfigBuilder {
	b.cfg.MoveLog = path
	return b
}

// WithWorkers sets the number of play-all workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithLogLevel sets the log level name.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.LogLevel = level
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithInput sets the interactive input reader.
func (b *ConfigBuilder) WithInput(r io.Reader) *ConfigBuilder {
	b.cfg.InputFrom = r
	return b
}
