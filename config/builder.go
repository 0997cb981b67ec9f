package config

// Builder provides a fluent interface for constructing a Config,
// mirroring the teacher's config.Builder (luxfi-consensus
// config.NewBuilder()...FromPreset(...)).
type Builder struct {
	cfg Config
	err error
}

// NewBuilder starts from Default() and lets callers override individual
// fields before calling Build.
func NewBuilder() *Builder {
	return &Builder{cfg: Default()}
}

// FromPreset replaces the builder's working config with a named preset.
func (b *Builder) FromPreset(name string) *Builder {
	if b.err != nil {
		return b
	}
	switch name {
	case "default":
		b.cfg = Default()
	case "strict":
		b.cfg = Strict()
	default:
		b.err = ErrUnknownPreset
	}
	return b
}

func (b *Builder) WithMinVotes(n int) *Builder {
	b.cfg.MinVotes = n
	return b
}

func (b *Builder) WithMinGap(n int) *Builder {
	b.cfg.MinGap = n
	return b
}

func (b *Builder) WithBatchPercent(p float64) *Builder {
	b.cfg.BatchPercent = p
	return b
}

func (b *Builder) WithMaxIterations(n int) *Builder {
	b.cfg.MaxIterations = n
	return b
}

func (b *Builder) WithNonObfuscatedPrefixes(prefixes []string) *Builder {
	b.cfg.NonObfuscatedPrefixes = prefixes
	return b
}

func (b *Builder) WithHybridRanker(enabled bool) *Builder {
	b.cfg.HybridRankerEnabled = enabled
	return b
}

// Build validates and returns the final Config.
func (b *Builder) Build() (Config, error) {
	if b.err != nil {
		return Config{}, b.err
	}
	if err := b.cfg.Validate(); err != nil {
		return Config{}, err
	}
	return b.cfg, nil
}
