package config

// Builder provides a fluent API for building Config instances.
type Builder struct {
	cfg *Config
}

// NewBuilder creates a new Builder with default values.
func NewBuilder() *Builder {
	return &Builder{cfg: NewConfig()}
}

// Build returns the built Config.
func (b *Builder) Build() *Config {
	return b.cfg
}

// WithStrictCastling sets whether castling paths are checked for attacks.
func (b *Builder) WithStrictCastling(strict bool) *Builder {
	b.cfg.Match.StrictCastling = strict
	return b
}

// WithAutoPromotion sets the automatic promotion type; "" disables it.
func (b *Builder) WithAutoPromotion(pieceType string) *Builder {
	b.cfg.Match.AutoPromotion = pieceType
	return b
}

// WithMaxMatches caps the number of live matches.
func (b *Builder) WithMaxMatches(n int) *Builder {
	b.cfg.Registry.MaxMatches = n
	return b
}
