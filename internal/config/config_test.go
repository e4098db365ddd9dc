package config

import (
	"testing"

	"github.com/benbeisheim/chessmatch/internal/testutil"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()

	testutil.AssertEqual(t, cfg.Match, Match{StrictCastling: true, AutoPromotion: "queen"})
	testutil.AssertEqual(t, cfg.Registry.MaxMatches, 0)
	testutil.AssertNoError(t, cfg.Validate())
}

func TestBuilder(t *testing.T) {
	cfg := NewBuilder().
		WithStrictCastling(false).
		WithAutoPromotion("").
		WithMaxMatches(16).
		Build()

	testutil.AssertEqual(t, *cfg, Config{
		Match:    Match{StrictCastling: false, AutoPromotion: ""},
		Registry: Registry{MaxMatches: 16},
	})
	testutil.AssertNoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *Config
		wantErr bool
	}{
		{"defaults", NewConfig(), false},
		{"manual promotion", NewBuilder().WithAutoPromotion("").Build(), false},
		{"knight promotion", NewBuilder().WithAutoPromotion("knight").Build(), false},
		{"promotion to king", NewBuilder().WithAutoPromotion("king").Build(), true},
		{"promotion to pawn", NewBuilder().WithAutoPromotion("pawn").Build(), true},
		{"capitalised type", NewBuilder().WithAutoPromotion("Queen").Build(), true},
		{"negative limit", NewBuilder().WithMaxMatches(-1).Build(), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				testutil.AssertErrorIs(t, err, ErrInvalidConfig)
				return
			}
			testutil.AssertNoError(t, err)
		})
	}
}
