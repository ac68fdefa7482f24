package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	level   int
	name    string
	applied []string
}

var errNegativeLevel = errors.New("level cannot be negative")

func withLevel(level int) Option[*testConfig] {
	return New(func(c *testConfig) error {
		if level < 0 {
			return errNegativeLevel
		}
		c.level = level
		c.applied = append(c.applied, "level")

		return nil
	})
}

func withName(name string) Option[*testConfig] {
	return NoError(func(c *testConfig) {
		c.name = name
		c.applied = append(c.applied, "name")
	})
}

func TestApply(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		cfg := &testConfig{}
		err := Apply(cfg, withName("pog"), withLevel(6))

		require.NoError(t, err)
		require.Equal(t, 6, cfg.level)
		require.Equal(t, "pog", cfg.name)
		require.Equal(t, []string{"name", "level"}, cfg.applied)
	})

	t.Run("later options override earlier ones", func(t *testing.T) {
		cfg := &testConfig{}
		require.NoError(t, Apply(cfg, withLevel(1), withLevel(9)))
		require.Equal(t, 9, cfg.level)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &testConfig{}
		err := Apply(cfg, withLevel(-1), withName("never"))

		require.ErrorIs(t, err, errNegativeLevel)
		require.Empty(t, cfg.name)
		require.Empty(t, cfg.applied)
	})

	t.Run("skips nil options", func(t *testing.T) {
		cfg := &testConfig{}
		require.NoError(t, Apply(cfg, nil, withName("x")))
		require.Equal(t, "x", cfg.name)
	})

	t.Run("no options", func(t *testing.T) {
		cfg := &testConfig{level: 3}
		require.NoError(t, Apply(cfg))
		require.Equal(t, 3, cfg.level)
	})
}
