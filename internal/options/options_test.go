package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	size  int
	name  string
	calls []string
}

func withSize(n int) Option[*testConfig] {
	return New(func(c *testConfig) error {
		if n <= 0 {
			return errors.New("size must be positive")
		}
		c.size = n
		c.calls = append(c.calls, "size")

		return nil
	})
}

func withName(name string) Option[*testConfig] {
	return NoError(func(c *testConfig) {
		c.name = name
		c.calls = append(c.calls, "name")
	})
}

func TestApply(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		cfg := &testConfig{}
		err := Apply(cfg, withName("bp32"), withSize(4096), withName("varint"))
		require.NoError(t, err)
		require.Equal(t, 4096, cfg.size)
		require.Equal(t, "varint", cfg.name)
		require.Equal(t, []string{"name", "size", "name"}, cfg.calls)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &testConfig{}
		err := Apply(cfg, withName("copy"), withSize(-1), withName("never"))
		require.EqualError(t, err, "size must be positive")
		require.Equal(t, "copy", cfg.name)
		require.Equal(t, []string{"name"}, cfg.calls)
	})

	t.Run("no options", func(t *testing.T) {
		cfg := &testConfig{}
		require.NoError(t, Apply(cfg))
		require.Empty(t, cfg.calls)
	})

	t.Run("skips nil options", func(t *testing.T) {
		cfg := &testConfig{}
		require.NoError(t, Apply(cfg, nil, withSize(8)))
		require.Equal(t, 8, cfg.size)
	})
}
