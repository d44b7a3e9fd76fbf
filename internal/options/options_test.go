package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type fitConfig struct {
	MaxIterations int
	Tolerance     float64
	Solver        string
	LastCall      string
}

func (c *fitConfig) SetMaxIterations(n int) error {
	if n <= 0 {
		return errors.New("max iterations must be positive")
	}
	c.MaxIterations = n
	c.LastCall = "SetMaxIterations"

	return nil
}

func (c *fitConfig) SetSolver(name string) {
	c.Solver = name
	c.LastCall = "SetSolver"
}

func withMaxIterations(n int) Option[*fitConfig] {
	return New(func(c *fitConfig) error { return c.SetMaxIterations(n) })
}

func withSolver(name string) Option[*fitConfig] {
	return NoError(func(c *fitConfig) { c.SetSolver(name) })
}

func TestOption_New(t *testing.T) {
	t.Run("applies value", func(t *testing.T) {
		cfg := &fitConfig{}
		require.NoError(t, withMaxIterations(50).apply(cfg))
		require.Equal(t, 50, cfg.MaxIterations)
		require.Equal(t, "SetMaxIterations", cfg.LastCall)
	})

	t.Run("propagates rejection", func(t *testing.T) {
		cfg := &fitConfig{}
		err := withMaxIterations(0).apply(cfg)
		require.Error(t, err)
		require.Contains(t, err.Error(), "must be positive")
		require.Zero(t, cfg.MaxIterations)
	})
}

func TestOption_NoError(t *testing.T) {
	cfg := &fitConfig{}
	require.NoError(t, withSolver("newton").apply(cfg))
	require.Equal(t, "newton", cfg.Solver)
}

func TestApply(t *testing.T) {
	t.Run("applies in order", func(t *testing.T) {
		cfg := &fitConfig{}
		err := Apply(cfg, withMaxIterations(10), withSolver("bfgs"), withSolver("normal"))
		require.NoError(t, err)
		require.Equal(t, 10, cfg.MaxIterations)
		require.Equal(t, "normal", cfg.Solver)
		require.Equal(t, "SetSolver", cfg.LastCall)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &fitConfig{}
		err := Apply(cfg, withMaxIterations(5), withMaxIterations(-1), withSolver("never"))
		require.Error(t, err)
		require.Equal(t, 5, cfg.MaxIterations)
		require.Empty(t, cfg.Solver)
	})

	t.Run("skips nil options", func(t *testing.T) {
		cfg := &fitConfig{}
		require.NoError(t, Apply(cfg, nil, withSolver("bfgs"), nil))
		require.Equal(t, "bfgs", cfg.Solver)
	})

	t.Run("empty list", func(t *testing.T) {
		cfg := &fitConfig{Tolerance: 1e-9}
		require.NoError(t, Apply(cfg))
		require.Equal(t, 1e-9, cfg.Tolerance)
	})
}
