package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/wehnelt/errs"
)

func TestCoeff(t *testing.T) {
	c := Default()
	want := 2 * 65e-3 * 6.62607015e-34 / math.Sqrt(2*9.1093837015e-31*1.602176634e-19)
	require.Equal(t, want, c.Coeff())
	require.InEpsilon(t, 1.5943537e-10, c.Coeff(), 1e-6)
}

func TestCoeff_ScalesLinearlyWithRadius(t *testing.T) {
	c := Default()
	doubled := c
	doubled.R *= 2
	require.InEpsilon(t, 2*c.Coeff(), doubled.Coeff(), 1e-15)
	require.Equal(t, TubeRadius, c.R, "copy must not alias the original")
}

func TestWavelength(t *testing.T) {
	c := Default()

	t.Run("3 kV", func(t *testing.T) {
		l, err := c.Wavelength(3000)
		require.NoError(t, err)
		require.InEpsilon(t, 2.2391e-11, l, 1e-4)
	})

	t.Run("inverse square root scaling", func(t *testing.T) {
		l1, err := c.Wavelength(1000)
		require.NoError(t, err)
		l4, err := c.Wavelength(4000)
		require.NoError(t, err)
		require.InEpsilon(t, l1/2, l4, 1e-12)
	})

	for _, u := range []float64{0, -5, math.NaN(), math.Inf(1)} {
		_, err := c.Wavelength(u)
		require.ErrorIs(t, err, errs.ErrInvalidVoltage, "u=%v", u)
	}
}
