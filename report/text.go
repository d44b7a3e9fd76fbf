package report

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/arloliu/wehnelt/analysis"
	"github.com/arloliu/wehnelt/measurement"
)

// Summary writes the per-group results of res.
func Summary(w io.Writer, res *analysis.Result) error {
	pw := &printer{w: w}
	pw.printf("table fingerprint %016x, coefficient %.6e m·V^½\n", res.Fingerprint, res.Constants.Coeff())

	for _, g := range res.Groups {
		pw.printf("\ngroup n=%d (%d points)\n", g.N, g.Points)

		if d := g.DSpacing; d != nil {
			pw.printf("d_%d = %.3e\n", g.N, d.D)
			pw.printf("  σ_d = %.1e m (from %s slope)\n", d.Err, d.Fit)
		}
		if d := g.WeightedDSpacing; d != nil {
			pw.printf("  weighted d = %.3e m ± %.1e\n", d.D, d.Err)
		}
		if f := g.Weighted; f != nil {
			pw.printf("  m = %.6e ± %.2e\n", f.Slope, f.SlopeErr)
			pw.printf("  c = %.6e ± %.2e\n", f.Intercept, f.InterceptErr)
			if f.StatsErr == nil {
				pw.printf("  chi2 = %.4g, chi2_red = %.4g (dof = %d)\n", f.Chi2, f.Chi2Red, f.DOF)
				pw.printf("  R² = %s\n", formatFloat("%.6f", f.RSquared))
				pw.printf("  %.0f%% CI: m ± %.2e, c ± %.2e\n", f.Confidence*100, f.SlopeCI, f.InterceptCI)
			}
			pw.printf("  σ_m/m = %.2f%%\n", f.RelativeSlopeErr()*100)
			pw.printf("  corr(m, c) = %s\n", formatFloat("%.4f", f.Correlation()))
		}
		if f := g.OLS; f != nil {
			pw.printf("  OLS: m = %.6e ± %.2e, r = %.6f\n", f.Slope, f.SlopeErr, f.R)
		}
		if pe := g.PointEstimate; pe != nil {
			pw.printf("  per-point d = %.3e ± %s m\n", pe.Mean, formatFloat("%.1e", pe.StdDev))
		}
		for _, e := range g.Errs {
			pw.printf("  error [%s]: %v\n", e.Stage, e.Err)
		}
	}

	return pw.err
}

// Table writes the measurement rows with their derived columns.
func Table(w io.Writer, rows []measurement.Row) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	pw := &printer{w: tw}

	pw.printf("n\tvoltage_kv\tdiameter_outer\tdiameter_inner\tvoltage\tsqrt_voltage\tr\tx\ty\t\n")
	for _, r := range rows {
		pw.printf("%d\t%.2f\t%.2f\t%.2f\t%.0f\t%.4f\t%.6f\t%.0f\t%.2f\t\n",
			r.N, r.VoltageKV, r.DiameterOuter, r.DiameterInner,
			r.Voltage, r.SqrtVoltage, r.R, r.X, r.Y)
	}
	if pw.err != nil {
		return pw.err
	}

	return tw.Flush()
}

// printer remembers the first write error.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func formatFloat(format string, v float64) string {
	if math.IsNaN(v) {
		return "n/a"
	}

	return fmt.Sprintf(format, v)
}
