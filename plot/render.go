package plot

import (
	"fmt"
	"slices"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/arloliu/wehnelt/errs"
	"github.com/arloliu/wehnelt/measurement"
	"github.com/arloliu/wehnelt/regression"
)

const (
	width  = 6 * vg.Inch
	height = 4 * vg.Inch
)

// errorPoints satisfies both plotter.XYer and plotter.YErrorer.
type errorPoints struct {
	plotter.XYs
	plotter.YErrors
}

// Render draws every group with style and saves the plot to path.
//
// Parameters:
//   - path: Output file; its extension selects the image format
//   - groups: The groups to draw, one color and marker each
//   - style: Coordinates, labels and fit overlay
//   - errModel: Source of the symmetric error bars; nil draws no bars
//   - fits: Fitted line per ring order, used when style.ShowFit() is true
//
// Returns:
//   - error: errs.ErrInsufficientData for no groups, or a plotting/saving error
func Render(path string, groups []*measurement.Group, style Style, errModel regression.ErrorModel, fits map[uint32]regression.Estimator) error {
	if len(groups) == 0 {
		return fmt.Errorf("%w: nothing to plot", errs.ErrInsufficientData)
	}

	p := plot.New()
	style.Configure(p)
	p.Add(plotter.NewGrid())
	p.Legend.Top = true

	for i, g := range groups {
		x, y := style.Coordinates(g)
		pts := make(plotter.XYs, len(x))
		for j := range x {
			pts[j] = plotter.XY{X: x[j], Y: y[j]}
		}

		label := fmt.Sprintf("n = %d", g.N)
		scatter, line, err := markers(pts, style.JoinPoints())
		if err != nil {
			return fmt.Errorf("group n=%d: %w", g.N, err)
		}
		scatter.GlyphStyle.Color = plotutil.Color(i)
		scatter.GlyphStyle.Shape = plotutil.Shape(i)
		scatter.GlyphStyle.Radius = vg.Points(3)
		if line != nil {
			line.LineStyle.Color = plotutil.Color(i)
			p.Add(line, scatter)
			p.Legend.Add(label, line, scatter)
		} else {
			p.Add(scatter)
			p.Legend.Add(label, scatter)
		}

		if errModel != nil {
			bars, err := errorBars(pts, errModel.Errors(x, y))
			if err != nil {
				return fmt.Errorf("group n=%d: %w", g.N, err)
			}
			bars.LineStyle.Color = plotutil.Color(i)
			p.Add(bars)
		}

		if est, ok := fits[g.N]; ok && style.ShowFit() && len(x) > 0 {
			line := plotter.NewFunction(est.Estimate)
			line.XMin = slices.Min(x)
			line.XMax = slices.Max(x)
			line.LineStyle.Color = plotutil.Color(i)
			line.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
			p.Add(line)
			p.Legend.Add(fmt.Sprintf("fit n = %d", g.N), line)
		}
	}

	if err := p.Save(width, height, path); err != nil {
		return fmt.Errorf("saving plot %s: %w", path, err)
	}

	return nil
}

// markers returns the point glyphs of a group and, when join is set, the
// polyline through them in input order.
func markers(pts plotter.XYs, join bool) (*plotter.Scatter, *plotter.Line, error) {
	if join {
		line, scatter, err := plotter.NewLinePoints(pts)
		if err != nil {
			return nil, nil, err
		}

		return scatter, line, nil
	}

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, nil, err
	}

	return scatter, nil, nil
}

func errorBars(pts plotter.XYs, sigma []float64) (*plotter.YErrorBars, error) {
	yerr := make(plotter.YErrors, len(sigma))
	for i, s := range sigma {
		yerr[i].Low = s
		yerr[i].High = s
	}

	bars, err := plotter.NewYErrorBars(errorPoints{XYs: pts, YErrors: yerr})
	if err != nil {
		return nil, err
	}
	bars.CapWidth = vg.Points(4)

	return bars, nil
}
