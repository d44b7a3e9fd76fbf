package plot

import (
	"gonum.org/v1/plot"

	"github.com/arloliu/wehnelt/measurement"
	"github.com/arloliu/wehnelt/regression"
)

// DefaultRadiusTolerance is the reading tolerance of a ring radius, in meters.
const DefaultRadiusTolerance = 0.25e-3

// Style configures a plot and picks the coordinates drawn for each group.
type Style interface {
	// Configure sets the title and axis labels.
	Configure(p *plot.Plot)
	// Coordinates returns the points drawn for a group.
	Coordinates(g *measurement.Group) (x, y []float64)
	// ShowFit reports whether fitted lines are overlaid.
	ShowFit() bool
	// JoinPoints reports whether consecutive points of a group are connected.
	JoinPoints() bool
}

// RawStyle draws the ring radius against the accelerating voltage.
type RawStyle struct{}

var _ Style = RawStyle{}

func (RawStyle) Configure(p *plot.Plot) {
	p.Title.Text = "Ring radius vs. accelerating voltage"
	p.X.Label.Text = "U (V)"
	p.Y.Label.Text = "r (m)"
}

func (RawStyle) Coordinates(g *measurement.Group) (x, y []float64) {
	x = g.Column(func(r measurement.Row) float64 { return r.Voltage })
	y = g.Column(func(r measurement.Row) float64 { return r.R })

	return x, y
}

func (RawStyle) ShowFit() bool { return false }

func (RawStyle) JoinPoints() bool { return true }

// RawErrorModel returns the fixed radius tolerance used with RawStyle.
func RawErrorModel() regression.ErrorModel {
	return regression.FixedError{Value: DefaultRadiusTolerance}
}

// AnalysisStyle draws 1/r² against the accelerating voltage with the fitted lines.
type AnalysisStyle struct{}

var _ Style = AnalysisStyle{}

func (AnalysisStyle) Configure(p *plot.Plot) {
	p.Title.Text = "1/r² vs. accelerating voltage"
	p.X.Label.Text = "U (V)"
	p.Y.Label.Text = "1/r² (m⁻²)"
}

func (AnalysisStyle) Coordinates(g *measurement.Group) (x, y []float64) {
	return g.XY()
}

func (AnalysisStyle) ShowFit() bool { return true }

func (AnalysisStyle) JoinPoints() bool { return false }
