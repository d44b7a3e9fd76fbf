package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/arloliu/wehnelt/analysis"
	"github.com/arloliu/wehnelt/compress"
	"github.com/arloliu/wehnelt/measurement"
)

// Number is a float64 that encodes NaN and ±Inf as JSON null.
type Number float64

func (n Number) MarshalJSON() ([]byte, error) {
	v := float64(n)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte("null"), nil
	}

	return strconv.AppendFloat(nil, v, 'g', -1, 64), nil
}

func (n *Number) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*n = Number(math.NaN())
		return nil
	}

	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	*n = Number(v)

	return nil
}

// Document is the JSON form of an analysis run.
type Document struct {
	Generated   time.Time    `json:"generated"`
	Fingerprint string       `json:"fingerprint"`
	Constants   ConstantsDoc `json:"constants"`
	Rows        []RowDoc     `json:"rows"`
	Groups      []GroupDoc   `json:"groups"`
}

// ConstantsDoc lists the physical constants of the run.
type ConstantsDoc struct {
	R           Number `json:"tube_radius"`
	H           Number `json:"planck"`
	Me          Number `json:"electron_mass"`
	Ec          Number `json:"elementary_charge"`
	Coefficient Number `json:"coefficient"`
}

// RowDoc is one measurement row with its derived columns.
type RowDoc struct {
	N             uint32 `json:"n"`
	VoltageKV     Number `json:"voltage_kv"`
	DiameterOuter Number `json:"diameter_outer"`
	DiameterInner Number `json:"diameter_inner"`
	Voltage       Number `json:"voltage"`
	SqrtVoltage   Number `json:"sqrt_voltage"`
	R             Number `json:"r"`
	X             Number `json:"x"`
	Y             Number `json:"y"`
}

// GroupDoc holds the results of one ring order. Missing stages are omitted.
type GroupDoc struct {
	N             uint32       `json:"n"`
	Points        int          `json:"points"`
	OLS           *OLSDoc      `json:"ols,omitempty"`
	Weighted      *WeightedDoc `json:"weighted,omitempty"`
	DSpacing      *DSpacingDoc `json:"d_spacing,omitempty"`
	WeightedD     *DSpacingDoc `json:"weighted_d_spacing,omitempty"`
	PointEstimate *PointDoc    `json:"point_estimate,omitempty"`
	Errors        []ErrorDoc   `json:"errors,omitempty"`
}

type OLSDoc struct {
	Slope        Number `json:"slope"`
	Intercept    Number `json:"intercept"`
	R            Number `json:"r"`
	SlopeErr     Number `json:"slope_err"`
	InterceptErr Number `json:"intercept_err"`
	RSquared     Number `json:"r_squared"`
}

type WeightedDoc struct {
	Solver       string       `json:"solver"`
	Iterations   int          `json:"iterations"`
	Slope        Number       `json:"slope"`
	Intercept    Number       `json:"intercept"`
	SlopeErr     Number       `json:"slope_err"`
	InterceptErr Number       `json:"intercept_err"`
	Covariance   [2][2]Number `json:"covariance"`
	Chi2         Number       `json:"chi2"`
	DOF          int          `json:"dof"`
	Chi2Red      Number       `json:"chi2_red"`
	RSquared     Number       `json:"r_squared"`
	Confidence   Number       `json:"confidence"`
	SlopeCI      Number       `json:"slope_ci"`
	InterceptCI  Number       `json:"intercept_ci"`
}

type DSpacingDoc struct {
	Fit   string `json:"fit"`
	Slope Number `json:"slope"`
	D     Number `json:"d"`
	Err   Number `json:"err"`
}

type PointDoc struct {
	Values []Number `json:"values"`
	Mean   Number   `json:"mean"`
	StdDev Number   `json:"std_dev"`
}

type ErrorDoc struct {
	Stage   string `json:"stage"`
	Message string `json:"message"`
}

// NewDocument converts an analysis result into its JSON form.
func NewDocument(res *analysis.Result, generated time.Time) *Document {
	c := res.Constants
	doc := &Document{
		Generated:   generated.UTC(),
		Fingerprint: fmt.Sprintf("%016x", res.Fingerprint),
		Constants: ConstantsDoc{
			R: Number(c.R), H: Number(c.H), Me: Number(c.Me), Ec: Number(c.Ec),
			Coefficient: Number(c.Coeff()),
		},
		Groups: make([]GroupDoc, 0, len(res.Groups)),
	}

	if res.Partition != nil {
		for _, r := range res.Partition.Reconstitute() {
			doc.Rows = append(doc.Rows, newRowDoc(r))
		}
	}

	for _, g := range res.Groups {
		doc.Groups = append(doc.Groups, newGroupDoc(g))
	}

	return doc
}

func newRowDoc(r measurement.Row) RowDoc {
	return RowDoc{
		N:             r.N,
		VoltageKV:     Number(r.VoltageKV),
		DiameterOuter: Number(r.DiameterOuter),
		DiameterInner: Number(r.DiameterInner),
		Voltage:       Number(r.Voltage),
		SqrtVoltage:   Number(r.SqrtVoltage),
		R:             Number(r.R),
		X:             Number(r.X),
		Y:             Number(r.Y),
	}
}

func newGroupDoc(g *analysis.GroupResult) GroupDoc {
	gd := GroupDoc{N: g.N, Points: g.Points}

	if f := g.OLS; f != nil {
		gd.OLS = &OLSDoc{
			Slope: Number(f.Slope), Intercept: Number(f.Intercept), R: Number(f.R),
			SlopeErr: Number(f.SlopeErr), InterceptErr: Number(f.InterceptErr),
			RSquared: Number(f.RSquared),
		}
	}
	if f := g.Weighted; f != nil {
		wd := &WeightedDoc{
			Solver:       f.Solver.String(),
			Iterations:   f.Iterations,
			Slope:        Number(f.Slope),
			Intercept:    Number(f.Intercept),
			SlopeErr:     Number(f.SlopeErr),
			InterceptErr: Number(f.InterceptErr),
			Chi2:         Number(f.Chi2),
			DOF:          f.DOF,
			Chi2Red:      Number(f.Chi2Red),
			RSquared:     Number(f.RSquared),
			Confidence:   Number(f.Confidence),
			SlopeCI:      Number(f.SlopeCI),
			InterceptCI:  Number(f.InterceptCI),
		}
		for i := range f.Covariance {
			for j := range f.Covariance[i] {
				wd.Covariance[i][j] = Number(f.Covariance[i][j])
			}
		}
		gd.Weighted = wd
	}
	gd.DSpacing = newDSpacingDoc(g.DSpacing)
	gd.WeightedD = newDSpacingDoc(g.WeightedDSpacing)
	if pe := g.PointEstimate; pe != nil {
		pd := &PointDoc{Mean: Number(pe.Mean), StdDev: Number(pe.StdDev)}
		for _, v := range pe.Values {
			pd.Values = append(pd.Values, Number(v))
		}
		gd.PointEstimate = pd
	}
	for _, e := range g.Errs {
		gd.Errors = append(gd.Errors, ErrorDoc{Stage: string(e.Stage), Message: e.Err.Error()})
	}

	return gd
}

func newDSpacingDoc(d *analysis.DSpacing) *DSpacingDoc {
	if d == nil {
		return nil
	}

	return &DSpacingDoc{Fit: d.Fit.String(), Slope: Number(d.Slope), D: Number(d.D), Err: Number(d.Err)}
}

// Marshal encodes the document as indented JSON and compresses it with kind.
func (d *Document) Marshal(kind compress.Kind) ([]byte, compress.Stats, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return nil, compress.Stats{}, fmt.Errorf("encoding report: %w", err)
	}

	return compress.CompressWithStats(kind, buf.Bytes())
}

// WriteFile writes the document to path, compressed with kind.
func (d *Document) WriteFile(path string, kind compress.Kind) (compress.Stats, error) {
	data, stats, err := d.Marshal(kind)
	if err != nil {
		return compress.Stats{}, err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return compress.Stats{}, fmt.Errorf("writing report: %w", err)
	}

	return stats, nil
}

// ReadFile reads a document written by WriteFile with the same kind.
func ReadFile(path string, kind compress.Kind) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading report: %w", err)
	}

	codec, err := compress.GetCodec(kind)
	if err != nil {
		return nil, err
	}
	raw, err := codec.Decompress(data)
	if err != nil {
		return nil, err
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decoding report: %w", err)
	}

	return &doc, nil
}
