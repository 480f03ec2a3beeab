package header

import (
	"fmt"

	"github.com/matzehuels/scrollhead/pkg/curve"
	"github.com/matzehuels/scrollhead/pkg/errors"
)

// Geometry of the header in pixels.
const (
	UpperHeight     = 48  // search row including top padding
	LowerHeight     = 96  // feature tile row
	CollapsedHeight = 100 // scroll offset at which the header rests collapsed
)

// Feature identifies a header tile.
type Feature int

const (
	Deposit Feature = iota
	Withdraw
	QR
	Scan
)

// String returns the lower-case feature identifier used in curve names.
func (f Feature) String() string {
	switch f {
	case Deposit:
		return "deposit"
	case Withdraw:
		return "withdraw"
	case QR:
		return "qr"
	case Scan:
		return "scan"
	default:
		return fmt.Sprintf("feature%d", int(f))
	}
}

// FeatureConfig is one row of the feature table.
type FeatureConfig struct {
	Feature Feature
	Label   string
	Offset  float64 // horizontal offset at full collapse, pixels
}

// DefaultFeatures is the feature table of the wallet screen.
var DefaultFeatures = []FeatureConfig{
	{Feature: Deposit, Label: "NẠP TIỀN", Offset: 36},
	{Feature: Withdraw, Label: "RÚT TIỀN", Offset: -16},
	{Feature: QR, Label: "MÃ QR", Offset: -56},
	{Feature: Scan, Label: "QUÉT MÃ", Offset: -92},
}

// Curves shared by the whole header.
var (
	searchScaleX     = curve.Must([]float64{0, 50}, []float64{1, 0}, curve.WithName("search.scaleX"))
	searchTranslateX = curve.Must([]float64{0, 25}, []float64{0, -100}, curve.WithName("search.translateX"))
	searchOpacity    = curve.Must([]float64{0, 25}, []float64{1, 0}, curve.WithName("search.opacity"))

	labelScale    = curve.Must([]float64{0, 30}, []float64{1, 0}, curve.WithName("feature.label.scale"))
	labelOpacity  = curve.Must([]float64{0, 30}, []float64{1, 0}, curve.WithName("feature.label.opacity"))
	iconOpacity   = curve.Must([]float64{0, 50}, []float64{0, 1}, curve.WithName("feature.icon.opacity"))
	circleOpacity = curve.Must([]float64{0, 25}, []float64{1, 0}, curve.WithName("feature.circle.opacity"))

	featureTranslateY = curve.Must([]float64{0, 100}, []float64{0, -50}, curve.WithName("feature.translateY"))
)

// featureTranslateXInput is the input range of every per-feature horizontal curve.
var featureTranslateXInput = []float64{0, 80}

type featureCurves struct {
	cfg        FeatureConfig
	translateX *curve.Curve
}

// Header holds the curve table for one screen.
type Header struct {
	features []featureCurves
}

// New builds a header for the given feature table. Features must be unique
// and have finite offsets.
func New(features []FeatureConfig) (*Header, error) {
	if len(features) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "header needs at least one feature")
	}
	seen := make(map[Feature]bool, len(features))
	h := &Header{features: make([]featureCurves, 0, len(features))}
	for _, f := range features {
		if seen[f.Feature] {
			return nil, errors.New(errors.ErrCodeInvalidInput, "duplicate feature %s", f.Feature)
		}
		seen[f.Feature] = true

		tx, err := curve.New(featureTranslateXInput, []float64{0, f.Offset},
			curve.WithName(fmt.Sprintf("feature.%s.translateX", f.Feature)))
		if err != nil {
			return nil, err
		}
		h.features = append(h.features, featureCurves{cfg: f, translateX: tx})
	}
	return h, nil
}

// Default returns the header built from [DefaultFeatures].
func Default() *Header {
	h, err := New(DefaultFeatures)
	if err != nil {
		panic(err)
	}
	return h
}

// Features returns the feature table in display order.
func (h *Header) Features() []FeatureConfig {
	out := make([]FeatureConfig, len(h.features))
	for i, f := range h.features {
		out[i] = f.cfg
	}
	return out
}

// Curves returns every curve of the header, shared ones first.
func (h *Header) Curves() []*curve.Curve {
	out := []*curve.Curve{
		searchScaleX, searchTranslateX, searchOpacity,
		labelScale, labelOpacity, iconOpacity, circleOpacity,
		featureTranslateY,
	}
	for _, f := range h.features {
		out = append(out, f.translateX)
	}
	return out
}

// Curve looks up a curve by name.
func (h *Header) Curve(name string) (*curve.Curve, bool) {
	for _, c := range h.Curves() {
		if c.Name() == name {
			return c, true
		}
	}
	return nil, false
}
