package header

// SearchStyle is the search bar's style for one frame.
type SearchStyle struct {
	ScaleX     float64 // horizontal scale, 1 = full width
	TranslateX float64 // pixels
	Opacity    float64
}

// FeatureStyle is one feature tile's style for one frame.
type FeatureStyle struct {
	Feature Feature
	Label   string

	TranslateX float64 // pixels, per-feature
	TranslateY float64 // pixels, shared

	IconOpacity   float64 // monochrome icon, fades in
	CircleOpacity float64 // coloured circle icon, fades out
	LabelScale    float64
	LabelOpacity  float64
}

// Frame is the evaluated style of the whole header for one driver value.
type Frame struct {
	Value    float64
	Search   SearchStyle
	Features []FeatureStyle
}

// Frame evaluates every curve at v.
func (h *Header) Frame(v float64) Frame {
	f := Frame{
		Value: v,
		Search: SearchStyle{
			ScaleX:     searchScaleX.At(v),
			TranslateX: searchTranslateX.At(v),
			Opacity:    searchOpacity.At(v),
		},
		Features: make([]FeatureStyle, len(h.features)),
	}

	// Shared curves are evaluated once per frame.
	ty := featureTranslateY.At(v)
	icon := iconOpacity.At(v)
	circle := circleOpacity.At(v)
	lScale := labelScale.At(v)
	lOpacity := labelOpacity.At(v)

	for i, fc := range h.features {
		f.Features[i] = FeatureStyle{
			Feature:       fc.cfg.Feature,
			Label:         fc.cfg.Label,
			TranslateX:    fc.translateX.At(v),
			TranslateY:    ty,
			IconOpacity:   icon,
			CircleOpacity: circle,
			LabelScale:    lScale,
			LabelOpacity:  lOpacity,
		}
	}
	return f
}

// Equal reports whether two frames carry identical values.
func (f Frame) Equal(o Frame) bool {
	if f.Value != o.Value || f.Search != o.Search || len(f.Features) != len(o.Features) {
		return false
	}
	for i := range f.Features {
		if f.Features[i] != o.Features[i] {
			return false
		}
	}
	return true
}
