// Package header defines the animation curves of the collapsible wallet
// header and evaluates them into per-frame style values.
//
// # Elements
//
// The header has a search bar and four feature tiles (deposit, withdraw, QR,
// scan). Every animated property is a [curve.Curve] of the driver value:
//
//	search.scaleX        [0,50] → [1,0]
//	search.translateX    [0,25] → [0,-100]
//	search.opacity       [0,25] → [1,0]
//	feature.label.scale  [0,30] → [1,0]
//	feature.label.opacity[0,30] → [1,0]
//	feature.icon.opacity [0,50] → [0,1]   fades in as the header collapses
//	feature.circle.opacity[0,25]→ [1,0]   hands visual weight to the icon
//	feature.translateY   [0,100]→ [0,-50] shared by every tile
//	feature.<id>.translateX [0,80] → [0,offset]
//
// The per-feature offsets (36, -16, -56, -92) are a configuration table keyed
// by [Feature], not separate code paths; together with the shared vertical
// curve they give the staggered parallax as the tiles slide up into the top
// row.
//
// # Frames
//
// [Header.Frame] evaluates every curve once for a driver value and returns a
// [Frame] of plain numbers for the renderer. Frames are pure functions of the
// driver value: equal inputs give equal frames.
//
//	h := header.Default()
//	f := h.Frame(25)
//	f.Search.Opacity // 0
//	f.Search.ScaleX  // 0.5
package header
