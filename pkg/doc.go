// Package pkg provides the core libraries for scrollhead, a collapsible
// scroll-linked header.
//
// # Overview
//
// A wallet screen shows a purple header (search bar, bell, avatar and four
// feature tiles) over a scrollable transaction list. As the list scrolls the
// header collapses: the search bar shrinks and fades, feature labels vanish
// and the coloured tile icons give way to compact monochrome icons that slide
// into the top row. On release the header snaps fully open or fully closed
// depending on the last scroll direction.
//
// The pkg directory is organized into these areas:
//
//  1. [curve] - Piecewise-linear interpolation curves
//  2. [driver] - The single scalar that every header style derives from
//  3. [scroll] - Scroll event routing and direction tracking
//  4. [snap] - Release snapping state machine and scroll animation
//  5. [header] - The screen's curve table and per-frame styles
//  6. [screen] - Composition root wiring the pieces together
//  7. [trace] - Recording and deterministic replay of gestures
//  8. [config], [errors], [observability], [buildinfo] - Infrastructure
//
// # Architecture
//
// The data flow for one scroll event:
//
//	scroll offset
//	     ↓
//	[scroll.Router] (direction = offset > last ? DOWN : UP)
//	     ↓
//	[driver.Store] (last write wins, subscribers notified)
//	     ↓
//	[header.Header.Frame] (every curve evaluated once)
//	     ↓
//	search, label, icon and circle styles
//
// On release, [snap.Controller] picks 0 or the collapsed height and commands
// a programmatic scroll that flows back through the same router.
//
// # Quick Start
//
//	scr, err := screen.New(screen.DefaultOptions())
//	if err != nil {
//	    return err
//	}
//
//	scr.Scroll(10)
//	scr.Scroll(30)
//	scr.Release()            // DOWN: snaps to 100
//	scr.Settle(16 * time.Millisecond)
//
//	f := scr.Frame()
//	fmt.Println(f.Search.Opacity, f.Features[0].IconOpacity) // 0 1
//
// [curve]: github.com/matzehuels/scrollhead/pkg/curve
// [driver]: github.com/matzehuels/scrollhead/pkg/driver
// [scroll]: github.com/matzehuels/scrollhead/pkg/scroll
// [snap]: github.com/matzehuels/scrollhead/pkg/snap
// [header]: github.com/matzehuels/scrollhead/pkg/header
// [screen]: github.com/matzehuels/scrollhead/pkg/screen
// [trace]: github.com/matzehuels/scrollhead/pkg/trace
// [config]: github.com/matzehuels/scrollhead/pkg/config
// [errors]: github.com/matzehuels/scrollhead/pkg/errors
// [observability]: github.com/matzehuels/scrollhead/pkg/observability
// [buildinfo]: github.com/matzehuels/scrollhead/pkg/buildinfo
// [scroll.Router]: github.com/matzehuels/scrollhead/pkg/scroll#Router
// [driver.Store]: github.com/matzehuels/scrollhead/pkg/driver#Store
// [header.Header.Frame]: github.com/matzehuels/scrollhead/pkg/header#Header.Frame
// [snap.Controller]: github.com/matzehuels/scrollhead/pkg/snap#Controller
package pkg
