// Package snap decides where the header comes to rest after a drag and
// animates the programmatic scroll that takes it there.
//
// # State Machine
//
// The [Controller] has three states:
//
//	EXPANDED ──drag start──▶ DRAGGING ◀──drag start── COLLAPSED
//	    ▲                       │                        ▲
//	    └──── release (UP) ─────┴──── release (DOWN) ────┘
//
// On release the target depends only on the last scroll direction: DOWN
// commands the collapsed height, UP commands 0. Distance, position and
// velocity are ignored, so there are no intermediate resting states.
//
// # Animation
//
// The commanded scroll is eased. An [Animation] interpolates from the
// current offset to the target as frames elapse, using one of three easings:
//
//   - [EaseCubic]: ease-out cubic tween (the default)
//   - [EaseLinear]: constant-speed tween
//   - [EaseSpring]: critically damped spring
//
// Animations are stepped by the caller's frame clock, so they are
// deterministic under replay. A newer command or a user scroll replaces the
// in-flight animation; nothing is queued.
package snap
