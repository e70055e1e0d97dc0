// Package sim implements a three-worker priority inversion demonstration.
//
// A low-priority worker periodically holds a shared exclusive resource that a
// high-priority worker also needs, while a medium-priority worker burns CPU
// without ever touching the resource. Without priority-aware scheduling the
// medium worker starves the low-priority holder, stretching the high worker's
// measured acquisition waits. A priority-inheritance mitigation can be
// enabled in two forms: an emulated mode that only changes the low worker's
// reported status (matching the classic Mars Pathfinder demo), and a real
// mode that boosts the holder's OS scheduling priority to a blocked waiter's
// level until release.
package sim
