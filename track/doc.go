// Package track provides an optional registry of live off-heap arrays.
//
// The registry exists for tooling: leak audits, the inspector command, and
// tests that want to assert every handle created during a scenario was
// released. It has no effect on array semantics; arrays participate only
// when constructed with native.WithTracker.
//
// # Lifecycle
//
// Each tracked array occupies one registry slot from construction to
// release:
//
//	reg := track.NewRegistry()
//
//	h := reg.Add(track.Info{Label: "tile-cache", Bytes: 4096})
//	// ... array lives ...
//	reg.Remove(h)
//
// Observers receive Created and Released events and can be used to wire
// registry activity into logs or metrics.
package track
