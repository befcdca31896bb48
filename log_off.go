//go:build !debug

package voronoi

import "github.com/mikenye/voronoi/wingededge"

// logDebugf is a no-op unless the debug build tag is set.
func logDebugf(string, ...interface{}) {}

// debugValidate only validates in debug builds; see the debug variant.
func debugValidate(*wingededge.WingedEdge) error { return nil }
