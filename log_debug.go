//go:build debug

package voronoi

import (
	"log"
	"os"

	"github.com/mikenye/voronoi/wingededge"
)

// Debug logger instance
var logger = log.New(os.Stderr, "[voronoi DEBUG] ", log.LstdFlags)

// logDebugf logs debug messages if the logger is enabled.
func logDebugf(format string, v ...interface{}) {
	logger.Printf(format, v...)
}

// debugValidate runs the winged-edge validator on every finished diagram
// in debug builds, regardless of the validation option.
func debugValidate(w *wingededge.WingedEdge) error {
	return w.Validate()
}
