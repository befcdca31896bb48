package wingededge

import "errors"

var (
	// ErrInvalidWingedEdge is returned when the structure violates a
	// winged-edge invariant: an edge missing from an endpoint's incidence
	// ring, a cell whose edges do not close into a cycle, or an
	// impossible vertex-to-edge ratio. It wraps all validation and
	// finishing failures.
	ErrInvalidWingedEdge = errors.New("invalid winged edge")

	// ErrClipPolygonAtInfinity is returned when viewport clipping is
	// requested for the polygon at infinity, which covers no finite
	// region.
	ErrClipPolygonAtInfinity = errors.New("cannot clip the polygon at infinity")

	// ErrClipUnfinished is returned when viewport clipping is requested
	// on a cell whose diagram has not been finished.
	ErrClipUnfinished = errors.New("cannot clip an unfinished diagram")
)
