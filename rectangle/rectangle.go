// Package rectangle provides an axis-aligned rectangle used as the
// viewport when clipping Voronoi cells to a finite region.
package rectangle

import (
	"encoding/json"
	"fmt"
	"image"

	"github.com/mikenye/voronoi/point"
)

// Rectangle represents an axis-aligned rectangle defined by its minimum
// and maximum corners.
type Rectangle struct {
	min point.Point
	max point.Point
}

// New creates a rectangle given two opposite corners.
//
// This function determines the corners from the provided coordinates,
// regardless of their order, and ensures a valid axis-aligned rectangle.
//
// Parameters:
//   - x1,y1 (float64): One corner of the rectangle.
//   - x2,y2 (float64): The opposite corner of the rectangle.
//
// Returns:
//   - Rectangle: A new rectangle defined by the given opposite corners.
func New(x1, y1, x2, y2 float64) Rectangle {
	return Rectangle{
		min: point.New(min(x1, x2), min(y1, y2)),
		max: point.New(max(x1, x2), max(y1, y2)),
	}
}

// NewFromImageRect creates a new Rectangle from an [image.Rectangle].
//
// Parameters:
//   - r (image.Rectangle): The image.Rectangle to convert.
//
// Returns:
//   - Rectangle: A new rectangle matching the given [image.Rectangle].
func NewFromImageRect(r image.Rectangle) Rectangle {
	return New(float64(r.Min.X), float64(r.Min.Y), float64(r.Max.X), float64(r.Max.Y))
}

// ContainsPoint reports whether p lies inside the rectangle or on its
// boundary.
func (r Rectangle) ContainsPoint(p point.Point) bool {
	return p.X() >= r.min.X() && p.X() <= r.max.X() &&
		p.Y() >= r.min.Y() && p.Y() <= r.max.Y()
}

// Corners returns the four corners of the rectangle in clockwise order
// starting from the top-left:
//
//	top-left, top-right, bottom-right, bottom-left
func (r Rectangle) Corners() []point.Point {
	return []point.Point{
		point.New(r.min.X(), r.max.Y()),
		point.New(r.max.X(), r.max.Y()),
		point.New(r.max.X(), r.min.Y()),
		point.New(r.min.X(), r.min.Y()),
	}
}

// Height returns the vertical extent of the rectangle.
func (r Rectangle) Height() float64 {
	return r.max.Y() - r.min.Y()
}

// MarshalJSON serializes Rectangle as JSON.
func (r Rectangle) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Min point.Point `json:"min"`
		Max point.Point `json:"max"`
	}{
		Min: r.min,
		Max: r.max,
	})
}

// Max returns the corner with the largest x and y coordinates.
func (r Rectangle) Max() point.Point {
	return r.max
}

// Min returns the corner with the smallest x and y coordinates.
func (r Rectangle) Min() point.Point {
	return r.min
}

// String returns a string representation of the rectangle.
func (r Rectangle) String() string {
	return fmt.Sprintf("[%s - %s]", r.min.String(), r.max.String())
}

// Width returns the horizontal extent of the rectangle.
func (r Rectangle) Width() float64 {
	return r.max.X() - r.min.X()
}
