package text

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/freetype/truetype"

	"github.com/Faultbox/tetsuo/internal/engine/geometry"
)

// ErrNoGlyphs is returned for text without any visible glyph.
var ErrNoGlyphs = errors.New("text has no visible glyphs")

// Options control text geometry generation.
type Options struct {
	Size          float32 // em size in world units
	Depth         float32 // extrusion depth along +Z
	CurveSegments int     // lines per quadratic curve
}

// DefaultOptions returns the parameters used for the title.
func DefaultOptions() Options {
	return Options{Size: 25, Depth: 5, CurveSegments: 12}
}

// Shapes lays s out left to right from the origin, baseline at y = 0, and
// returns its filled regions in world units. Newlines start a new line below.
func (f *Font) Shapes(s string, size float32, segments int) ([]Shape, error) {
	k := float64(size) / float64(f.UnitsPerEm())

	var (
		shapes     []Shape
		prev       truetype.Index
		hasPrev    bool
		penX, penY float64
	)
	for _, r := range s {
		if r == '\n' {
			penX = 0
			penY -= f.LineHeight()
			hasPrev = false
			continue
		}

		idx := f.ttf.Index(r)
		if hasPrev {
			penX += f.kern(prev, idx)
		}
		contours, err := f.contours(idx, segments)
		if err != nil {
			return nil, fmt.Errorf("glyph %q: %w", r, err)
		}
		for _, c := range contours {
			for i, p := range c {
				c[i] = mgl64.Vec2{(p[0] + penX) * k, (p[1] + penY) * k}
			}
		}
		shapes = append(shapes, groupContours(contours)...)

		penX += f.advance(idx)
		prev, hasPrev = idx, true
	}
	return shapes, nil
}

// Geometry builds the extruded mesh for s with its bounding box computed.
func (f *Font) Geometry(s string, opts Options) (*geometry.Geometry, error) {
	shapes, err := f.Shapes(s, opts.Size, opts.CurveSegments)
	if err != nil {
		return nil, err
	}
	if len(shapes) == 0 {
		return nil, ErrNoGlyphs
	}
	return Extrude(shapes, opts.Depth), nil
}
