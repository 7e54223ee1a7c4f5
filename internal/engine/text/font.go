// Package text builds extruded 3D text meshes from TrueType fonts.
package text

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/math/fixed"
)

// Font is a parsed TrueType font. It reuses an internal glyph buffer and is
// not safe for concurrent use.
type Font struct {
	ttf *truetype.Font
	buf truetype.GlyphBuf
}

// Parse parses a TrueType font file.
func Parse(ttf []byte) (*Font, error) {
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse truetype: %w", err)
	}
	return &Font{ttf: f}, nil
}

// Default returns the embedded Go Bold face.
func Default() (*Font, error) {
	return Parse(gobold.TTF)
}

// Name returns the font's full name, or "" if the font has none.
func (f *Font) Name() string {
	return f.ttf.Name(truetype.NameIDFontFullName)
}

// UnitsPerEm returns the size of the em square in font units.
func (f *Font) UnitsPerEm() int {
	return int(f.ttf.FUnitsPerEm())
}

// scale makes every fixed-point metric the font returns equal to its value
// in font units.
func (f *Font) scale() fixed.Int26_6 {
	return fixed.Int26_6(f.ttf.FUnitsPerEm())
}

// LineHeight returns the distance between baselines in font units.
func (f *Font) LineHeight() float64 {
	b := f.ttf.Bounds(f.scale())
	return float64(b.Max.Y - b.Min.Y)
}

// advance returns the horizontal advance of glyph idx in font units.
func (f *Font) advance(idx truetype.Index) float64 {
	return float64(f.ttf.HMetric(f.scale(), idx).AdvanceWidth)
}

// kern returns the kerning adjustment between two glyphs in font units.
func (f *Font) kern(prev, idx truetype.Index) float64 {
	return float64(f.ttf.Kern(f.scale(), prev, idx))
}

// contours loads glyph idx and flattens each of its closed outlines into a
// polygon, in font units relative to the glyph origin.
func (f *Font) contours(idx truetype.Index, segments int) ([][]mgl64.Vec2, error) {
	if err := f.buf.Load(f.ttf, f.scale(), idx, font.HintingNone); err != nil {
		return nil, err
	}

	var out [][]mgl64.Vec2
	start := 0
	for _, end := range f.buf.Ends {
		c := flatten(f.buf.Points[start:end], segments)
		start = end
		if len(c) >= 3 {
			out = append(out, c)
		}
	}
	return out, nil
}
