package fonts

import (
	"unicode/utf8"

	"golang.org/x/image/font"
)

// Strategy identifies how a Measurer computes widths
type Strategy int

const (
	// Precise uses glyph advances and kerning
	Precise Strategy = iota
	// GlyphSum adds up the right edge of each glyph's bounding box
	GlyphSum
	// Estimate assumes every character is half the font size wide
	Estimate
)

func (s Strategy) String() string {
	switch s {
	case Precise:
		return "precise"
	case GlyphSum:
		return "glyph-sum"
	default:
		return "estimate"
	}
}

// Measurer returns the rendered width of a single line of text in pixels
type Measurer interface {
	Measure(text string) float64
	Strategy() Strategy
}

// probeRunes are used to find out what a face can report
const probeRunes = "Mg "

// NewMeasurer probes face once and picks the best strategy it supports.
func NewMeasurer(face font.Face, size int) Measurer {
	if face == nil {
		return estimateMeasurer{size}
	}
	advances, bounds := true, true
	for _, r := range probeRunes {
		if _, ok := face.GlyphAdvance(r); !ok {
			advances = false
		}
		if _, _, ok := face.GlyphBounds(r); !ok {
			bounds = false
		}
	}
	switch {
	case advances:
		return preciseMeasurer{face}
	case bounds:
		return glyphSumMeasurer{face, size}
	default:
		return estimateMeasurer{size}
	}
}

type preciseMeasurer struct {
	face font.Face
}

func (m preciseMeasurer) Measure(text string) float64 {
	return float64(font.MeasureString(m.face, text)) / 64
}

func (preciseMeasurer) Strategy() Strategy { return Precise }

type glyphSumMeasurer struct {
	face font.Face
	size int
}

func (m glyphSumMeasurer) Measure(text string) float64 {
	var width float64
	for _, r := range text {
		bounds, _, ok := m.face.GlyphBounds(r)
		if !ok {
			// No glyph for this rune
			width += float64(m.size / 2)
			continue
		}
		width += float64(bounds.Max.X.Ceil())
	}
	return width
}

func (glyphSumMeasurer) Strategy() Strategy { return GlyphSum }

type estimateMeasurer struct {
	size int
}

func (m estimateMeasurer) Measure(text string) float64 {
	return float64(utf8.RuneCountInString(text) * (m.size / 2))
}

func (estimateMeasurer) Strategy() Strategy { return Estimate }
