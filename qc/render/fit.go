package render

import (
	"strings"

	"github.com/ankurkotwal/quotecard/qc/fonts"
)

// Fitting defaults
const (
	DefaultMinFontSize  = 20
	DefaultFontSizeStep = 5
)

// FitOptions control the search for a font size
type FitOptions struct {
	FontPath    string
	StartSize   int
	LineSpacing int
	MinSize     int // DefaultMinFontSize when <= 0
	Step        int // DefaultFontSizeStep when <= 0
}

// WrapResult holds wrapped lines and the font size they were wrapped at
type WrapResult struct {
	Lines       []string // Empty strings are blank lines
	FontSize    int
	LineSpacing int
	Overflow    bool // Lines are taller than the box even at the minimum size
}

// LineHeight is the vertical advance from one line to the next
func (w WrapResult) LineHeight() int {
	return w.FontSize + w.LineSpacing
}

// BlockHeight is the total height of all lines
func (w WrapResult) BlockHeight() int {
	return len(w.Lines) * w.LineHeight()
}

// Fit finds the largest font size, from StartSize down to MinSize in Step
// decrements, at which text wrapped to box.Width is no taller than
// box.Height. MinSize is always tried before giving up. If nothing fits,
// the wrap at the last size tried is returned along with an
// *UnresolvedFitError.
func Fit(text string, box TextBox, resolver *fonts.Resolver, opts FitOptions) (WrapResult, error) {
	minSize := opts.MinSize
	if minSize <= 0 {
		minSize = DefaultMinFontSize
	}
	step := opts.Step
	if step <= 0 {
		step = DefaultFontSizeStep
	}
	if opts.StartSize <= 0 {
		return WrapResult{}, &ValidationError{"font sizes must be positive"}
	}

	size := opts.StartSize
	for {
		handle := resolver.Resolve(opts.FontPath, size)
		result := WrapResult{
			Lines:       Wrap(text, float64(box.Width), handle.Measurer),
			FontSize:    size,
			LineSpacing: opts.LineSpacing,
		}
		if result.BlockHeight() <= box.Height {
			return result, nil
		}
		if size <= minSize {
			result.Overflow = true
			return result, &UnresolvedFitError{
				FontSize:    size,
				BlockHeight: result.BlockHeight(),
				BoxHeight:   box.Height,
			}
		}
		size = max(size-step, minSize)
	}
}

// Wrap splits text into paragraphs on line breaks and greedily packs each
// paragraph's words into lines no wider than maxWidth. Blank paragraphs
// become empty lines. A word wider than maxWidth gets a line to itself and
// is never broken.
func Wrap(text string, maxWidth float64, measurer fonts.Measurer) []string {
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		paragraph = strings.TrimSuffix(paragraph, "\r")
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			// Keep intentional vertical spacing
			lines = append(lines, "")
			continue
		}

		var current []string
		for _, word := range words {
			candidate := strings.Join(append(current, word), " ")
			if measurer.Measure(candidate) <= maxWidth {
				current = append(current, word)
				continue
			}
			if len(current) > 0 {
				lines = append(lines, strings.Join(current, " "))
			}
			current = []string{word}
		}
		lines = append(lines, strings.Join(current, " "))
	}
	return lines
}
