package render

import "fmt"

// ValidationError reports a parameter combination that can't be rendered
type ValidationError struct {
	Rule string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid parameters: %s", e.Rule)
}

// UnresolvedFitError reports text that overflows its box even at the
// smallest font size. It is a warning: the image is still produced.
type UnresolvedFitError struct {
	FontSize    int
	BlockHeight int
	BoxHeight   int
}

func (e *UnresolvedFitError) Error() string {
	return fmt.Sprintf("text does not fit at minimum font size %d (%dpx > %dpx)",
		e.FontSize, e.BlockHeight, e.BoxHeight)
}

// EncodeError reports a failure while drawing or writing an image
type EncodeError struct {
	Path string
	Err  error
}

func (e *EncodeError) Error() string {
	if len(e.Path) == 0 {
		return fmt.Sprintf("encode image: %v", e.Err)
	}
	return fmt.Sprintf("encode image %s: %v", e.Path, e.Err)
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}
