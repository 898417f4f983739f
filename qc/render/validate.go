package render

import "github.com/ankurkotwal/quotecard/qc/common"

// AuthorGap is the space in pixels kept between the text box and the author line
const AuthorGap = 40

// TextBox is the area the quote is wrapped into
type TextBox struct {
	Width  int
	Height int
}

// TextBoxFor returns the text box left inside an image once padding and the
// author band are taken away.
func TextBoxFor(width, height, padding, authorFontSize int) TextBox {
	return TextBox{
		Width:  width - 2*padding,
		Height: height - 2*padding - authorFontSize - AuthorGap,
	}
}

// Validate checks that the parameters leave room to draw. It returns nil
// when they are usable.
func Validate(width, height, fontSize, authorFontSize, padding int) error {
	if width <= 0 || height <= 0 {
		return &ValidationError{"image dimensions must be positive"}
	}
	if fontSize <= 0 || authorFontSize <= 0 {
		return &ValidationError{"font sizes must be positive"}
	}
	if padding < 0 || 2*padding >= min(width, height) {
		return &ValidationError{"invalid padding value"}
	}
	box := TextBoxFor(width, height, padding, authorFontSize)
	if box.Width <= 0 || box.Height <= 0 {
		return &ValidationError{"padding is too large for the image size"}
	}
	return nil
}

// Valid is Validate as a predicate. Failures are logged to log when it isn't nil.
func Valid(width, height, fontSize, authorFontSize, padding int, log *common.Logger) bool {
	err := Validate(width, height, fontSize, authorFontSize, padding)
	if err != nil && log != nil {
		log.Err("%v", err)
	}
	return err == nil
}
