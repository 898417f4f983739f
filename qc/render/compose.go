package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/ankurkotwal/quotecard/qc/common"
	"github.com/ankurkotwal/quotecard/qc/fonts"
	"github.com/fogleman/gg"
)

// BorderWidth is the line width of the debug outline
const BorderWidth = 3

// RenderSpec describes the canvas a quote is drawn onto
type RenderSpec struct {
	Width          int
	Height         int
	Background     color.Color
	Text           color.Color
	BorderColour   color.Color
	Padding        int
	LineSpacing    int
	Border         bool // Outline the text box
	FontPath       string
	AuthorFontSize int
}

// TextBox returns the box quote text is fitted into
func (s RenderSpec) TextBox() TextBox {
	return TextBoxFor(s.Width, s.Height, s.Padding, s.AuthorFontSize)
}

// Params are all the settings shared by every quote of a run
type Params struct {
	RenderSpec
	AuthorText   string
	FontSize     int
	MinFontSize  int
	FontSizeStep int
	Format       string
	JpgQuality   int
}

// ParamsFromConfig converts configuration into render parameters
func ParamsFromConfig(config *common.Config) (Params, error) {
	switch config.Format {
	case common.FormatPNG, common.FormatJPG, "jpeg", "":
	default:
		return Params{}, fmt.Errorf("unsupported format %q", config.Format)
	}
	background, err := common.ParseColour(config.BackgroundColour)
	if err != nil {
		return Params{}, fmt.Errorf("background: %w", err)
	}
	text, err := common.ParseColour(config.TextColour)
	if err != nil {
		return Params{}, fmt.Errorf("text: %w", err)
	}
	border := color.Color(color.NRGBA{R: 255, G: 255, A: 255})
	if len(config.BorderColour) > 0 {
		if border, err = common.ParseColour(config.BorderColour); err != nil {
			return Params{}, fmt.Errorf("border: %w", err)
		}
	}
	return Params{
		RenderSpec: RenderSpec{
			Width:          config.Image.W,
			Height:         config.Image.H,
			Background:     background,
			Text:           text,
			BorderColour:   border,
			Padding:        config.Padding,
			LineSpacing:    config.LineSpacing,
			Border:         config.Border,
			FontPath:       config.FontPath,
			AuthorFontSize: config.AuthorFontSize,
		},
		AuthorText:   config.AuthorText,
		FontSize:     config.FontSize,
		MinFontSize:  config.MinFontSize,
		FontSizeStep: config.FontSizeStep,
		Format:       config.Extension(),
		JpgQuality:   config.JpgQuality,
	}, nil
}

// Compose draws wrapped lines and the author onto a new canvas. The line
// block is vertically centred in the text box, each line left aligned at
// the padding. The author sits on the bottom padding.
func Compose(wrap WrapResult, spec RenderSpec, author string,
	resolver *fonts.Resolver) image.Image {

	dc := gg.NewContext(spec.Width, spec.Height)
	dc.SetColor(spec.Background)
	dc.Clear()

	padding := float64(spec.Padding)
	box := spec.TextBox()
	if spec.Border {
		dc.SetColor(spec.BorderColour)
		dc.SetLineWidth(BorderWidth)
		dc.DrawRectangle(padding, padding, float64(box.Width), float64(box.Height))
		dc.Stroke()
	}

	dc.SetColor(spec.Text)
	quoteFont := resolver.Resolve(spec.FontPath, wrap.FontSize)
	dc.SetFontFace(quoteFont.Face)
	y := TextTop(wrap, spec)
	for _, line := range wrap.Lines {
		if len(line) > 0 {
			dc.DrawString(line, padding, float64(y)+quoteFont.Ascent())
		}
		y += wrap.LineHeight()
	}

	authorFont := resolver.Resolve(spec.FontPath, spec.AuthorFontSize)
	dc.SetFontFace(authorFont.Face)
	authorY := spec.Height - spec.Padding - spec.AuthorFontSize
	dc.DrawString(author, padding, float64(authorY)+authorFont.Ascent())

	return dc.Image()
}

// TextTop returns the y coordinate of the top of the first line
func TextTop(wrap WrapResult, spec RenderSpec) int {
	return spec.Padding + floorDiv(spec.TextBox().Height-wrap.BlockHeight(), 2)
}

// floorDiv divides rounding towards negative infinity so an overflowing
// block starts above the box rather than being nudged down.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
