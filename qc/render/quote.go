package render

import (
	"errors"
	"fmt"
	"image"

	"github.com/ankurkotwal/quotecard/qc/common"
	"github.com/ankurkotwal/quotecard/qc/fonts"
)

// Result describes a rendered quote
type Result struct {
	Path    string
	Wrap    WrapResult
	Warning error // *UnresolvedFitError when the text overflows
}

// RenderImage validates params, fits quote and composes the image in memory
func RenderImage(quote string, params Params, resolver *fonts.Resolver,
	log *common.Logger) (img image.Image, result Result, err error) {

	if err = Validate(params.Width, params.Height, params.FontSize,
		params.AuthorFontSize, params.Padding); err != nil {
		log.Err("%v", err)
		return nil, result, err
	}

	result.Wrap, err = Fit(quote, params.TextBox(), resolver, FitOptions{
		FontPath:    params.FontPath,
		StartSize:   params.FontSize,
		LineSpacing: params.LineSpacing,
		MinSize:     params.MinFontSize,
		Step:        params.FontSizeStep,
	})
	var unresolved *UnresolvedFitError
	if errors.As(err, &unresolved) {
		log.Msg("Warning: %v", err)
		result.Warning = err
	} else if err != nil {
		log.Err("%v", err)
		return nil, result, err
	}

	defer func() {
		if r := recover(); r != nil {
			img = nil
			err = &EncodeError{Err: fmt.Errorf("draw: %v", r)}
			log.Err("Error creating quote image: %v", err)
		}
	}()
	img = Compose(result.Wrap, params.RenderSpec, params.AuthorText, resolver)
	return img, result, nil
}

// RenderQuote renders quote and writes it to path. Nothing is written when
// params are invalid.
func RenderQuote(quote string, path string, params Params,
	resolver *fonts.Resolver, log *common.Logger) (Result, error) {

	img, result, err := RenderImage(quote, params, resolver, log)
	if err != nil {
		return result, err
	}
	if err = Encode(img, path, params.Format, params.JpgQuality); err != nil {
		log.Err("Error creating quote image: %v", err)
		return result, err
	}
	result.Path = path
	return result, nil
}
