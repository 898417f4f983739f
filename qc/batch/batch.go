package batch

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ankurkotwal/quotecard/qc/common"
	"github.com/ankurkotwal/quotecard/qc/fonts"
	"github.com/ankurkotwal/quotecard/qc/render"
)

// Summary reports the outcome of a batch run
type Summary struct {
	Total      int
	Succeeded  int
	Files      []string // Written images, in quote order
	Failed     []int    // 1 based quote numbers
	Overflowed []int    // 1 based quote numbers rendered with text overflowing
}

// Driver renders a source file one quote at a time. Quotes are independent:
// a failed quote is recorded and the next one is attempted.
type Driver struct {
	Params   render.Params
	Resolver *fonts.Resolver
	Log      *common.Logger
	Progress *Progress
}

// NewDriver creates a driver with its own font cache. Progress is drawn to
// progress unless it is nil.
func NewDriver(params render.Params, fallbacks []string, log *common.Logger,
	progress io.Writer) *Driver {
	if log == nil {
		log = common.NewLog()
	}
	return &Driver{
		Params:   params,
		Resolver: fonts.NewResolver(log, fallbacks...),
		Log:      log,
		Progress: NewProgress(progress),
	}
}

// Render creates outDir and renders every quote of source into it. An error
// is returned only when nothing could be attempted.
func (d *Driver) Render(source string, outDir string) (Summary, error) {
	var summary Summary
	if err := os.MkdirAll(outDir, 0755); err != nil {
		d.Log.Err("Error creating output folder: %v", err)
		return summary, err
	}

	quotes, err := ReadQuotes(source)
	if err != nil {
		d.Log.Err("%v", err)
		return summary, err
	}
	summary.Total = len(quotes)
	if len(quotes) == 0 {
		d.Log.Msg("No quotes found in %s", source)
		return summary, nil
	}
	d.Log.Msg("Found %d quotes in the file.", len(quotes))

	ext := d.Params.Format
	if len(ext) == 0 {
		ext = common.FormatPNG
	}
	for i, quote := range quotes {
		d.Progress.Update(i, len(quotes), fmt.Sprintf("Quote %d/%d", i+1, len(quotes)))

		path := filepath.Join(outDir, Filename(i, ext))
		result, err := render.RenderQuote(quote, path, d.Params, d.Resolver, d.Log)
		if err != nil {
			summary.Failed = append(summary.Failed, i+1)
			continue
		}
		if result.Warning != nil {
			summary.Overflowed = append(summary.Overflowed, i+1)
		}
		summary.Succeeded++
		summary.Files = append(summary.Files, path)
	}
	d.Progress.Update(len(quotes), len(quotes), "Complete")

	d.Log.Msg("Successfully created %d/%d quote images in '%s' folder.",
		summary.Succeeded, summary.Total, outDir)
	return summary, nil
}

// Render renders every quote of source into outDir and returns the number
// of images created. Progress is drawn to stdout. It logs rather than
// returns failures.
func Render(source string, outDir string, params render.Params,
	log *common.Logger) int {
	d := NewDriver(params, common.DefaultFallbackFonts, log, os.Stdout)
	summary, _ := d.Render(source, outDir)
	return summary.Succeeded
}

// WriteSummary prints a coloured one line result for summary
func WriteSummary(w io.Writer, summary Summary, outDir string) {
	status := doneColour("done")
	if len(summary.Failed) > 0 {
		status = failColour("failed")
	}
	fmt.Fprintf(w, "%s %d/%d quote images in '%s'", status, summary.Succeeded,
		summary.Total, outDir)
	if len(summary.Failed) > 0 {
		fmt.Fprintf(w, ", failed: %v", summary.Failed)
	}
	if len(summary.Overflowed) > 0 {
		fmt.Fprintf(w, ", overflowing: %v", summary.Overflowed)
	}
	fmt.Fprintln(w)
}
