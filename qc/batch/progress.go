package batch

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	barColour  = color.New(color.FgGreen).SprintFunc()
	doneColour = color.New(color.FgGreen, color.Bold).SprintFunc()
	failColour = color.New(color.FgRed, color.Bold).SprintFunc()
)

// Progress draws a single line progress bar, redrawn in place
type Progress struct {
	w      io.Writer
	Prefix string
	Length int
	Fill   string
}

// NewProgress creates a progress bar writing to w. A nil w disables it.
func NewProgress(w io.Writer) *Progress {
	return &Progress{w: w, Prefix: "Progress:", Length: 40, Fill: "█"}
}

// Update redraws the bar with done of total items complete. A newline ends
// the bar once done reaches total.
func (p *Progress) Update(done, total int, suffix string) {
	if p == nil || p.w == nil || total <= 0 {
		return
	}
	fmt.Fprintf(p.w, "\r%s |%s| %s%% %s", p.Prefix, p.bar(done, total),
		Percent(done, total), suffix)
	if done >= total {
		fmt.Fprintln(p.w)
	}
}

func (p *Progress) bar(done, total int) string {
	filled := p.Length * done / total
	if filled > p.Length {
		filled = p.Length
	}
	return barColour(strings.Repeat(p.Fill, filled)) +
		strings.Repeat("-", p.Length-filled)
}

// Percent formats done/total as a percentage with one decimal place
func Percent(done, total int) string {
	if total <= 0 {
		return "0.0"
	}
	return fmt.Sprintf("%.1f", 100*float64(done)/float64(total))
}
