// Package batch renders every quote of a delimited source file into its own
// image.
package batch

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Delimiter separates quotes in a source file
const Delimiter = "---"

// SourceError reports a quotes file that can't be read
type SourceError struct {
	Path string
	Err  error
}

func (e *SourceError) Error() string {
	if os.IsNotExist(e.Err) {
		return fmt.Sprintf("quotes file '%s' not found", e.Path)
	}
	return fmt.Sprintf("reading quotes file '%s': %v", e.Path, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// ReadQuotes reads a UTF-8 source file, with or without a byte order mark,
// and returns its quotes in file order.
func ReadQuotes(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &SourceError{path, err}
	}
	decoded, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), data)
	if err != nil {
		return nil, &SourceError{path, err}
	}
	return SplitQuotes(string(decoded)), nil
}

// SplitQuotes splits content on Delimiter, trims each quote and drops the
// empty ones.
func SplitQuotes(content string) []string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	var quotes []string
	for _, quote := range strings.Split(content, Delimiter) {
		quote = strings.TrimSpace(quote)
		if len(quote) > 0 {
			quotes = append(quotes, quote)
		}
	}
	return quotes
}

// Filename returns the image name for the quote at index (0 based)
func Filename(index int, ext string) string {
	return fmt.Sprintf("quote_%d.%s", index+1, ext)
}
