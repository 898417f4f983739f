package common

import "fmt"

// Config contains all the configuration data for the app
type Config struct {
	AppName       string `yaml:"AppName"`
	Version       string `yaml:"Version"`
	DebugOutput   bool   `yaml:"DebugOutput"`
	VerboseOutput bool   `yaml:"VerboseOutput"`

	OutputFolder string       `yaml:"OutputFolder"`
	AuthorText   string       `yaml:"AuthorText"`
	Image        Dimensions2d `yaml:"Image"`
	Format       string       `yaml:"Format"` // png or jpg
	JpgQuality   int          `yaml:"JpgQuality"`

	FontPath       string   `yaml:"FontPath"`
	FallbackFonts  []string `yaml:"FallbackFonts"`
	FontSize       int      `yaml:"FontSize"`
	AuthorFontSize int      `yaml:"AuthorFontSize"`
	MinFontSize    int      `yaml:"MinFontSize"`
	FontSizeStep   int      `yaml:"FontSizeStep"`
	Padding        int      `yaml:"Padding"`
	LineSpacing    int      `yaml:"LineSpacing"`

	BackgroundColour string `yaml:"BackgroundColour"`
	TextColour       string `yaml:"TextColour"`
	BorderColour     string `yaml:"BorderColour"`
	Border           bool   `yaml:"Border"` // Debug outline around the text box
}

// Dimensions2d contains width and height
type Dimensions2d struct {
	W int `yaml:"w"` // Width
	H int `yaml:"h"` // Height
}

func (d Dimensions2d) String() string {
	return fmt.Sprintf("%dx%d", d.W, d.H)
}

// Output formats
const (
	FormatPNG = "png"
	FormatJPG = "jpg"
)

// DefaultFallbackFonts are tried in order when the configured font can't be loaded
var DefaultFallbackFonts = []string{
	"JosefinSans-Regular.ttf",
	"arial.ttf",
	"Arial.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
}

// DefaultConfig returns the configuration used when no file or flag says otherwise
func DefaultConfig() *Config {
	return &Config{
		AppName:          "QuoteCard",
		Version:          "0.1.0",
		OutputFolder:     "quote_images",
		AuthorText:       "12 am Stories",
		Image:            Dimensions2d{W: 1080, H: 1080},
		Format:           FormatPNG,
		JpgQuality:       90,
		FontPath:         "fonts/JosefinSans-Light.ttf",
		FallbackFonts:    append([]string(nil), DefaultFallbackFonts...),
		FontSize:         80,
		AuthorFontSize:   40,
		MinFontSize:      20,
		FontSizeStep:     5,
		Padding:          120,
		LineSpacing:      18,
		BackgroundColour: "black",
		TextColour:       "white",
		BorderColour:     "yellow",
	}
}

// LoadConfig reads filename on top of the defaults. An empty filename
// returns the defaults.
func LoadConfig(filename string) (*Config, error) {
	config := DefaultConfig()
	if len(filename) == 0 {
		return config, nil
	}
	if err := LoadYaml(filename, config); err != nil {
		return nil, err
	}
	return config, nil
}

// Extension returns the file extension for the configured output format
func (c *Config) Extension() string {
	if c.Format == FormatJPG || c.Format == "jpeg" {
		return FormatJPG
	}
	return FormatPNG
}
