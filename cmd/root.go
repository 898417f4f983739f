package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/ankurkotwal/quotecard/qc/common"
	"github.com/k1LoW/errors"
	"github.com/spf13/cobra"
)

var (
	configFile string
	verbose    bool
	flagValues renderFlags
)

var rootCmd = &cobra.Command{
	Use:          "quotecard",
	Short:        "quotecard renders quotes onto images",
	Long:         `quotecard renders quotes onto fixed size images, shrinking the font until the quote fits.`,
	SilenceUsage: true,
}

// Execute runs the command line
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if verbose {
			if b, err := json.MarshalIndent(errors.StackTraces(err), "", "  "); err == nil {
				_, _ = fmt.Fprintf(os.Stderr, "%s\n", b)
			}
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "YAML configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// newLogger returns a logger writing text records to stderr
func newLogger() *common.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return common.NewLogWith(slog.New(slog.NewTextHandler(os.Stderr,
		&slog.HandlerOptions{Level: level})))
}

// loadConfig loads the configuration file, if any, and applies flags on top
func loadConfig(cmd *cobra.Command) (_ *common.Config, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	config, err := common.LoadConfig(configFile)
	if err != nil {
		return nil, err
	}
	flagValues.apply(cmd, config)
	if verbose {
		config.VerboseOutput = true
		newLogger().Dbg("%s", common.YamlObjectAsString(config, "Config"))
	}
	return config, nil
}

// renderFlags override configuration values when set
type renderFlags struct {
	author         string
	width          int
	height         int
	font           string
	fontSize       int
	authorFontSize int
	minFontSize    int
	padding        int
	lineSpacing    int
	background     string
	text           string
	border         bool
	format         string
}

func addRenderFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&flagValues.author, "author", "a", "", "author attribution text")
	f.IntVar(&flagValues.width, "width", 0, "image width in pixels")
	f.IntVar(&flagValues.height, "height", 0, "image height in pixels")
	f.StringVarP(&flagValues.font, "font", "f", "", "font file")
	f.IntVar(&flagValues.fontSize, "font-size", 0, "starting quote font size")
	f.IntVar(&flagValues.authorFontSize, "author-font-size", 0, "author font size")
	f.IntVar(&flagValues.minFontSize, "min-font-size", 0, "smallest quote font size")
	f.IntVar(&flagValues.padding, "padding", 0, "padding from the image edges")
	f.IntVar(&flagValues.lineSpacing, "line-spacing", 0, "spacing between lines")
	f.StringVar(&flagValues.background, "background", "", "background colour (name or hex)")
	f.StringVar(&flagValues.text, "text-colour", "", "text colour (name or hex)")
	f.BoolVar(&flagValues.border, "border", false, "outline the text box")
	f.StringVar(&flagValues.format, "format", "", "output format: png or jpg")
}

func (r *renderFlags) apply(cmd *cobra.Command, config *common.Config) {
	changed := cmd.Flags().Changed
	if changed("author") {
		config.AuthorText = r.author
	}
	if changed("width") {
		config.Image.W = r.width
	}
	if changed("height") {
		config.Image.H = r.height
	}
	if changed("font") {
		config.FontPath = r.font
	}
	if changed("font-size") {
		config.FontSize = r.fontSize
	}
	if changed("author-font-size") {
		config.AuthorFontSize = r.authorFontSize
	}
	if changed("min-font-size") {
		config.MinFontSize = r.minFontSize
	}
	if changed("padding") {
		config.Padding = r.padding
	}
	if changed("line-spacing") {
		config.LineSpacing = r.lineSpacing
	}
	if changed("background") {
		config.BackgroundColour = r.background
	}
	if changed("text-colour") {
		config.TextColour = r.text
	}
	if changed("border") {
		config.Border = r.border
	}
	if changed("format") {
		config.Format = r.format
	}
}
