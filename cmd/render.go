package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/ankurkotwal/quotecard/qc/fonts"
	"github.com/ankurkotwal/quotecard/qc/render"
	"github.com/k1LoW/errors"
	"github.com/spf13/cobra"
)

var output string

var renderCmd = &cobra.Command{
	Use:   "render [QUOTE]",
	Short: "render a single quote to an image",
	Long:  `render a single quote to an image. Use "-" to read the quote from stdin.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			err = errors.WithStack(err)
		}()
		config, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		quote := args[0]
		if quote == "-" {
			b, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return err
			}
			quote = strings.TrimSpace(string(b))
		}
		params, err := render.ParamsFromConfig(config)
		if err != nil {
			return err
		}
		path := output
		if len(path) == 0 {
			path = "quote." + config.Extension()
		}

		log := newLogger()
		resolver := fonts.NewResolver(log, config.FallbackFonts...)
		result, err := render.RenderQuote(quote, path, params, resolver, log)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s (font size %d, %d lines)\n", result.Path,
			result.Wrap.FontSize, len(result.Wrap.Lines))
		if result.Warning != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", result.Warning)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
	addRenderFlags(renderCmd)
	renderCmd.Flags().StringVarP(&output, "output", "o", "", "output image path (default quote.<format>)")
}
