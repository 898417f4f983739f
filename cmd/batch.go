package cmd

import (
	"os"
	"os/signal"
	"time"

	"github.com/ankurkotwal/quotecard/qc/batch"
	"github.com/ankurkotwal/quotecard/qc/render"
	"github.com/briandowns/spinner"
	"github.com/k1LoW/errors"
	"github.com/spf13/cobra"
)

var (
	outputFolder string
	watch        bool
)

var batchCmd = &cobra.Command{
	Use:   "batch [QUOTES_FILE]",
	Short: "render every quote of a file",
	Long:  `render every quote of a file. Quotes are separated by a line containing "---"
and written to quote_1.png, quote_2.png, ... in the output folder.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			err = errors.WithStack(err)
		}()
		config, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("output") {
			config.OutputFolder = outputFolder
		}
		params, err := render.ParamsFromConfig(config)
		if err != nil {
			return err
		}

		source := args[0]
		log := newLogger()
		d := batch.NewDriver(params, config.FallbackFonts, log, cmd.OutOrStdout())
		if !watch {
			summary, err := d.Render(source, config.OutputFolder)
			if err != nil {
				return err
			}
			batch.WriteSummary(cmd.OutOrStdout(), summary, config.OutputFolder)
			return nil
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		s := spinner.New(spinner.CharSets[14], 100*time.Millisecond,
			spinner.WithWriter(cmd.ErrOrStderr()))
		s.Suffix = " waiting for changes to " + source
		defer s.Stop()
		return d.Watch(ctx, source, config.OutputFolder, batch.Hooks{
			BeforeRun: s.Stop,
			AfterRun: func(summary batch.Summary, _ error) {
				batch.WriteSummary(cmd.OutOrStdout(), summary, config.OutputFolder)
				s.Start()
			},
		})
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)
	addRenderFlags(batchCmd)
	batchCmd.Flags().StringVarP(&outputFolder, "output", "o", "", "output folder (default quote_images)")
	batchCmd.Flags().BoolVarP(&watch, "watch", "w", false, "render again whenever the quotes file changes")
}
