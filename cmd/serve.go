package cmd

import (
	"github.com/ankurkotwal/quotecard/qc"
	"github.com/k1LoW/errors"
	"github.com/spf13/cobra"
)

var debugMode bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve quote rendering over HTTP",
	Long:  `serve quote rendering over HTTP. POST /api/quote with a "quote" field returns the image.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			err = errors.WithStack(err)
		}()
		config, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		config.DebugOutput = debugMode
		router, port, err := qc.GetServer(debugMode, config)
		if err != nil {
			return err
		}
		return router.Run(port)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	addRenderFlags(serveCmd)
	serveCmd.Flags().BoolVarP(&debugMode, "debug", "d", false, "enable debug mode & register pprof handlers")
}
