package cli

import (
	"github.com/AdmajaBahari/lirik/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "lirik",
	Short: "Terminal karaoke lyric visualizer",
	Long: `Lirik plays a karaoke-style lyric display in the terminal.

It reads main.lrc and support.lrc from the working directory, falling back
to built-in lyrics when a file is missing or cannot be parsed, and animates
both lines over a pseudo waveform until the last caption has played out.

Examples:
  lirik
  lirik -v 2> lirik.log
  lirik tracks`,
	Args: cobra.NoArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
	RunE: runPlay,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}
