package cli

import (
	"github.com/mgpai22/dhwani/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "dhwani",
	Short: "Subtitle-synchronized audio playback for language learners",
	Long: `Dhwani follows a subtitle or lyric track against audio playback:
it highlights the active line, repeats sentences, loops A-B ranges and
steps line by line.

It reads SRT, VTT and LRC tracks and can correct their timing against
the audio.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file path")
}
