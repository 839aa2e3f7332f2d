package cli

import (
	"fmt"

	"github.com/mgpai22/dhwani/internal/media"
	"github.com/mgpai22/dhwani/internal/subtitle"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [subtitle_file]",
	Short: "Show timing statistics for a subtitle track",
	Long: `Show line count, time span and timing quality (gaps, overlapping
lines) of a subtitle track, and how it compares to the audio when a
media file is given.

Examples:
  dhwani info book.srt
  dhwani info episode.vtt --media episode.mp3`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().
		StringP("media", "m", "", "Audio/video file backing the track")
}

func runInfo(cmd *cobra.Command, args []string) error {
	subtitlePath := args[0]
	mediaPath, _ := cmd.Flags().GetString("media")

	sub, err := subtitle.Open(subtitlePath)
	if err != nil {
		return err
	}
	stats := sub.Stats()

	fmt.Printf("format:   %s\n", sub.Format)
	fmt.Printf("lines:    %d\n", stats.Lines)
	fmt.Printf("span:     %s -> %s\n", stats.Start, stats.End)
	fmt.Printf("gaps:     %d\n", stats.Gaps)
	fmt.Printf("overlaps: %d\n", stats.Overlaps)

	if mediaPath != "" {
		duration, err := media.Duration(mediaPath)
		if err != nil {
			return err
		}
		fmt.Printf("media:    %s (%s)\n", mediaPath, duration)
		if stats.End > duration {
			logger.Warnf("track runs %s past the end of the audio",
				stats.End-duration)
		}
	}
	return nil
}
