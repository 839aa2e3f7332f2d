package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mgpai22/dhwani/internal/playback"
	"github.com/mgpai22/dhwani/internal/subtitle"
	"github.com/spf13/cobra"
)

var shiftCmd = &cobra.Command{
	Use:   "shift [subtitle_file]",
	Short: "Shift every line of a subtitle track by a fixed offset",
	Long: `Shift all start and end times of a subtitle track by the given
offset in seconds (negative to pull lines earlier), for correcting a
track that is out of sync with its audio.

Lines pushed entirely before the start of the audio are dropped; a line
that merely starts early is clamped to zero.

Examples:
  dhwani shift book.srt --offset 2.5
  dhwani shift song.lrc --offset -0.75 -o song_fixed.lrc`,
	Args: cobra.ExactArgs(1),
	RunE: runShift,
}

func init() {
	rootCmd.AddCommand(shiftCmd)

	shiftCmd.Flags().
		Float64P("offset", "t", 0, "Offset in seconds, fractional allowed")
	_ = shiftCmd.MarkFlagRequired("offset")
}

func runShift(cmd *cobra.Command, args []string) error {
	subtitlePath := args[0]
	offset, _ := cmd.Flags().GetFloat64("offset")
	outputPath, _ := cmd.Flags().GetString("output")

	sub, err := subtitle.Open(subtitlePath)
	if err != nil {
		return err
	}

	shifted := playback.Shift(sub.Track(), offset)
	out := subtitle.FromTrack(shifted, subtitle.Format(sub.Format))
	out.Language = sub.Language

	// The transform itself never clamps; negative times are resolved
	// here, at the output boundary.
	kept := out.Entries[:0]
	dropped := 0
	for _, entry := range out.Entries {
		if entry.EndTime <= 0 {
			dropped++
			continue
		}
		if entry.StartTime < 0 {
			entry.StartTime = 0
		}
		kept = append(kept, entry)
	}
	out.Entries = kept
	if dropped > 0 {
		logger.Warnf("dropped %d line(s) shifted before the start of the audio", dropped)
	}

	if outputPath == "" {
		base := strings.TrimSuffix(subtitlePath, filepath.Ext(subtitlePath))
		outputPath = base + ".shifted" +
			subtitle.GetExtensionForFormat(subtitle.Format(sub.Format))
	}
	if err := subtitle.Save(out, outputPath); err != nil {
		return err
	}

	fmt.Printf("shifted %d line(s) by %+.3fs -> %s\n",
		len(out.Entries), offset, outputPath)
	return nil
}
