package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/mgpai22/dhwani/internal/clock"
	"github.com/mgpai22/dhwani/internal/media"
	"github.com/mgpai22/dhwani/internal/playback"
	"github.com/mgpai22/dhwani/internal/subtitle"
	"github.com/spf13/cobra"
)

// margin added after the last line when no media file gives a duration
const playTailMargin = 2.0

var playCmd = &cobra.Command{
	Use:   "play [subtitle_file]",
	Short: "Follow a subtitle track in real time",
	Long: `Play a subtitle or lyric track against a simulated playback clock,
printing each line as it becomes active.

With --media the clock runs over the real file duration (probed with
ffprobe). With --secondary a translation track can be toggled during
playback without losing position or loop points.

Playback is controlled from stdin, one command per line:
  n  next line          p  previous line      r  replay current line
  s  toggle sentence repeat    l  mark loop point / clear loop
  t  toggle primary/secondary track    enter  pause/resume    q  quit

Examples:
  dhwani play book.srt
  dhwani play episode.vtt --media episode.mp3 --secondary episode.es.vtt
  dhwani play song.lrc --from 42.5 --rate 1.5`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)

	playCmd.Flags().
		StringP("media", "m", "", "Audio/video file backing the track (for its duration)")
	playCmd.Flags().
		StringP("secondary", "s", "", "Translation subtitle file")
	playCmd.Flags().
		Float64("from", 0, "Start position in seconds")
	playCmd.Flags().
		Float64("rate", 1.0, "Playback speed multiplier")
	playCmd.Flags().
		Duration("tick", 250*time.Millisecond, "Time-update interval")
}

func runPlay(cmd *cobra.Command, args []string) error {
	subtitlePath := args[0]
	mediaPath, _ := cmd.Flags().GetString("media")
	secondaryPath, _ := cmd.Flags().GetString("secondary")
	from, _ := cmd.Flags().GetFloat64("from")
	rate, _ := cmd.Flags().GetFloat64("rate")
	tick, _ := cmd.Flags().GetDuration("tick")

	sub, err := subtitle.Open(subtitlePath)
	if err != nil {
		return err
	}
	primary := sub.Track()
	if primary.Len() == 0 {
		return fmt.Errorf("no lines in %s", subtitlePath)
	}

	var secondary *playback.Track
	if secondaryPath != "" {
		secondarySub, err := subtitle.Open(secondaryPath)
		if err != nil {
			return err
		}
		secondary = secondarySub.Track()
	}

	duration := primary.Line(primary.Len()-1).End + playTailMargin
	if mediaPath != "" {
		if !media.IsMediaFile(mediaPath) {
			return fmt.Errorf("unsupported media file: %s", mediaPath)
		}
		probed, err := media.Duration(mediaPath)
		if err != nil {
			return err
		}
		duration = probed.Seconds()
		logger.Debugf("media duration %.1fs", duration)
	}

	clk := clock.New(duration)
	clk.SetRate(rate)
	if from > 0 {
		clk.Seek(from)
	}

	engine := playback.NewEngine(primary, secondary, clk, logger)

	// Ticks arrive on the clock goroutine and commands on the stdin
	// reader; the engine expects one caller at a time, so both go
	// through this mutex.
	var mu sync.Mutex
	lastPrinted := -1

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	go readCommands(ctx, cancel, engine, clk, &mu, &lastPrinted)

	fmt.Printf("playing %s (%d lines, %.1fs)\n",
		subtitlePath, primary.Len(), clk.Duration())
	clk.Run(ctx, tick, func(at float64) {
		mu.Lock()
		defer mu.Unlock()
		engine.HandleTimeUpdate(at)
		if idx := engine.ActiveIndex(); idx != lastPrinted {
			lastPrinted = idx
			if line, ok := engine.ActiveLine(); ok {
				fmt.Printf("[%s] %s\n", formatPosition(line.Start), line.Text)
			}
		}
	})
	fmt.Println("done")
	return nil
}

func readCommands(
	ctx context.Context,
	cancel context.CancelFunc,
	engine *playback.Engine,
	clk *clock.Clock,
	mu *sync.Mutex,
	lastPrinted *int,
) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return
		}
		command := strings.TrimSpace(scanner.Text())

		mu.Lock()
		switch command {
		case "n":
			engine.StepForward()
		case "p":
			engine.StepBackward()
		case "r":
			engine.ReplayCurrent()
		case "s":
			if engine.ToggleRepeat() {
				fmt.Println("sentence repeat on")
			} else {
				fmt.Println("sentence repeat off")
			}
		case "l":
			fmt.Printf("loop %s\n", engine.ToggleLoop())
		case "t":
			if engine.HasSecondary() {
				engine.SelectTrack(!engine.UsingSecondary())
				// Force the highlight to reprint from the new track.
				*lastPrinted = -2
			} else {
				fmt.Println("no secondary track loaded")
			}
		case "":
			if clk.TogglePause() {
				fmt.Println("paused")
			} else {
				fmt.Println("resumed")
			}
		case "q":
			mu.Unlock()
			cancel()
			return
		default:
			fmt.Println("commands: n p r s l t q")
		}
		mu.Unlock()
	}
}

func formatPosition(seconds float64) string {
	d := time.Duration(seconds * float64(time.Second))
	return fmt.Sprintf("%02d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
