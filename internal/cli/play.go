package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"golang.org/x/term"

	"github.com/AdmajaBahari/lirik/internal/clock"
	"github.com/AdmajaBahari/lirik/internal/display"
	"github.com/AdmajaBahari/lirik/internal/logging"
	"github.com/AdmajaBahari/lirik/internal/player"
	"github.com/AdmajaBahari/lirik/internal/waveform"
	"github.com/spf13/cobra"
)

const songTitle = "Let Down x Creep - Radiohead"

func runPlay(cmd *cobra.Command, args []string) error {
	main, support := loadTracks(".", logger)

	samples := waveform.NewSeeded(uint64(time.Now().UnixNano()))
	session := player.NewSession(main, support, samples)

	logger.Infow("Starting visualizer",
		"title", songTitle,
		"duration", session.Duration().String(),
	)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	out := cmd.OutOrStdout()
	if err := play(ctx, out, session, clock.System{}, logger); err != nil {
		return err
	}

	printClosing(out)
	return nil
}

func printClosing(w io.Writer) {
	fmt.Fprintln(w, "🎵 Finished!")
	fmt.Fprintln(w, "@adbaharc")
}

// play runs the session on the best surface for out. Quitting the viewer
// or interrupting the process ends playback without error.
func play(
	ctx context.Context,
	out io.Writer,
	session *player.Session,
	clk clock.Clock,
	log *logging.Logger,
) error {
	surface, closeSurface, runLog := openSurface(out, log)
	return runSurface(ctx, session, clk, surface, closeSurface, runLog)
}

// runSurface plays on surface and always closes it. A failure reported by
// closeSurface wins over the loop's own stop reason.
func runSurface(
	ctx context.Context,
	session *player.Session,
	clk clock.Clock,
	surface player.Surface,
	closeSurface func() error,
	log *logging.Logger,
) error {
	err := player.Run(ctx, session, clk, surface, log)
	if cerr := closeSurface(); cerr != nil {
		return fmt.Errorf("playback failed: %w", cerr)
	}

	switch {
	case err == nil,
		errors.Is(err, display.ErrClosed),
		errors.Is(err, context.Canceled):
		return nil
	default:
		return fmt.Errorf("playback failed: %w", err)
	}
}

// openSurface picks the full-screen panel when out is a terminal and plain
// caption lines otherwise. While the panel owns the screen, debug logging
// is suppressed so stderr does not tear the frame.
func openSurface(
	out io.Writer,
	log *logging.Logger,
) (player.Surface, func() error, *logging.Logger) {
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		t := display.NewTerminal(songTitle)
		t.Start()
		return t, t.Close, log.Quiet()
	}
	return display.NewPlain(out), func() error { return nil }, log
}
