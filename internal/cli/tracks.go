package cli

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/AdmajaBahari/lirik/internal/logging"
	"github.com/AdmajaBahari/lirik/internal/lyrics"
	"github.com/AdmajaBahari/lirik/internal/player"
	"github.com/spf13/cobra"
)

const (
	mainFile    = "main.lrc"
	supportFile = "support.lrc"
)

var tracksCmd = &cobra.Command{
	Use:   "tracks",
	Short: "List the lyrics that would be played",
	Long: `Load main.lrc and support.lrc the same way playback does, apply the
built-in fallbacks, and print every caption with its start time followed by
the session duration.`,
	Args: cobra.NoArgs,
	RunE: runTracks,
}

func init() {
	rootCmd.AddCommand(tracksCmd)
}

func runTracks(cmd *cobra.Command, args []string) error {
	main, support := loadTracks(".", logger)
	return printTracks(cmd.OutOrStdout(), main, support)
}

// loadTracks reads both lyric files from dir and applies the fallbacks.
// Load failures are logged, never returned.
func loadTracks(dir string, log *logging.Logger) (main, support lyrics.Track) {
	main = loadTrack(filepath.Join(dir, mainFile), log)
	support = loadTrack(filepath.Join(dir, supportFile), log)

	support, used := lyrics.SupportOrFallback(support)
	if used {
		log.Warnw("Support lyrics empty, using built-in lyrics")
	}

	loaded := len(main)
	main, used = lyrics.MainOrFallback(main)
	if used {
		log.Warnw("Main lyrics incomplete, using built-in lyrics",
			"captions", loaded,
			"required", lyrics.MinMainCaptions,
		)
	}

	return main, support
}

func loadTrack(path string, log *logging.Logger) lyrics.Track {
	track, err := lyrics.Load(path)
	if err != nil {
		var notFound *lyrics.NotFoundError
		if errors.As(err, &notFound) {
			log.Warnw("Lyrics file not found", "path", path)
		} else {
			log.Warnw("Failed to load lyrics", "path", path, "error", err)
		}
		return track
	}

	log.Infow("Loaded lyrics",
		"path", path,
		"captions", len(track),
	)
	for _, c := range track {
		log.Debugw("Caption",
			"at", fmt.Sprintf("%.1fs", c.At.Seconds()),
			"text", c.Text,
		)
	}
	return track
}

func printTracks(w io.Writer, main, support lyrics.Track) error {
	sections := []struct {
		name  string
		track lyrics.Track
	}{
		{"Main lyrics", main},
		{"Support lyrics", support},
	}

	for _, s := range sections {
		if _, err := fmt.Fprintf(w, "%s:\n", s.name); err != nil {
			return err
		}
		for i, c := range s.track {
			if _, err := fmt.Fprintf(w, "  [%d] %.1fs: '%s'\n", i, c.At.Seconds(), c.Text); err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprintf(w, "Session duration: %.1fs\n",
		player.SessionDuration(main, support).Seconds())
	return err
}
