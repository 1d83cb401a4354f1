package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/AdmajaBahari/lirik/internal/clock"
	"github.com/AdmajaBahari/lirik/internal/display"
	"github.com/AdmajaBahari/lirik/internal/logging"
	"github.com/AdmajaBahari/lirik/internal/lyrics"
	"github.com/AdmajaBahari/lirik/internal/player"
	"github.com/AdmajaBahari/lirik/internal/waveform"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
}

func TestLoadTracksFallsBackWhenMissing(t *testing.T) {
	main, support := loadTracks(t.TempDir(), logging.NewNop())

	if len(main) != 8 {
		t.Errorf("expected 8 main fallback captions, got %d", len(main))
	}
	if len(support) != 4 {
		t.Errorf("expected 4 support fallback captions, got %d", len(support))
	}
}

func TestLoadTracksShortMainFallsBack(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, mainFile, "[00:01.00] only one\n")
	writeFile(t, dir, supportFile, "[00:02.00] kept\n")

	main, support := loadTracks(dir, logging.NewNop())

	if len(main) != 8 {
		t.Errorf("expected main fallback, got %d captions", len(main))
	}
	if len(support) != 1 || support[0].Text != "kept" {
		t.Errorf("expected loaded support track, got %+v", support)
	}
}

func TestLoadTracksUsesFiles(t *testing.T) {
	dir := t.TempDir()
	var sb strings.Builder
	for i := 9; i >= 0; i-- {
		fmt.Fprintf(&sb, "[00:%d0.00] line %d\n", i, i)
	}
	writeFile(t, dir, mainFile, sb.String())
	writeFile(t, dir, supportFile, "[00:xx] broken\n")

	main, support := loadTracks(dir, logging.NewNop())

	if len(main) != 10 {
		t.Fatalf("expected 10 loaded main captions, got %d", len(main))
	}
	if main[0].At != 0 || main[9].At != 90*time.Second {
		t.Errorf("expected sorted track from 0s to 90s, got %v..%v", main[0].At, main[9].At)
	}
	if len(support) != 4 {
		t.Errorf("expected support fallback after parse error, got %d", len(support))
	}
}

func TestPrintTracks(t *testing.T) {
	var buf bytes.Buffer
	if err := printTracks(&buf, lyrics.MainFallback(), lyrics.SupportFallback()); err != nil {
		t.Fatalf("printTracks failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Main lyrics:\n  [0] 0.0s: 'You know, you know where you are with'\n",
		"Support lyrics:\n  [0] 0.0s: 'She's runnin' out the door'\n",
		"  [3] 32.0s: 'Run...'\n",
		"Session duration: 40.0s\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output, got:\n%s", want, out)
		}
	}
}

func TestPlayWritesPlainCaptions(t *testing.T) {
	main := lyrics.NewTrack([]lyrics.Caption{{At: 0, Text: "first"}, {At: 1200 * time.Millisecond, Text: "second"}})
	support := lyrics.NewTrack([]lyrics.Caption{{At: 500 * time.Millisecond, Text: "echo"}})
	session := player.NewSession(main, support, waveform.NewSeeded(7))

	var buf bytes.Buffer
	clk := clock.NewFake(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	if err := play(context.Background(), &buf, session, clk, logging.NewNop()); err != nil {
		t.Fatalf("play failed: %v", err)
	}

	want := "[0.0s] MAIN: 'first'\n" +
		"[0.6s] SUPPORT: 'echo'\n" +
		"[1.3s] MAIN: 'second'\n"
	if buf.String() != want {
		t.Errorf("expected:\n%s\ngot:\n%s", want, buf.String())
	}
}

func TestPlayInterruptedIsNotAnError(t *testing.T) {
	session := player.NewSession(lyrics.MainFallback(), lyrics.SupportFallback(), waveform.NewSeeded(7))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	clk := clock.NewFake(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	if err := play(ctx, &buf, session, clk, logging.NewNop()); err != nil {
		t.Errorf("expected nil error on interrupt, got %v", err)
	}
}

type closedSurface struct{}

func (closedSurface) Draw(player.Frame) error {
	return display.ErrClosed
}

func TestRunSurfaceReportsDisplayFailure(t *testing.T) {
	session := player.NewSession(lyrics.MainFallback(), lyrics.SupportFallback(), waveform.NewSeeded(7))
	clk := clock.NewFake(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	ttyErr := errors.New("could not open a new TTY")

	err := runSurface(context.Background(), session, clk, closedSurface{},
		func() error { return ttyErr }, logging.NewNop())
	if !errors.Is(err, ttyErr) {
		t.Errorf("expected display failure to be returned, got %v", err)
	}
}

func TestRunSurfaceUserQuitIsNotAnError(t *testing.T) {
	session := player.NewSession(lyrics.MainFallback(), lyrics.SupportFallback(), waveform.NewSeeded(7))
	clk := clock.NewFake(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	err := runSurface(context.Background(), session, clk, closedSurface{},
		func() error { return nil }, logging.NewNop())
	if err != nil {
		t.Errorf("expected nil error on user quit, got %v", err)
	}
}

func TestPrintClosing(t *testing.T) {
	var buf bytes.Buffer
	printClosing(&buf)

	if want := "🎵 Finished!\n@adbaharc\n"; buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}
