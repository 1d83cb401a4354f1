package player

import (
	"time"

	"github.com/AdmajaBahari/lirik/internal/lyrics"
	"github.com/AdmajaBahari/lirik/internal/typewriter"
	"github.com/AdmajaBahari/lirik/internal/waveform"
)

const (
	// FrameInterval is the pause between redraws, about 15 frames a second.
	FrameInterval = 70 * time.Millisecond

	// Tail is how long playback continues after the last caption.
	Tail = 5 * time.Second

	MainRevealInterval    = 30 * time.Millisecond
	SupportRevealInterval = 40 * time.Millisecond
)

// one composed display update
type Frame struct {
	Elapsed time.Duration
	Total   time.Duration
	Bar     int

	// fully resolved captions
	MainTarget    string
	SupportTarget string

	// typewriter progress on those captions
	Main    string
	Support string
}

// SessionDuration is the latest caption of either track plus Tail.
func SessionDuration(main, support lyrics.Track) time.Duration {
	return max(main.Last(), support.Last()) + Tail
}

// Session turns elapsed time into frames for a pair of tracks.
type Session struct {
	main    lyrics.Track
	support lyrics.Track
	samples waveform.Samples
	total   time.Duration

	mainWriter    *typewriter.Writer
	supportWriter *typewriter.Writer
}

func NewSession(main, support lyrics.Track, samples waveform.Samples) *Session {
	return &Session{
		main:    main,
		support: support,
		samples: samples,
		total:   SessionDuration(main, support),
		mainWriter: typewriter.NewWriter(typewriter.Config{
			Interval: MainRevealInterval,
			Step:     typewriter.DefaultStep,
		}),
		supportWriter: typewriter.NewWriter(typewriter.Config{
			Interval: SupportRevealInterval,
			Step:     typewriter.DefaultStep,
		}),
	}
}

func (s *Session) Duration() time.Duration {
	return s.total
}

// Frame advances both lines to elapsed. now paces the typewriters and must
// not go backwards between calls.
func (s *Session) Frame(elapsed time.Duration, now time.Time) Frame {
	mainTarget := s.main.At(elapsed)
	supportTarget := s.support.At(elapsed)

	return Frame{
		Elapsed:       elapsed,
		Total:         s.total,
		Bar:           s.samples.BarLength(elapsed, s.total),
		MainTarget:    mainTarget,
		SupportTarget: supportTarget,
		Main:          s.mainWriter.Update(mainTarget, now),
		Support:       s.supportWriter.Update(supportTarget, now),
	}
}
