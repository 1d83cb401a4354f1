package lyrics

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"
	"time"
)

// NotFoundError reports a caption file that does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("lyrics file not found: %s", e.Path)
}

func (e *NotFoundError) Is(target error) bool {
	return target == fs.ErrNotExist
}

// ParseError reports the first malformed line of a caption file. A single
// bad line rejects the whole file.
type ParseError struct {
	Path string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("invalid timestamp at line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf(
		"invalid timestamp in %s at line %d: %v",
		e.Path,
		e.Line,
		e.Err,
	)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Load reads an LRC-style file. On any error the returned track is empty.
func Load(path string) (Track, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Track{}, &NotFoundError{Path: path}
		}
		return Track{}, fmt.Errorf("failed to open lyrics file: %w", err)
	}
	defer file.Close()

	track, err := Parse(file)
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			perr.Path = path
		}
		return Track{}, err
	}
	return track, nil
}

// MaxLineSize bounds a single line of a lyrics file.
const MaxLineSize = 16 * 1024 * 1024

// Parse reads captions line by line from r.
func Parse(r io.Reader) (Track, error) {
	var captions []Caption
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	lineNum := 0

	for scanner.Scan() {
		line := scanner.Text()
		lineNum++

		if lineNum == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}

		caption, ok, err := ParseLine(line)
		if err != nil {
			return Track{}, &ParseError{Line: lineNum, Err: err}
		}
		if ok {
			captions = append(captions, caption)
		}
	}

	if err := scanner.Err(); err != nil {
		return Track{}, fmt.Errorf("error reading lyrics: %w", err)
	}

	return NewTrack(captions), nil
}

// ParseLine parses `[MM:SS.cc] text` or `[MM:SS] text`. ok is false for
// lines that carry no caption: blank lines, lines not opening with a
// bracketed tag, and tags with empty text. err is set only when the time
// field itself is malformed.
func ParseLine(line string) (caption Caption, ok bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" || !strings.HasPrefix(line, "[") {
		return Caption{}, false, nil
	}
	end := strings.Index(line, "]")
	if end < 0 {
		return Caption{}, false, nil
	}

	at, err := parseTimestamp(line[1:end])
	if err != nil {
		return Caption{}, false, err
	}

	text := strings.TrimSpace(line[end+1:])
	if text == "" {
		return Caption{}, false, nil
	}

	return Caption{At: at, Text: text}, true, nil
}

// The fractional part is always read as centiseconds, whatever its width,
// so "00:01.5" is 1.05s.
func parseTimestamp(field string) (time.Duration, error) {
	var minutes, seconds, centis string

	fractional := strings.Contains(field, ".")
	if fractional {
		parts := strings.Split(field, ":")
		if len(parts) != 2 {
			return 0, fmt.Errorf("expected MM:SS.cc, got %q", field)
		}
		rest := strings.Split(parts[1], ".")
		if len(rest) != 2 {
			return 0, fmt.Errorf("expected MM:SS.cc, got %q", field)
		}
		minutes, seconds, centis = parts[0], rest[0], rest[1]
	} else {
		parts := strings.Split(field, ":")
		if len(parts) != 2 {
			return 0, fmt.Errorf("expected MM:SS, got %q", field)
		}
		minutes, seconds = parts[0], parts[1]
	}

	m, err := parseNumber(minutes)
	if err != nil {
		return 0, fmt.Errorf("minutes: %w", err)
	}
	s, err := parseNumber(seconds)
	if err != nil {
		return 0, fmt.Errorf("seconds: %w", err)
	}
	var cs float64
	if fractional {
		if cs, err = parseNumber(centis); err != nil {
			return 0, fmt.Errorf("centiseconds: %w", err)
		}
	}

	total := m*60 + s + cs/100
	if total < 0 || math.IsNaN(total) || math.IsInf(total, 0) {
		return 0, fmt.Errorf("timestamp out of range: %q", field)
	}

	return time.Duration(math.Round(total * float64(time.Second))), nil
}

func parseNumber(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
